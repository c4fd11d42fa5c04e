package item

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	InsertFunc      func(ctx context.Context, ownerID int64, name string, quantity int) (*domain.Item, error)
	ListByOwnerFunc func(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	UpdateOneFunc   func(ctx context.Context, ownerID int64, itemID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error)
	DeleteOneFunc   func(ctx context.Context, ownerID int64, itemID uuid.UUID) error

	calls struct {
		Insert []struct {
			Ctx      context.Context
			OwnerID  int64
			Name     string
			Quantity int
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID int64
		}
		UpdateOne []struct {
			Ctx     context.Context
			OwnerID int64
			ItemID  uuid.UUID
			Patch   domain.ItemPatch
		}
		DeleteOne []struct {
			Ctx     context.Context
			OwnerID int64
			ItemID  uuid.UUID
		}
	}
	lockInsert      sync.RWMutex
	lockListByOwner sync.RWMutex
	lockUpdateOne   sync.RWMutex
	lockDeleteOne   sync.RWMutex
}

func (mock *itemRepoMock) Insert(ctx context.Context, ownerID int64, name string, quantity int) (*domain.Item, error) {
	if mock.InsertFunc == nil {
		panic("itemRepoMock.InsertFunc: method is nil but itemRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  int64
		Name     string
		Quantity int
	}{Ctx: ctx, OwnerID: ownerID, Name: name, Quantity: quantity}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, ownerID, name, quantity)
}

func (mock *itemRepoMock) InsertCalls() []struct {
	Ctx      context.Context
	OwnerID  int64
	Name     string
	Quantity int
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	if mock.ListByOwnerFunc == nil {
		panic("itemRepoMock.ListByOwnerFunc: method is nil but itemRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *itemRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID int64
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateOne(ctx context.Context, ownerID int64, itemID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error) {
	if mock.UpdateOneFunc == nil {
		panic("itemRepoMock.UpdateOneFunc: method is nil but itemRepo.UpdateOne was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		ItemID  uuid.UUID
		Patch   domain.ItemPatch
	}{Ctx: ctx, OwnerID: ownerID, ItemID: itemID, Patch: patch}
	mock.lockUpdateOne.Lock()
	mock.calls.UpdateOne = append(mock.calls.UpdateOne, callInfo)
	mock.lockUpdateOne.Unlock()
	return mock.UpdateOneFunc(ctx, ownerID, itemID, patch)
}

func (mock *itemRepoMock) UpdateOneCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	ItemID  uuid.UUID
	Patch   domain.ItemPatch
} {
	mock.lockUpdateOne.RLock()
	calls := mock.calls.UpdateOne
	mock.lockUpdateOne.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteOne(ctx context.Context, ownerID int64, itemID uuid.UUID) error {
	if mock.DeleteOneFunc == nil {
		panic("itemRepoMock.DeleteOneFunc: method is nil but itemRepo.DeleteOne was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		ItemID  uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ItemID: itemID}
	mock.lockDeleteOne.Lock()
	mock.calls.DeleteOne = append(mock.calls.DeleteOne, callInfo)
	mock.lockDeleteOne.Unlock()
	return mock.DeleteOneFunc(ctx, ownerID, itemID)
}

func (mock *itemRepoMock) DeleteOneCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	ItemID  uuid.UUID
} {
	mock.lockDeleteOne.RLock()
	calls := mock.calls.DeleteOne
	mock.lockDeleteOne.RUnlock()
	return calls
}
