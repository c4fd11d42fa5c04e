package middleware

import (
	"sync"

	"github.com/avramenko-dev/inventory-backend/internal/auth"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyTokenFunc func(token string) (auth.Identity, error)

	calls struct {
		VerifyToken []struct {
			Token string
		}
	}
	lockVerifyToken sync.RWMutex
}

func (mock *tokenVerifierMock) VerifyToken(token string) (auth.Identity, error) {
	if mock.VerifyTokenFunc == nil {
		panic("tokenVerifierMock.VerifyTokenFunc: method is nil but tokenVerifier.VerifyToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockVerifyToken.Lock()
	mock.calls.VerifyToken = append(mock.calls.VerifyToken, callInfo)
	mock.lockVerifyToken.Unlock()
	return mock.VerifyTokenFunc(token)
}

func (mock *tokenVerifierMock) VerifyTokenCalls() []struct {
	Token string
} {
	mock.lockVerifyToken.RLock()
	calls := mock.calls.VerifyToken
	mock.lockVerifyToken.RUnlock()
	return calls
}
