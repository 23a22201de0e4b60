package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

var _ identityProvider = &identityProviderMock{}

type identityProviderMock struct {
	SignUpFunc         func(ctx context.Context, email, password, redirectTo string) (*domain.Session, error)
	SignInFunc         func(ctx context.Context, email, password string) (*domain.Session, error)
	RecoverFunc        func(ctx context.Context, email, redirectTo string) error
	UpdatePasswordFunc func(ctx context.Context, accessToken, password string) error
	LogoutFunc         func(ctx context.Context, accessToken string) error

	calls struct {
		SignUp []struct {
			Email, Password, RedirectTo string
		}
		SignIn []struct {
			Email, Password string
		}
		Recover []struct {
			Email, RedirectTo string
		}
		UpdatePassword []struct {
			AccessToken, Password string
		}
		Logout []struct {
			AccessToken string
		}
	}
	lock sync.RWMutex
}

func (mock *identityProviderMock) SignUp(ctx context.Context, email, password, redirectTo string) (*domain.Session, error) {
	if mock.SignUpFunc == nil {
		panic("identityProviderMock.SignUpFunc: method is nil but identityProvider.SignUp was just called")
	}
	mock.lock.Lock()
	mock.calls.SignUp = append(mock.calls.SignUp, struct{ Email, Password, RedirectTo string }{email, password, redirectTo})
	mock.lock.Unlock()
	return mock.SignUpFunc(ctx, email, password, redirectTo)
}

func (mock *identityProviderMock) SignUpCalls() []struct{ Email, Password, RedirectTo string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SignUp
}

func (mock *identityProviderMock) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if mock.SignInFunc == nil {
		panic("identityProviderMock.SignInFunc: method is nil but identityProvider.SignIn was just called")
	}
	mock.lock.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, struct{ Email, Password string }{email, password})
	mock.lock.Unlock()
	return mock.SignInFunc(ctx, email, password)
}

func (mock *identityProviderMock) SignInCalls() []struct{ Email, Password string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SignIn
}

func (mock *identityProviderMock) Recover(ctx context.Context, email, redirectTo string) error {
	if mock.RecoverFunc == nil {
		panic("identityProviderMock.RecoverFunc: method is nil but identityProvider.Recover was just called")
	}
	mock.lock.Lock()
	mock.calls.Recover = append(mock.calls.Recover, struct{ Email, RedirectTo string }{email, redirectTo})
	mock.lock.Unlock()
	return mock.RecoverFunc(ctx, email, redirectTo)
}

func (mock *identityProviderMock) RecoverCalls() []struct{ Email, RedirectTo string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Recover
}

func (mock *identityProviderMock) UpdatePassword(ctx context.Context, accessToken, password string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("identityProviderMock.UpdatePasswordFunc: method is nil but identityProvider.UpdatePassword was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, struct{ AccessToken, Password string }{accessToken, password})
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, accessToken, password)
}

func (mock *identityProviderMock) UpdatePasswordCalls() []struct{ AccessToken, Password string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePassword
}

func (mock *identityProviderMock) Logout(ctx context.Context, accessToken string) error {
	if mock.LogoutFunc == nil {
		panic("identityProviderMock.LogoutFunc: method is nil but identityProvider.Logout was just called")
	}
	mock.lock.Lock()
	mock.calls.Logout = append(mock.calls.Logout, struct{ AccessToken string }{accessToken})
	mock.lock.Unlock()
	return mock.LogoutFunc(ctx, accessToken)
}

func (mock *identityProviderMock) LogoutCalls() []struct{ AccessToken string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Logout
}
