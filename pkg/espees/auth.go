package espees

import (
	"context"

	"github.com/espeeswap/espeeswap-go/internal/endpoints"
)

// authService implements the AuthService interface
type authService struct {
	client *Client
}

// capture applies a token returned by an auth call. A login failure never
// touches a pre-existing token; only a successful call carrying api_token
// replaces it.
func (a *authService) capture(res *AuthResult) error {
	if res == nil || res.APIToken == "" {
		return nil
	}
	return a.client.SetToken(res.APIToken)
}

// Register creates an account
func (a *authService) Register(ctx context.Context, params *RegisterParams) (*AuthResult, error) {
	var res AuthResult
	err := a.client.transport.Do(ctx, endpoints.AuthRegister, nil, &RequestOptions{
		Body:   params,
		NoAuth: true,
	}, &res)
	if err != nil {
		return nil, err
	}
	if err := a.capture(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login authenticates and captures the returned token
func (a *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	err := a.client.transport.Do(ctx, endpoints.AuthLogin, nil, &RequestOptions{
		Body: map[string]string{
			"email":    email,
			"password": password,
		},
		NoAuth: true,
	}, &res)
	if err != nil {
		return nil, err
	}
	if err := a.capture(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyEmail confirms a verification code
func (a *authService) VerifyEmail(ctx context.Context, params *VerifyEmailParams) (*AuthResult, error) {
	var res AuthResult
	err := a.client.transport.Do(ctx, endpoints.AuthVerifyEmail, nil, &RequestOptions{
		Body:   params,
		NoAuth: true,
	}, &res)
	if err != nil {
		return nil, err
	}
	if err := a.capture(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RequestVerification asks for a fresh verification code
func (a *authService) RequestVerification(ctx context.Context, email string) error {
	return a.client.transport.Do(ctx, endpoints.AuthRequestVerification, nil, &RequestOptions{
		Body:   map[string]string{"email": email},
		NoAuth: true,
	}, nil)
}

// RequestPasswordReset starts a password reset
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.transport.Do(ctx, endpoints.AuthPasswordResetRequest, nil, &RequestOptions{
		Body:   map[string]string{"email": email},
		NoAuth: true,
	}, nil)
}

// VerifyPasswordReset completes a password reset
func (a *authService) VerifyPasswordReset(ctx context.Context, params *PasswordResetVerifyParams) error {
	return a.client.transport.Do(ctx, endpoints.AuthPasswordResetVerify, nil, &RequestOptions{
		Body:   params,
		NoAuth: true,
	}, nil)
}
