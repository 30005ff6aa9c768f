package espees

import (
	"context"
)

// AuthService handles account creation and session establishment
type AuthService interface {
	// Register creates an account. A returned api_token is captured.
	Register(ctx context.Context, params *RegisterParams) (*AuthResult, error)

	// Login authenticates and captures the returned api_token.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// VerifyEmail confirms a verification code. A returned api_token is captured.
	VerifyEmail(ctx context.Context, params *VerifyEmailParams) (*AuthResult, error)

	// RequestVerification asks for a fresh email verification code.
	RequestVerification(ctx context.Context, email string) error

	// RequestPasswordReset starts a password reset.
	RequestPasswordReset(ctx context.Context, email string) error

	// VerifyPasswordReset completes a password reset.
	VerifyPasswordReset(ctx context.Context, params *PasswordResetVerifyParams) error
}

// AttributeService exposes reference data for the swap flow
type AttributeService interface {
	// Countries lists supported signup countries.
	Countries(ctx context.Context) ([]*Country, error)

	// Banks lists payout banks for a destination currency.
	Banks(ctx context.Context, currency string) ([]*Bank, error)

	// Rates retrieves the current Espee exchange rates and charge.
	Rates(ctx context.Context) (*Rates, error)

	// Currencies lists supported destination currencies.
	Currencies(ctx context.Context) ([]*Currency, error)

	// ResolveAccount verifies a bank account and returns its owner name.
	ResolveAccount(ctx context.Context, bankID int64, accountNumber string) (*ResolvedAccount, error)
}

// TransactionService handles swap transactions
type TransactionService interface {
	// Create starts a swap transaction.
	Create(ctx context.Context, params *CreateTransactionParams) (*Transaction, error)

	// List retrieves transactions for a currency, paginated.
	List(ctx context.Context, currency string) (*TransactionList, error)

	// Get retrieves a single transaction.
	Get(ctx context.Context, id string) (*Transaction, error)

	// Cancel cancels a pending transaction.
	Cancel(ctx context.Context, id string) error
}

// Transport executes logical operations against the API
type Transport interface {
	Do(ctx context.Context, op string, pathParams map[string]string, opts *RequestOptions, result interface{}) error
}
