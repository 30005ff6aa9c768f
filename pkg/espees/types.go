package espees

import "encoding/json"

// Country is a supported signup country.
type Country struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FlagURL  string `json:"flag_url"`
	DialCode string `json:"dial_code"`
}

// Bank is a payout bank for a destination currency.
type Bank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Currency is a supported destination currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Rates carries the Espee exchange rates and the platform charge.
type Rates struct {
	ExchangeRates    map[string]float64 `json:"exchange_rates"`
	PercentageCharge float64            `json:"percentage_charge"`
}

// ResolvedAccount is the verified owner of a bank account.
type ResolvedAccount struct {
	AccountName string `json:"account_name"`
}

// BankAccount identifies a payout destination.
type BankAccount struct {
	BankID        int64  `json:"bank_id"`
	AccountNumber string `json:"account_number"`
}

// Transaction is a swap transaction record. Timestamps are passed through as
// the server formats them.
type Transaction struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	PaymentStatus string          `json:"payment_status"`
	Payment       json.RawMessage `json:"payment,omitempty"`
	FiatAmount    float64         `json:"fiat_amount"`
	Currency      string          `json:"currency"`
	EspeeAmount   float64         `json:"espee_amount"`
	ExpiresAt     string          `json:"expires_at,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

// PageMeta is pagination metadata on list responses.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// TransactionList is a page of transactions.
type TransactionList struct {
	Data []*Transaction `json:"data"`
	Meta *PageMeta      `json:"meta,omitempty"`
}

// CreateTransactionParams starts a swap.
type CreateTransactionParams struct {
	EspeeAmount         float64     `json:"espee_amount"`
	DestinationCurrency string      `json:"destination_currency"`
	BankAccount         BankAccount `json:"bank_account"`
}

// RegisterParams creates an account.
type RegisterParams struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CountryID   int64  `json:"country_id,omitempty"`
}

// VerifyEmailParams confirms an email verification code.
type VerifyEmailParams struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// PasswordResetVerifyParams completes a password reset.
type PasswordResetVerifyParams struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

// AuthResult is the server reply to register/login/verify calls. Data carries
// the raw user payload; the client does not interpret it.
type AuthResult struct {
	APIToken string          `json:"api_token"`
	Data     json.RawMessage `json:"data,omitempty"`
}
