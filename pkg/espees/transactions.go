package espees

import (
	"context"
	"net/url"

	"github.com/espeeswap/espeeswap-go/internal/endpoints"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// Create starts a swap transaction
func (s *transactionService) Create(ctx context.Context, params *CreateTransactionParams) (*Transaction, error) {
	var res struct {
		Data *Transaction `json:"data"`
	}
	if err := s.client.transport.Do(ctx, endpoints.TransactionsCreate, nil, &RequestOptions{Body: params}, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// List retrieves transactions for a currency
func (s *transactionService) List(ctx context.Context, currency string) (*TransactionList, error) {
	var res TransactionList
	opts := &RequestOptions{
		Query: url.Values{"currency": []string{currency}},
	}
	if err := s.client.transport.Do(ctx, endpoints.TransactionsList, nil, opts, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Get retrieves a single transaction
func (s *transactionService) Get(ctx context.Context, id string) (*Transaction, error) {
	var res struct {
		Data *Transaction `json:"data"`
	}
	params := map[string]string{"id": id}
	if err := s.client.transport.Do(ctx, endpoints.TransactionsDetails, params, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Cancel cancels a pending transaction
func (s *transactionService) Cancel(ctx context.Context, id string) error {
	params := map[string]string{"id": id}
	return s.client.transport.Do(ctx, endpoints.TransactionsCancel, params, nil, nil)
}
