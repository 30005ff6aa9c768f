package espees

import (
	"context"
	"testing"

	"github.com/espeeswap/espeeswap-go/internal/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction(t *testing.T) {
	client, mt := newTestClient(t)

	mt.On("Do", mock.Anything, endpoints.TransactionsCreate, mock.Anything,
		mock.MatchedBy(func(o *RequestOptions) bool {
			params, ok := o.Body.(*CreateTransactionParams)
			return ok &&
				params.EspeeAmount == 100 &&
				params.DestinationCurrency == "NGN" &&
				params.BankAccount.BankID == 10 &&
				params.BankAccount.AccountNumber == "0123456789"
		}), mock.Anything).
		Return(`{"data":{"id":"t1","reference":"REF-1","payment_status":"pending","fiat_amount":165050,"currency":"NGN","espee_amount":100,"expires_at":"2026-08-30T12:00:00Z"}}`, nil)

	txn, err := client.Transactions.Create(context.Background(), &CreateTransactionParams{
		EspeeAmount:         100,
		DestinationCurrency: "NGN",
		BankAccount: BankAccount{
			BankID:        10,
			AccountNumber: "0123456789",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", txn.ID)
	assert.Equal(t, "pending", txn.PaymentStatus)
	assert.Equal(t, 165050.0, txn.FiatAmount)
	mt.AssertExpectations(t)
}

func TestCreateTransaction_ValidationFailurePassesThrough(t *testing.T) {
	client, mt := newTestClient(t)

	// The client does not pre-validate amounts; the server's answer is the
	// answer.
	mt.On("Do", mock.Anything, endpoints.TransactionsCreate, mock.Anything, mock.Anything, mock.Anything).
		Return("", &APIError{Status: 422, Code: "SERVER_422", UserMessage: "Amount is below the minimum"})

	_, err := client.Transactions.Create(context.Background(), &CreateTransactionParams{
		EspeeAmount:         0.001,
		DestinationCurrency: "NGN",
	})

	require.Error(t, err)
	assert.Equal(t, "Amount is below the minimum", UserMessage(err))
	assert.False(t, IsRetryable(err))
}

func TestListTransactions(t *testing.T) {
	client, mt := newTestClient(t)

	mt.On("Do", mock.Anything, endpoints.TransactionsList, mock.Anything,
		mock.MatchedBy(func(o *RequestOptions) bool {
			return o.Query.Get("currency") == "NGN"
		}), mock.Anything).
		Return(`{"data":[{"id":"t1"},{"id":"t2"}],"meta":{"current_page":1,"per_page":20,"last_page":3,"total":41}}`, nil)

	list, err := client.Transactions.List(context.Background(), "NGN")

	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "t2", list.Data[1].ID)
	require.NotNil(t, list.Meta)
	assert.Equal(t, 41, list.Meta.Total)
	mt.AssertExpectations(t)
}

func TestGetTransaction(t *testing.T) {
	client, mt := newTestClient(t)

	mt.On("Do", mock.Anything, endpoints.TransactionsDetails,
		map[string]string{"id": "t1"}, mock.Anything, mock.Anything).
		Return(`{"data":{"id":"t1","payment_status":"successful"}}`, nil)

	txn, err := client.Transactions.Get(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "t1", txn.ID)
	assert.Equal(t, "successful", txn.PaymentStatus)
	mt.AssertExpectations(t)
}

func TestCancelTransaction(t *testing.T) {
	client, mt := newTestClient(t)

	mt.On("Do", mock.Anything, endpoints.TransactionsCancel,
		map[string]string{"id": "t1"}, mock.Anything, mock.Anything).
		Return("", nil)

	require.NoError(t, client.Transactions.Cancel(context.Background(), "t1"))
	mt.AssertExpectations(t)
}
