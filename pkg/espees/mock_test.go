package espees

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport replaces the HTTP transport in service tests. The first
// return value is a JSON payload unmarshalled into result, the second the
// error to surface.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, op string, pathParams map[string]string, opts *RequestOptions, result interface{}) error {
	args := m.Called(ctx, op, pathParams, opts, result)

	if payload := args.String(0); payload != "" && result != nil {
		if err := json.Unmarshal([]byte(payload), result); err != nil {
			return err
		}
	}
	return args.Error(1)
}

// newTestClient builds a client wired to a mock transport.
func newTestClient(t *testing.T) (*Client, *MockTransport) {
	t.Helper()

	client, err := NewClient(&ClientOptions{
		BaseURL: "https://api.example.com",
	})
	require.NoError(t, err)

	mt := new(MockTransport)
	client.transport = mt
	return client, mt
}
