package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	ep, err := Lookup(TransactionsCancel)
	require.NoError(t, err)
	assert.Equal(t, "POST", ep.Method)
	assert.Equal(t, "transactions/:id/cancel", ep.Path)

	_, err = Lookup("transactions.frobnicate")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	path, err := Resolve("transactions/:id/cancel", map[string]string{"id": "t1"})
	require.NoError(t, err)
	assert.Equal(t, "transactions/t1/cancel", path)
}

func TestResolve_NoPlaceholders(t *testing.T) {
	path, err := Resolve("attributes/espee-rates", nil)
	require.NoError(t, err)
	assert.Equal(t, "attributes/espee-rates", path)
}

func TestResolve_MissingParam(t *testing.T) {
	_, err := Resolve("transactions/:id", nil)
	assert.Error(t, err)

	_, err = Resolve("transactions/:id", map[string]string{"id": ""})
	assert.Error(t, err)
}

func TestResolve_EscapesValues(t *testing.T) {
	path, err := Resolve("transactions/:id", map[string]string{"id": "a/b c"})
	require.NoError(t, err)
	assert.Equal(t, "transactions/a%2Fb%20c", path)
}
