package shared_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-ledger/shared"
)

func TestParseClientID(t *testing.T) {
	id, err := shared.ParseClientID("65535")
	require.NoError(t, err)
	assert.Equal(t, shared.ClientID(65535), id)

	id, err = shared.ParseClientID("+7")
	require.NoError(t, err)
	assert.Equal(t, "7", id.String())

	_, err = shared.ParseClientID("65536")
	assert.ErrorIs(t, err, strconv.ErrRange)

	for _, in := range []string{"", "-1", "a1", "1.0", " 1"} {
		_, err = shared.ParseClientID(in)
		assert.ErrorIs(t, err, strconv.ErrSyntax, "input %q", in)
	}
}

func TestParseTransactionID(t *testing.T) {
	id, err := shared.ParseTransactionID("4294967295")
	require.NoError(t, err)
	assert.Equal(t, shared.TransactionID(4294967295), id)

	_, err = shared.ParseTransactionID("4294967296")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = shared.ParseTransactionID("x")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
