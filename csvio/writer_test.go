package csvio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-ledger/csvio"
	"client-ledger/domain"
	"client-ledger/shared"
)

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w, err := csvio.NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Write(domain.AccountSnapshot{
		ClientID:  1,
		Available: shared.MustParseAmount("1.5"),
		Held:      shared.MustParseAmount("0.25"),
		State:     domain.Normal,
	}))
	require.NoError(t, w.Write(domain.AccountSnapshot{
		ClientID:  2,
		Available: shared.ZeroAmount(),
		Held:      shared.ZeroAmount(),
		State:     domain.Locked,
	}))
	require.NoError(t, w.Flush())

	want := "client,available,held,total,locked\n" +
		"1,1.5000,0.2500,1.7500,false\n" +
		"2,0.0000,0.0000,0.0000,true\n"
	assert.Equal(t, want, buf.String())
}
