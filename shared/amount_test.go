package shared_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-ledger/shared"
)

func TestParseAmount(t *testing.T) {
	valid := map[string]string{
		"1":         "1.0000",
		"1.5":       "1.5000",
		"-2.25":     "-2.2500",
		"+3":        "3.0000",
		".5":        "0.5000",
		"7.":        "7.0000",
		"0.0001":    "0.0001",
		"100.12345": "100.1234", // half-even: 4 is kept, 5 dropped
		"100.12355": "100.1236",
		"0.00005":   "0.0000",
		"0.00015":   "0.0002",
		"0":         "0.0000",
	}
	for in, want := range valid {
		t.Run(in, func(t *testing.T) {
			a, err := shared.ParseAmount(in)
			require.NoError(t, err)
			assert.Equal(t, want, a.String())
		})
	}

	invalid := []string{"", "abc", "1.2.3", "1e3", " 1", "--1", "1,5", "."}
	for _, in := range invalid {
		t.Run("invalid_"+in, func(t *testing.T) {
			_, err := shared.ParseAmount(in)
			assert.ErrorIs(t, err, shared.ErrInvalidNumericalString)
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a := shared.MustParseAmount("1.1")
	b := shared.MustParseAmount("2.25")

	assert.Equal(t, "3.3500", a.Add(b).String())
	assert.Equal(t, "-1.1500", a.Sub(b).String())
	assert.Equal(t, "-1.1000", a.Neg().String())
	assert.True(t, a.Sub(b).IsNegative())
	assert.True(t, a.Sub(a).IsZero())
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.True(t, shared.NewAmountFromInt(2).Equal(shared.MustParseAmount("2.0000")))
	assert.Equal(t, "0.0000", shared.ZeroAmount().String())
}

func TestAmount_JSON(t *testing.T) {
	payload := struct {
		Amount shared.Amount `json:"amount"`
	}{Amount: shared.MustParseAmount("12.5")}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"12.5000"}`, string(raw))

	payload.Amount = shared.ZeroAmount()
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.True(t, payload.Amount.Equal(shared.MustParseAmount("12.5")))
}
