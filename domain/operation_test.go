package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"client-ledger/domain"
	"client-ledger/shared"
)

func TestOperation_ClientIDAndKind(t *testing.T) {
	cases := []struct {
		op     domain.Operation
		client shared.ClientID
		kind   string
	}{
		{domain.NewDeposit(1, 10, shared.NewAmountFromInt(1)), 1, "deposit"},
		{domain.NewWithdrawal(2, 11, shared.NewAmountFromInt(1)), 2, "withdrawal"},
		{domain.Dispute{Client: 3, Ref: 10}, 3, "dispute"},
		{domain.Resolve{Client: 4, Ref: 10}, 4, "resolve"},
		{domain.Chargeback{Client: 65535, Ref: 10}, 65535, "chargeback"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.client, tc.op.ClientID())
		assert.Equal(t, tc.kind, tc.op.Kind())
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	dep := domain.NewTransaction(1, 1, shared.MustParseAmount("2.5"), domain.Deposit)
	wd := domain.NewTransaction(1, 2, shared.MustParseAmount("2.5"), domain.Withdrawal)

	assert.Equal(t, "2.5000", dep.SignedAmount().String())
	assert.Equal(t, "-2.5000", wd.SignedAmount().String())
	assert.Equal(t, "2.5000", wd.Amount().String())
}

func TestTransactionError_Message(t *testing.T) {
	err := &domain.TransactionError{Kind: domain.InsufficientFunds, TransactionID: 4}
	assert.Equal(t, "insufficient funds: tx 4", err.Error())

	locked := &domain.TransactionError{Kind: domain.AccountLocked, ClientID: 9}
	assert.Equal(t, "account locked: client 9", locked.Error())
	assert.ErrorIs(t, locked, domain.ErrAccountLocked)
	assert.NotErrorIs(t, locked, domain.ErrInsufficientFunds)
	assert.Equal(t, "AccountLocked", domain.AccountLocked.String())
}
