package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// ClientID identifies a client account.
type ClientID uint16

// TransactionID identifies a deposit or withdrawal. It is unique across all clients.
type TransactionID uint32

func ParseClientID(s string) (ClientID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid client id %q: %w", s, err)
	}
	return ClientID(v), nil
}

func ParseTransactionID(s string) (TransactionID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return TransactionID(v), nil
}

func (id ClientID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id TransactionID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
