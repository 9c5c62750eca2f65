// Package csvio reads ledger operations from CSV and writes account snapshots as CSV.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"client-ledger/domain"
	"client-ledger/shared"
)

var (
	ErrHeaderNotFound = errors.New("csv header not found")
	ErrInvalidHeaders = errors.New("invalid csv headers")
)

var headers = []string{"type", "client", "tx", "amount"}

// Reader turns rows of type,client,tx,amount into operations.
//
// Rows that cannot be parsed are skipped. A row with an unknown type ends the
// stream; the rows after it are never read.
type Reader struct {
	csv       *csv.Reader
	headerMap map[string]int
	err       error
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &Reader{csv: cr}
}

// Operations validates the header row and returns the operation stream.
func (r *Reader) Operations() (iter.Seq[domain.Operation], error) {
	header, err := r.csv.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderNotFound, err)
	}

	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if len(headerMap) != len(headers) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidHeaders, header)
	}
	for _, h := range headers {
		if _, ok := headerMap[h]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidHeaders, h)
		}
	}
	r.headerMap = headerMap

	return r.operations, nil
}

// Err reports the I/O error that ended the stream, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) operations(yield func(domain.Operation) bool) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			r.err = err
			return
		}

		op, known, ok := r.parseRecord(record)
		if !known {
			return
		}
		if !ok {
			continue
		}
		if !yield(op) {
			return
		}
	}
}

// parseRecord reports known=false for an unrecognized type and ok=false for a
// row that should be skipped.
func (r *Reader) parseRecord(record []string) (op domain.Operation, known bool, ok bool) {
	if len(record) != len(headers) {
		return nil, true, false
	}

	client, err := shared.ParseClientID(r.field(record, "client"))
	if err != nil {
		return nil, true, false
	}
	tx, err := shared.ParseTransactionID(r.field(record, "tx"))
	if err != nil {
		return nil, true, false
	}

	switch r.field(record, "type") {
	case "deposit":
		amount, err := shared.ParseAmount(r.field(record, "amount"))
		if err != nil {
			return nil, true, false
		}
		return domain.NewDeposit(client, tx, amount), true, true
	case "withdrawal":
		amount, err := shared.ParseAmount(r.field(record, "amount"))
		if err != nil {
			return nil, true, false
		}
		return domain.NewWithdrawal(client, tx, amount), true, true
	case "dispute":
		return domain.Dispute{Client: client, Ref: tx}, true, true
	case "resolve":
		return domain.Resolve{Client: client, Ref: tx}, true, true
	case "chargeback":
		return domain.Chargeback{Client: client, Ref: tx}, true, true
	}
	return nil, false, false
}

func (r *Reader) field(record []string, name string) string {
	return strings.TrimSpace(record[r.headerMap[name]])
}
