package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"client-ledger/domain"
)

// Writer renders account snapshots as client,available,held,total,locked rows.
type Writer struct {
	csv *csv.Writer
}

func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	return &Writer{csv: cw}, nil
}

func (w *Writer) Write(snap domain.AccountSnapshot) error {
	record := []string{
		snap.ClientID.String(),
		snap.Available.String(),
		snap.Held.String(),
		snap.Total().String(),
		strconv.FormatBool(snap.Locked()),
	}
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write account %d: %w", snap.ClientID, err)
	}
	return nil
}

func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
