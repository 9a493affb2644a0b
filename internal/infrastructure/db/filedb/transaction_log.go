package filedb

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/librarykit/lending-system/internal/core/domain"
)

var transactionHeader = []string{"UserID", "BookID", "Action", "Date", "DueDate", "Fine"}

// CSVTransactionLog appends one row per lending event. The file is never
// rewritten.
type CSVTransactionLog struct {
	path string
}

// OpenCSVTransactionLog returns a log at path, writing the header row first
// if the file does not exist yet.
func OpenCSVTransactionLog(path string) (*CSVTransactionLog, error) {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		if err := writeRow(f, transactionHeader); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write header %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("close %s: %w", path, err)
		}
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &CSVTransactionLog{path: path}, nil
}

func (l *CSVTransactionLog) Path() string { return l.path }

// Append writes record as a single row.
func (l *CSVTransactionLog) Append(ctx context.Context, record domain.TransactionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", l.path, err)
	}
	if err := writeRow(f, recordRow(record)); err != nil {
		_ = f.Close()
		return fmt.Errorf("append %s: %w", l.path, err)
	}
	return f.Close()
}

func recordRow(r domain.TransactionRecord) []string {
	return []string{
		r.UserID,
		r.BookID,
		string(r.Action),
		r.Date.String(),
		r.DueDate.String(),
		strconv.FormatFloat(r.Fine, 'f', 2, 64),
	}
}

func writeRow(f *os.File, row []string) error {
	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
