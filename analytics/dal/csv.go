package dal

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/pajkicdj/POC-user-product-flow/analytics/domain"
)

type CSVFileWriter struct{}

func NewCSVFileWriter() *CSVFileWriter {
	return &CSVFileWriter{}
}

// WriteRows writes rows to path as comma delimited CSV, replacing any existing file.
func (w *CSVFileWriter) WriteRows(path string, rows []domain.Row) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", domain.ErrIO, path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("%w: failed to close %s: %w", domain.ErrIO, path, closeErr))
		}
	}()

	writer := csv.NewWriter(file)

	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("%w: failed to write row %d: %w", domain.ErrIO, i, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: failed to flush %s: %w", domain.ErrIO, path, err)
	}

	return nil
}
