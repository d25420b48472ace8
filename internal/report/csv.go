package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fsdevblog/orderflow/pkg/store"
)

// WriteCSV пишет заголовок и строки в формате CSV.
func WriteCSV(w io.Writer, columns []string, rows store.Rows) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteCSVFile создает (или перезаписывает) файл path и пишет в него отчет.
func WriteCSVFile(path string, columns []string, rows store.Rows) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file `%s`: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report file `%s`: %w", path, closeErr)
		}
	}()

	return WriteCSV(f, columns, rows)
}
