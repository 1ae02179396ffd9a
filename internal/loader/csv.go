package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"ClientCourier/internal/model"
)

// CSVSource reads records from a comma-separated export with a header row.
type CSVSource struct{}

func NewCSVSource() *CSVSource { return &CSVSource{} }

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) Load(path string) ([]model.AccountRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled per cell

	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%s: empty file, no header row", path)
	}
	return parseTable(rows[0], rows[1:])
}
