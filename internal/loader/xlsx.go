package loader

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"ClientCourier/internal/model"
)

// XLSXSource reads records from the first sheet of an Excel workbook,
// which is how the advisor exports arrive from the back office.
type XLSXSource struct{}

func NewXLSXSource() *XLSXSource { return &XLSXSource{} }

func (s *XLSXSource) Name() string { return "xlsx" }

func (s *XLSXSource) Load(path string) ([]model.AccountRecord, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("[WARN] close %s: %v", path, cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("%s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%s: sheet %q is empty, no header row", path, sheets[0])
	}
	return parseTable(rows[0], rows[1:])
}
