package assoc

import (
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tessella/tessella/pkg/errors"
)

// LoadOption configures LoadXLSX.
type LoadOption func(*loadConfig)

type loadConfig struct {
	sheet string
}

// WithSheet selects a sheet by name instead of the workbook's first sheet.
func WithSheet(name string) LoadOption {
	return func(c *loadConfig) { c.sheet = name }
}

// SheetNames returns the sheet names of a workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// SheetStat describes a worksheet and how many data rows it holds.
type SheetStat struct {
	Name string
	Rows int
}

// SheetStats returns each worksheet of a workbook with its data row count,
// the header row excluded.
func SheetStats(path string) ([]SheetStat, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stats []SheetStat
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read sheet %q", name)
		}
		n := 0
		for i, row := range rows {
			if i == 0 {
				continue
			}
			if rowToRecord(row) != nil {
				n++
			}
		}
		stats = append(stats, SheetStat{Name: name, Rows: n})
	}
	return stats, nil
}

// LoadXLSX reads intervention records from a spreadsheet.
//
// The sheet must have three columns: intervention type, substance name, and
// pattern label. The first row is treated as a header and skipped, as are
// rows missing any of the three values.
func LoadXLSX(path string, opts ...LoadOption) ([]Record, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := cfg.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	} else {
		if err := errors.ValidateSheetName(sheet); err != nil {
			return nil, err
		}
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
			return nil, errors.New(errors.ErrCodeSheetNotFound, "sheet %q not found in %s", sheet, path)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read sheet %q", sheet)
	}

	var records []Record
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		r := rowToRecord(row)
		if r == nil {
			continue
		}
		records = append(records, *r)
	}
	return records, nil
}

// rowToRecord converts a raw sheet row into a Record, or nil when any of
// the three columns is missing or blank.
func rowToRecord(row []string) *Record {
	if len(row) < 3 {
		return nil
	}
	intervention := strings.TrimSpace(row[0])
	substance := strings.TrimSpace(row[1])
	pattern := strings.TrimSpace(row[2])
	if intervention == "" || substance == "" || pattern == "" {
		return nil
	}
	return &Record{Intervention: intervention, Substance: substance, Pattern: pattern}
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "workbook %s does not exist", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook %s", path)
	}
	return f, nil
}
