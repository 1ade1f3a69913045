// Package ingest reads uploaded overtime spreadsheets. A file needs a single
// clock-out column; every data cell in that column becomes one overtime line
// for the work date chosen on the import screen.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"otrack/payroll"
)

// endTimeAliases are the headers recognized as the clock-out column, in
// priority order. The Arabic names come first: production files are exported
// from an Arabic attendance system.
var endTimeAliases = []string{
	"ساعة الانتهاء",
	"وقت الخروج",
	"end_time",
	"End Time",
	"checkout_time",
	"Checkout Time",
	"الوقت",
	"Time",
	"ساعة الخروج",
	"وقت",
}

// Row is one importable line: the raw clock-out token and the regular-day
// hours computed from it. Holiday status is decided per row on the preview
// screen, and hours are recomputed with that flag at commit time.
type Row struct {
	EndTime string
	Hours   float64
}

// Result is a parsed upload. Skipped counts the lines dropped because they
// produced zero overtime hours, which includes malformed tokens; the preview
// screen surfaces the count so silently-dropped lines stay visible.
type Result struct {
	Rows    []Row
	Skipped int
}

var ErrUnsupportedFile = errors.New("unsupported file type: use .xlsx, .xls or .csv")

// ReadFile parses an uploaded spreadsheet, dispatching on the file extension.
func ReadFile(r io.Reader, filename string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return readWorkbook(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, ErrUnsupportedFile
	}
}

func readWorkbook(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Result{}, nil
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return fromCells(cells), nil
}

func readCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	cells, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromCells(cells), nil
}

func fromCells(cells [][]string) *Result {
	res := &Result{}
	if len(cells) == 0 {
		return res
	}

	col := endTimeColumn(cells[0])
	for _, line := range cells[1:] {
		if len(line) == 0 {
			continue
		}
		c := col
		if c >= len(line) {
			c = 0
		}
		token := strings.TrimSpace(line[c])

		hours := payroll.ComputeHours(token, false)
		if hours <= 0 {
			res.Skipped++
			continue
		}
		res.Rows = append(res.Rows, Row{EndTime: token, Hours: hours})
	}
	return res
}

// endTimeColumn resolves the clock-out column by trying each alias in
// priority order against the header row, falling back to the first column.
func endTimeColumn(header []string) int {
	for _, alias := range endTimeAliases {
		for i, cell := range header {
			cell = strings.TrimPrefix(strings.TrimSpace(cell), "\uFEFF")
			if strings.EqualFold(cell, alias) {
				return i
			}
		}
	}
	return 0
}

// TemplateWorkbook builds the sample workbook offered for download on the
// import screen.
func TemplateWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Overtime Template"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A1", endTimeAliases[0]); err != nil {
		return nil, err
	}
	samples := []string{"6.30", "7.00", "5.15", "8.00", "4.30", "6.45", "7.30", "5.00"}
	for i, sample := range samples {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue(sheet, cell, sample); err != nil {
			return nil, err
		}
	}
	return f, nil
}
