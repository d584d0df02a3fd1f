package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Table is an uploaded file read into rows keyed by normalized column name.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

func (t Table) has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// missing returns the required columns absent from t, sorted.
func (t Table) missing(required []string) []string {
	var out []string
	for _, c := range required {
		if !t.has(c) {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseFile reads r according to the extension of filename.
func ParseFile(filename string, r io.Reader) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	case ".json":
		return parseJSON(r)
	}
	return Table{}, newValidationError(ErrUnsupportedFile, apiErrors.ErrUnsupportedFile,
		"Unsupported file type. Only CSV, Excel (.xlsx), and JSON files are supported.")
}

func parseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, newValidationError(ErrUnreadableFile, apiErrors.ErrInvalidFormat, "Error reading CSV file: %v", err)
	}
	return fromGrid(records), nil
}

func parseXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, newValidationError(ErrUnreadableFile, apiErrors.ErrInvalidFormat, "Error reading Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, newValidationError(ErrNoRows, apiErrors.ErrInvalidFormat, "Excel file has no sheets")
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, newValidationError(ErrUnreadableFile, apiErrors.ErrInvalidFormat, "Error reading Excel sheet %q: %v", sheets[0], err)
	}
	return fromGrid(grid), nil
}

// fromGrid treats the first row as the header. Short rows are padded with
// empty values and blank lines are skipped.
func fromGrid(grid [][]string) Table {
	if len(grid) == 0 {
		return Table{}
	}

	columns := make([]string, len(grid[0]))
	for i, name := range grid[0] {
		columns[i] = normalizeColumn(name)
	}

	rows := make([]map[string]any, 0, len(grid)-1)
	for _, line := range grid[1:] {
		if blank(line) {
			continue
		}
		row := make(map[string]any, len(columns))
		for i, c := range columns {
			if c == "" {
				continue
			}
			if i < len(line) {
				row[c] = line[i]
			} else {
				row[c] = ""
			}
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}
}

func blank(line []string) bool {
	for _, v := range line {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseJSON expects an array of flat objects. Columns are the union of keys in
// order of first appearance.
func parseJSON(r io.Reader) (Table, error) {
	var objects []map[string]any
	if err := json.NewDecoder(r).Decode(&objects); err != nil {
		return Table{}, newValidationError(ErrUnreadableFile, apiErrors.ErrInvalidFormat,
			"Error reading JSON file: %v. Ensure JSON is a flat list of objects.", err)
	}

	seen := make(map[string]bool)
	table := Table{Rows: make([]map[string]any, 0, len(objects))}
	for _, obj := range objects {
		row := make(map[string]any, len(obj))
		for k, v := range obj {
			row[normalizeColumn(k)] = v
		}
		table.Rows = append(table.Rows, row)
	}

	for _, obj := range objects {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, normalizeColumn(k))
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				table.Columns = append(table.Columns, k)
			}
		}
	}

	return table, nil
}

// cellString renders a cell as text; whole numbers lose their decimal part so
// a JSON product id of 101 reads "101".
func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// maxExcelSerial is 9999-12-31 as an Excel day number.
const maxExcelSerial = 2958465

// parseDate reads the date cell of row i. Excel serial day numbers are
// accepted for sheets whose date cells are unformatted.
func parseDate(v any, i int) (time.Time, error) {
	s := cellString(v)
	if t, ok := utils.ParseFlexibleDate(s); ok {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return utils.TruncateDay(t), nil
		}
	}

	return time.Time{}, newValidationError(ErrInvalidDate, apiErrors.ErrInvalidFormat,
		"Error parsing 'date' column at row %d: %q. Please use a recognizable format (e.g. YYYY-MM-DD).", i+1, s)
}

