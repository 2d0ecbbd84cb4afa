package frame

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"tableskim/pkg/errs"
	"tableskim/pkg/logging"
	"tableskim/pkg/types"
)

const (
	dateLayout = "2006-01-02"

	// factorMaxLevels caps how many distinct values a string column may
	// have and still be inferred as a factor rather than free text.
	factorMaxLevels = 10
)

// Open loads a CSV file into a frame, transparently decompressing files with
// a .zst suffix.
func Open(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInvalidSource, "Open", "frame")
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, errs.Wrap(err, errs.CodeInvalidSource, "Open", "frame")
		}
		defer dec.Close()
		reader = dec
	}

	return ReadCSV(reader)
}

// ReadCSV parses CSV with a header row into a frame, inferring a column type
// for every column from its values. Empty cells are missing entries.
//
// Inference order per column, over the non-empty cells: logical when every
// cell is true/false, numeric when every cell parses as a float, date then
// datetime by layout, factor when the distinct count stays within
// factorMaxLevels and below the cell count, character otherwise.
func ReadCSV(r io.Reader) (*Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInvalidSource, "ReadCSV", "frame")
	}
	if len(records) == 0 {
		return nil, errs.New(errs.CategoryUser, errs.CodeInvalidSource,
			"csv input has no header row")
	}

	header := records[0]
	rows := records[1:]

	f := New()
	for ci, name := range header {
		cells := make([]string, len(rows))
		for ri, rec := range rows {
			if ci < len(rec) {
				cells[ri] = rec[ci]
			}
		}
		t := inferType(cells)
		if err := f.AddColumn(name, t, buildFields(t, cells)); err != nil {
			return nil, err
		}
		logging.Debug("csv column loaded", "column", name, "type", string(t))
	}

	return f, nil
}

func inferType(cells []string) types.ColumnType {
	present := 0
	allBool, allFloat, allDate, allDatetime := true, true, true, true
	distinct := make(map[string]struct{})

	for _, c := range cells {
		if c == "" {
			continue
		}
		present++
		distinct[c] = struct{}{}

		if !isBool(c) {
			allBool = false
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			allFloat = false
		}
		if _, err := time.Parse(dateLayout, c); err != nil {
			allDate = false
		}
		if _, err := time.Parse(time.RFC3339, c); err != nil {
			allDatetime = false
		}
	}

	switch {
	case present == 0:
		return types.Character
	case allBool:
		return types.Logical
	case allFloat:
		return types.Numeric
	case allDate:
		return types.Date
	case allDatetime:
		return types.Datetime
	case len(distinct) <= factorMaxLevels && len(distinct) < present:
		return types.Factor
	default:
		return types.Character
	}
}

func isBool(c string) bool {
	switch strings.ToLower(c) {
	case "true", "false":
		return true
	default:
		return false
	}
}

func buildFields(t types.ColumnType, cells []string) []types.Field {
	fields := make([]types.Field, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		switch t {
		case types.Logical:
			fields[i] = types.NewBoolField(strings.EqualFold(c, "true"))
		case types.Numeric:
			v, _ := strconv.ParseFloat(c, 64)
			fields[i] = types.NewFloat64Field(v)
		case types.Date:
			v, _ := time.Parse(dateLayout, c)
			fields[i] = types.NewTimeField(v)
		case types.Datetime:
			v, _ := time.Parse(time.RFC3339, c)
			fields[i] = types.NewTimeField(v)
		default:
			fields[i] = types.NewStringField(c)
		}
	}
	return fields
}
