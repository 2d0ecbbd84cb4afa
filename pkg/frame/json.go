package frame

import (
	"io"

	json "github.com/goccy/go-json"

	"tableskim/pkg/skim"
	"tableskim/pkg/types"
)

type jsonRow struct {
	Group     map[string]string `json:"group,omitempty"`
	Variable  string            `json:"variable"`
	Type      string            `json:"type"`
	Statistic string            `json:"statistic"`
	Value     any               `json:"value"`
	Error     string            `json:"error,omitempty"`
}

type jsonDoc struct {
	Rows    int            `json:"rows"`
	Columns int            `json:"columns"`
	Groups  []string       `json:"groups,omitempty"`
	Types   map[string]int `json:"types"`
	Summary []jsonRow      `json:"summary"`
}

// WriteJSON serializes a summary result as JSON: source metadata plus the
// long-form rows. NA cells serialize as null; failed cells carry their error
// message instead of a value.
func WriteJSON(w io.Writer, res *skim.Result) error {
	doc := jsonDoc{
		Rows:    res.SourceRows(),
		Columns: res.SourceColumns(),
		Groups:  res.GroupColumns(),
		Types:   make(map[string]int),
		Summary: make([]jsonRow, 0, res.Len()),
	}
	for _, t := range res.Types() {
		doc.Types[string(t)] = res.TypeFrequency(t)
	}

	for _, row := range res.Rows() {
		jr := jsonRow{
			Variable:  row.Variable,
			Type:      string(row.Type),
			Statistic: row.Statistic,
		}
		if !row.Group.IsZero() {
			jr.Group = make(map[string]string, len(row.Group.Columns))
			for i, c := range row.Group.Columns {
				v := "NA"
				if row.Group.Values[i] != nil {
					v = row.Group.Values[i].String()
				}
				jr.Group[c] = v
			}
		}
		if row.Value.IsError() {
			jr.Error = row.Value.Message()
		} else {
			jr.Value = datumValue(row.Value)
		}
		doc.Summary = append(doc.Summary, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func datumValue(d types.Datum) any {
	switch d.Kind() {
	case types.DatumFloat:
		v, _ := d.Float()
		return v
	case types.DatumInt:
		v, _ := d.Int()
		return v
	case types.DatumString:
		return d.String()
	case types.DatumVector:
		return d.Vector()
	default:
		return nil
	}
}
