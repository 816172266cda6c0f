// Package dataset loads mixed categorical/numeric tables from CSV and
// prepares train/test partitions for the classifier.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/schema"
)

// Table is a loaded dataset: feature instances plus optional class
// labels and the column schema the instances were built under.
type Table struct {
	Header []string
	X      []model.Instance
	Y      []string // nil when loaded without a label column
	Schema schema.Schema
}

// LoadOptions controls CSV loading.
type LoadOptions struct {
	// LabelColumn names the header of the class label column. Empty
	// means the file has no label column.
	LabelColumn string
	// LabelOptional accepts files without the label column; such files
	// load with Y nil. Used for query data.
	LabelOptional bool
	// Schema forces column kinds instead of inferring them. Required
	// when loading query data that must match a training schema.
	Schema schema.Schema
}

// LoadCSV reads a headered CSV file into a Table. Column kinds are
// inferred per column: numeric when every cell parses as a float,
// categorical otherwise. Categorical symbols are NFC-normalized so
// visually identical symbols compare equal.
func LoadCSV(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset: %s has no data rows", path)
	}

	header := records[0]
	rows := records[1:]

	labelIdx := -1
	if opts.LabelColumn != "" {
		for i, name := range header {
			if name == opts.LabelColumn {
				labelIdx = i
				break
			}
		}
		if labelIdx < 0 && !opts.LabelOptional {
			return nil, fmt.Errorf("dataset: label column %q not in header", opts.LabelColumn)
		}
	}

	featureCols := make([]int, 0, len(header))
	featureNames := make([]string, 0, len(header))
	for i, name := range header {
		if i == labelIdx {
			continue
		}
		featureCols = append(featureCols, i)
		featureNames = append(featureNames, name)
	}

	sch := opts.Schema
	if sch == nil {
		sch = inferKinds(rows, featureCols)
	} else if len(sch) != len(featureCols) {
		return nil, fmt.Errorf("dataset: schema has %d columns, file has %d feature columns", len(sch), len(featureCols))
	}

	t := &Table{Header: featureNames, Schema: sch}
	for r, rec := range rows {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("dataset: row %d has %d cells, want %d", r+1, len(rec), len(header))
		}
		inst := make(model.Instance, len(featureCols))
		for j, col := range featureCols {
			cell := strings.TrimSpace(rec[col])
			if sch[j] == model.Numeric {
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, fmt.Errorf("dataset: row %d column %q: %q is not numeric", r+1, featureNames[j], cell)
				}
				inst[j] = model.Num(v)
			} else {
				inst[j] = model.Sym(norm.NFC.String(cell))
			}
		}
		t.X = append(t.X, inst)
		if labelIdx >= 0 {
			t.Y = append(t.Y, norm.NFC.String(strings.TrimSpace(rec[labelIdx])))
		}
	}
	return t, nil
}

// inferKinds marks a column numeric only when every cell parses as a
// float. Kind is decided once per column, never per cell.
func inferKinds(rows [][]string, featureCols []int) schema.Schema {
	sch := make(schema.Schema, len(featureCols))
	for j, col := range featureCols {
		kind := model.Numeric
		for _, rec := range rows {
			if col >= len(rec) {
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64); err != nil {
				kind = model.Categorical
				break
			}
		}
		sch[j] = kind
	}
	return sch
}
