package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVRepository loads the catalog from a delimited text export.
type CSVRepository struct {
	path string
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

func (r *CSVRepository) Load() (RawTable, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return RawTable{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses a header-first delimited catalog. Columns are matched by
// header name; a leftover positional index column (empty header or
// "Unnamed: 0" from a prior serialization) is discarded. Empty cells read
// as missing values.
func ReadCSV(src io.Reader) (RawTable, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return RawTable{}, fmt.Errorf("read catalog header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	cols := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "Unnamed:") {
			continue
		}
		colIdx[name] = i
		cols[name] = true
	}

	table := RawTable{Columns: cols}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return RawTable{}, fmt.Errorf("read catalog row: %w", err)
		}

		cell := func(col string) *string {
			i, ok := colIdx[col]
			if !ok || i >= len(record) || record[i] == "" {
				return nil
			}
			v := record[i]
			return &v
		}

		table.Rows = append(table.Rows, RawProduct{
			ID:          cell(ColID),
			ProdID:      cell(ColProdID),
			Name:        cell(ColName),
			Brand:       cell(ColBrand),
			Rating:      cell(ColRating),
			ReviewCount: cell(ColReviewCount),
			ImageURL:    cell(ColImageURL),
			Description: cell(ColDescription),
			Category:    cell(ColCategory),
			Tags:        cell(ColTags),
		})
	}

	return table, nil
}
