package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/schema"
	"github.com/Rana718/vitalgen/internal/types"
)

func csvValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case model.Date:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// WriteCSV writes one file per table with the catalog's column order as
// header. Absent optional columns are left empty.
func WriteCSV(dirPath string, tables []generator.TableRecords) ([]string, error) {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create CSV directory: %w", err)
	}

	var files []string
	for _, t := range tables {
		table, ok := schema.Lookup(t.Table)
		if !ok {
			return nil, fmt.Errorf("table %s is not in the catalog", t.Table)
		}

		name := t.Table + ".csv"
		if err := writeTableCSV(filepath.Join(dirPath, name), table.Columns, t.Records); err != nil {
			return nil, fmt.Errorf("failed to write CSV file for %s: %w", t.Table, err)
		}
		files = append(files, name)
	}
	return files, nil
}

func writeTableCSV(filePath string, columns []types.SchemaColumn, records []model.Record) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Name
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, r := range records {
		byColumn := make(map[string]interface{})
		for _, f := range r.Fields() {
			byColumn[f.Column] = f.Value
		}
		values := make([]string, len(headers))
		for i, h := range headers {
			values[i] = csvValue(byColumn[h])
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
