package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// GetTableAs reads every data row of a table into structs of type T.
// Columns are matched to fields by ssql_header; the header and type rows are skipped.
func GetTableAs[T any](db *DB, tableName string) ([]T, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	// Need headers, types and at least one data row
	if len(values) < 3 {
		return []T{}, nil
	}

	var model T
	t := reflect.TypeOf(model)

	fieldByColumn := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		if header := t.Field(i).Tag.Get("ssql_header"); header != "" {
			fieldByColumn[header] = i
		}
	}

	// Column index -> struct field index
	mapping := make(map[int]int)
	columnNames := make(map[int]string)
	for col, header := range values[0] {
		name, ok := header.(string)
		if !ok {
			continue
		}
		if fieldIdx, ok := fieldByColumn[name]; ok {
			mapping[col] = fieldIdx
			columnNames[col] = name
		}
	}

	results := make([]T, 0, len(values)-2)
	for rowIdx, row := range values[2:] {
		if isBlankRow(row) {
			continue
		}

		result := reflect.New(t).Elem()
		for col, fieldIdx := range mapping {
			if col >= len(row) || row[col] == nil {
				continue
			}
			if err := setFieldValue(result.Field(fieldIdx), row[col]); err != nil {
				// Sheet rows are 1-based and data starts on row 3
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+3, columnNames[col], err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

func isBlankRow(row []interface{}) bool {
	for _, cell := range row {
		if cellString(cell) != "" {
			return false
		}
	}
	return true
}

// cellString normalises a cell to text. Unformatted reads return numbers as float64.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// setFieldValue converts a sheet cell to the field's Go type.
// Slices are read from comma separated cells.
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	cellStr := cellString(cellValue)

	if field.Kind() == reflect.Slice {
		return setSliceValue(field, cellStr)
	}
	return setScalarValue(field, cellStr)
}

func setScalarValue(field reflect.Value, cellStr string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(cellStr)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cellStr == "" {
			field.SetInt(0)
			return nil
		}
		intVal, err := strconv.ParseInt(cellStr, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int: %w", err)
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		if cellStr == "" {
			field.SetFloat(0)
			return nil
		}
		floatVal, err := strconv.ParseFloat(cellStr, 64)
		if err != nil {
			return fmt.Errorf("failed to parse float: %w", err)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		if cellStr == "" {
			field.SetBool(false)
			return nil
		}
		boolVal, err := strconv.ParseBool(cellStr)
		if err != nil {
			return fmt.Errorf("failed to parse bool: %w", err)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

func setSliceValue(field reflect.Value, cellStr string) error {
	var parts []string
	for _, part := range strings.Split(cellStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
	for i, part := range parts {
		if err := setScalarValue(slice.Index(i), part); err != nil {
			return fmt.Errorf("list item %d: %w", i, err)
		}
	}
	field.Set(slice)

	return nil
}
