package sheetssql

import (
	"fmt"
	"reflect"
	"strings"
)

// Tabler lets a model choose its tab name instead of the snake_cased type name
type Tabler interface {
	TableName() string
}

// SchemaFromModels builds a Schema from struct definitions.
// Fields need `ssql_header:"column"` and `ssql_type:"type"` tags; untagged fields are ignored.
func SchemaFromModels(models ...interface{}) (*Schema, error) {
	tables := make([]TableSchema, 0, len(models))

	for _, model := range models {
		table, err := tableSchemaFromModel(model)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return &Schema{Tables: tables}, nil
}

// TableName returns the tab a model is stored in
func TableName(model interface{}) string {
	if tabler, ok := model.(Tabler); ok {
		return tabler.TableName()
	}
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return toSnakeCase(t.Name())
}

func tableSchemaFromModel(model interface{}) (TableSchema, error) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return TableSchema{}, fmt.Errorf("model must be a struct, got %s", t.Kind())
	}

	var columns []Column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		header := field.Tag.Get("ssql_header")
		if header == "" {
			continue
		}

		columnType := field.Tag.Get("ssql_type")
		if columnType == "" {
			return TableSchema{}, fmt.Errorf("field %s.%s missing 'ssql_type' tag", t.Name(), field.Name)
		}
		columns = append(columns, Column{Name: header, Type: columnType})
	}

	if len(columns) == 0 {
		return TableSchema{}, fmt.Errorf("struct %s has no ssql columns", t.Name())
	}

	return TableSchema{Name: TableName(model), Columns: columns}, nil
}

// toSnakeCase converts PascalCase to snake_case
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ensureSchema creates missing tables and checks existing ones carry every schema column
func (db *DB) ensureSchema() error {
	titles, err := db.client.SheetTitles(db.spreadsheetID)
	if err != nil {
		return fmt.Errorf("failed to get existing sheets: %w", err)
	}

	existing := make(map[string]bool, len(titles))
	for _, title := range titles {
		existing[title] = true
	}

	for _, table := range db.schema.Tables {
		if !existing[table.Name] {
			if err := db.createTable(table); err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.Name, err)
			}
			continue
		}
		if err := db.verifyTableSchema(table); err != nil {
			return fmt.Errorf("table %s schema mismatch: %w", table.Name, err)
		}
	}

	return nil
}

// verifyTableSchema checks the header and type rows. Extra columns are allowed
// so curriculum sheets can carry notes alongside the data.
func (db *DB) verifyTableSchema(table TableSchema) error {
	values, err := db.client.GetValues(db.spreadsheetID, fmt.Sprintf("%s!1:2", table.Name))
	if err != nil {
		return fmt.Errorf("failed to read table headers: %w", err)
	}
	if len(values) < 2 {
		return fmt.Errorf("table missing header or type row")
	}

	types := make(map[string]string, len(values[0]))
	for i, header := range values[0] {
		name, _ := header.(string)
		if i < len(values[1]) {
			types[name], _ = values[1][i].(string)
		}
	}

	for _, col := range table.Columns {
		got, ok := types[col.Name]
		if !ok {
			return fmt.Errorf("missing column %s", col.Name)
		}
		if got != col.Type {
			return fmt.Errorf("column %s: expected type '%s', got '%s'", col.Name, col.Type, got)
		}
	}

	return nil
}

// createTable adds a tab with its header and type rows
func (db *DB) createTable(table TableSchema) error {
	if _, err := db.client.CreateSheet(db.spreadsheetID, table.Name); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := make([]interface{}, len(table.Columns))
	types := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		headers[i] = col.Name
		types[i] = col.Type
	}

	if err := db.client.AppendRows(db.spreadsheetID, table.Name, [][]interface{}{headers, types}); err != nil {
		return fmt.Errorf("failed to write headers and types: %w", err)
	}

	return nil
}
