package checks

import (
	"fmt"
	"reflect"
	"strings"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the live tables with the models.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the problems found in one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

type tabler interface {
	TableName() string
}

// CheckSchema verifies the database schema using the gorm models as the
// source of truth. A table that cannot be inspected is recorded in Errors and
// the remaining tables are still checked.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models.All() {
		t, ok := model.(tabler)
		if !ok {
			return nil, fmt.Errorf("model %T does not implement TableName", model)
		}
		table := t.TableName()

		tbl, err := checkTable(db, table, reflect.TypeOf(model).Elem())
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

func checkTable(db *gorm.DB, table string, model reflect.Type) (TableReport, error) {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actual, err := database.GetTableColumns(db, table)
	if err != nil {
		return tbl, err
	}
	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")
		name := gormSetting(tag, "column")
		if name == "" {
			continue // associations
		}

		col, exists := byName[name]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, name)
			tbl.Status = "error"
			continue
		}

		// Only explicit type: settings are compared, loosely.
		want := strings.ToLower(gormSetting(tag, "type"))
		if want != "" && !strings.Contains(col.Type, want) {
			tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", name, want, col.Type))
			tbl.Status = "error"
		}
	}
	return tbl, nil
}

// gormSetting returns the value of key in a gorm struct tag.
func gormSetting(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
