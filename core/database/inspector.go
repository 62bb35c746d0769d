package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one row of SHOW COLUMNS. Field and Type are lower-cased.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// pragmaColumn is one row of sqlite's PRAGMA table_info.
type pragmaColumn struct {
	Name       string
	Type       string
	Notnull    int
	DefaultVal *string `gorm:"column:dflt_value"`
	Pk         int
}

func (p pragmaColumn) info() ColumnInfo {
	col := ColumnInfo{Field: p.Name, Type: p.Type, Null: "YES", Default: p.DefaultVal}
	if p.Notnull == 1 {
		col.Null = "NO"
	}
	if p.Pk > 0 {
		col.Key = "PRI"
	}
	return col
}

// GetTableColumns lists the columns of table in the SHOW COLUMNS shape for
// both drivers. A missing sqlite table yields no columns and no error.
func GetTableColumns(db *gorm.DB, table string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	if db.Dialector.Name() == DriverSQLite {
		var rows []pragmaColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, row := range rows {
			columns = append(columns, row.info())
		}
	} else if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

// MissingColumns returns the expected columns that the table does not have.
// A table that does not exist reports every expected column as missing.
func MissingColumns(db *gorm.DB, table string, expected []string) ([]string, error) {
	columns, err := GetTableColumns(db, table)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col.Field] = true
	}

	missing := []string{}
	for _, name := range expected {
		if !present[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
