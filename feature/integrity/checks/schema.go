package checks

import (
	"fmt"
	"reflect"
	"strings"

	"floorplan/core/database"
	"floorplan/feature/floor/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the floor row models with the
// connected database.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

type tabler interface {
	TableName() string
}

// RowModels are the gorm models the floor repository persists.
var RowModels = []tabler{
	models.FloorRow{},
	models.TableRow{},
	models.POIRow{},
	models.WallRow{},
}

// CheckSchema verifies every row model's columns exist in the database.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range RowModels {
		table := model.TableName()
		missing, err := database.MissingColumns(db, table, ModelColumns(model))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: missing, Status: "ok"}
		if tbl.MissingColumns == nil {
			tbl.MissingColumns = []string{}
		}
		if len(missing) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

// ModelColumns lists the column names declared in a model's gorm tags.
func ModelColumns(model any) []string {
	val := reflect.TypeOf(model)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < val.NumField(); i++ {
		if col := parseGormColumn(val.Field(i).Tag.Get("gorm")); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}
