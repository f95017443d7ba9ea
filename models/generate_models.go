package models

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

/*
Model tooling.

GENERATE_MODELS=true migrates every model below and writes typed query
helpers to ./generated (gorm.io/gen).

GENERATE_COLUMN_REPORT=true only prints, per table, the database columns that
no model field maps to. Useful after someone edits the Supabase schema by hand:

	table=projects missing=[legacy_slug]
*/

// All lists every persisted model in migration order
func All() []any {
	return []any{
		&Project{},
		&ProjectLead{},
	}
}

// Migrate creates or updates the tables for every model
func Migrate(db *gorm.DB) error {
	return db.Session(&gorm.Session{SkipDefaultTransaction: true}).AutoMigrate(All()...)
}

func GenerateModels(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	verbose := db.Session(&gorm.Session{
		Logger:                 db.Logger.LogMode(logger.Info),
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	log.Info().Msg("migrating models")
	if err := Migrate(verbose); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	if _, err := GenerateColumnMismatchReport(db); err != nil {
		log.Warn().Err(err).Msg("column report failed")
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(Project{}, ProjectLead{})
	g.Execute()

	log.Info().Msg("model generation complete")
	return nil
}

// GenerateColumnMismatchReport returns, per table, the columns present in the
// database but unknown to the corresponding model
func GenerateColumnMismatchReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	cache := &sync.Map{}

	for _, model := range All() {
		s, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parse schema for %T: %w", model, err)
		}

		if !db.Migrator().HasTable(s.Table) {
			log.Warn().Str("table", s.Table).Msg("table does not exist yet")
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("columns for table %s: %w", s.Table, err)
		}

		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		missing := findColumnMismatches(dbColumns, s.DBNames)
		report[s.Table] = missing

		event := log.Info()
		if len(missing) > 0 {
			event = log.Warn()
		}
		event.Str("table", s.Table).Strs("missing", missing).Msg("column report")
	}

	return report, nil
}

// findColumnMismatches returns the database columns with no matching model field, sorted
func findColumnMismatches(dbColumns, modelFields []string) []string {
	known := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		known[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !known[col] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)
	return mismatches
}
