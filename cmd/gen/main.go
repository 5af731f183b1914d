package main

import (
	"insurance/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models under
// internal/infra/persistence/postgres/query.
func main() {
	models := []any{
		model.CustomerModel{},
		model.PolicyModel{},
		model.QuoteModel{},
		model.PolicyHistoryModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
