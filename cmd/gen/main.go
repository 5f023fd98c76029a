package main

import (
	"georemind/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the status tables.
func main() {
	models := []any{
		model.ReminderStatusModel{},
		model.ReminderStatusEventModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
