package main

import (
	"market/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the relational models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/relational/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
