package main

import (
	"surveyor/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the principal tables.
func main() {
	models := []any{
		model.PrincipalModel{},
		model.AnswerModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
