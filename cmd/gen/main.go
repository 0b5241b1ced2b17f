package main

import (
	"mahalla/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CitizenModel{},
		model.EmergencySmsModel{},
		model.SmsLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
