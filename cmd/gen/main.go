package main

import (
	"evalert/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BroadcastModel{},
		model.BroadcastFailureLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
