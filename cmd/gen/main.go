// Command gen writes typed gorm/gen query helpers for the persistence models.
// Run it from the repository root after changing a model.
package main

import (
	"flag"

	"gasradar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	out := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *out,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})
	g.ApplyBasic(model.All()...)
	g.Execute()
}
