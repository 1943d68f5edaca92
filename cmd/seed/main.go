// seed crea compañías y usuarios iniciales desde un CSV de dotación.
//
// Uso: go run ./cmd/seed [ruta/dotacion.csv]
// Formato (con encabezado): nombre,email,rol,departamento,compañía
// La password inicial de cada usuario es la parte local de su email.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cuerpodebomberos/intranet-api/internal/application/importer"
	"github.com/cuerpodebomberos/intranet-api/internal/infrastructure/postgres"
	"github.com/cuerpodebomberos/intranet-api/pkg/config"
)

func main() {
	csvPath := "dotacion.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := importer.NewSeedUseCase(
		postgres.NewCompanyRepository(pool),
		postgres.NewUserRepository(pool),
	)
	created, errs := uc.SeedUsers(f)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  %v\n", e)
	}
	fmt.Printf("Usuarios creados: %d (errores: %d)\n", created, len(errs))
	if len(errs) > 0 {
		os.Exit(1)
	}
}
