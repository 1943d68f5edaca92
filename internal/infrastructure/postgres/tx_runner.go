package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cuerpodebomberos/intranet-api/internal/application/certificate"
	"github.com/cuerpodebomberos/intranet-api/internal/application/fleet"
	"github.com/cuerpodebomberos/intranet-api/internal/application/ledger"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// Ensure TxRunner implements the application transaction ports.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ certificate.TxRunner = (*TxRunner)(nil)
var _ fleet.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la garantía de atomicidad del libro de material.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewMaterialRepository(tx),
		NewMaterialHistoryRepository(tx),
		NewAssignedMaterialRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCertificate inicia una transacción con los repos del libro más el de
// actas (cabecera + líneas + N movimientos en una sola transacción).
func (r *TxRunner) RunCertificate(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
	certRepo repository.CertificateRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewMaterialRepository(tx),
		NewMaterialHistoryRepository(tx),
		NewAssignedMaterialRepository(tx),
		NewCertificateRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMaintenance inicia una transacción con los repos del libro más los de
// orden de mantención y vehículo: cierre de orden, movimientos MAINTENANCE y
// cambio de estado del vehículo en una sola transacción.
func (r *TxRunner) RunMaintenance(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
	maintenanceRepo repository.VehicleMaintenanceRepository,
	vehicleRepo repository.VehicleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewMaterialRepository(tx),
		NewMaterialHistoryRepository(tx),
		NewAssignedMaterialRepository(tx),
		NewVehicleMaintenanceRepository(tx),
		NewVehicleRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
