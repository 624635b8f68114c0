package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// runInTx inicia una transacción sobre la conexión del request, ejecuta fn y hace Commit.
// Cualquier error de fn o del Commit deja la transacción en Rollback.
func runInTx(ctx context.Context, conn *sqlx.Conn, fn func(tx *sqlx.Tx) error) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
