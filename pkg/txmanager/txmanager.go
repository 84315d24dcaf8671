// Package txmanager maneja transacciones SQL transportadas por el context.
// Los repositorios obtienen su executor con Executor(ctx, db): si hay una
// transacción activa en el context la usan, si no trabajan directo sobre el pool.
package txmanager

import (
	"context"
	"database/sql"
	"fmt"
)

// DBExecutor operaciones comunes a *sql.DB y *sql.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type ctxKey struct{}

// TransactionManager abre transacciones sobre un *sql.DB y las publica en el context.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager crea un TransactionManager.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do ejecuta fn dentro de una transacción con el nivel de aislamiento por defecto.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable ejecuta fn dentro de una transacción SERIALIZABLE.
// Se usa en los flujos chequear-y-escribir (disponibilidad + insert) para
// cerrar la ventana de carrera entre la verificación y la escritura.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly ejecuta fn dentro de una transacción de solo lectura.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Transacción anidada: reusamos la existente.
	if InTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, ctxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("txmanager: rollback tras %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

// Executor devuelve la transacción activa del context, o def si no hay ninguna.
func Executor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return tx
	}
	return def
}

// InTransaction indica si el context transporta una transacción activa.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return ok
}
