package turno

import "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"

// DBExecutor se reusa desde txmanager para aceptar *sql.DB o la transacción
// activa del context.
type DBExecutor = txmanager.DBExecutor
