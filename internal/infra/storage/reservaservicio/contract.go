package reservaservicio

import (
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

// DBExecutor abstrae *sql.DB y *sql.Tx para operar dentro o fuera
// de una transacción.
type DBExecutor = txmanager.DBExecutor
