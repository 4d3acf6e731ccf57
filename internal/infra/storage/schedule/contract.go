package schedule

import (
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
