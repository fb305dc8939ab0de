package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the edge store reacts to.
const (
	erDupEntry        = 1062
	erLockWaitTimeout = 1205
	erLockDeadlock    = 1213
)

func mysqlErrNumber(err error) uint16 {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// isDuplicateKey reports a unique index violation.
func isDuplicateKey(err error) bool {
	return mysqlErrNumber(err) == erDupEntry
}

// isRetryable reports errors caused by a concurrent transaction on the same
// rows. Re-running the whole transaction is safe for these.
func isRetryable(err error) bool {
	switch mysqlErrNumber(err) {
	case erDupEntry, erLockDeadlock, erLockWaitTimeout:
		return true
	}
	return false
}
