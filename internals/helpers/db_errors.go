// file: internals/helpers/db_errors.go
package helper

import "strings"

// IsUniqueViolation sniffs Postgres unique-constraint failures from the
// driver error text. Good enough for conflict-vs-skip decisions without
// binding to a specific driver error type.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
