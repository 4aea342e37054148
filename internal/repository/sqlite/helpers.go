package sqlite

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// schemaMissing reports whether a query failed because the relation or a
// column does not exist. SQLite has no error codes for these, only message
// text.
func schemaMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column")
}
