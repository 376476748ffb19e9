package dbx

import "github.com/jmoiron/sqlx"

// Rebind rewrites the '?' placeholders of query into the bind style of the
// named database/sql driver, e.g. $1, $2 for "pgx". Drivers that use '?'
// (or that sqlx does not know, such as modernc "sqlite") get query unchanged.
func Rebind(driverName, query string) string {
	return sqlx.Rebind(sqlx.BindType(driverName), query)
}
