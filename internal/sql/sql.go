// Package sql embeds the Postgres schema.
package sql

import _ "embed"

//go:embed schema.sql
var schema string

// Schema returns the DDL that creates every table used by the application.
func Schema() string {
	return schema
}
