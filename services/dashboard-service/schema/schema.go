// Package schema holds the tables the dashboard reads. They are owned by the
// clinic application; the DDL here exists for local setup and tests.
package schema

import (
	_ "embed"
	"strings"
)

//go:embed schema.sql
var SQL string

// Statements splits SQL into individual statements.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(SQL, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}
