// Package psqlbuilder expone squirrel preconfigurado con placeholders $N
// para PostgreSQL, así los repositorios no repiten el PlaceholderFormat.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select arma un SELECT con placeholders de PostgreSQL.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert arma un INSERT con placeholders de PostgreSQL.
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update arma un UPDATE con placeholders de PostgreSQL.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete arma un DELETE con placeholders de PostgreSQL.
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
