package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction.
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// whereClause is a single WHERE condition with its bound arguments.
type whereClause struct {
	expr string
	args []any
}

// QueryBuilder provides a fluent, typed API for building queries against a
// single model. Conditions accumulate and are applied to select, update and
// delete statements alike.
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	wheres    []whereClause
	orders    []string
	relations []string
	limitVal  *int
	offsetVal *int

	timeout time.Duration
}

// Query creates a new QueryBuilder instance.
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Table overrides the table name derived from the model.
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Where adds a simple WHERE condition (column = value).
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{
		expr: "? = ?",
		args: []any{bun.Ident(column), value},
	})
	return q
}

// WhereOp adds a WHERE condition with a custom operator.
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{
		expr: fmt.Sprintf("? %s ?", operator),
		args: []any{bun.Ident(column), value},
	})
	return q
}

// WhereIn adds a WHERE IN condition.
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{
		expr: "? IN (?)",
		args: []any{bun.Ident(column), bun.In(values)},
	})
	return q
}

// WhereILike adds a case-insensitive pattern match.
func (q *QueryBuilder[T]) WhereILike(column, pattern string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{
		expr: "? ILIKE ?",
		args: []any{bun.Ident(column), pattern},
	})
	return q
}

// WhereAnyILike adds a grouped OR condition matching the pattern against each
// of the given columns case-insensitively.
func (q *QueryBuilder[T]) WhereAnyILike(pattern string, columns ...string) *QueryBuilder[T] {
	if len(columns) == 0 {
		return q
	}

	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)*2)
	for _, col := range columns {
		parts = append(parts, "? ILIKE ?")
		args = append(args, bun.Ident(col), pattern)
	}

	q.wheres = append(q.wheres, whereClause{
		expr: "(" + strings.Join(parts, " OR ") + ")",
		args: args,
	})
	return q
}

// likeEscaper neutralizes the LIKE/ILIKE metacharacters. Postgres treats a
// backslash as the default escape character inside patterns.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes user input for use inside a LIKE/ILIKE pattern so it
// matches literally. Without this, % and _ act as wildcards.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// WhereRaw adds a raw WHERE condition.
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{expr: sql, args: args})
	return q
}

// OrderBy adds an ORDER BY clause.
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, fmt.Sprintf("%s %s", column, direction))
	return q
}

// Relation specifies a relation to preload.
func (q *QueryBuilder[T]) Relation(name string) *QueryBuilder[T] {
	q.relations = append(q.relations, name)
	return q
}

// Limit sets the LIMIT clause.
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause.
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Timeout sets a timeout for the query.
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// applySelect applies the accumulated clauses to a bun select query.
func (q *QueryBuilder[T]) applySelect(query *bun.SelectQuery) *bun.SelectQuery {
	if q.tableName != "" {
		query = query.ModelTableExpr("?", bun.Ident(q.tableName))
	}
	for _, where := range q.wheres {
		query = query.Where(where.expr, where.args...)
	}
	for _, rel := range q.relations {
		query = query.Relation(rel)
	}
	for _, order := range q.orders {
		query = query.Order(order)
	}
	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}
	return query
}

// applyUpdate applies the accumulated WHERE clauses to a bun update query.
func (q *QueryBuilder[T]) applyUpdate(query *bun.UpdateQuery) *bun.UpdateQuery {
	for _, where := range q.wheres {
		query = query.Where(where.expr, where.args...)
	}
	return query
}

// applyDelete applies the accumulated WHERE clauses to a bun delete query.
func (q *QueryBuilder[T]) applyDelete(query *bun.DeleteQuery) *bun.DeleteQuery {
	for _, where := range q.wheres {
		query = query.Where(where.expr, where.args...)
	}
	return query
}
