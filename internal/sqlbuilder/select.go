// Package sqlbuilder assembles parameterized SELECT statements from an
// ordered list of predicates.
//
// Predicates are written with '?' placeholders and carry their own
// arguments. Build joins WHERE predicates with AND under a single WHERE
// keyword (omitted when there are none), does the same for HAVING, and
// rebinds the placeholders to PostgreSQL's $1..$n in argument order.
package sqlbuilder

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type predicate struct {
	clause string
	args   []any
}

func newPredicate(clause string, args []any) predicate {
	if n := strings.Count(clause, "?"); n != len(args) {
		panic(fmt.Sprintf("sqlbuilder: clause %q has %d placeholders, got %d args", clause, n, len(args)))
	}
	return predicate{clause: clause, args: args}
}

// Select is a SELECT statement under construction.
type Select struct {
	base    string
	where   []predicate
	groupBy []string
	having  []predicate
	orderBy []string
	limit   *int
}

// NewSelect starts a statement from its SELECT ... FROM ... JOIN part.
func NewSelect(base string) *Select {
	return &Select{base: strings.TrimSpace(base)}
}

// Where appends a predicate to the WHERE clause.
func (s *Select) Where(clause string, args ...any) *Select {
	s.where = append(s.where, newPredicate(clause, args))
	return s
}

// GroupBy sets the GROUP BY columns.
func (s *Select) GroupBy(columns ...string) *Select {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

// Having appends a predicate on aggregated values.
func (s *Select) Having(clause string, args ...any) *Select {
	s.having = append(s.having, newPredicate(clause, args))
	return s
}

// OrderBy sets the ORDER BY expressions.
func (s *Select) OrderBy(columns ...string) *Select {
	s.orderBy = append(s.orderBy, columns...)
	return s
}

// Limit bounds the number of rows. The limit is bound as the last parameter.
func (s *Select) Limit(n int) *Select {
	s.limit = &n
	return s
}

// Build renders the statement with $n placeholders and returns it together
// with its arguments in placeholder order.
func (s *Select) Build() (string, []any) {
	parts := []string{s.base}
	var args []any

	if clause, a := join(s.where); clause != "" {
		parts = append(parts, "WHERE "+clause)
		args = append(args, a...)
	}
	if len(s.groupBy) > 0 {
		parts = append(parts, "GROUP BY "+strings.Join(s.groupBy, ", "))
	}
	if clause, a := join(s.having); clause != "" {
		parts = append(parts, "HAVING "+clause)
		args = append(args, a...)
	}
	if len(s.orderBy) > 0 {
		parts = append(parts, "ORDER BY "+strings.Join(s.orderBy, ", "))
	}
	if s.limit != nil {
		parts = append(parts, "LIMIT ?")
		args = append(args, *s.limit)
	}

	return sqlx.Rebind(sqlx.DOLLAR, strings.Join(parts, " ")), args
}

func join(preds []predicate) (string, []any) {
	if len(preds) == 0 {
		return "", nil
	}
	clauses := make([]string, len(preds))
	var args []any
	for i, p := range preds {
		clauses[i] = p.clause
		args = append(args, p.args...)
	}
	return strings.Join(clauses, " AND "), args
}
