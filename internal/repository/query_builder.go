package repository

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates WHERE conditions and their positional args.
// Each supplied search parameter narrows the base set; groups are joined
// with AND.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registers a positional argument and returns its placeholder ($n).
func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) add(cond string) {
	b.conds = append(b.conds, cond)
}

// addContains adds a case-insensitive substring match OR-joined across the
// given columns, all bound to a single argument.
func (b *whereBuilder) addContains(value string, columns ...string) {
	p := b.arg("%" + value + "%")
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE "+p)
	}
	if len(parts) == 1 {
		b.add(parts[0])
		return
	}
	b.add("(" + strings.Join(parts, " OR ") + ")")
}

func (b *whereBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
