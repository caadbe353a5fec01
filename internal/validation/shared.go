package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error aggregates per-field validation failures so a request can be
// rejected with every problem at once instead of one at a time.
type Error struct {
	Fields map[string]string
}

// Error renders the field problems in field-name order, so the same
// invalid request always produces the same message.
func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
