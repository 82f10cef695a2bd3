// Package bankfeed parses bank statement exports into BankLines for
// reconciliation. Formats register themselves in a Registry keyed by name.
package bankfeed

import (
	"io"
	"strings"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Parser converts a bank statement file into BankLines.
type Parser interface {
	Parse(r io.Reader) ([]model.BankLine, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	var names []string
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers producing
// amounts in the given currency.
func DefaultRegistry(currency string) *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{Currency: currency})
	r.Register(&ChaseParser{Currency: currency})
	return r
}
