package lifecycle

import "fmt"

// Transition declares a single legal state change.
type Transition[S comparable] struct {
	From S
	To   S
}

// T is a shorthand constructor for a Transition.
func T[S comparable](from, to S) Transition[S] {
	return Transition[S]{From: from, To: to}
}

// Table is an immutable set of legal transitions shared by any number
// of entities. It is safe for concurrent use without locking because
// it is never mutated after construction.
type Table[S comparable] struct {
	next map[S]map[S]struct{}
}

// NewTable builds a transition table from the declared transitions.
func NewTable[S comparable](transitions ...Transition[S]) (*Table[S], error) {
	if len(transitions) == 0 {
		return nil, ErrEmptyTable
	}

	next := make(map[S]map[S]struct{}, len(transitions))
	for _, t := range transitions {
		if _, ok := next[t.From]; !ok {
			next[t.From] = make(map[S]struct{})
		}
		next[t.From][t.To] = struct{}{}
	}

	return &Table[S]{next: next}, nil
}

// MustTable works like NewTable but panics on error. Intended for
// package-level table variables where a bad table is a programming
// error caught at startup.
func MustTable[S comparable](transitions ...Transition[S]) *Table[S] {
	table, err := NewTable(transitions...)
	if err != nil {
		panic(err)
	}
	return table
}

// Can reports whether the transition from -> to is declared.
func (t *Table[S]) Can(from, to S) bool {
	targets, ok := t.next[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// Step validates the transition from -> to and returns the new state.
// The returned error wraps ErrInvalidTransition with both states for
// diagnostics.
func (t *Table[S]) Step(from, to S) (S, error) {
	if !t.Can(from, to) {
		var zero S
		return zero, fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, from, to)
	}
	return to, nil
}

// Terminal reports whether the state has no outgoing transitions.
func (t *Table[S]) Terminal(s S) bool {
	return len(t.next[s]) == 0
}
