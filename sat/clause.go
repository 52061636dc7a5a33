package sat

import "strings"

// noSatisfier is the sentinel stored in Clause.satisfiedBy when the clause
// has not yet been satisfied by any variable.
const noSatisfier = -1

// Clause is an ordered, immutable-after-parse sequence of literals together
// with the incremental bookkeeping the Assignment Engine needs to keep
// propagation proportional to the number of clauses actually touched by an
// assignment, rather than the size of the whole formula.
type Clause struct {
	literals []Literal

	// satisfiedBy is the index of the variable currently satisfying this
	// clause, or noSatisfier if the clause is not satisfied.
	satisfiedBy int

	// activeCount is the number of literals in this clause whose variable is
	// still Free. It is only meaningful while satisfiedBy == noSatisfier.
	activeCount int
}

func newClause(literals []Literal) *Clause {
	c := &Clause{
		literals:    make([]Literal, len(literals)),
		satisfiedBy: noSatisfier,
	}
	copy(c.literals, literals)
	c.activeCount = len(c.literals)
	return c
}

// Literals returns the clause's literals in their original order. Callers
// must not mutate the returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

func (c *Clause) isSatisfied() bool {
	return c.satisfiedBy != noSatisfier
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
