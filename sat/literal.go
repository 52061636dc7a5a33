package sat

import "fmt"

// Literal is a boolean variable or its negation, packed two-per-variable
// (v<<1 for the positive literal, v<<1|1 for its negation) so that VarID and
// Opposite reduce to a shift and an xor instead of a branch.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v << 1)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v<<1 | 1)
}

// FromDIMACS returns the Literal a signed DIMACS token denotes: n > 0 is the
// positive literal of variable n-1, n < 0 is the negative literal of
// variable -n-1. n must not be 0.
func FromDIMACS(n int) Literal {
	if n < 0 {
		return NegativeLiteral(-n - 1)
	}
	return PositiveLiteral(n - 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) >> 1
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// String renders the literal the way the DIMACS result format does: the
// 1-based variable index, negated for a negative literal.
func (l Literal) String() string {
	n := l.VarID() + 1
	if !l.IsPositive() {
		n = -n
	}
	return fmt.Sprintf("%d", n)
}
