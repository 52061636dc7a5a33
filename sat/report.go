package sat

import "github.com/rhartert/yagh"

// VariableScore is one entry of a HotVariables report.
type VariableScore struct {
	Var   int
	Score int
}

// HotVariables returns the top k variables ranked by max(actPos, actNeg) at
// the moment it is called. It is purely diagnostic: main.go prints it after
// a solve completes so a user can see which variables were most constrained,
// but nothing in the core ever reads it back. Select (§4.4) always makes its
// own linear scan over the live counters; this report is a one-shot
// snapshot built with a transient indexed min-heap (negating the score turns
// the heap's cheapest-first order into largest-first), which would be the
// wrong data structure for Select itself since every variable's counters can
// move on every assignment.
func (f *Formula) HotVariables(k int) []VariableScore {
	if k <= 0 || len(f.variables) == 0 {
		return nil
	}

	h := yagh.New[int](0)
	h.GrowBy(len(f.variables))
	for i := range f.variables {
		vr := &f.variables[i]
		score := vr.actPos
		if vr.actNeg > score {
			score = vr.actNeg
		}
		h.Put(i, -score)
	}

	out := make([]VariableScore, 0, k)
	for len(out) < k {
		e, ok := h.Pop()
		if !ok {
			break
		}
		vr := &f.variables[e.Elem]
		score := vr.actPos
		if vr.actNeg > score {
			score = vr.actNeg
		}
		out = append(out, VariableScore{Var: e.Elem, Score: score})
	}
	return out
}
