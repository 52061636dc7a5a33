package sat

// Select implements the Dynamic Largest Individual Sum branching heuristic:
// it scans every Free variable that occurs in at least one clause and
// returns the one maximizing max(actPos, actNeg), breaking ties by the
// first-encountered index. The returned bool is the polarity to assign
// first: True when actPos >= actNeg, False otherwise. ok is false when no
// such variable remains, signalling that the Search Driver has found a
// complete model. A variable absent from every clause is never selected and
// so stays Free for the lifetime of the Formula — it has no bearing on
// satisfiability and the DIMACS result writer (§6) omits it accordingly.
//
// This is a plain linear scan over the variable arena, not a priority-queue
// lookup: nearly every variable's actPos/actNeg can move on a single
// assignment (any clause it occurs in may flip satisfied/unsatisfied), so
// unlike VSIDS-style activity — which only a handful of variables touch per
// conflict — a heap's amortized advantage over rescanning does not apply.
func (f *Formula) Select() (v int, value bool, ok bool) {
	bestScore := -1
	bestVar := -1
	bestValue := true

	for i := range f.variables {
		vr := &f.variables[i]
		if vr.value != Free {
			continue
		}
		if len(vr.posOcc) == 0 && len(vr.negOcc) == 0 {
			continue // never appears in any clause, leave it Free forever
		}
		score := vr.actPos
		if vr.actNeg > score {
			score = vr.actNeg
		}
		if score > bestScore {
			bestScore = score
			bestVar = i
			bestValue = vr.actPos >= vr.actNeg
		}
	}

	if bestVar == -1 {
		return 0, true, false
	}
	return bestVar, bestValue, true
}
