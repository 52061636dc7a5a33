package sat

// Outcome is the local result of an Assignment Engine or Propagation Engine
// operation. It never escapes the Search Driver: a Conflict is always either
// recovered by backtracking or promoted to the UNSAT Verdict.
type Outcome int

const (
	OK Outcome = iota
	Conflict
)

// Assign binds variable v to value (True or False) and updates every clause
// and variable counter that depends on it: clauses falsified by the new
// assignment have their activeCount decremented (discovering new unit
// clauses along the way), and clauses satisfied by it have their satisfier
// recorded and the opposing variables' active-occurrence counters
// decremented (discovering newly-pure variables along the way). isForced
// records whether v was assigned by propagation/backtrack-flip (true) or by
// a free decision (false).
//
// All updates implied by the assignment are applied even after a conflict is
// observed, so that a later call to Unassign(v) inverts exactly what this
// call did.
func (f *Formula) Assign(v int, value bool, isForced bool) Outcome {
	vr := &f.variables[v]
	vr.isForced = isForced
	if value {
		vr.value = True
	} else {
		vr.value = False
	}
	f.assignStack = append(f.assignStack, v)

	falsifying, satisfying := vr.negOcc, vr.posOcc
	if !value {
		falsifying, satisfying = vr.posOcc, vr.negOcc
	}

	outcome := OK

	for _, ci := range falsifying {
		c := f.clauses[ci]
		if c.isSatisfied() {
			continue
		}
		c.activeCount--
		switch {
		case c.activeCount == 0:
			outcome = Conflict
		case c.activeCount == 1:
			f.enqueueRemainingLiteral(c)
		}
	}

	for _, ci := range satisfying {
		c := f.clauses[ci]
		if c.isSatisfied() {
			continue
		}
		c.satisfiedBy = v
		for _, l := range c.literals {
			lv := &f.variables[l.VarID()]
			if lv.value != Free {
				continue
			}
			if l.IsPositive() {
				lv.actPos--
				if lv.actPos == 0 && lv.actNeg > 0 {
					f.forceQueue.Push(NegativeLiteral(l.VarID()))
				}
			} else {
				lv.actNeg--
				if lv.actNeg == 0 && lv.actPos > 0 {
					f.forceQueue.Push(PositiveLiteral(l.VarID()))
				}
			}
		}
	}

	return outcome
}

// enqueueRemainingLiteral scans c for its one remaining literal whose
// variable is still Free and pushes it onto the Force Queue. c must have
// exactly one such literal (activeCount == 1) when this is called.
func (f *Formula) enqueueRemainingLiteral(c *Clause) {
	for _, l := range c.literals {
		if f.variables[l.VarID()].value == Free {
			f.forceQueue.Push(l)
			return
		}
	}
}

// Unassign is the exact inverse of Assign(v, ..., ...), keyed off v's current
// value. Calling Unassign(v) right after Assign(v, x, _), with no other
// assignment in between, restores every clause's activeCount and satisfier
// and every variable's actPos/actNeg to their values before the Assign call.
func (f *Formula) Unassign(v int) {
	vr := &f.variables[v]
	value := vr.value

	falsifying, satisfying := vr.negOcc, vr.posOcc
	if value == False {
		falsifying, satisfying = vr.posOcc, vr.negOcc
	}

	for _, ci := range satisfying {
		c := f.clauses[ci]
		if c.satisfiedBy != v {
			continue
		}
		c.satisfiedBy = noSatisfier
		for _, l := range c.literals {
			lv := &f.variables[l.VarID()]
			if lv.value != Free {
				continue
			}
			if l.IsPositive() {
				lv.actPos++
			} else {
				lv.actNeg++
			}
		}
	}

	for _, ci := range falsifying {
		c := f.clauses[ci]
		if c.isSatisfied() {
			continue
		}
		c.activeCount++
	}

	vr.value = Free
}
