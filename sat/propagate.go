package sat

// Propagate drains the Force Queue, applying each pending literal via Assign
// with isForced=true until the queue empties (OK) or an assignment conflicts
// (Conflict). On conflict the queue is left as-is: any literal still queued
// belonged to the branch that just failed and will be discarded by the
// Search Driver's Backtrack step via Formula.ClearForceQueue.
func (f *Formula) Propagate() Outcome {
	for !f.forceQueue.IsEmpty() {
		l := f.forceQueue.Pop()
		v := l.VarID()

		if f.variables[v].value != Free {
			continue // already assigned by an earlier entry
		}

		if f.Assign(v, l.IsPositive(), true) == Conflict {
			return Conflict
		}
	}
	return OK
}

// ClearForceQueue empties the Force Queue. The Search Driver calls this
// during backtracking, right before it flips a decision: any pending literal
// belonged to the branch being abandoned and must not be applied against the
// flipped state.
func (f *Formula) ClearForceQueue() {
	f.forceQueue.Clear()
}
