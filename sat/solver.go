package sat

import (
	"fmt"
	"time"
)

// Solver is the top-level Search Driver: it owns a Formula and alternates
// decision, propagation and chronological backtracking until it produces a
// Verdict or the deadline passes.
type Solver struct {
	formula *Formula

	// Search statistics, reported periodically and at the end of Solve.
	TotalDecisions     int64
	TotalPropagations  int64
	TotalConflicts     int64
	TotalBacktracks    int64
	decisionRate       EMA
	lastStatsAt        time.Time
	lastStatsDecisions int64

	startTime time.Time
	deadline  time.Time
	verdict   Verdict

	// Verbose is a caller-side flag: Solve never reads it and prints
	// nothing itself; the solver only exposes the counters, printing is the
	// caller's responsibility.
	Verbose bool
}

// NewSolver returns a Solver operating on the given Formula.
func NewSolver(f *Formula) *Solver {
	return &Solver{
		formula:      f,
		decisionRate: NewEMA(0.7),
	}
}

// Formula returns the Solver's underlying Formula.
func (s *Solver) Formula() *Formula {
	return s.formula
}

// Solve runs the Search Driver to completion or until timeout elapses. A
// non-positive timeout means no deadline.
func (s *Solver) Solve(timeout time.Duration) Verdict {
	s.startTime = time.Now()
	s.lastStatsAt = s.startTime
	if timeout > 0 {
		s.deadline = s.startTime.Add(timeout)
	}

	// Init: digest syntactic units and any pure literals discovered while
	// the formula was built.
	if s.formula.Propagate() == Conflict {
		s.verdict = Unsat
		return s.verdict
	}

	for {
		if s.hasDeadline() && time.Now().After(s.deadline) {
			s.verdict = Timeout
			return s.verdict
		}

		v, value, ok := s.formula.Select()
		if !ok {
			s.verdict = Sat
			return s.verdict
		}

		s.TotalDecisions++
		outcome := s.formula.Assign(v, value, false)
		if outcome == OK {
			outcome = s.formula.Propagate()
		}
		s.TotalPropagations++

		if outcome == Conflict {
			s.TotalConflicts++
			if !s.backtrack() {
				s.verdict = Unsat
				return s.verdict
			}
		}
	}
}

// Verdict returns the outcome of the most recent Solve call.
func (s *Solver) Verdict() Verdict {
	return s.verdict
}

func (s *Solver) hasDeadline() bool {
	return !s.deadline.IsZero()
}

// backtrack pops assigned variables until it finds a free decision it can
// flip, applies the flip, and re-propagates. It returns false if the stack
// empties without a flip succeeding, meaning the formula is unsatisfiable.
func (s *Solver) backtrack() bool {
	for s.formula.StackLen() > 0 {
		v := s.formula.PopStack()
		forced := s.formula.IsForced(v)
		wasTrue := s.formula.VarValue(v) == True
		s.formula.Unassign(v)

		if forced {
			continue
		}

		s.TotalBacktracks++
		s.formula.ClearForceQueue()

		flipped := !wasTrue
		if s.formula.Assign(v, flipped, true) == Conflict {
			continue
		}
		if s.formula.Propagate() == Conflict {
			continue
		}
		return true
	}
	return false
}

// Stats returns a human-readable one-line summary of the search counters,
// in the style of the teacher's own periodic progress line.
func (s *Solver) Stats() string {
	elapsed := time.Since(s.startTime).Seconds()
	return fmt.Sprintf(
		"c %10.3fs decisions=%d propagations=%d conflicts=%d backtracks=%d",
		elapsed, s.TotalDecisions, s.TotalPropagations, s.TotalConflicts, s.TotalBacktracks,
	)
}

// ShouldReport returns true once at least interval of wall-clock time has
// passed since its previous true result (or since Solve started), updating
// the smoothed decision rate as a side effect. Solve does not call it, and
// the core never prints anything itself.
func (s *Solver) ShouldReport(interval time.Duration) bool {
	now := time.Now()
	if now.Sub(s.lastStatsAt) < interval {
		return false
	}
	dt := now.Sub(s.lastStatsAt).Seconds()
	dDecisions := float64(s.TotalDecisions - s.lastStatsDecisions)
	if dt > 0 {
		s.decisionRate.Add(dDecisions / dt)
	}
	s.lastStatsAt = now
	s.lastStatsDecisions = s.TotalDecisions
	return true
}

// DecisionRate returns the smoothed decisions-per-second rate computed by
// ShouldReport.
func (s *Solver) DecisionRate() float64 {
	return s.decisionRate.Val()
}
