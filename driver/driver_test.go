package driver

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mbarrington/dplysat/sat"
)

// TestRun_VisitsEveryInstanceOnce is testable property #8: every .cnf and
// .cnf.gz file under the root is solved exactly once, regardless of nesting.
func TestRun_VisitsEveryInstanceOnce(t *testing.T) {
	results, err := Run("testdata/instances", time.Second)
	if err != nil {
		t.Fatalf("Run(): %s", err)
	}

	want := map[string]bool{
		"testdata/instances/sat.cnf":           true,
		"testdata/instances/mismatch.cnf":      true,
		"testdata/instances/compressed.cnf.gz": true,
		"testdata/instances/sub/unsat.cnf":     true,
	}
	if len(results) != len(want) {
		t.Fatalf("Run(): got %d results, want %d", len(results), len(want))
	}
	seen := map[string]bool{}
	for _, r := range results {
		if !want[r.Path] {
			t.Errorf("Run(): unexpected path %q", r.Path)
		}
		if seen[r.Path] {
			t.Errorf("Run(): path %q visited more than once", r.Path)
		}
		seen[r.Path] = true
	}
}

func TestRun_VerdictsAndOracleMatching(t *testing.T) {
	results, err := Run("testdata/instances", time.Second)
	if err != nil {
		t.Fatalf("Run(): %s", err)
	}

	byPath := make(map[string]Result, len(results))
	for _, r := range results {
		byPath[r.Path] = r
	}

	sat_ := byPath["testdata/instances/sat.cnf"]
	if sat_.Err != nil {
		t.Fatalf("sat.cnf: unexpected error: %s", sat_.Err)
	}
	if sat_.Verdict != sat.Sat {
		t.Errorf("sat.cnf: verdict = %s, want SAT", sat_.Verdict)
	}
	if sat_.Expected != sat.Unsolved {
		t.Errorf("sat.cnf: expected = %s, want Unsolved (no oracle file)", sat_.Expected)
	}
	if sat_.Mismatch {
		t.Errorf("sat.cnf: want no mismatch without an oracle")
	}

	unsat := byPath["testdata/instances/sub/unsat.cnf"]
	if unsat.Verdict != sat.Unsat {
		t.Errorf("sub/unsat.cnf: verdict = %s, want UNSAT", unsat.Verdict)
	}
	if unsat.Mismatch {
		t.Errorf("sub/unsat.cnf: want no mismatch, oracle agrees")
	}

	mismatch := byPath["testdata/instances/mismatch.cnf"]
	if mismatch.Verdict != sat.Sat {
		t.Errorf("mismatch.cnf: verdict = %s, want SAT", mismatch.Verdict)
	}
	if mismatch.Expected != sat.Unsat {
		t.Errorf("mismatch.cnf: expected = %s, want UNSAT", mismatch.Expected)
	}
	if !mismatch.Mismatch {
		t.Errorf("mismatch.cnf: want Mismatch=true, oracle claims UNSAT but instance is SAT")
	}

	compressed := byPath["testdata/instances/compressed.cnf.gz"]
	if compressed.Err != nil {
		t.Fatalf("compressed.cnf.gz: unexpected error: %s", compressed.Err)
	}
	if compressed.Verdict != sat.Sat {
		t.Errorf("compressed.cnf.gz: verdict = %s, want SAT", compressed.Verdict)
	}
}

func TestRun_missingRoot(t *testing.T) {
	if _, err := Run("testdata/does-not-exist", time.Second); err == nil {
		t.Errorf("Run(): want error for a nonexistent root, got none")
	}
}

func TestInstanceFiles_ignoresUnrelatedFiles(t *testing.T) {
	files, err := instanceFiles("testdata/instances")
	if err != nil {
		t.Fatalf("instanceFiles(): %s", err)
	}
	for _, f := range files {
		if f == "testdata/instances/mismatch.cnf.expected" || f == "testdata/instances/sub/unsat.cnf.expected" {
			t.Errorf("instanceFiles(): %q should not have been collected", f)
		}
	}
}

// TestInstanceFiles_walkOrder pins the exact directory-walk order: lexical
// within each directory, descending into subdirectories in their sorted
// position, matching fs.WalkDir's documented traversal order.
func TestInstanceFiles_walkOrder(t *testing.T) {
	got, err := instanceFiles("testdata/instances")
	if err != nil {
		t.Fatalf("instanceFiles(): %s", err)
	}
	want := []string{
		"testdata/instances/compressed.cnf.gz",
		"testdata/instances/mismatch.cnf",
		"testdata/instances/sat.cnf",
		"testdata/instances/sub/unsat.cnf",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("instanceFiles(): mismatch (-want +got):\n%s", diff)
	}
}
