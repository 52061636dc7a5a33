package dimacs

import (
	"fmt"
	"os"
	"strings"

	"github.com/mbarrington/dplysat/sat"
)

// ReadExpectedVerdict reads a sibling ".expected" oracle file for a batch
// instance (§4.7) and returns the verdict it names ("SAT" or "UNSAT",
// case-insensitively, surrounding whitespace ignored).
func ReadExpectedVerdict(filename string) (sat.Verdict, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return sat.Unsolved, err
	}
	switch strings.ToUpper(strings.TrimSpace(string(data))) {
	case "SAT":
		return sat.Sat, nil
	case "UNSAT":
		return sat.Unsat, nil
	default:
		return sat.Unsolved, fmt.Errorf("dimacs: %q does not contain SAT or UNSAT", filename)
	}
}
