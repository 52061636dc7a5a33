package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mbarrington/dplysat/sat"
)

// WriteResult writes the DIMACS result format (§6) for the given verdict and
// formula: "SAT\n" followed by a line of signed variable indices terminated
// by " 0\n", or a bare "UNSAT\n". WriteResult must not be called with
// sat.Timeout; callers should detect that verdict and skip writing entirely,
// matching the interface contract that no result file is produced on
// timeout.
func WriteResult(w io.Writer, verdict sat.Verdict, f *sat.Formula) error {
	bw := bufio.NewWriter(w)

	switch verdict {
	case sat.Unsat:
		if _, err := bw.WriteString("UNSAT\n"); err != nil {
			return err
		}
	case sat.Sat:
		if _, err := bw.WriteString("SAT\n"); err != nil {
			return err
		}
		first := true
		for i := 0; i < f.NumVariables(); i++ {
			val := f.VarValue(i)
			if val == sat.Free {
				continue // can only happen for variables absent from all clauses
			}
			if !first {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			first = false
			n := i + 1
			if val == sat.False {
				n = -n
			}
			if _, err := fmt.Fprintf(bw, "%d", n); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(" 0\n"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("dimacs: cannot write result for verdict %s", verdict)
	}

	return bw.Flush()
}
