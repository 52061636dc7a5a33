// Package dimacs implements the DIMACS CNF reader and result writer that sit
// outside the solver core: thin I/O that turns instance files into a
// *sat.Formula and turns a solved Formula back into the DIMACS result
// format. Parsing is delegated to the external, incremental
// github.com/rhartert/dimacs reader so that Formula construction happens in
// the same streaming pass as parsing, with no intermediate slice of raw
// clauses.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	rdimacs "github.com/rhartert/dimacs"

	"github.com/mbarrington/dplysat/sat"
)

func reader(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	var rc io.ReadCloser = file
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("dimacs: %q is not a valid gzip file: %w", filename, err)
		}
		rc = gz
	}
	return rc, nil
}

// Load parses the DIMACS CNF instance at filename and returns the Formula it
// describes. Gzip-compressed instances are detected by the ".gz" suffix and
// transparently decompressed.
func Load(filename string) (*sat.Formula, error) {
	rc, err := reader(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacs: could not open %q: %w", filename, err)
	}
	defer rc.Close()

	b := &builder{}
	if err := rdimacs.ReadBuilder(rc, b); err != nil {
		return nil, fmt.Errorf("dimacs: could not parse %q: %w", filename, err)
	}
	if b.formula == nil {
		return nil, fmt.Errorf("dimacs: %q has no problem line", filename)
	}
	return b.formula, nil
}

// builder adapts the incremental github.com/rhartert/dimacs.Builder
// interface to construct a *sat.Formula directly as the file is parsed.
type builder struct {
	formula *sat.Formula
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instances of type %q are not supported", problem)
	}
	b.formula = sat.NewFormula(nVars)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if b.formula == nil {
		return fmt.Errorf("clause line found before problem line")
	}
	literals := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		literals[i] = sat.FromDIMACS(l)
	}
	return b.formula.AddClause(literals)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
