// Command dplysat is the CLI front-end for the DPLL solver core: it parses
// a DIMACS CNF instance (or walks a directory of them), solves it, and
// writes the DIMACS result format to stdout or the requested output file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/mbarrington/dplysat/dimacs"
	"github.com/mbarrington/dplysat/driver"
	"github.com/mbarrington/dplysat/sat"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagTimeout    = flag.Duration("timeout", 0, "wall-clock deadline for the solve (0 = no deadline)")
	flagOut        = flag.String("out", "", "write the DIMACS result to this file instead of stdout")
	flagDir        = flag.Bool("dir", false, "treat the argument as a directory and batch-solve every instance under it")
	flagHot        = flag.Int("hot", 0, "print the N hottest variables (by DLIS score) after solving")
)

type config struct {
	instancePath string
	memProfile   bool
	cpuProfile   bool
	timeout      time.Duration
	outPath      string
	dir          bool
	hot          int
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file or directory")
	}
	return &config{
		instancePath: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		timeout:      *flagTimeout,
		outPath:      *flagOut,
		dir:          *flagDir,
		hot:          *flagHot,
	}, nil
}

func runBatch(cfg *config) error {
	results, err := driver.Run(cfg.instancePath, cfg.timeout)
	if err != nil {
		return err
	}

	mismatches := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("c %-40s ERROR: %s\n", r.Path, r.Err)
			continue
		}
		status := ""
		if r.Mismatch {
			status = fmt.Sprintf(" (expected %s)", r.Expected)
			mismatches++
		}
		fmt.Printf("c %-40s %-8s %8.3fs%s\n", r.Path, r.Verdict, r.Elapsed.Seconds(), status)
	}

	if mismatches > 0 {
		return fmt.Errorf("%d instance(s) disagreed with their .expected oracle", mismatches)
	}
	return nil
}

func runSingle(cfg *config) error {
	formula, err := dimacs.Load(cfg.instancePath)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables:  %d\n", formula.NumVariables())
	fmt.Printf("c clauses:    %d\n", formula.NumClauses())

	s := sat.NewSolver(formula)
	t := time.Now()
	verdict := s.Solve(cfg.timeout)
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Println(s.Stats())
	fmt.Printf("c status:     %s\n", verdict)

	if cfg.hot > 0 {
		for _, hv := range formula.HotVariables(cfg.hot) {
			fmt.Printf("c hot var %d: score %d\n", hv.Var+1, hv.Score)
		}
	}

	if verdict == sat.Timeout {
		return nil // no result file on timeout, per the DIMACS result contract
	}

	out := os.Stdout
	if cfg.outPath != "" {
		f, err := os.Create(cfg.outPath)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return dimacs.WriteResult(out, verdict, formula)
}

func run(cfg *config) error {
	if cfg.dir {
		return runBatch(cfg)
	}
	return runSingle(cfg)
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
