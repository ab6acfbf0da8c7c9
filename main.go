package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kherven/satyr/solver"
)

var (
	verbose      bool
	seed         int64
	heuristic    string
	maxConflicts int
)

func main() {
	cmd := &cobra.Command{
		Use:          "satyr [flags] file.cnf",
		Short:        "satyr is a CDCL SAT solver for DIMACS CNF files",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search progress and statistics")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random heuristic; 0 means time-based")
	cmd.Flags().StringVar(&heuristic, "heuristic", "activity", "branching heuristic: activity or random")
	cmd.Flags().IntVar(&maxConflicts, "max-conflicts", 0, "give up after this many conflicts; 0 means never")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.InfoLevel)
	}

	formula, err := parse(path)
	if err != nil {
		return err
	}
	opts := []solver.Option{solver.WithLogger(log)}
	switch heuristic {
	case "activity":
	case "random":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts = append(opts, solver.WithBrancher(solver.NewRandomBrancher(seed)))
	default:
		return errors.Errorf("unknown heuristic %q", heuristic)
	}
	if maxConflicts > 0 {
		opts = append(opts, solver.WithMaxConflicts(maxConflicts))
	}

	s := solver.New(formula, opts...)
	log.WithFields(logrus.Fields{
		"path":      path,
		"variables": formula.NumVariables(),
		"clauses":   formula.NumClauses(),
	}).Info("solving")
	start := time.Now()
	status := s.Solve()
	log.WithFields(logrus.Fields{
		"status":       status,
		"elapsed":      time.Since(start),
		"decisions":    s.Stats.Decisions,
		"conflicts":    s.Stats.Conflicts,
		"propagations": s.Stats.Propagations,
		"learned":      s.Stats.Learned,
		"unit-learned": s.Stats.UnitsLearned,
	}).Info("done")

	switch status {
	case solver.Sat:
		if !s.Verify() {
			return errors.New("internal error: model does not satisfy the formula")
		}
		fmt.Println("s SATISFIABLE")
		outputModel(s.Model())
	case solver.Unsat:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}
	return nil
}

func parse(path string) (*solver.Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	formula, err := solver.ParseCNF(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse DIMACS file %q", path)
	}
	return formula, nil
}

// outputModel prints the model as a DIMACS "v" line, variables in increasing
// order, negated when bound to false.
func outputModel(model map[int]bool) {
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	fmt.Print("v")
	for _, v := range vars {
		if model[v] {
			fmt.Printf(" %d", v)
		} else {
			fmt.Printf(" %d", -v)
		}
	}
	fmt.Println(" 0")
}
