package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hmf-lang/hmfc/internal/examples"
	"github.com/hmf-lang/hmfc/internal/infer"
)

var runAll bool

var runCmd = &cobra.Command{
	Use:   "run [example...]",
	Short: "Type-check one or more named examples from the built-in battery",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every example in the battery")
}

// result is one example's outcome, filled in concurrently and printed
// in the caller's original order.
type result struct {
	Name     string
	Term     string
	Type     string
	Err      error
	Duration time.Duration
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	names := args
	switch {
	case runAll:
		names = names[:0]
		for _, p := range examples.All {
			names = append(names, p.Name)
		}
	case len(names) == 0:
		names = cfg.Examples
	}
	if len(names) == 0 {
		return fmt.Errorf("no examples named: pass names, --all, or set `examples:` in %s", cfgPath)
	}

	results := make([]result, len(names))
	g, _ := errgroup.WithContext(context.Background())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = typeCheckOne(name)
			return nil
		})
	}
	_ = g.Wait()

	failures := 0
	for _, r := range results {
		elapsed := humanize.SIWithDigits(r.Duration.Seconds(), 2, "s")
		if r.Err != nil {
			failures++
			logger.Error("type check failed", "example", r.Name, "error", r.Err, "elapsed", elapsed)
			fmt.Printf("%-20s %s  %v\n", r.Name, colorize("31", "FAIL"), r.Err)
			continue
		}
		logger.Info("type checked", "example", r.Name, "type", r.Type, "elapsed", elapsed)
		fmt.Printf("%-20s %s    %s :: %s\n", r.Name, colorize("32", "OK"), r.Term, r.Type)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d example(s) failed to type check", failures, len(names))
	}
	return nil
}

func typeCheckOne(name string) result {
	start := time.Now()
	prog, ok := examples.ByName(name)
	if !ok {
		return result{Name: name, Err: fmt.Errorf("no such example %q", name), Duration: time.Since(start)}
	}
	term, ty, err := infer.TypeCheck(prog.Term)
	if err != nil {
		return result{Name: name, Err: err, Duration: time.Since(start)}
	}
	return result{Name: name, Term: term.String(), Type: ty.String(), Duration: time.Since(start)}
}
