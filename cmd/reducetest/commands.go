// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-reduce/hwy"
	"github.com/ajroetker/go-reduce/hwy/contrib/reduce"
	"github.com/ajroetker/go-reduce/hwy/contrib/reduce/verify"
)

// errChecksFailed is returned when the run completed but some check failed.
var errChecksFailed = errors.New("reduction checks failed")

// planFlags are the flags that override plan fields.
type planFlags struct {
	scheduler string
	workers   int
	grain     int
	tree      bool
	seed      uint64
	types     []string
}

func (f *planFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.scheduler, "scheduler", "", "Scheduler ("+strings.Join(reduce.SchedulerNames, ", ")+")")
	fs.IntVar(&f.workers, "workers", 0, "Worker count (default: GOMAXPROCS)")
	fs.IntVar(&f.grain, "grain", 0, "Minimum elements per chunk (default: dispatch-width based)")
	fs.BoolVar(&f.tree, "tree", false, "Combine chunk partials in a pairwise tree")
	fs.Uint64Var(&f.seed, "seed", 1, "Seed for the permuted scheduler")
	fs.StringSliceVar(&f.types, "types", nil, "Element types to verify (default: all)")
}

// apply overrides plan fields whose flags were set explicitly.
func (f *planFlags) apply(fs *pflag.FlagSet, plan *verify.Plan) {
	if fs.Changed("scheduler") {
		plan.Scheduler = f.scheduler
	}
	if fs.Changed("workers") {
		plan.Workers = f.workers
	}
	if fs.Changed("grain") {
		plan.Grain = f.grain
	}
	if fs.Changed("tree") {
		plan.Tree = f.tree
	}
	if fs.Changed("seed") {
		plan.Seed = f.seed
	}
	if fs.Changed("types") {
		plan.Types = f.types
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "reducetest",
		Short:         "Verify ordered parallel reductions against a closed-form oracle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug progress")

	root.AddCommand(newRunCmd(), newIntervalsCmd(), newTypesCmd(), newInfoCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		planPath string
		flags    planFlags
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a test plan (default: the built-in matrix)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := verify.DefaultPlan()
			if planPath != "" {
				var err error
				if plan, err = verify.LoadPlan(planPath); err != nil {
					return err
				}
			}
			if err := plan.ApplyEnv(); err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &plan)
			return runPlan(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "YAML plan file")
	flags.register(cmd.Flags())
	return cmd
}

func newIntervalsCmd() *cobra.Command {
	var (
		size  int
		flags planFlags
	)
	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Run only the non-commutative interval-merge check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := verify.Plan{Intervals: []int{size}}
			if err := plan.ApplyEnv(); err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &plan)
			return runPlan(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().IntVar(&size, "size", 20000, "Input length in int32 components (even)")
	flags.register(cmd.Flags())
	return cmd
}

func runPlan(out io.Writer, plan verify.Plan) error {
	report, err := verify.Run(plan, verify.Options{Logger: slog.Default()})
	if err != nil {
		return err
	}
	fmt.Fprint(out, report.Summary())
	if !report.Passed() {
		return errChecksFailed
	}
	return nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported element types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tWIDTH\tOP")
			for _, k := range verify.Kinds() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", k.Name, k.Width, k.Op)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", verify.IntervalKind, 2, reduce.MergeIntervals().Name)
			return w.Flush()
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print dispatch level and default parallelism",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD level: %s, width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(out, "Default workers: %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(out, "Default grain: %d int32 elements\n", hwy.MaxLanes[int32]()*reduce.DefaultGrainVectors)
			return nil
		},
	}
}
