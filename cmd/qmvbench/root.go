package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/qmatvec/hwy/contrib/qmatvec"
	"github.com/ajroetker/qmatvec/internal/bench"
)

// errMismatch is returned after the report is printed when kernels disagree.
var errMismatch = errors.New("kernels produced different outputs")

// roundingValue adapts qmatvec.Rounding to a pflag.Value.
type roundingValue struct {
	r *qmatvec.Rounding
}

var _ pflag.Value = roundingValue{}

func (v roundingValue) String() string {
	if v.r == nil {
		return qmatvec.RoundPerRow.String()
	}
	return v.r.String()
}

func (v roundingValue) Set(s string) error {
	r, err := qmatvec.ParseRounding(s)
	if err != nil {
		return err
	}
	*v.r = r
	return nil
}

func (roundingValue) Type() string { return "rounding" }

func newRootCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var asJSON bool

	cmd := &cobra.Command{
		Use:           "qmvbench",
		Short:         "Time the scalar and accelerated int8 x int16 matrix-vector kernels",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := bench.New(bench.SystemClock{}).Run(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				err = report.WriteJSON(out)
			} else {
				err = report.WriteText(out)
			}
			if err != nil {
				return err
			}
			if !report.Match {
				return errMismatch
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "matrix rows (multiple of 4)")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "matrix columns")
	flags.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "kernel calls per timing")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random matrix and input seed; 0 uses the all-ones demo data")
	flags.Var(roundingValue{&cfg.Rounding}, "rounding", "rounding discipline: per-row or per-term")
	flags.BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}
