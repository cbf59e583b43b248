// Copyright (c) 2025, The Navis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mingminQ/navis-ros/base/errors"
	"github.com/mingminQ/navis-ros/base/logx"
	"github.com/mingminQ/navis-ros/base/randx"
	"github.com/mingminQ/navis-ros/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app holds the flag values and the resolved configuration
// shared by all commands.
type app struct {
	configFile string
	globalSeed uint64
	localSeed  uint64
	samples    int
	bins       int
	bias       float64
	vv, v, q   bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "distsplot",
		Short:         "Draw seeded random samples and plot their distribution",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "TOML or YAML config file")
	pf.Uint64Var(&a.globalSeed, "seed", 0, "global seed that local seeds are dispatched from")
	pf.Uint64Var(&a.localSeed, "local-seed", 0, "local seed of the randomizer, bypassing the dispatcher")
	pf.IntVarP(&a.samples, "samples", "n", 0, "number of samples to draw")
	pf.IntVar(&a.bins, "bins", 0, "number of histogram bins")
	pf.Float64Var(&a.bias, "bias", 0, "folded gaussian bias toward the upper bound")
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")
	errors.Log(root.MarkPersistentFlagFilename("config", "toml", "yaml", "yml"))

	root.AddCommand(
		a.seedsCmd(),
		a.uniformCmd(),
		a.intCmd(),
		a.boolCmd(),
		a.gaussianCmd(),
		a.foldedCmd(),
		a.shuffleCmd(),
		a.configCmd(),
	)
	return root
}

// configure reads the config file and environment, applies flag
// overrides, then validates and applies the resulting settings.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Read(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.GlobalSeed = a.globalSeed
	}
	if flags.Changed("samples") {
		cfg.Samples = a.samples
	}
	if flags.Changed("bins") {
		cfg.Bins = a.bins
	}
	if flags.Changed("bias") {
		cfg.Bias = a.bias
	}
	if a.vv || a.v || a.q {
		cfg.LogLevel = logx.LevelFromFlags(a.vv, a.v, a.q).String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}
	logx.SetDefaultLogger()
	slog.Debug("configured", "globalSeed", randx.GlobalSeed(), "samples", cfg.Samples, "bins", cfg.Bins, "bias", cfg.Bias)
	a.cfg = cfg
	return nil
}

func (a *app) hasLocalSeed(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("local-seed")
}

func (a *app) uniform(cmd *cobra.Command) *randx.Uniform {
	if a.hasLocalSeed(cmd) {
		return randx.NewUniformSeed(a.localSeed)
	}
	return randx.NewUniform()
}

func (a *app) gaussian(cmd *cobra.Command) *randx.Gaussian {
	if a.hasLocalSeed(cmd) {
		return randx.NewGaussianSeed(a.localSeed)
	}
	return randx.NewGaussian()
}

// plot runs gen for the configured number of samples and reports the
// result, along with the local seed used.
func (a *app) plot(cmd *cobra.Command, r randx.Randomizer, gen func() float64) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "global seed %d, local seed %d\n", randx.GlobalSeed(), r.LocalSeed())
	ss := &Sim{NSamp: a.cfg.Samples, NBins: a.cfg.Bins}
	ss.Run(gen)
	ss.Report(w, termenv.NewOutput(w))
}

func (a *app) seedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seeds [n]",
		Short: "Print the first n seeds dispatched from the global seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 10
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil || n < 0 {
					return fmt.Errorf("invalid seed count %q", args[0])
				}
			}
			var seeds randx.Seeds
			seeds.Dispatch(nil, n)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "global seed %d\n", randx.GlobalSeed())
			for i, s := range seeds {
				fmt.Fprintf(w, "%d\t%d\n", i, s)
			}
			return nil
		},
	}
}

func (a *app) uniformCmd() *cobra.Command {
	var lower, upper float64
	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Uniform reals in [lower, upper)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// bad flags are reported as errors rather than panics
			if err := randx.CheckBounds(lower, upper); err != nil {
				return err
			}
			u := a.uniform(cmd)
			a.plot(cmd, u, func() float64 { return u.Double(lower, upper) })
			return nil
		},
	}
	cmd.Flags().Float64Var(&lower, "lower", 0, "lower bound")
	cmd.Flags().Float64Var(&upper, "upper", 1, "upper bound")
	return cmd
}

func (a *app) intCmd() *cobra.Command {
	var lower, upper int
	cmd := &cobra.Command{
		Use:   "int",
		Short: "Uniform integers in [lower, upper]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := randx.CheckBounds(float64(lower), float64(upper)); err != nil {
				return err
			}
			u := a.uniform(cmd)
			a.plot(cmd, u, func() float64 { return float64(u.Int(lower, upper)) })
			return nil
		},
	}
	cmd.Flags().IntVar(&lower, "lower", 1, "lower bound")
	cmd.Flags().IntVar(&upper, "upper", 6, "upper bound, inclusive")
	return cmd
}

func (a *app) boolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bool",
		Short: "Fair coin flips, as 0 and 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.uniform(cmd)
			a.plot(cmd, u, func() float64 {
				if u.Bool() {
					return 1
				}
				return 0
			})
			return nil
		},
	}
}

func (a *app) gaussianCmd() *cobra.Command {
	var mean, stdDev float64
	cmd := &cobra.Command{
		Use:   "gaussian",
		Short: "Normal reals with the given mean and standard deviation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.gaussian(cmd)
			a.plot(cmd, g, func() float64 { return g.Double(mean, stdDev) })
			return nil
		},
	}
	cmd.Flags().Float64Var(&mean, "mean", 0, "mean")
	cmd.Flags().Float64Var(&stdDev, "stddev", 1, "standard deviation")
	return cmd
}

func (a *app) foldedCmd() *cobra.Command {
	var lower, upper float64
	var asInt bool
	cmd := &cobra.Command{
		Use:   "folded",
		Short: "Folded gaussian values in [lower, upper], concentrated near upper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := randx.CheckBounds(lower, upper); err != nil {
				return err
			}
			g := a.gaussian(cmd)
			bias := a.cfg.Bias
			if asInt {
				lo, hi := int(lower), int(upper)
				if err := randx.CheckBounds(float64(lo), float64(hi)); err != nil {
					return err
				}
				a.plot(cmd, g, func() float64 { return float64(g.FoldedInt(lo, hi, bias)) })
				return nil
			}
			a.plot(cmd, g, func() float64 { return g.FoldedDouble(lower, upper, bias) })
			return nil
		},
	}
	cmd.Flags().Float64Var(&lower, "lower", 0, "lower bound")
	cmd.Flags().Float64Var(&upper, "upper", 1, "upper bound")
	cmd.Flags().BoolVar(&asInt, "int", false, "draw integers, with upper inclusive")
	return cmd
}

func (a *app) shuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle items...",
		Short: "Print the given items in shuffled order",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.uniform(cmd)
			randx.ShuffleSlice(u, args)
			w := cmd.OutOrStdout()
			for _, s := range args {
				fmt.Fprintln(w, s)
			}
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config [file]",
		Short: "Print the resolved configuration, or save it to a TOML or YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return config.Save(&a.cfg, args[0])
			}
			return config.Write(&a.cfg, cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format when printing: toml or yaml")
	return cmd
}
