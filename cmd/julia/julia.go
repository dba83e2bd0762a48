package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/willbeason/quantum-fractal/pkg/escape"
	"github.com/willbeason/quantum-fractal/pkg/transforms"
)

const (
	Width  = 800
	Height = 600

	MaxIterations = 1000
)

type flags struct {
	req escape.Request

	phase   float64
	strict  bool
	workers int
	verbose bool
	dump    bool
}

func addViewportFlags(fs *pflag.FlagSet, req *escape.Request) {
	fs.IntVar(&req.Width, "width", Width, "grid width in pixels")
	fs.IntVar(&req.Height, "height", Height, "grid height in pixels")
	fs.Float64Var(&req.XMin, "x-min", -2.0, "real axis lower bound")
	fs.Float64Var(&req.XMax, "x-max", 2.0, "real axis upper bound")
	fs.Float64Var(&req.YMin, "y-min", -1.5, "imaginary axis lower bound")
	fs.Float64Var(&req.YMax, "y-max", 1.5, "imaginary axis upper bound")
}

func addFractalFlags(fs *pflag.FlagSet, f *flags) {
	fs.Float64Var(&f.req.CReal, "c-real", -0.8, "real part of c")
	fs.Float64Var(&f.req.CImag, "c-imag", 1.5, "imaginary part of c")
	fs.IntVar(&f.req.MaxIter, "max-iter", MaxIterations, "iteration cap per pixel")
	fs.Float64Var(&f.req.HBar, "hbar", 1.0, "scale factor used by superposition")
	fs.StringVar(&f.req.Effect, "effect", "",
		"one of "+strings.Join(transforms.Names(), ", ")+"; anything else selects the quadratic map")
	fs.Float64Var(&f.phase, "phase", 0.0, "phase for phase_shift")
}

func mainCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Compute an escape-time grid for a quantum-inspired Julia set",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, f)
		},
	}

	addViewportFlags(cmd.Flags(), &f.req)
	addFractalFlags(cmd.Flags(), f)
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject unknown effect names")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "worker goroutines (default: number of CPUs)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug output")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "write the grid to stdout, one row per line")

	return cmd
}

func runCmd(cmd *cobra.Command, f *flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	escape.SetLogger(logger)

	// An unset --phase is absent, not zero.
	if cmd.Flags().Changed("phase") {
		f.req.Phase = &f.phase
	}

	opts := []escape.Option{
		escape.WithWorkers(f.workers),
		escape.WithProgress(func(processed, total int) error {
			logger.Info("progress",
				"processed", processed,
				"total", total,
				"percent", 100*processed/total)
			return nil
		}),
	}
	if f.strict {
		opts = append(opts, escape.WithStrictEffects())
	}

	start := time.Now()
	grid, err := escape.Compute(f.req, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	if f.dump {
		return dump(out, grid)
	}

	s := summarize(grid, f.req.MaxIter)
	fmt.Fprintf(out, "computed %dx%d grid in %s\n", f.req.Width, f.req.Height, elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "escaped: %d of %d pixels\n", s.escaped, s.pixels)
	fmt.Fprintf(out, "iterations: min %d, max %d, mean %.2f\n", s.min, s.max, s.mean)

	return nil
}

type summary struct {
	pixels, escaped int
	min, max        int
	mean            float64
}

func summarize(grid escape.Grid, maxIter int) summary {
	s := summary{min: maxIter}

	sum := 0
	for _, row := range grid {
		for _, v := range row {
			s.pixels++
			sum += v
			if v < maxIter {
				s.escaped++
			}
			s.min = min(s.min, v)
			s.max = max(s.max, v)
		}
	}

	if s.pixels > 0 {
		s.mean = float64(sum) / float64(s.pixels)
	}
	return s
}

func dump(w io.Writer, grid escape.Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for x, v := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
