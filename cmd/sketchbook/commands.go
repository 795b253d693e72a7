package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riverfr0zen/sketches-sub000/internal/app"
	"github.com/riverfr0zen/sketches-sub000/internal/config"
	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/render"
)

type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "sketchbook",
		Short:         "generative grid sketches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			core.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(),
		newDescribeCmd(opts),
		newRenderCmd(opts),
		newSweepCmd(opts),
		newRunCmd(opts),
		newConfigCmd(),
	)
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list registered sketches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				s, err := build(name, nil, 0)
				if err != nil {
					return err
				}
				size := s.Size()
				fmt.Fprintf(out, "%s %s\n", titleStyle.Render(fmt.Sprintf("%-12s", name)), dimStyle.Render(fmt.Sprintf("%dx%d", size.W, size.H)))
			}
			return nil
		},
	}
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	flags := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "describe [sketch]",
		Short: "show a sketch's parameters and first-frame draw calls",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(root, cmd, flags, args)
			if err != nil {
				return err
			}
			s, err := build(cfg.Sketch, cfg.SketchParams(), cfg.Seed)
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), s, cfg)
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}

func describe(out io.Writer, s core.Sketch, cfg *config.Config) {
	size := s.Size()
	fmt.Fprintln(out, titleStyle.Render(s.Name()))
	row := func(label, value string) {
		fmt.Fprintln(out, labelStyle.Render(label)+valueStyle.Render(value))
	}
	row("size", fmt.Sprintf("%dx%d", size.W, size.H))
	row("seed", strconv.FormatInt(cfg.Seed, 10))
	_, overlay := s.(core.GridOverlayer)
	row("grid overlay", strconv.FormatBool(overlay))

	if p, ok := s.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			header := g.Name
			if g.Summary != "" {
				header += " " + dimStyle.Render("("+g.Summary+")")
			}
			fmt.Fprintln(out, groupStyle.Render(header))
			for _, param := range g.Params {
				row(param.Key, param.Value+" "+dimStyle.Render(string(param.Type)))
			}
		}
	}

	rec := render.NewRecorder()
	s.Draw(rec)
	fmt.Fprintln(out, groupStyle.Render("Draw calls"))
	counts := rec.Counts()
	for _, kind := range []render.OpKind{
		render.OpClear, render.OpFillRect, render.OpStrokeRect, render.OpStrokeLine,
		render.OpFillCircle, render.OpStrokeCircle, render.OpStrokePolyline,
	} {
		if n := counts[kind]; n > 0 {
			row(string(kind), strconv.Itoa(n))
		}
	}
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	flags := config.DefaultConfig()
	var (
		sequence string
		every    int
		cells    string
	)
	cmd := &cobra.Command{
		Use:   "render [sketch]",
		Short: "render a sketch to PNG without a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(root, cmd, flags, args)
			if err != nil {
				return err
			}
			s, err := build(cfg.Sketch, cfg.SketchParams(), cfg.Seed)
			if err != nil {
				return err
			}
			opts := render.Options{Frames: cfg.Frames, TPS: cfg.TPS, Overlay: cfg.Overlay}
			out := cmd.OutOrStdout()

			if sequence != "" {
				paths, err := render.WriteSequence(s, sequence, every, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %d frames in %s\n", okStyle.Render("wrote"), len(paths), sequence)
				return nil
			}

			if err := render.WritePNG(s, cfg.Output, opts); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", okStyle.Render("wrote"), cfg.Output)

			if cells != "" {
				src, ok := s.(render.CellSource)
				if !ok {
					return fmt.Errorf("sketch %q has no cell grid", s.Name())
				}
				if err := writeCells(src, cells); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", okStyle.Render("wrote"), cells)
			}
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().StringVar(&sequence, "sequence", "", "write a numbered frame sequence into this directory")
	cmd.Flags().IntVar(&every, "every", 10, "with --sequence, save every N frames")
	cmd.Flags().StringVar(&cells, "cells", "", "also write the raw cell grid (one pixel per cell) to this path")
	return cmd
}

func writeCells(src render.CellSource, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteCellPNG(src, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	flags := config.DefaultConfig()
	var (
		dir     string
		count   int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sweep [sketch]",
		Short: "render consecutive seeds in parallel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(root, cmd, flags, args)
			if err != nil {
				return err
			}
			factory, err := core.Lookup(cfg.Sketch)
			if err != nil {
				return err
			}
			seeds := make([]int64, max(count, 0))
			for i := range seeds {
				seeds[i] = cfg.Seed + int64(i)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweeping %d seeds of %s (%d workers, %d frames)\n", len(seeds), cfg.Sketch, workers, cfg.Frames)

			start := time.Now()
			opts := render.Options{Frames: cfg.Frames, TPS: cfg.TPS, Overlay: cfg.Overlay}
			results, err := render.Sweep(cmd.Context(), factory, cfg.SketchParams(), seeds, dir, opts, workers)
			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(out, "%s seed %d: %v\n", errStyle.Render("fail"), res.Seed, res.Err)
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", okStyle.Render("ok  "), res.Path, dimStyle.Render(res.Elapsed.Round(time.Millisecond).String()))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "done in %s\n", time.Since(start).Round(time.Millisecond))
			if failed > 0 {
				return fmt.Errorf("%d of %d seeds failed", failed, len(seeds))
			}
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().StringVar(&dir, "dir", "sweep", "output directory")
	cmd.Flags().IntVar(&count, "count", 8, "number of seeds, starting at --seed")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

func newRunCmd(root *rootOptions) *cobra.Command {
	flags := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "run [sketch]",
		Short: "open a sketch in a window (requires -tags ebiten)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(root, cmd, flags, args)
			if err != nil {
				return err
			}
			s, err := build(cfg.Sketch, cfg.SketchParams(), cfg.Seed)
			if err != nil {
				return err
			}
			return app.Run(s, cfg)
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("wrote"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

// resolve merges defaults, the config file and flags, then applies the
// positional sketch name.
func resolve(root *rootOptions, cmd *cobra.Command, flags *config.Config, args []string) (*config.Config, error) {
	cfg, err := config.Resolve(root.configFile, cmd.Flags(), flags)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		cfg.Sketch = strings.TrimSpace(args[0])
	}
	core.Logger().Debug("config resolved", "sketch", cfg.Sketch, "seed", cfg.Seed, "file", root.configFile)
	return cfg, nil
}

func build(name string, params map[string]string, seed int64) (core.Sketch, error) {
	factory, err := core.Lookup(name)
	if err != nil {
		return nil, err
	}
	s := factory(params)
	s.Reset(seed)
	core.Logger().Debug("sketch selected", "sketch", name, "seed", seed)
	return s, nil
}
