package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	inputsDir string
	example   bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aoc",
		Short:        "Numbered puzzle solvers",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "Config file")

	solve := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve the given days, or every registered day",
		RunE:  runSolve,
	}
	solve.Flags().StringVar(&inputsDir, "inputs", "", "Read inputs from this directory")
	solve.Flags().BoolVar(&example, "example", false, "Use the example inputs")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	root.AddCommand(solve, serve)
	return root
}

// setup loads the config and builds the logger. A nil config means a new
// config file was just written and the command should stop.
func setup(cmd *cobra.Command, development bool) (*Config, *zap.Logger, error) {
	config, created, err := loadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if created {
		fmt.Fprintln(cmd.OutOrStdout(), "Config file created!")
		return nil, nil, nil
	}

	logger, err := newLogger(config.LogLevel, development)
	if err != nil {
		return nil, nil, err
	}
	return config, logger, nil
}

func newLogger(level string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}
	return cfg.Build()
}

func openSource(ctx context.Context, config *Config) (InputSource, error) {
	switch {
	case example:
		return DirSource("examples"), nil
	case inputsDir != "":
		return DirSource(inputsDir), nil
	case config.COS.Enabled():
		return config.COS.NewMinIO(ctx)
	default:
		return DirSource(config.Inputs), nil
	}
}

func openStorage(config *Config) (*Storage, error) {
	if config.Postgres == "" {
		return nil, nil
	}
	return New(config.Postgres)
}

func runSolve(cmd *cobra.Command, args []string) error {
	config, logger, err := setup(cmd, true)
	if err != nil || config == nil {
		return err
	}
	defer logger.Sync()

	want := days()
	if len(args) > 0 {
		want = nil
		for _, arg := range args {
			day, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid day: %s", arg)
			}
			want = append(want, day)
		}
	}

	ctx := cmd.Context()
	source, err := openSource(ctx, config)
	if err != nil {
		return err
	}
	storage, err := openStorage(config)
	if err != nil {
		return err
	}
	if storage != nil {
		defer storage.Close()
	}

	runner := NewRunner(logger)
	run := uuid.New()
	out := cmd.OutOrStdout()
	for _, day := range want {
		input, err := source.Load(ctx, day)
		if err != nil {
			return err
		}
		res, err := runner.Run(ctx, day, string(input))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Day %02d\n", day)
		fmt.Fprintf(out, "  part one: %s (%s)\n", res.PartOne.Answer, res.PartOne.Elapsed)
		fmt.Fprintf(out, "  part two: %s (%s)\n", res.PartTwo.Answer, res.PartTwo.Elapsed)

		if storage != nil {
			if err := storage.InsertResult(ctx, run, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, logger, err := setup(cmd, false)
	if err != nil || config == nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	source, err := openSource(ctx, config)
	if err != nil {
		return err
	}
	storage, err := openStorage(config)
	if err != nil {
		return err
	}
	if storage != nil {
		defer storage.Close()
	}

	return NewServer(config, NewRunner(logger), source, storage, logger).Listen(ctx)
}
