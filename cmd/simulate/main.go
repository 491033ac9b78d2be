package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/twinstick/logging"
	"github.com/milk9111/twinstick/prefabs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	dir := flag.String("dir", "cmd/simulate/scenarios", "directory of scenario yaml files, used when no files are given")
	level := flag.String("log", "info", "log level")
	parallel := flag.Int("j", 4, "scenarios to run at once")
	flag.Parse()

	logger, err := logging.New(*level, false)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	paths := flag.Args()
	if len(paths) == 0 {
		paths, err = filepath.Glob(filepath.Join(*dir, "*.yaml"))
		if err != nil {
			logger.Fatal("glob scenarios", zap.Error(err))
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "simulate: no scenarios")
		os.Exit(2)
	}

	pipeline, err := prefabs.LoadPipelineSpec()
	if err != nil {
		logger.Fatal("load pipeline", zap.Error(err))
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallel)
	for i, path := range paths {
		g.Go(func() error {
			scenario, err := prefabs.LoadScenario(path)
			if err != nil {
				return err
			}
			res, err := Run(ctx, scenario, pipeline, logger.With(zap.String("scenario", scenario.Name)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("simulate", zap.Error(err))
	}

	for _, res := range results {
		logger.Info("scenario finished",
			zap.String("scenario", res.Name),
			zap.Int("ticks", res.Ticks),
			zap.Int("impacts", res.Stats.Impacts),
			zap.Int("clashes", res.Stats.Clashes),
			zap.Int("knockbacks", res.Stats.Knockbacks),
			zap.Int("alive", res.Alive),
		)
	}
}
