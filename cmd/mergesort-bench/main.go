package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/jfhansen/algorithms/bench"
	"github.com/jfhansen/algorithms/dataset"
	"github.com/jfhansen/algorithms/store"
)

var (
	minExp     int
	maxExp     int
	iterations int
	seed       int64
	low        float64
	high       float64
	input      string
	dump       string
)

func init() {
	def := bench.DefaultConfig()
	flag.IntVar(&minExp, "min-exp", def.MinExp, "smallest sequence size as a power of 2")
	flag.IntVar(&maxExp, "max-exp", def.MaxExp, "largest sequence size as a power of 2")
	flag.IntVar(&iterations, "iterations", def.Iterations, "number of timed sorts per sequence")
	flag.Int64Var(&seed, "seed", def.Seed, "random generator seed")
	flag.Float64Var(&low, "low", def.Low, "lower bound of generated values")
	flag.Float64Var(&high, "high", def.High, "upper bound (exclusive) of generated values")
	flag.StringVar(&input, "input", "", "dataset file to time instead of generated sequences")
	flag.StringVar(&dump, "dump", "", "file to write generated sequences to")
}

func main() {
	flag.Parse()
	_ = flag.Set("logtostderr", "true")
	defer glog.Flush()

	if err := run(); err != nil {
		glog.Errorf("%+v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	s := store.NewStore()
	defer s.Stop()

	var err error
	if input != "" {
		var f dataset.Feeder
		if f, err = dataset.NewFeeder(input); err != nil {
			return err
		}
		_, err = bench.RunDataset(ctx, f, iterations, s)
	} else {
		cfg := bench.Config{
			MinExp:     minExp,
			MaxExp:     maxExp,
			Iterations: iterations,
			Seed:       seed,
			Low:        low,
			High:       high,
		}
		var w *dataset.Writer
		if dump != "" {
			f, err := os.Create(dump)
			if err != nil {
				return fmt.Errorf("failed to create dump file %s with error: %w", dump, err)
			}
			defer f.Close()
			w = dataset.NewWriter(f)
		}
		_, err = bench.Run(ctx, cfg, s, w)
	}
	if err != nil {
		return err
	}
	for _, r := range s.List() {
		fmt.Println(r)
	}

	return nil
}
