// Package main provides the linsgd command line tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/linsgd/internal/dataset"
	"github.com/born-ml/linsgd/internal/linreg"
	"github.com/born-ml/linsgd/internal/train"
	"gonum.org/v1/gonum/mat"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("linsgd %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatalf("train: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("linsgd - mini-batch SGD for linear regression")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Fit a linear model (see: linsgd train -h)")
}

// trainOptions are the parsed flags of the train command.
type trainOptions struct {
	dataPath  string
	header    bool
	synthetic bool
	rows      int
	noise     float64
	seed      uint64
	out       string
	every     int
	cfg       train.Config
}

func parseTrainFlags(args []string) (*trainOptions, error) {
	opts := &trainOptions{cfg: train.DefaultConfig()}

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.StringVar(&opts.dataPath, "data", "", "CSV file with predictors followed by the target column")
	fs.BoolVar(&opts.header, "header", true, "CSV file starts with a header row")
	fs.BoolVar(&opts.synthetic, "synthetic", false, "Use synthetic data y = 3 + 2x + noise")
	fs.IntVar(&opts.rows, "rows", 200, "Rows of synthetic data")
	fs.Float64Var(&opts.noise, "noise", 0.1, "Noise standard deviation of synthetic data")
	fs.Uint64Var(&opts.seed, "seed", 1, "Seed for synthetic data")
	fs.Float64Var(&opts.cfg.LR, "lr", opts.cfg.LR, "Learning rate")
	fs.IntVar(&opts.cfg.Epochs, "epochs", opts.cfg.Epochs, "Number of training epochs")
	fs.IntVar(&opts.cfg.BatchSize, "batch", opts.cfg.BatchSize, "Minibatch size")
	fs.StringVar(&opts.out, "out", "", "Write the step trajectory to this CSV file")
	fs.IntVar(&opts.every, "every", 10, "Print a summary every N epochs (0 = only the last)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.dataPath == "" && !opts.synthetic {
		return nil, fmt.Errorf("either -data or -synthetic is required")
	}
	return opts, nil
}

func loadData(opts *trainOptions) (*mat.Dense, error) {
	if opts.synthetic {
		cfg := dataset.DefaultSyntheticConfig()
		cfg.Rows = opts.rows
		cfg.Noise = opts.noise
		cfg.Seed = opts.seed
		return dataset.Synthetic(cfg)
	}
	return dataset.LoadCSVFile(opts.dataPath, opts.header)
}

func runTrain(args []string) error {
	opts, err := parseTrainFlags(args)
	if err != nil {
		return err
	}

	data, err := loadData(opts)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	rows, cols := data.Dims()
	fmt.Printf("Data: %d rows, %d predictors\n", rows, cols-1)
	fmt.Printf("Config: lr=%g epochs=%d batch=%d\n\n", opts.cfg.LR, opts.cfg.Epochs, opts.cfg.BatchSize)

	opts.cfg.OnEpoch = func(s train.EpochSummary) {
		last := s.Epoch == opts.cfg.Epochs
		if last || (opts.every > 0 && s.Epoch%opts.every == 0) {
			fmt.Printf("Epoch %4d/%d: loss=%.6f grad_norm=%.6f betas=%.4f\n",
				s.Epoch, opts.cfg.Epochs, s.Loss, s.MeanGradNorm, s.Betas)
		}
	}

	res, err := train.Run(data, make([]float64, cols), opts.cfg)
	if err != nil {
		return err
	}

	r2, err := linreg.RSquared(data, res.Betas)
	if err != nil {
		return err
	}
	fmt.Printf("\nFinal betas: %.6f\n", res.Betas)
	fmt.Printf("R^2: %.6f\n", r2)

	if opts.out != "" {
		if err := writeTrajectory(opts.out, res.Trajectory); err != nil {
			return err
		}
		fmt.Printf("Trajectory: %d steps written to %s\n", len(res.Trajectory), opts.out)
	}
	return nil
}

func writeTrajectory(path string, traj linreg.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := traj.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write trajectory: %w", err)
	}
	return f.Close()
}
