package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crimson-sun/lattice/internal/config"
	"github.com/crimson-sun/lattice/internal/dataset"
	"github.com/crimson-sun/lattice/internal/encoding"
	"github.com/crimson-sun/lattice/internal/engine"
	"github.com/crimson-sun/lattice/internal/extent"
	"github.com/crimson-sun/lattice/internal/intersect"
	"github.com/crimson-sun/lattice/internal/logging"
	"github.com/crimson-sun/lattice/internal/metrics"
	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/output"
	"github.com/crimson-sun/lattice/internal/output/file"
	"github.com/crimson-sun/lattice/internal/output/stdout"
	"github.com/crimson-sun/lattice/internal/pipeline"
	"github.com/crimson-sun/lattice/internal/progress"
	"github.com/crimson-sun/lattice/internal/schema"
)

var (
	cfgPath   string
	verbose   bool
	outPath   string
	trainPath string
	queryPath string
	labelCol  string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lazy pattern-based binary classifier",
	Long: `lattice classifies query rows by generalizing them against every
training row at prediction time. No model is trained; a query commits to a
class only when enough pure pattern extents corroborate it, otherwise the
outcome is undecided.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		var err error
		logger, err = logging.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Classify query rows against a training CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Data.TrainPath == "" || cfg.Data.QueryPath == "" {
			return errors.New("predict: train and query paths are required (flags, config file, or env)")
		}
		return runPredict(cmd.Context(), cfg)
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Evaluate on a train/test split of a labeled CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Data.TrainPath == "" {
			return errors.New("score: a labeled data path is required (flags, config file, or env)")
		}
		return runScore(cmd.Context(), cfg)
	},
}

// loadConfig resolves the run configuration: file and env first, then
// explicit flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if trainPath != "" {
		cfg.Data.TrainPath = trainPath
	}
	if queryPath != "" {
		cfg.Data.QueryPath = queryPath
	}
	if labelCol != "" {
		cfg.Data.LabelColumn = labelCol
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable progress logging")
	rootCmd.PersistentFlags().StringVar(&trainPath, "train", "", "labeled training CSV path")
	rootCmd.PersistentFlags().StringVar(&labelCol, "label", "", "class label column name")

	predictCmd.Flags().StringVar(&queryPath, "query", "", "query CSV path")
	predictCmd.Flags().StringVar(&outPath, "out", "", "write NDJSON records to this file instead of stdout")

	rootCmd.AddCommand(predictCmd, scoreCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// buildEngine wires the intersector, evaluator, and prediction loop for
// one training snapshot.
func buildEngine(cfg config.ClassifierConfig, sch schema.Schema, trainX []model.Instance, trainY []int) *engine.Engine {
	it := intersect.New(sch, intervalFunc(cfg.IntervalPolicy))
	ev := extent.New(sch, cfg.MinExtentSize, cfg.ConsistencyThreshold)
	return engine.New(it, ev, trainX, trainY, cfg.CheckNumber)
}

func intervalFunc(policy string) intersect.IntervalFunc {
	switch policy {
	case "lower-bounded":
		return intersect.LowerBounded
	case "upper-anchored":
		return intersect.UpperAnchored
	default:
		return intersect.Basic
	}
}

func runPredict(ctx context.Context, cfg config.Config) error {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	train, err := dataset.LoadCSV(cfg.Data.TrainPath, dataset.LoadOptions{
		LabelColumn: cfg.Data.LabelColumn,
	})
	if err != nil {
		return err
	}
	queries, err := dataset.LoadCSV(cfg.Data.QueryPath, dataset.LoadOptions{
		LabelColumn:   cfg.Data.LabelColumn,
		LabelOptional: true,
		Schema:        train.Schema,
	})
	if err != nil {
		return err
	}

	bin, err := encoding.NewBinarizer(train.Y)
	if err != nil {
		return err
	}
	trainY, err := bin.Transform(train.Y)
	if err != nil {
		return err
	}

	log.Info("loaded data",
		zap.Int("train_rows", len(train.X)),
		zap.Int("query_rows", len(queries.X)),
		zap.Int("features", len(train.Schema)),
		zap.Int("numeric_features", train.Schema.NumericColumns()),
		zap.Strings("classes", []string{bin.Class(0), bin.Class(1)}),
	)

	eng := buildEngine(cfg.Classifier, train.Schema, train.X, trainY)

	var rep progress.Reporter
	if verbose {
		rep = progress.NewLog(log, 100)
	}
	stream := eng.Predict(queries.X, true, rep)

	var out output.Output
	if outPath != "" {
		out, err = file.New(outPath)
		if err != nil {
			return err
		}
	} else {
		out = stdout.New(cfg.Output.Pretty)
	}
	defer out.Close()

	if err := pipeline.Run(ctx, stream, bin, out); err != nil {
		return err
	}
	log.Info("prediction complete", zap.Int("queries", stream.Len()))
	return nil
}

func runScore(ctx context.Context, cfg config.Config) error {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	table, err := dataset.LoadCSV(cfg.Data.TrainPath, dataset.LoadOptions{
		LabelColumn: cfg.Data.LabelColumn,
	})
	if err != nil {
		return err
	}
	train, test := table.Split(cfg.Data.TestRatio, cfg.Data.Seed)
	if len(train.X) == 0 || len(test.X) == 0 {
		return fmt.Errorf("score: split produced %d train and %d test rows", len(train.X), len(test.X))
	}

	bin, err := encoding.NewBinarizer(train.Y)
	if err != nil {
		return err
	}
	trainY, err := bin.Transform(train.Y)
	if err != nil {
		return err
	}

	log.Info("evaluating split",
		zap.Int("train_rows", len(train.X)),
		zap.Int("test_rows", len(test.X)),
		zap.Float64("test_ratio", cfg.Data.TestRatio),
		zap.Int64("seed", cfg.Data.Seed),
	)

	eng := buildEngine(cfg.Classifier, table.Schema, train.X, trainY)

	var rep progress.Reporter
	if verbose {
		rep = progress.NewLog(log, 100)
	}
	stream := eng.Predict(test.X, true, rep)

	outcomes := make([]model.Outcome, 0, stream.Len())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		o, ok := stream.Next()
		if !ok {
			break
		}
		if o.Decided {
			o.Class = bin.Class(o.Label)
		}
		outcomes = append(outcomes, o)
	}

	summary := metrics.Evaluate(test.Y, outcomes, bin.Class(1))
	log.Info("scored",
		zap.Float64("accuracy", summary.Accuracy),
		zap.Float64("coverage", summary.Coverage),
		zap.Float64("decided_accuracy", summary.DecidedAccuracy),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
