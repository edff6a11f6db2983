// voxfilter reads a heightfield snapshot, refines its walkability tags and
// writes the filtered snapshot back out.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"voxwalk/filter"
	"voxwalk/heightfield"
)

type stageToggles struct {
	LowHanging *bool `yaml:"low_hanging"`
	Ledge      *bool `yaml:"ledge"`
	LowHeight  *bool `yaml:"low_height"`
}

type config struct {
	Input          string       `yaml:"input"`
	Output         string       `yaml:"output"`
	WalkableHeight int32        `yaml:"walkable_height"`
	WalkableClimb  int32        `yaml:"walkable_climb"`
	Stages         stageToggles `yaml:"stages"`
	LogFile        string       `yaml:"log_file"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Input == "" || cfg.Output == "" {
		return nil, fmt.Errorf("%s: input and output are required", path)
	}
	if cfg.WalkableHeight <= 0 {
		return nil, fmt.Errorf("%s: walkable_height must be positive", path)
	}
	if cfg.WalkableClimb < 0 {
		return nil, fmt.Errorf("%s: walkable_climb must not be negative", path)
	}
	return &cfg, nil
}

func (c *config) pipelineOptions() []filter.Option {
	var opts []filter.Option
	if c.Stages.LowHanging != nil && !*c.Stages.LowHanging {
		opts = append(opts, filter.WithoutLowHanging())
	}
	if c.Stages.Ledge != nil && !*c.Stages.Ledge {
		opts = append(opts, filter.WithoutLedge())
	}
	if c.Stages.LowHeight != nil && !*c.Stages.LowHeight {
		opts = append(opts, filter.WithoutLowHeight())
	}
	return opts
}

func newLogger(logFile string, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}
	if logFile != "" {
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    32, // MB
			MaxBackups: 3,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zapcore.DebugLevel))
	}
	return zap.New(zapcore.NewTee(cores...))
}

func run(cfg *config, log *zap.Logger) error {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	hf, err := heightfield.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.Input, err)
	}
	before := hf.WalkableSpanCount()

	ctx := filter.NewContext(filter.WithLogger(log))
	filter.NewPipeline(cfg.WalkableHeight, cfg.WalkableClimb, cfg.pipelineOptions()...).Run(ctx, hf)

	if err := os.WriteFile(cfg.Output, heightfield.Encode(hf), 0o644); err != nil {
		return err
	}
	log.Info("heightfield filtered",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Int32("grid_width", hf.Width),
		zap.Int32("grid_height", hf.Height),
		zap.Int32("spans", hf.SpanCount()),
		zap.Int32("walkable_before", before),
		zap.Int32("walkable_after", hf.WalkableSpanCount()),
		zap.Duration("low_obstacles", ctx.AccumulatedTime(filter.TimerFilterLowObstacles)),
		zap.Duration("ledge", ctx.AccumulatedTime(filter.TimerFilterLedge)),
		zap.Duration("walkable", ctx.AccumulatedTime(filter.TimerFilterWalkable)))
	return nil
}

func main() {
	configPath := flag.String("config", "voxfilter.yaml", "path to the yaml config file")
	verbose := flag.Bool("v", false, "log per-stage timing to stderr")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := newLogger(cfg.LogFile, *verbose)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("filtering failed", zap.Error(err))
		os.Exit(1)
	}
}
