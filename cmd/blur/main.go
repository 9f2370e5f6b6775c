package main

import (
	"flag"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"image-blur-pipeline/internal/app"
	"image-blur-pipeline/internal/domain"
	"image-blur-pipeline/internal/infrastructure"
	"image-blur-pipeline/pkg/queue"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	inputDir := flag.String("input", "", "Input directory (overrides config)")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	workers := flag.Int("workers", 0, "Number of workers (overrides config)")
	kernelSize := flag.Int("kernel", 0, "Box filter size, odd (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	// Инициализация логгера
	logger := initLogger("info")
	defer logger.Sync()

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger)
	config, err := configReader.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}
	applyFlags(config, *inputDir, *outputDir, *workers, *kernelSize, *logLevel)

	if err := config.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Обновляем уровень логирования
	logger = initLogger(config.LogLevel, config.LogFile)

	// Инициализация компонентов
	codec := infrastructure.NewImageCodec(logger)
	pipeline := app.NewBlurPipeline(logger, config, codec, codec)

	tasks, err := queue.New[domain.Task](config.QueueCapacity)
	if err != nil {
		logger.Fatal("Failed to create task queue", zap.Error(err))
	}

	logger.Info("Starting blur pipeline",
		zap.String("input", config.InputDir),
		zap.String("output", config.OutputDir),
		zap.Int("workers", config.Workers),
		zap.Int("kernel_size", config.KernelSize),
		zap.Int("queue_capacity", config.QueueCapacity))

	summary, err := pipeline.Run(tasks)
	if err != nil {
		logger.Fatal("Pipeline failed", zap.Error(err))
	}

	logger.Info("Blur pipeline completed",
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Duration("wall_time", summary.WallTime),
		zap.Float64("mean_s", summary.MeanSeconds()),
		zap.Float64("stddev_s", summary.StdDevSeconds()),
		zap.Float64("min_s", summary.MinSeconds()),
		zap.Float64("max_s", summary.MaxSeconds()))
}

// applyFlags накладывает непустые значения флагов поверх конфигурации.
func applyFlags(config *domain.Config, inputDir, outputDir string, workers, kernelSize int, logLevel string) {
	if inputDir != "" {
		config.InputDir = inputDir
	}
	if outputDir != "" {
		config.OutputDir = outputDir
	}
	if workers > 0 {
		config.Workers = workers
	}
	if kernelSize > 0 {
		config.KernelSize = kernelSize
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPaths := []string{"stderr"}
	for _, item := range logfileName {
		if item != "" {
			outputPaths = append(outputPaths, item)
		}
	}

	config.OutputPaths = outputPaths
	config.ErrorOutputPaths = outputPaths
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, _ := config.Build()
	return logger
}
