package infrastructure

import (
	"os"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"image-blur-pipeline/internal/domain"
)

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию
	r.setDefaults(&config)

	return &config, nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.InputDir == "" {
		config.InputDir = "input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "output"
	}
	if config.Workers == 0 {
		config.Workers = max(1, runtime.NumCPU()-1)
	}
	if config.KernelSize == 0 {
		config.KernelSize = 5
	}
	if config.QueueCapacity == 0 {
		config.QueueCapacity = 1000
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
