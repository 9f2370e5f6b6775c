package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Config представляет конфигурацию приложения
type Config struct {
	InputDir      string `yaml:"input_dir"`
	OutputDir     string `yaml:"output_dir"`
	Workers       int    `yaml:"workers"`
	KernelSize    int    `yaml:"kernel_size"`
	QueueCapacity int    `yaml:"queue_capacity"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
}

// Validate проверяет конфигурацию перед запуском конвейера.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return ErrInputDirMissing
	}
	if c.OutputDir == "" {
		return ErrOutputDirEmpty
	}
	if c.KernelSize <= 0 || c.KernelSize%2 == 0 {
		return ErrInvalidKernelSize
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkerCount
	}
	if c.QueueCapacity <= 0 {
		return ErrInvalidQueueCapacity
	}
	return nil
}

// Task именует один входной файл, ожидающий обработки.
// Неизменяемая после создания; потребляется ровно одним воркером.
type Task struct {
	ID   uuid.UUID
	Path string
}

func NewTask(path string) Task {
	return Task{ID: uuid.New(), Path: path}
}

var (
	ErrInputDirMissing      = errors.New("input directory does not exist")
	ErrOutputDirEmpty       = errors.New("output directory is not set")
	ErrOutputDirCreate      = errors.New("cannot create output directory")
	ErrOutputNotADirectory  = errors.New("output path exists but is not a directory")
	ErrInvalidKernelSize    = errors.New("kernel size must be a positive odd integer")
	ErrInvalidWorkerCount   = errors.New("worker count must be positive")
	ErrInvalidQueueCapacity = errors.New("queue capacity must be positive")
	ErrInvalidSampleLayout  = errors.New("sample buffer does not match dimensions")
	ErrInvalidChannelCount  = errors.New("unsupported channel count")
)
