package domain

import "time"

// TaskQueue интерфейс ограниченной очереди задач между
// сканером и пулом воркеров.
type TaskQueue interface {
	Push(task Task) error
	Pop() (Task, bool)
	Close()
	Len() int
	Cap() int
}

// ProcessResult результат обработки одной задачи
type ProcessResult struct {
	Task       Task
	OutputPath string
	Elapsed    time.Duration
	Err        error
}
