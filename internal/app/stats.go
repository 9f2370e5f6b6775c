package app

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"image-blur-pipeline/internal/domain"
)

// RunSummary собирает итоги одного прогона конвейера.
type RunSummary struct {
	Workers    int
	KernelSize int
	Processed  int
	Failed     int
	WallTime   time.Duration

	seconds []float64
}

func NewRunSummary(workers, kernelSize int) *RunSummary {
	return &RunSummary{Workers: workers, KernelSize: kernelSize}
}

func (s *RunSummary) Record(result domain.ProcessResult) {
	if result.Err != nil {
		s.Failed++
		return
	}
	s.Processed++
	s.seconds = append(s.seconds, result.Elapsed.Seconds())
}

func (s *RunSummary) Finish(wall time.Duration) {
	s.WallTime = wall
}

// MeanSeconds среднее время обработки одного изображения.
func (s *RunSummary) MeanSeconds() float64 {
	if len(s.seconds) == 0 {
		return 0
	}
	return stat.Mean(s.seconds, nil)
}

// StdDevSeconds разброс времени обработки по изображениям.
func (s *RunSummary) StdDevSeconds() float64 {
	if len(s.seconds) < 2 {
		return 0
	}
	return stat.StdDev(s.seconds, nil)
}

func (s *RunSummary) MinSeconds() float64 {
	if len(s.seconds) == 0 {
		return 0
	}
	return floats.Min(s.seconds)
}

func (s *RunSummary) MaxSeconds() float64 {
	if len(s.seconds) == 0 {
		return 0
	}
	return floats.Max(s.seconds)
}
