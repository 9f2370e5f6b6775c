package app

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"image-blur-pipeline/internal/domain"
	"image-blur-pipeline/pkg/blur"
)

// BlurPipeline связывает сканер, очередь и пул воркеров.
type BlurPipeline struct {
	logger  *zap.Logger
	config  *domain.Config
	decoder domain.ImageDecoder
	encoder domain.ImageEncoder
}

func NewBlurPipeline(logger *zap.Logger, config *domain.Config, decoder domain.ImageDecoder, encoder domain.ImageEncoder) *BlurPipeline {
	return &BlurPipeline{
		logger:  logger,
		config:  config,
		decoder: decoder,
		encoder: encoder,
	}
}

// Run запускает производителя и воркеров, дожидается всех и собирает
// итоги. Очередь создаётся до старта потоков и после Run ни одна
// горутина конвейера не продолжает работать.
func (p *BlurPipeline) Run(tasks domain.TaskQueue) (*RunSummary, error) {
	start := time.Now()

	// Ошибки конфигурации каталогов фатальны до любой обработки:
	// ни один воркер не стартует и ни одна задача не ставится
	scanner := NewScanner(p.logger, p.config)
	if err := scanner.Prepare(); err != nil {
		tasks.Close()
		return nil, err
	}

	var wg sync.WaitGroup
	resultChan := make(chan domain.ProcessResult, p.config.QueueCapacity)

	// Запускаем воркеры
	for i := 0; i < p.config.Workers; i++ {
		wg.Add(1)
		p.logger.Info("Starting worker", zap.Int("id", i))
		go p.worker(i, tasks, resultChan, &wg)
	}

	// Производитель: Scan закрывает очередь после последнего файла
	scanErr := make(chan error, 1)
	go func() {
		_, err := scanner.Scan(tasks)
		scanErr <- err
	}()

	// Собираем результаты
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	summary := NewRunSummary(p.config.Workers, p.config.KernelSize)
	for result := range resultChan {
		summary.Record(result)
	}
	summary.Finish(time.Since(start))

	if err := <-scanErr; err != nil {
		return summary, err
	}
	return summary, nil
}

// worker крутится, пока очередь не сообщит, что задач больше нет.
// Ошибка декодирования или записи фатальна для этого воркера: цикл
// завершается, остальные воркеры и очередь не затрагиваются.
func (p *BlurPipeline) worker(id int, tasks domain.TaskQueue, results chan<- domain.ProcessResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		task, ok := tasks.Pop()
		if !ok {
			p.logger.Debug("Queue drained, worker exiting", zap.Int("worker", id))
			return
		}

		p.logger.Debug("Processing task",
			zap.Int("worker", id),
			zap.String("id", task.ID.String()),
			zap.String("path", task.Path))

		taskStart := time.Now()
		outPath, err := p.processTask(task)
		results <- domain.ProcessResult{
			Task:       task,
			OutputPath: outPath,
			Elapsed:    time.Since(taskStart),
			Err:        err,
		}

		if err != nil {
			p.logger.Error("Worker terminating after task failure",
				zap.Int("worker", id),
				zap.String("path", task.Path),
				zap.Error(err))
			return
		}
	}
}

// processTask декодирует файл задачи, размывает каждый канал
// независимо и записывает результат по зеркальному пути.
func (p *BlurPipeline) processTask(task domain.Task) (string, error) {
	width, height, channels, samples, err := p.decoder.Decode(task.Path)
	if err != nil {
		return "", err
	}

	img, err := domain.ImageFromInterleaved(width, height, channels, samples)
	if err != nil {
		return "", fmt.Errorf("image %s: %w", task.Path, err)
	}

	blurred := domain.NewImage(width, height)
	for c, plane := range img.Planes {
		blurred.Planes[c] = blur.Box(plane, p.config.KernelSize)
	}

	outPath, err := p.outputPath(task.Path)
	if err != nil {
		return "", err
	}

	if err := p.encoder.Encode(outPath, width, height, channels, blurred.Interleaved()); err != nil {
		return outPath, err
	}
	return outPath, nil
}

// outputPath переносит путь задачи из входного каталога в выходной,
// сохраняя относительное имя файла.
func (p *BlurPipeline) outputPath(inputPath string) (string, error) {
	rel, err := filepath.Rel(p.config.InputDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("task path %s outside input dir: %w", inputPath, err)
	}
	return filepath.Join(p.config.OutputDir, rel), nil
}
