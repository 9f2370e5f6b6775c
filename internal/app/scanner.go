package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"image-blur-pipeline/internal/domain"
)

// Scanner производитель задач: перечисляет входной каталог и кладёт
// путь каждого файла в очередь.
type Scanner struct {
	logger *zap.Logger
	config *domain.Config
}

func NewScanner(logger *zap.Logger, config *domain.Config) *Scanner {
	return &Scanner{logger: logger, config: config}
}

// Prepare проверяет каталоги до постановки каких-либо задач.
// Ошибки здесь фатальны для всего конвейера: обработка не начинается.
func (s *Scanner) Prepare() error {
	info, err := os.Stat(s.config.InputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrInputDirMissing, s.config.InputDir)
	}

	outInfo, err := os.Stat(s.config.OutputDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrOutputDirCreate, s.config.OutputDir, err)
		}
	case err != nil:
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputDirCreate, s.config.OutputDir, err)
	case !outInfo.IsDir():
		return fmt.Errorf("%w: %s", domain.ErrOutputNotADirectory, s.config.OutputDir)
	}

	return nil
}

// Scan перечисляет входной каталог и ставит задачу на каждый файл.
// Порядок обхода — как отдаёт файловая система, он не сортирован и
// не стабилен. Подкаталоги пропускаются. После последнего файла
// очередь закрывается: задач больше не будет.
func (s *Scanner) Scan(tasks domain.TaskQueue) (int, error) {
	defer tasks.Close()

	entries, err := os.ReadDir(s.config.InputDir)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrInputDirMissing, s.config.InputDir, err)
	}

	queued := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		task := domain.NewTask(filepath.Join(s.config.InputDir, entry.Name()))
		if err := tasks.Push(task); err != nil {
			return queued, err
		}
		queued++

		s.logger.Debug("Queued task",
			zap.String("id", task.ID.String()),
			zap.String("path", task.Path),
			zap.Int("queue_len", tasks.Len()))
	}

	s.logger.Info("Input directory scanned",
		zap.String("dir", s.config.InputDir),
		zap.Int("queued", queued))
	return queued, nil
}
