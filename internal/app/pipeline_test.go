package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"image-blur-pipeline/internal/domain"
	"image-blur-pipeline/internal/infrastructure"
	"image-blur-pipeline/pkg/blur"
	"image-blur-pipeline/pkg/queue"
)

// writeTestImage кладёт детерминированное 3-канальное изображение
// width×height в указанный файл.
func writeTestImage(t *testing.T, codec *infrastructure.ImageCodec, path string, width, height int) []uint8 {
	t.Helper()

	samples := make([]uint8, width*height*domain.NumChannels)
	for i := range samples {
		samples[i] = uint8((i*17 + 3) % 256)
	}
	require.NoError(t, codec.Encode(path, width, height, domain.NumChannels, samples))
	return samples
}

func newTestPipeline(t *testing.T, config *domain.Config) (*BlurPipeline, *infrastructure.ImageCodec) {
	t.Helper()
	codec := infrastructure.NewImageCodec(zap.NewNop())
	return NewBlurPipeline(zap.NewNop(), config, codec, codec), codec
}

func TestRunEndToEnd(t *testing.T) {
	config := testConfig(t)
	require.NoError(t, os.MkdirAll(config.InputDir, 0o755))

	pipeline, codec := newTestPipeline(t, config)

	inputs := map[string][]uint8{
		"first.png":  writeTestImage(t, codec, filepath.Join(config.InputDir, "first.png"), 4, 4),
		"second.png": writeTestImage(t, codec, filepath.Join(config.InputDir, "second.png"), 8, 6),
	}

	tasks, err := queue.New[domain.Task](config.QueueCapacity)
	require.NoError(t, err)

	summary, err := pipeline.Run(tasks)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Zero(t, summary.Failed)

	for name, original := range inputs {
		outPath := filepath.Join(config.OutputDir, name)
		w, h, channels, samples, err := codec.Decode(outPath)
		require.NoError(t, err, "output for %s", name)

		srcImg, err := domain.ImageFromInterleaved(w, h, channels, original)
		require.NoError(t, err)
		require.Equal(t, domain.NumChannels, channels)

		// выход должен побитово совпадать с независимым применением
		// фильтра к каждому каналу исходника
		want := domain.NewImage(w, h)
		for c, plane := range srcImg.Planes {
			want.Planes[c] = blur.Box(plane, config.KernelSize)
		}
		assert.Equal(t, want.Interleaved(), samples, "blurred output for %s", name)
	}
}

func TestRunFailsFastOnMissingInputDir(t *testing.T) {
	config := testConfig(t)
	pipeline, _ := newTestPipeline(t, config)

	tasks, err := queue.New[domain.Task](config.QueueCapacity)
	require.NoError(t, err)

	_, err = pipeline.Run(tasks)
	assert.ErrorIs(t, err, domain.ErrInputDirMissing)

	// ни одной задачи не поставлено и очередь закрыта
	_, ok := tasks.Pop()
	assert.False(t, ok)
}

func TestRunConfinesDecodeFailureToOneWorker(t *testing.T) {
	config := testConfig(t)
	config.Workers = 2
	require.NoError(t, os.MkdirAll(config.InputDir, 0o755))

	pipeline, codec := newTestPipeline(t, config)

	writeTestImage(t, codec, filepath.Join(config.InputDir, "good1.png"), 5, 5)
	writeTestImage(t, codec, filepath.Join(config.InputDir, "good2.png"), 5, 5)
	require.NoError(t, os.WriteFile(filepath.Join(config.InputDir, "broken.png"), []byte("not an image"), 0o644))

	tasks, err := queue.New[domain.Task](config.QueueCapacity)
	require.NoError(t, err)

	summary, err := pipeline.Run(tasks)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)

	for _, name := range []string{"good1.png", "good2.png"} {
		_, statErr := os.Stat(filepath.Join(config.OutputDir, name))
		assert.NoError(t, statErr, "output %s missing", name)
	}
	_, statErr := os.Stat(filepath.Join(config.OutputDir, "broken.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestOutputPathMirrorsInputName(t *testing.T) {
	config := testConfig(t)
	pipeline, _ := newTestPipeline(t, config)

	out, err := pipeline.outputPath(filepath.Join(config.InputDir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(config.OutputDir, "photo.png"), out)
}
