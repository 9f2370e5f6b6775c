package infrastructure

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"image-blur-pipeline/internal/domain"
)

// ImageCodec читает и пишет изображения в чередующемся RGB-виде.
// Декодер принимает PNG и JPEG; любой вход приводится к трём каналам,
// альфа отбрасывается.
type ImageCodec struct {
	logger *zap.Logger
}

func NewImageCodec(logger *zap.Logger) *ImageCodec {
	return &ImageCodec{logger: logger}
}

func (c *ImageCodec) Decode(path string) (int, int, int, []uint8, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	samples := make([]uint8, width*height*domain.NumChannels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			base := (y*width + x) * domain.NumChannels
			samples[base] = uint8(r >> 8)
			samples[base+1] = uint8(g >> 8)
			samples[base+2] = uint8(b >> 8)
		}
	}

	c.logger.Debug("Decoded image",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", width),
		zap.Int("height", height))

	return width, height, domain.NumChannels, samples, nil
}

func (c *ImageCodec) Encode(path string, width, height, channels int, samples []uint8) error {
	if channels != domain.NumChannels {
		return domain.ErrInvalidChannelCount
	}
	if len(samples) != width*height*channels {
		return domain.ErrInvalidSampleLayout
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := (y*width + x) * channels
			img.SetNRGBA(x, y, color.NRGBA{
				R: samples[base],
				G: samples[base+1],
				B: samples[base+2],
				A: 0xff,
			})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
