package domain

// ImageDecoder интерфейс для чтения изображений.
// Отсчёты возвращаются построчно с чередованием каналов:
// samples[(y*width+x)*channels + c].
type ImageDecoder interface {
	Decode(path string) (width, height, channels int, samples []uint8, err error)
}

// ImageEncoder интерфейс для записи изображений
type ImageEncoder interface {
	Encode(path string, width, height, channels int, samples []uint8) error
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
