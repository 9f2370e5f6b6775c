package domain

// NumChannels фиксированное число цветовых каналов изображения
const NumChannels = 3

// Plane представляет один канал изображения: плоскую сетку
// 8-битных отсчётов в построчном порядке, Pix[row*Width+col].
type Plane struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewPlane(width, height int) *Plane {
	return &Plane{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

func (p *Plane) At(row, col int) uint8 {
	return p.Pix[row*p.Width+col]
}

func (p *Plane) Set(row, col int, v uint8) {
	p.Pix[row*p.Width+col] = v
}

// Clone возвращает независимую копию плоскости.
func (p *Plane) Clone() *Plane {
	out := NewPlane(p.Width, p.Height)
	copy(out.Pix, p.Pix)
	return out
}

// Image представляет изображение как набор одноканальных плоскостей.
// Инвариант: все плоскости имеют одинаковые размеры.
type Image struct {
	Width  int
	Height int
	Planes []*Plane
}

func NewImage(width, height int) *Image {
	planes := make([]*Plane, NumChannels)
	for c := range planes {
		planes[c] = NewPlane(width, height)
	}
	return &Image{Width: width, Height: height, Planes: planes}
}

// ImageFromInterleaved разбирает построчный чередующийся буфер кодека
// samples[(y*width+x)*channels + c] на отдельные плоскости каналов.
func ImageFromInterleaved(width, height, channels int, samples []uint8) (*Image, error) {
	if channels != NumChannels {
		return nil, ErrInvalidChannelCount
	}
	if len(samples) != width*height*channels {
		return nil, ErrInvalidSampleLayout
	}

	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				img.Planes[c].Pix[y*width+x] = samples[(y*width+x)*channels+c]
			}
		}
	}
	return img, nil
}

// Interleaved собирает плоскости обратно в чередующийся буфер для кодека.
func (img *Image) Interleaved() []uint8 {
	samples := make([]uint8, img.Width*img.Height*NumChannels)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			for c := 0; c < NumChannels; c++ {
				samples[(y*img.Width+x)*NumChannels+c] = img.Planes[c].Pix[y*img.Width+x]
			}
		}
	}
	return samples
}
