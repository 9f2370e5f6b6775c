package blur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-blur-pipeline/internal/domain"
)

func uniformPlane(width, height int, v uint8) *domain.Plane {
	p := domain.NewPlane(width, height)
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p
}

func TestUniformPlaneIsFixedPoint(t *testing.T) {
	// 3x3 kernel over a 5x5 plane of all 10: interior stays 10,
	// border rows/cols 0 and 4 stay 10 as well
	src := uniformPlane(5, 5, 10)
	out := Box(src, 3)

	require.Equal(t, src.Width, out.Width)
	require.Equal(t, src.Height, out.Height)
	for i, v := range out.Pix {
		assert.Equal(t, uint8(10), v, "pixel %d", i)
	}
}

func TestBorderPixelsAreCopiedUnchanged(t *testing.T) {
	src := domain.NewPlane(9, 7)
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7 % 256)
	}

	for _, k := range []int{3, 5} {
		out := Box(src, k)
		pad := k / 2

		for row := 0; row < src.Height; row++ {
			for col := 0; col < src.Width; col++ {
				inBorder := row < pad || row >= src.Height-pad ||
					col < pad || col >= src.Width-pad
				if inBorder {
					assert.Equal(t, src.At(row, col), out.At(row, col),
						"k=%d border pixel (%d,%d)", k, row, col)
				}
			}
		}
	}
}

func TestInteriorIsTruncatedMean(t *testing.T) {
	// eight 10s and one 18: mean 98/9 = 10.888..., truncates to 10
	src := uniformPlane(3, 3, 10)
	src.Set(1, 1, 18)

	out := Box(src, 3)
	assert.Equal(t, uint8(10), out.At(1, 1))
}

func TestInteriorMeanExact(t *testing.T) {
	// 3x3 neighborhood summing to 90: mean exactly 10
	src := domain.NewPlane(3, 3)
	vals := []uint8{5, 10, 15, 10, 10, 10, 15, 10, 5}
	copy(src.Pix, vals)

	out := Box(src, 3)
	assert.Equal(t, uint8(10), out.At(1, 1))
	// the eight border pixels are untouched
	for i, v := range vals {
		if i == 4 {
			continue
		}
		assert.Equal(t, v, out.Pix[i])
	}
}

func TestDegenerateSizesYieldFullCopy(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		kernel        int
	}{
		{"narrower than kernel", 2, 8, 3},
		{"shorter than kernel", 8, 2, 3},
		{"single row", 6, 1, 5},
		{"single column", 1, 6, 5},
		{"equal to pad band", 4, 4, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := domain.NewPlane(tc.width, tc.height)
			for i := range src.Pix {
				src.Pix[i] = uint8(i + 1)
			}

			out := Box(src, tc.kernel)
			assert.Equal(t, src.Pix, out.Pix)
		})
	}
}

func TestResultDoesNotAliasSource(t *testing.T) {
	src := uniformPlane(5, 5, 10)
	out := Box(src, 3)

	src.Set(2, 2, 200)
	assert.Equal(t, uint8(10), out.At(2, 2))
}

func TestLargerKernelInterior(t *testing.T) {
	// 5x5 kernel over a 7x7 plane: only the center pixel is interior
	src := uniformPlane(7, 7, 100)
	src.Set(3, 3, 125)

	out := Box(src, 5)

	// sum = 24*100 + 125 = 2525, mean = 101
	assert.Equal(t, uint8(101), out.At(3, 3))
	// everything else is border, copied as-is
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			if row == 3 && col == 3 {
				continue
			}
			assert.Equal(t, src.At(row, col), out.At(row, col))
		}
	}
}
