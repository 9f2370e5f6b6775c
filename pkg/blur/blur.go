// Package blur реализует усредняющий (box) фильтр для одной
// плоскости изображения.
package blur

import "image-blur-pipeline/internal/domain"

// Box применяет квадратный усредняющий фильтр kernelSize×kernelSize
// к плоскости. kernelSize должен быть положительным нечётным числом.
//
// Внутренние пиксели получают среднее арифметическое окрестности,
// накопленное в float64 и усечённое до uint8 (без округления).
// Пиксели ближе pad = kernelSize/2 к любому краю копируются из
// исходной плоскости без изменений. Функция не имеет разделяемого
// состояния и безопасна для параллельного вызова по каналам.
func Box(src *domain.Plane, kernelSize int) *domain.Plane {
	width := src.Width
	height := src.Height
	pad := kernelSize / 2

	// граница копируется целиком; внутренний цикл ниже перезапишет
	// только пиксели, до которых достаёт полное ядро
	result := src.Clone()

	norm := float64(kernelSize * kernelSize)
	for row := pad; row < height-pad; row++ {
		for col := pad; col < width-pad; col++ {
			var sum float64
			for kRow := -pad; kRow <= pad; kRow++ {
				for kCol := -pad; kCol <= pad; kCol++ {
					sum += float64(src.At(row+kRow, col+kCol))
				}
			}
			result.Set(row, col, uint8(sum/norm))
		}
	}

	// при height <= 2*pad или width <= 2*pad внутренний цикл не
	// выполняется ни разу и результат вырождается в полную копию
	return result
}
