package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt arredonda para o inteiro mais próximo (metade afastando do zero)
func RoundToInt(f float64) float64 {
	return math.Round(f)
}

// Percent calcula round(100 * parte / total); retorna 0 quando total é 0
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
