package number

import (
	"math"
	"strconv"
)

var epsilon = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func Clamp(val float64, min float64, max float64) float64 {
	if val < min {
		return min
	}

	if val > max {
		return max
	}

	return val
}

// MinAbs limits val to the given magnitude, preserving its sign.
func MinAbs(val float64, magnitude float64) float64 {
	if val > magnitude {
		return magnitude
	}

	if val < -magnitude {
		return -magnitude
	}

	return val
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

func ToFixed(val float64, places int) (newVal float64) {
	roundOn := 0.5
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func DegreeToRadian(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadianToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
