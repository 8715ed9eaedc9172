package random

import (
	"strings"

	"github.com/mmrzaf/dsdgen/internal/decimal"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
)

// Character sets used by the string primitives. AlphaNumeric omits 'w' and
// 'W', matching the reference generator's table.
const (
	AlphaNumeric = "abcdefghijklmnopqrstuvxyzABCDEFGHIJKLMNOPQRSTUVXYZ0123456789"
	Digits       = "0123456789"
)

// UniformInt draws an integer in [min, max]. The intermediate truncation to
// 32 bits copies the reference behavior.
func UniformInt(min, max int32, s *Stream) int32 {
	result := int32(s.Next())
	result %= max - min + 1
	result += min
	return result
}

// UniformKey draws a key in [min, max]. The arithmetic runs in 32 bits even
// though the result is returned as int64.
func UniformKey(min, max int64, s *Stream) int64 {
	result := int32(s.Next())
	result %= int32(max - min + 1)
	result += int32(min)
	return int64(result)
}

// UniformDecimal draws a decimal in [min, max]; the result carries the
// smaller of the two operand precisions.
func UniformDecimal(min, max decimal.Decimal, s *Stream) decimal.Decimal {
	precision := min.Precision()
	if max.Precision() < precision {
		precision = max.Precision()
	}

	number := s.Next()
	number %= max.Number() - min.Number() + 1
	number += min.Number()

	return decimal.MustNew(number, precision)
}

// UniformDate draws a date in [min, max] by Julian day.
func UniformDate(min, max dsdate.Date, s *Stream) dsdate.Date {
	dayRange := max.ToJulianDays() - min.ToJulianDays()
	julianDays := min.ToJulianDays() + UniformInt(0, dayRange, s)
	return dsdate.FromJulianDays(julianDays)
}

// RandomString draws length characters from characterSet.
func RandomString(length int, characterSet string, s *Stream) string {
	chars := []rune(characterSet)
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		index := UniformInt(0, int32(len(chars))-1, s)
		b.WriteRune(chars[index])
	}
	return b.String()
}

// RandomCharset draws a string whose length is uniform in [min, max]. It
// always performs max character draws so the stream's seed consumption does
// not depend on the drawn length.
func RandomCharset(characterSet string, min, max int32, s *Stream) string {
	length := UniformInt(min, max, s)
	chars := []rune(characterSet)
	var b strings.Builder
	b.Grow(int(length))
	for i := int32(0); i < max; i++ {
		index := UniformInt(0, int32(len(chars))-1, s)
		if i < length {
			b.WriteRune(chars[index])
		}
	}
	return b.String()
}

// RandomBoolean is true with the given probability.
func RandomBoolean(probability float64, s *Stream) bool {
	return s.NextDouble() < probability
}

// WeightedIndex picks an index from raw (non-cumulative) weights.
func WeightedIndex(weights []int32, s *Stream) int {
	var totalWeight int32
	for _, w := range weights {
		totalWeight += w
	}
	randomValue := UniformInt(1, totalWeight, s)

	var cumulativeWeight int32
	for index, w := range weights {
		cumulativeWeight += w
		if randomValue <= cumulativeWeight {
			return index
		}
	}
	return len(weights) - 1
}
