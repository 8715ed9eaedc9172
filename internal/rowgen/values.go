package rowgen

import (
	"strconv"

	"github.com/mmrzaf/dsdgen/internal/decimal"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
)

// valueBuilder accumulates a row's columns in output order, blanking the
// ones whose bit is set in the null bitmap. Keys of -1 are unresolved joins
// and render as null regardless of the bitmap.
type valueBuilder struct {
	nullBitMap int64
	nullString string
	values     []string
}

func newValueBuilder(nullBitMap int64, nullString string, columnCount int) *valueBuilder {
	return &valueBuilder{
		nullBitMap: nullBitMap,
		nullString: nullString,
		values:     make([]string, 0, columnCount),
	}
}

func (b *valueBuilder) isNull() bool {
	position := len(b.values)
	return b.nullBitMap&(1<<position) != 0
}

func (b *valueBuilder) addString(v string) {
	if b.isNull() {
		v = b.nullString
	}
	b.values = append(b.values, v)
}

func (b *valueBuilder) addInt(v int32) {
	b.addString(strconv.FormatInt(int64(v), 10))
}

// addKey writes a surrogate key, treating -1 as null.
func (b *valueBuilder) addKey(v int64) {
	if v == -1 {
		b.values = append(b.values, b.nullString)
		return
	}
	b.addString(strconv.FormatInt(v, 10))
}

func (b *valueBuilder) addDecimal(v decimal.Decimal) {
	b.addString(v.String())
}

func (b *valueBuilder) addBool(v bool) {
	if v {
		b.addString("Y")
	} else {
		b.addString("N")
	}
}

// addJulianDate writes a Julian day as YYYY-MM-DD, treating -1 as null.
func (b *valueBuilder) addJulianDate(v int64) {
	if v == -1 {
		b.values = append(b.values, b.nullString)
		return
	}
	b.addString(dsdate.JulianToString(v))
}

func (b *valueBuilder) build() []string {
	return b.values
}
