package keys

import (
	"math"

	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// CreateNullBitMap draws a per-row null mask. A basis-point threshold roll
// decides whether the row gets any nulls at all; when it does, the mask is
// stripped of every bit the table declares not-null. The stream is drawn
// from exactly twice either way.
func CreateNullBitMap(t table.Table, s *random.Stream) int64 {
	threshold := random.UniformInt(0, 9999, s)
	mask := random.UniformKey(1, math.MaxInt32, s)

	if threshold < t.NullBasisPoints() {
		return mask &^ t.NotNullBitMap()
	}
	return 0
}
