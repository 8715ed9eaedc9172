package keys

import (
	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Revision window boundaries shared by every history-keeping dimension.
const (
	oneHalfDate    = dsdate.JulianDataStartDate + (dsdate.JulianDataEndDate-dsdate.JulianDataStartDate)/2
	oneThirdPeriod = (dsdate.JulianDataEndDate - dsdate.JulianDataStartDate) / 3
	oneThirdDate   = dsdate.JulianDataStartDate + oneThirdPeriod
	twoThirdsDate  = oneThirdDate + oneThirdPeriod
)

// ScdKey is the revision identity of one surrogate row in a
// slowly-changing dimension.
type ScdKey struct {
	BusinessKey string
	StartDate   int64
	EndDate     int64
	IsNewKey    bool
}

// ComputeScdKey partitions surrogate row numbers into six-row cycles: key 1
// has one revision, key 2 has two, key 3 has three. The per-table offset
// keeps different dimensions from flipping revisions on the same day.
func ComputeScdKey(t table.Table, rowNumber int64) ScdKey {
	tableOffset := int64(t) * 6

	var key ScdKey
	switch rowNumber % 6 {
	case 1:
		key = ScdKey{
			BusinessKey: MakeBusinessKey(rowNumber),
			StartDate:   dsdate.JulianDataStartDate - tableOffset,
			EndDate:     -1,
			IsNewKey:    true,
		}
	case 2:
		key = ScdKey{
			BusinessKey: MakeBusinessKey(rowNumber),
			StartDate:   dsdate.JulianDataStartDate - tableOffset,
			EndDate:     oneHalfDate - tableOffset,
			IsNewKey:    true,
		}
	case 3:
		key = ScdKey{
			BusinessKey: MakeBusinessKey(rowNumber - 1),
			StartDate:   oneHalfDate - tableOffset + 1,
			EndDate:     -1,
		}
	case 4:
		key = ScdKey{
			BusinessKey: MakeBusinessKey(rowNumber),
			StartDate:   dsdate.JulianDataStartDate - tableOffset,
			EndDate:     oneThirdDate - tableOffset,
			IsNewKey:    true,
		}
	case 5:
		key = ScdKey{
			BusinessKey: MakeBusinessKey(rowNumber - 1),
			StartDate:   oneThirdDate - tableOffset + 1,
			EndDate:     twoThirdsDate - tableOffset,
		}
	case 0:
		key = ScdKey{
			BusinessKey: MakeBusinessKey(rowNumber - 2),
			StartDate:   twoThirdsDate - tableOffset + 1,
			EndDate:     -1,
		}
	}

	if key.EndDate > dsdate.JulianDataEndDate {
		key.EndDate = -1
	}
	return key
}

// ValueForSlowlyChangingDimension picks between the carried-over value and a
// freshly drawn one. A new business key always takes the new value;
// otherwise the low bit of the change flags decides.
func ValueForSlowlyChangingDimension[T any](fieldChangeFlags int32, isNewKey bool, oldValue, newValue T) T {
	if ShouldChangeDimension(fieldChangeFlags, isNewKey) {
		return newValue
	}
	return oldValue
}

// ShouldChangeDimension reports whether an SCD field takes a new value.
func ShouldChangeDimension(fieldChangeFlags int32, isNewKey bool) bool {
	return fieldChangeFlags%2 == 0 || isNewKey
}

// MatchSurrogateKey inverts the six-row cycle: given a business-key ordinal
// and an effective date, it returns the surrogate row whose revision window
// covers the date.
func MatchSurrogateKey(uniqueID, julianDate int64, t table.Table, scaling *table.Scaling) (int64, error) {
	var key int64
	switch uniqueID % 3 {
	case 1:
		// single revision
		key = (uniqueID/3)*6 + 1
	case 2:
		// two revisions, switching at the half-way date
		key = (uniqueID/3)*6 + 2
		if julianDate > oneHalfDate {
			key++
		}
	case 0:
		// three revisions, switching at the one-third dates
		key = (uniqueID/3)*6 - 2
		if julianDate > oneThirdDate {
			key++
		}
		if julianDate > twoThirdsDate {
			key++
		}
	}

	rowCount, err := scaling.RowCount(t)
	if err != nil {
		return 0, err
	}
	if key > rowCount {
		key = -1
	}
	return key, nil
}
