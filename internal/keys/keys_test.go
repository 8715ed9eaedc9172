package keys

import (
	"testing"

	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

func TestMakeBusinessKey(t *testing.T) {
	tests := []struct {
		ordinal int64
		want    string
	}{
		{0, "AAAAAAAAAAAAAAAA"},
		{1, "AAAAAAAABAAAAAAA"},
		{16, "AAAAAAAAABAAAAAA"},
		{15, "AAAAAAAAPAAAAAAA"},
		{1 << 32, "BAAAAAAAAAAAAAAA"},
	}
	for _, tt := range tests {
		if got := MakeBusinessKey(tt.ordinal); got != tt.want {
			t.Errorf("MakeBusinessKey(%d) = %q, want %q", tt.ordinal, got, tt.want)
		}
	}
}

func TestComputeScdKeyCycle(t *testing.T) {
	// The six-row cycle: rows 1 and 2 open fresh keys, row 3 revises row 2's
	// key, rows 4 through 6 spread one key across three revisions.
	newKeyByPosition := map[int64]bool{1: true, 2: true, 3: false, 4: true, 5: false, 6: false}
	for rowNumber := int64(1); rowNumber <= 12; rowNumber++ {
		key := ComputeScdKey(table.WebSite, rowNumber)
		position := (rowNumber-1)%6 + 1
		if key.IsNewKey != newKeyByPosition[position] {
			t.Errorf("row %d: isNewKey = %v, want %v", rowNumber, key.IsNewKey, newKeyByPosition[position])
		}
		if key.StartDate <= 0 {
			t.Errorf("row %d: start date %d is not positive", rowNumber, key.StartDate)
		}
	}

	if a, b := ComputeScdKey(table.WebSite, 2), ComputeScdKey(table.WebSite, 3); a.BusinessKey != b.BusinessKey {
		t.Errorf("rows 2 and 3 carry different business keys: %q vs %q", a.BusinessKey, b.BusinessKey)
	}
	if a, b := ComputeScdKey(table.WebSite, 4), ComputeScdKey(table.WebSite, 6); a.BusinessKey != b.BusinessKey {
		t.Errorf("rows 4 and 6 carry different business keys: %q vs %q", a.BusinessKey, b.BusinessKey)
	}
	if a, b := ComputeScdKey(table.WebSite, 1), ComputeScdKey(table.WebSite, 2); a.BusinessKey == b.BusinessKey {
		t.Errorf("rows 1 and 2 share a business key %q", a.BusinessKey)
	}
}

func TestComputeScdKeyRevisionWindowsAbut(t *testing.T) {
	second := ComputeScdKey(table.WebSite, 2)
	third := ComputeScdKey(table.WebSite, 3)
	if third.StartDate != second.EndDate+1 {
		t.Errorf("revision window gap: row 2 ends %d, row 3 starts %d", second.EndDate, third.StartDate)
	}
	if third.EndDate != -1 {
		t.Errorf("final revision end date = %d, want -1", third.EndDate)
	}
}

func TestShouldChangeDimension(t *testing.T) {
	if !ShouldChangeDimension(1, true) {
		t.Error("new key with odd flags should change")
	}
	if !ShouldChangeDimension(2, false) {
		t.Error("even flags should change")
	}
	if ShouldChangeDimension(1, false) {
		t.Error("odd flags on a carried key should not change")
	}
}

func TestValueForSlowlyChangingDimension(t *testing.T) {
	if got := ValueForSlowlyChangingDimension(1, false, "old", "new"); got != "old" {
		t.Errorf("carried value = %q, want old", got)
	}
	if got := ValueForSlowlyChangingDimension(1, true, "old", "new"); got != "new" {
		t.Errorf("new-key value = %q, want new", got)
	}
	if got := ValueForSlowlyChangingDimension(4, false, int32(7), int32(9)); got != 9 {
		t.Errorf("even-flag value = %d, want 9", got)
	}
}

func TestMatchSurrogateKey(t *testing.T) {
	scaling, err := table.NewScaling(1)
	if err != nil {
		t.Fatalf("NewScaling: %v", err)
	}

	early := dsdate.JulianDataStartDate + 1
	late := dsdate.JulianDataEndDate - 1

	tests := []struct {
		name     string
		uniqueID int64
		julian   int64
		want     int64
	}{
		{"single revision", 1, early, 1},
		{"two revisions, first half", 2, early, 2},
		{"two revisions, second half", 2, late, 3},
		{"three revisions, first third", 3, early, 4},
		{"three revisions, last third", 3, late, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchSurrogateKey(tt.uniqueID, tt.julian, table.WebSite, scaling)
			if err != nil {
				t.Fatalf("MatchSurrogateKey: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchSurrogateKey(%d, %d) = %d, want %d", tt.uniqueID, tt.julian, got, tt.want)
			}
		})
	}

	// Keys past the table's row count resolve to -1.
	got, err := MatchSurrogateKey(10000, early, table.WebSite, scaling)
	if err != nil {
		t.Fatalf("MatchSurrogateKey: %v", err)
	}
	if got != -1 {
		t.Errorf("out-of-range key = %d, want -1", got)
	}
}

func TestCreateNullBitMapRespectsNotNullColumns(t *testing.T) {
	s, err := random.NewStream(2)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	for i := 0; i < 5000; i++ {
		bitMap := CreateNullBitMap(table.Warehouse, s)
		if bitMap&table.Warehouse.NotNullBitMap() != 0 {
			t.Fatalf("draw %d: bitmap %b overlaps not-null columns", i, bitMap)
		}
		if s.SeedsUsed() != 2 {
			t.Fatalf("draw %d: seedsUsed = %d, want 2", i, s.SeedsUsed())
		}
		s.ResetSeedsUsed()
	}
}

func TestCreateNullBitMapZeroBasisPoints(t *testing.T) {
	s, err := random.NewStream(2)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if bitMap := CreateNullBitMap(table.DateDim, s); bitMap != 0 {
			t.Fatalf("draw %d: date_dim bitmap = %b, want 0", i, bitMap)
		}
		if s.SeedsUsed() != 2 {
			t.Fatalf("draw %d: seedsUsed = %d, want 2", i, s.SeedsUsed())
		}
		s.ResetSeedsUsed()
	}
}
