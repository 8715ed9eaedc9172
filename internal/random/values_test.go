package random

import (
	"testing"

	"github.com/mmrzaf/dsdgen/internal/decimal"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
)

func testStream(t *testing.T, seedsPerRow int32) *Stream {
	t.Helper()
	s, err := NewStream(seedsPerRow)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	return s
}

func TestUniformIntBounds(t *testing.T) {
	s := testStream(t, 1)
	for i := 0; i < 10000; i++ {
		v := UniformInt(5, 12, s)
		if v < 5 || v > 12 {
			t.Fatalf("draw %d: %d outside [5, 12]", i, v)
		}
	}
}

func TestUniformIntSingleValueRange(t *testing.T) {
	s := testStream(t, 1)
	if got := UniformInt(7, 7, s); got != 7 {
		t.Errorf("UniformInt(7, 7) = %d, want 7", got)
	}
	if s.SeedsUsed() != 1 {
		t.Errorf("seedsUsed = %d, want 1", s.SeedsUsed())
	}
}

func TestUniformKeyBounds(t *testing.T) {
	s := testStream(t, 1)
	for i := 0; i < 10000; i++ {
		v := UniformKey(1, 73049, s)
		if v < 1 || v > 73049 {
			t.Fatalf("draw %d: %d outside [1, 73049]", i, v)
		}
	}
}

func TestUniformDecimalPrecisionAndBounds(t *testing.T) {
	s := testStream(t, 1)
	min := decimal.MustNew(0, 2)
	max := decimal.MustNew(1200, 2)
	for i := 0; i < 1000; i++ {
		d := UniformDecimal(min, max, s)
		if d.Precision() != 2 {
			t.Fatalf("precision = %d, want 2", d.Precision())
		}
		if d.Number() < 0 || d.Number() > 1200 {
			t.Fatalf("draw %d: %d outside [0, 1200]", i, d.Number())
		}
	}
}

func TestUniformDateBounds(t *testing.T) {
	s := testStream(t, 1)
	min := dsdate.New(1998, 1, 1)
	max := dsdate.New(1998, 12, 31)
	for i := 0; i < 1000; i++ {
		d := UniformDate(min, max, s)
		if d.ToJulianDays() < min.ToJulianDays() || d.ToJulianDays() > max.ToJulianDays() {
			t.Fatalf("draw %d: %v outside 1998", i, d)
		}
	}
}

func TestRandomCharsetLengthAndSeedUse(t *testing.T) {
	s := testStream(t, 21)
	for i := 0; i < 100; i++ {
		got := RandomCharset(AlphaNumeric, 1, 20, s)
		if len(got) < 1 || len(got) > 20 {
			t.Fatalf("draw %d: length %d outside [1, 20]", i, len(got))
		}
		// One draw for the length plus one per possible character.
		if s.SeedsUsed() != 21 {
			t.Fatalf("draw %d: seedsUsed = %d, want 21", i, s.SeedsUsed())
		}
		s.ResetSeedsUsed()
	}
}

func TestRandomStringUsesCharacterSet(t *testing.T) {
	s := testStream(t, 1)
	got := RandomString(50, Digits, s)
	if len(got) != 50 {
		t.Fatalf("length = %d, want 50", len(got))
	}
	for _, ch := range got {
		if ch < '0' || ch > '9' {
			t.Fatalf("character %q not in digit set", ch)
		}
	}
}

func TestWeightedIndexRespectsWeights(t *testing.T) {
	s := testStream(t, 1)
	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		counts[WeightedIndex([]int32{0, 100, 0}, s)]++
	}
	if counts[1] != 10000 {
		t.Errorf("zero-weight indexes drawn: %v", counts)
	}
}

func TestRandomBooleanEdges(t *testing.T) {
	s := testStream(t, 1)
	for i := 0; i < 100; i++ {
		if RandomBoolean(0, s) {
			t.Fatal("probability 0 returned true")
		}
	}
	for i := 0; i < 100; i++ {
		if !RandomBoolean(1, s) {
			t.Fatal("probability 1 returned false")
		}
	}
}
