package random

import "testing"

func TestNextFromKnownSeed(t *testing.T) {
	s, err := NewStream(1)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	// 3 * 16807 stays under the modulus, so the first step is a plain
	// multiplication.
	if got := s.Next(); got != 50421 {
		t.Errorf("first value = %d, want 50421", got)
	}
	if s.SeedsUsed() != 1 {
		t.Errorf("seedsUsed = %d, want 1", s.SeedsUsed())
	}
}

func TestNextStaysInRange(t *testing.T) {
	s, err := NewStreamForColumn(42, 5)
	if err != nil {
		t.Fatalf("NewStreamForColumn: %v", err)
	}
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 1 || v > 1<<31-1 {
			t.Fatalf("value %d at draw %d is outside [1, 2^31-1]", v, i)
		}
	}
}

func TestStreamsForSameColumnMatch(t *testing.T) {
	a, err := NewStreamForColumn(159, 2)
	if err != nil {
		t.Fatalf("NewStreamForColumn: %v", err)
	}
	b, err := NewStreamForColumn(159, 2)
	if err != nil {
		t.Fatalf("NewStreamForColumn: %v", err)
	}
	for i := 0; i < 100; i++ {
		if got, want := a.Next(), b.Next(); got != want {
			t.Fatalf("draw %d: streams diverged, %d vs %d", i, got, want)
		}
	}
}

func TestSkipRowsMatchesSequentialDraws(t *testing.T) {
	tests := []struct {
		seedsPerRow int32
		rows        int64
	}{
		{seedsPerRow: 1, rows: 1},
		{seedsPerRow: 1, rows: 1000},
		{seedsPerRow: 7, rows: 35},
		{seedsPerRow: 70, rows: 12},
	}
	for _, tt := range tests {
		sequential, err := NewStreamForColumn(447, tt.seedsPerRow)
		if err != nil {
			t.Fatalf("NewStreamForColumn: %v", err)
		}
		for i := int64(0); i < tt.rows*int64(tt.seedsPerRow); i++ {
			sequential.Next()
		}

		skipped, err := NewStreamForColumn(447, tt.seedsPerRow)
		if err != nil {
			t.Fatalf("NewStreamForColumn: %v", err)
		}
		skipped.SkipRows(tt.rows)

		if got, want := skipped.Next(), sequential.Next(); got != want {
			t.Errorf("seedsPerRow=%d rows=%d: next after skip = %d, want %d",
				tt.seedsPerRow, tt.rows, got, want)
		}
	}
}

func TestSkipZeroRowsRewinds(t *testing.T) {
	s, err := NewStreamForColumn(1, 3)
	if err != nil {
		t.Fatalf("NewStreamForColumn: %v", err)
	}
	first := s.Next()
	s.Next()

	s.SkipRows(0)
	if got := s.Next(); got != first {
		t.Errorf("next after SkipRows(0) = %d, want %d", got, first)
	}
	s.ResetSeed()
	if got := s.Next(); got != first {
		t.Errorf("next after ResetSeed = %d, want %d", got, first)
	}
}

func TestNewStreamRejectsNegativeBudget(t *testing.T) {
	if _, err := NewStream(-1); err == nil {
		t.Error("NewStream(-1) did not fail")
	}
	if _, err := NewStreamForColumn(5, -2); err == nil {
		t.Error("NewStreamForColumn with negative seedsPerRow did not fail")
	}
}
