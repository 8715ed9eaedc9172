package dsdate

import "testing"

func TestToJulianDaysKnownDates(t *testing.T) {
	tests := []struct {
		date Date
		want int32
	}{
		{New(1998, 1, 1), int32(JulianDataStartDate)},
		{New(2003, 1, 8), JulianTodaysDate},
		{New(2002, 12, 31), JulianDateMaximum},
	}
	for _, tt := range tests {
		if got := tt.date.ToJulianDays(); got != tt.want {
			t.Errorf("%v.ToJulianDays() = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestJulianRoundTrip(t *testing.T) {
	for julian := int32(JulianDataStartDate); julian <= int32(JulianDataEndDate); julian += 97 {
		date := FromJulianDays(julian)
		if got := date.ToJulianDays(); got != julian {
			t.Fatalf("round trip of %d produced %d (%v)", julian, got, date)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int32
		want bool
	}{
		// Divisible-by-four only: century years are not excepted.
		{1900, true},
		{2000, true},
		{1996, true},
		{1999, false},
		{2001, false},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got, _ := DaysInMonth(2, 1900); got != 29 {
		t.Errorf("DaysInMonth(2, 1900) = %d, want 29", got)
	}
	if got, _ := DaysInMonth(2, 1999); got != 28 {
		t.Errorf("DaysInMonth(2, 1999) = %d, want 28", got)
	}
	if got, _ := DaysInMonth(4, 2000); got != 30 {
		t.Errorf("DaysInMonth(4, 2000) = %d, want 30", got)
	}
	if _, err := DaysInMonth(13, 2000); err == nil {
		t.Error("DaysInMonth(13, ...) did not fail")
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date Date
		want int32
	}{
		{New(2003, 1, 8), 3},  // Wednesday
		{New(1998, 1, 1), 4},  // Thursday
		{New(2000, 1, 1), 6},  // Saturday
		{New(2002, 12, 31), 2}, // Tuesday
	}
	for _, tt := range tests {
		if got := tt.date.DayOfWeek(); got != tt.want {
			t.Errorf("DayOfWeek(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		date Date
		want int32
	}{
		{New(1999, 1, 1), 1},
		{New(1999, 12, 31), 365},
		{New(2000, 3, 1), 61},
		{New(1999, 3, 1), 60},
	}
	for _, tt := range tests {
		if got := tt.date.DayOfYear(); got != tt.want {
			t.Errorf("DayOfYear(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestSameDayLastYear(t *testing.T) {
	got := New(2000, 2, 29).SameDayLastYear()
	if got != New(1999, 2, 28) {
		t.Errorf("SameDayLastYear(2000-02-29) = %v, want 1999-02-28", got)
	}
	got = New(2001, 7, 4).SameDayLastYear()
	if got != New(2000, 7, 4) {
		t.Errorf("SameDayLastYear(2001-07-04) = %v, want 2000-07-04", got)
	}
}

func TestSameDayLastQuarter(t *testing.T) {
	// 2000-04-01 is the first day of Q2; the same offset in Q1 is 2000-01-01.
	got := New(2000, 4, 1).SameDayLastQuarter()
	if got != New(2000, 1, 1) {
		t.Errorf("SameDayLastQuarter(2000-04-01) = %v, want 2000-01-01", got)
	}
	// First day of Q1 falls back to Q4 of the prior year.
	got = New(2000, 1, 1).SameDayLastQuarter()
	if got != New(1999, 10, 1) {
		t.Errorf("SameDayLastQuarter(2000-01-01) = %v, want 1999-10-01", got)
	}
}

func TestNewValidated(t *testing.T) {
	if _, err := NewValidated(2000, 2, 29); err != nil {
		t.Errorf("NewValidated(2000-02-29): %v", err)
	}
	if _, err := NewValidated(1999, 2, 29); err == nil {
		t.Error("NewValidated(1999-02-29) did not fail")
	}
	if _, err := NewValidated(2000, 0, 1); err == nil {
		t.Error("NewValidated with month 0 did not fail")
	}
}

func TestJulianToString(t *testing.T) {
	if got := JulianToString(JulianDataStartDate); got != "1998-01-01" {
		t.Errorf("JulianToString(start) = %q, want 1998-01-01", got)
	}
	if got := New(1998, 1, 1).String(); got != "1998-01-01" {
		t.Errorf("String() = %q, want 1998-01-01", got)
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		year int32
		want int32
	}{
		{1900, 366},
		{1998, 365},
		{2000, 366},
		{2003, 365},
	}
	for _, tt := range tests {
		if got := DaysInYear(tt.year); got != tt.want {
			t.Errorf("DaysInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}
