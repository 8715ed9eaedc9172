package decimal

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		number    int64
		precision int32
	}{
		{"0", 0, 0},
		{"100", 100, 0},
		{"1.50", 150, 2},
		{"0.09", 9, 2},
		{"-12.00", -1200, 2},
		{"3.14159", 314159, 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if d.Number() != tt.number || d.Precision() != tt.precision {
				t.Errorf("Parse(%q) = (%d, %d), want (%d, %d)",
					tt.input, d.Number(), d.Precision(), tt.number, tt.precision)
			}
		})
	}

	if _, err := Parse("not-a-number"); err == nil {
		t.Error("Parse of garbage did not fail")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		d    Decimal
		want string
	}{
		{MustNew(150, 2), "1.50"},
		{MustNew(0, 2), "0.00"},
		{MustNew(-5, 2), "-0.05"},
		{MustNew(7, 0), "7"},
		{MustNew(1200, 2), "12.00"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	got := Add(MustNew(100, 2), MustNew(50, 2))
	if got.Number() != 150 || got.Precision() != 2 {
		t.Errorf("1.00 + 0.50 = (%d, %d), want (150, 2)", got.Number(), got.Precision())
	}

	// Operands of unequal precision combine without rescaling.
	got = Add(MustNew(5, 0), MustNew(25, 1))
	if got.Number() != 30 || got.Precision() != 1 {
		t.Errorf("mixed-precision add = (%d, %d), want (30, 1)", got.Number(), got.Precision())
	}
}

func TestSubtract(t *testing.T) {
	got := Subtract(MustNew(150, 2), MustNew(50, 2))
	if got.Number() != 100 || got.Precision() != 2 {
		t.Errorf("1.50 - 0.50 = (%d, %d), want (100, 2)", got.Number(), got.Precision())
	}
}

func TestMultiplyTruncatesTowardZero(t *testing.T) {
	// 1.55 * 1.55 = 2.4025, kept at precision 2 as 2.40.
	got := Multiply(MustNew(155, 2), MustNew(155, 2))
	if got.Number() != 240 || got.Precision() != 2 {
		t.Errorf("1.55 * 1.55 = (%d, %d), want (240, 2)", got.Number(), got.Precision())
	}

	got = Multiply(MustNew(150, 2), MustNew(2, 0))
	if got.Number() != 300 || got.Precision() != 2 {
		t.Errorf("1.50 * 2 = (%d, %d), want (300, 2)", got.Number(), got.Precision())
	}
}

func TestDivide(t *testing.T) {
	// 3.00 / 2.00 = 1.50.
	got := Divide(MustNew(300, 2), MustNew(200, 2))
	if got.Number() != 150 || got.Precision() != 2 {
		t.Errorf("3.00 / 2.00 = (%d, %d), want (150, 2)", got.Number(), got.Precision())
	}
}

func TestNegate(t *testing.T) {
	got := Negate(MustNew(150, 2))
	if got.Number() != -150 || got.Precision() != 2 {
		t.Errorf("Negate(1.50) = (%d, %d), want (-150, 2)", got.Number(), got.Precision())
	}
}

func TestNewRejectsNegativePrecision(t *testing.T) {
	if _, err := New(1, -1); err == nil {
		t.Error("New with negative precision did not fail")
	}
}

func TestFromInt(t *testing.T) {
	d := FromInt(42)
	if got := d.String(); got != "42" {
		t.Errorf("FromInt(42).String() = %q, want 42", got)
	}
	if d.Precision() != 0 {
		t.Errorf("precision = %d, want 0", d.Precision())
	}
}
