// Package dsdate is the generator's calendar. Dates are carried internally as
// Julian day numbers with a fixed data window; the calendar intentionally
// reproduces the reference generator's quirks (4-year-only leap rule, the
// last-day-of-month and same-day-last-quarter arithmetic), since emitted data
// depends on them.
package dsdate

import "fmt"

// Date is a calendar date. It performs no Gregorian validation beyond what
// NewValidated checks.
type Date struct {
	Year  int32
	Month int32
	Day   int32
}

// Fixed window of the generated data set.
const (
	JulianDataStartDate int64 = 2450815 // 1998-01-01
	JulianDataEndDate   int64 = 2453005 // 2003-12-31

	JulianTodaysDate  int32 = 2452648 // 2003-01-08
	JulianDateMinimum int32 = 2450815 // 1998-01-01
	JulianDateMaximum int32 = 2452640 // 2002-12-31

	CurrentQuarter int32 = 1
	CurrentWeek    int32 = 2
)

var (
	TodaysDate  = Date{Year: 2003, Month: 1, Day: 8}
	DateMinimum = Date{Year: 1998, Month: 1, Day: 1}
	DateMaximum = Date{Year: 2002, Month: 12, Day: 31}
)

var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Cumulative days before the first of each month, 1-indexed by month.
var (
	monthDays     = [13]int32{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	monthDaysLeap = [13]int32{0, 0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

func New(year, month, day int32) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewValidated rejects out-of-range components.
func NewValidated(year, month, day int32) (Date, error) {
	if year <= 0 {
		return Date{}, fmt.Errorf("invalid year %d: must be positive", year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	max, err := DaysInMonth(month, year)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > max {
		return Date{}, fmt.Errorf("invalid day %d for month %d of year %d", day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// FromJulianDays converts a Julian day number to a calendar date
// (Fliegel-Van Flandern).
func FromJulianDays(julianDays int32) Date {
	l := julianDays + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447

	day := l - (2447*j)/80
	l = j / 11
	month := j + 2 - 12*l
	year := 100*(n-49) + i + l

	return Date{Year: year, Month: month, Day: day}
}

// ToJulianDays converts to a Julian day number. Months January and February
// count as months 13 and 14 of the prior year.
func (d Date) ToJulianDays() int32 {
	month := d.Month
	year := d.Year
	if month <= 2 {
		month += 12
		year--
	}

	const daysBCEInJulianEpoch = 1721118

	return d.Day +
		(153*month-457)/5 +
		365*year + year/4 - year/100 + year/400 +
		daysBCEInJulianEpoch + 1
}

// IsLeapYear applies the reference generator's rule: divisible by 4, with no
// 100/400 exceptions. 1900 is a leap year here.
func IsLeapYear(year int32) bool {
	return year%4 == 0
}

func DaysInYear(year int32) int32 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func DaysInMonth(month, year int32) (int32, error) {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31, nil
	case 4, 6, 9, 11:
		return 30, nil
	case 2:
		if IsLeapYear(year) {
			return 29, nil
		}
		return 28, nil
	default:
		return 0, fmt.Errorf("invalid month %d", month)
	}
}

// DayOfYear is 1-based.
func (d Date) DayOfYear() int32 {
	return d.daysThroughFirstOfMonth() + d.Day
}

func (d Date) daysThroughFirstOfMonth() int32 {
	if IsLeapYear(d.Year) {
		return monthDaysLeap[d.Month]
	}
	return monthDays[d.Month]
}

func (d Date) FirstDateOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastDateOfMonth uses the cumulative month-day table rather than the month
// length, as the reference generator does.
func (d Date) LastDateOfMonth() Date {
	julianDays := d.ToJulianDays() - d.Day + d.daysThroughFirstOfMonth()
	return FromJulianDays(julianDays)
}

func (d Date) SameDayLastYear() Date {
	day := d.Day
	if IsLeapYear(d.Year) && d.Month == 2 && d.Day == 29 {
		day = 28
	}
	return Date{Year: d.Year - 1, Month: d.Month, Day: day}
}

// SameDayLastQuarter maps the date to the same offset inside the previous
// quarter.
func (d Date) SameDayLastQuarter() Date {
	quarter := (d.Month - 1) / 3
	julianStartOfQuarter := New(d.Year, quarter*3+1, 1).ToJulianDays()
	distanceFromStart := d.ToJulianDays() - julianStartOfQuarter

	lastQuarter := int32(3)
	lastQuarterYear := d.Year - 1
	if quarter > 0 {
		lastQuarter = quarter - 1
		lastQuarterYear = d.Year
	}
	julianStartOfPreviousQuarter := New(lastQuarterYear, lastQuarter*3+1, 1).ToJulianDays()

	return FromJulianDays(julianStartOfPreviousQuarter + distanceFromStart)
}

// DayOfWeek computes the weekday (0=Sunday) via the doomsday method.
func (d Date) DayOfWeek() int32 {
	centuryAnchors := [4]int32{3, 2, 0, 5}

	known := [13]int32{0, 3, 0, 0, 4, 9, 6, 11, 8, 5, 10, 7, 12}
	if IsLeapYear(d.Year) {
		known[1] = 4
		known[2] = 1
	}

	centuryIndex := d.Year / 100
	centuryIndex -= 15 // the year 1500 sits at index zero
	centuryIndex %= 4
	centuryAnchor := centuryAnchors[centuryIndex]

	yearOfCentury := d.Year % 100
	q := yearOfCentury / 12
	r := yearOfCentury % 12
	s := r / 4
	doomsday := (centuryAnchor + q + r + s) % 7

	result := d.Day - known[d.Month]
	for result < 0 {
		result += 7
	}
	for result > 6 {
		result -= 7
	}

	return (result + doomsday) % 7
}

// JulianToString formats a Julian day number as YYYY-MM-DD.
func JulianToString(julianDays int64) string {
	return FromJulianDays(int32(julianDays)).String()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
