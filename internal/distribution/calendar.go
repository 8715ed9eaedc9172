package distribution

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// Weight columns of the calendar distribution. Each non-leap column has a
// leap-year twin that redistributes weight across the 366-day layout.
type CalendarWeights int

const (
	CalendarUniform CalendarWeights = iota
	CalendarUniformLeapYear
	CalendarSales
	CalendarSalesLeapYear
	CalendarReturns
	CalendarReturnsLeapYear
	CalendarCombined
	CalendarCombinedLeapYear
	CalendarSkewed
	CalendarSkewedLeapYear
)

// DaysBeforeMonth gives cumulative day counts before each month, by leap
// flag then zero-based month.
var DaysBeforeMonth = [2][12]int32{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

type calendar struct {
	daysOfYear   []int32
	quarters     []int32
	holidayFlags []int32
	weightsLists [][]int32
}

var (
	calendarOnce sync.Once
	calendarDist *calendar
)

const calendarNumWeightFields = 10

func calendarInstance() *calendar {
	calendarOnce.Do(func() {
		d, err := loadCalendar()
		if err != nil {
			panic(err)
		}
		calendarDist = d
	})
	return calendarDist
}

func loadCalendar() (*calendar, error) {
	lines, err := loadDistributionFile("calendar.dst")
	if err != nil {
		return nil, err
	}

	d := &calendar{}
	builders := make([]weightsBuilder, calendarNumWeightFields)

	for i, line := range lines {
		if len(line.values) != 8 {
			return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: fmt.Sprintf("expected 8 values, got %d", len(line.values))}
		}
		if len(line.weights) != calendarNumWeightFields {
			return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: fmt.Sprintf("expected %d weights, got %d", calendarNumWeightFields, len(line.weights))}
		}

		dayOfYear, err := strconv.ParseInt(line.values[0], 10, 32)
		if err != nil {
			return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric day of year %q", line.values[0])}
		}
		d.daysOfYear = append(d.daysOfYear, int32(dayOfYear))

		quarter, err := strconv.ParseInt(line.values[5], 10, 32)
		if err != nil {
			return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric quarter %q", line.values[5])}
		}
		d.quarters = append(d.quarters, int32(quarter))

		holidayFlag, err := strconv.ParseInt(line.values[7], 10, 32)
		if err != nil {
			return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric holiday flag %q", line.values[7])}
		}
		d.holidayFlags = append(d.holidayFlags, int32(holidayFlag))

		for j, weightStr := range line.weights {
			weight, err := strconv.ParseInt(weightStr, 10, 32)
			if err != nil {
				return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric weight %q", weightStr)}
			}
			if err := builders[j].add(int32(weight)); err != nil {
				return nil, &ParseError{File: "calendar.dst", Line: i + 1, Reason: err.Error()}
			}
		}
	}

	d.weightsLists = make([][]int32, calendarNumWeightFields)
	for j := range builders {
		d.weightsLists[j] = builders[j].build()
	}

	return d, nil
}

// PickRandomDayOfYear samples a 1-based day of year using the given weight
// column.
func PickRandomDayOfYear(weights CalendarWeights, s *random.Stream) (int32, error) {
	d := calendarInstance()
	index, err := PickRandomIndex(d.weightsLists[weights], s)
	if err != nil {
		return 0, err
	}
	return d.daysOfYear[index], nil
}

// QuarterAtIndex returns the quarter for a 1-based day-of-year index.
func QuarterAtIndex(index int32) int32 {
	return calendarInstance().quarters[index-1]
}

// IsHolidayFlagAtIndex returns the holiday flag for a 1-based day-of-year
// index.
func IsHolidayFlagAtIndex(index int32) int32 {
	return calendarInstance().holidayFlags[index-1]
}
