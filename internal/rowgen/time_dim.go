package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the time_dim table.
var (
	tTimeSk   = GeneratorColumn{340, 1}
	tTimeId   = GeneratorColumn{341, 1}
	tTime     = GeneratorColumn{342, 1}
	tHour     = GeneratorColumn{343, 1}
	tMinute   = GeneratorColumn{344, 1}
	tSecond   = GeneratorColumn{345, 1}
	tAmPm     = GeneratorColumn{346, 1}
	tShift    = GeneratorColumn{347, 1}
	tSubShift = GeneratorColumn{348, 1}
	tMealTime = GeneratorColumn{349, 1}
	tNulls    = GeneratorColumn{350, 1}
)

var timeDimColumns = []GeneratorColumn{
	tTimeSk, tTimeId, tTime, tHour, tMinute, tSecond, tAmPm, tShift,
	tSubShift, tMealTime, tNulls,
}

// TimeDimRow is one time_dim row.
type TimeDimRow struct {
	timeSk     int64
	timeId     string
	time       int32
	hour       int32
	minute     int32
	second     int32
	amPm       string
	shift      string
	subShift   string
	mealTime   string
	nullBitMap int64
}

func (r *TimeDimRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 10)
	b.addKey(r.timeSk)
	b.addString(r.timeId)
	b.addInt(r.time)
	b.addInt(r.hour)
	b.addInt(r.minute)
	b.addInt(r.second)
	b.addString(r.amPm)
	b.addString(r.shift)
	b.addString(r.subShift)
	b.addString(r.mealTime)
	return b.build()
}

// TimeDimRowGenerator emits one row per second of the day.
type TimeDimRowGenerator struct {
	*abstractRowGenerator
}

func NewTimeDimRowGenerator() (*TimeDimRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.TimeDim, timeDimColumns)
	if err != nil {
		return nil, err
	}
	return &TimeDimRowGenerator{abstractRowGenerator: base}, nil
}

func (g *TimeDimRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	seconds := int32(rowNumber - 1)

	timeTemp := seconds
	second := timeTemp % 60
	timeTemp /= 60
	minute := timeTemp % 60
	timeTemp /= 60
	hour := timeTemp % 24

	hourInfo := distribution.HourInfoForHour(hour)

	row := &TimeDimRow{
		timeSk:     rowNumber - 1,
		timeId:     keys.MakeBusinessKey(rowNumber),
		time:       seconds,
		hour:       hour,
		minute:     minute,
		second:     second,
		amPm:       hourInfo.AmPm,
		shift:      hourInfo.Shift,
		subShift:   hourInfo.SubShift,
		mealTime:   hourInfo.Meal,
		nullBitMap: 0,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
