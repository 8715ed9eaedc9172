package rowgen

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the date_dim table. Every field is derived from the
// row number, so only the nulls stream consumes seeds.
var (
	dDateSk          = GeneratorColumn{159, 0}
	dDateId          = GeneratorColumn{160, 0}
	dDate            = GeneratorColumn{161, 0}
	dMonthSeq        = GeneratorColumn{162, 0}
	dWeekSeq         = GeneratorColumn{163, 0}
	dQuarterSeq      = GeneratorColumn{164, 0}
	dYear            = GeneratorColumn{165, 0}
	dDow             = GeneratorColumn{166, 0}
	dMoy             = GeneratorColumn{167, 0}
	dDom             = GeneratorColumn{168, 0}
	dQoy             = GeneratorColumn{169, 0}
	dFyYear          = GeneratorColumn{170, 0}
	dFyQuarterSeq    = GeneratorColumn{171, 0}
	dFyWeekSeq       = GeneratorColumn{172, 0}
	dDayName         = GeneratorColumn{173, 0}
	dQuarterName     = GeneratorColumn{174, 0}
	dHoliday         = GeneratorColumn{175, 0}
	dWeekend         = GeneratorColumn{176, 0}
	dFollowingHolidy = GeneratorColumn{177, 0}
	dFirstDom        = GeneratorColumn{178, 0}
	dLastDom         = GeneratorColumn{179, 0}
	dSameDayLy       = GeneratorColumn{180, 0}
	dSameDayLq       = GeneratorColumn{181, 0}
	dCurrentDay      = GeneratorColumn{182, 0}
	dCurrentWeek     = GeneratorColumn{183, 0}
	dCurrentMonth    = GeneratorColumn{184, 0}
	dCurrentQuarter  = GeneratorColumn{185, 0}
	dCurrentYear     = GeneratorColumn{186, 0}
	dNulls           = GeneratorColumn{187, 2}
)

var dateDimColumns = []GeneratorColumn{
	dDateSk, dDateId, dDate, dMonthSeq, dWeekSeq, dQuarterSeq, dYear, dDow,
	dMoy, dDom, dQoy, dFyYear, dFyQuarterSeq, dFyWeekSeq, dDayName,
	dQuarterName, dHoliday, dWeekend, dFollowingHolidy, dFirstDom, dLastDom,
	dSameDayLy, dSameDayLq, dCurrentDay, dCurrentWeek, dCurrentMonth,
	dCurrentQuarter, dCurrentYear, dNulls,
}

// The calendar starts the day after 1900-01-01.
var dateDimBaseJulian = int64(dsdate.New(1900, 1, 1).ToJulianDays())

// DateDimRow is one date_dim row.
type DateDimRow struct {
	dateSk           int64
	dateId           string
	date             dsdate.Date
	monthSeq         int32
	weekSeq          int32
	quarterSeq       int32
	year             int32
	dow              int32
	moy              int32
	dom              int32
	qoy              int32
	fyYear           int32
	fyQuarterSeq     int32
	fyWeekSeq        int32
	dayName          string
	quarterName      string
	holiday          bool
	weekend          bool
	followingHoliday bool
	firstDom         int32
	lastDom          int32
	sameDayLy        int32
	sameDayLq        int32
	currentDay       bool
	currentWeek      bool
	currentMonth     bool
	currentQuarter   bool
	currentYear      bool
	nullBitMap       int64
}

func (r *DateDimRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 28)
	b.addKey(r.dateSk)
	b.addString(r.dateId)
	b.addString(r.date.String())
	b.addInt(r.monthSeq)
	b.addInt(r.weekSeq)
	b.addInt(r.quarterSeq)
	b.addInt(r.year)
	b.addInt(r.dow)
	b.addInt(r.moy)
	b.addInt(r.dom)
	b.addInt(r.qoy)
	b.addInt(r.fyYear)
	b.addInt(r.fyQuarterSeq)
	b.addInt(r.fyWeekSeq)
	b.addString(r.dayName)
	b.addString(r.quarterName)
	b.addBool(r.holiday)
	b.addBool(r.weekend)
	b.addBool(r.followingHoliday)
	b.addInt(r.firstDom)
	b.addInt(r.lastDom)
	b.addInt(r.sameDayLy)
	b.addInt(r.sameDayLq)
	b.addBool(r.currentDay)
	b.addBool(r.currentWeek)
	b.addBool(r.currentMonth)
	b.addBool(r.currentQuarter)
	b.addBool(r.currentYear)
	return b.build()
}

// DateDimRowGenerator emits one row per calendar day starting the day after
// 1900-01-01.
type DateDimRowGenerator struct {
	*abstractRowGenerator
}

func NewDateDimRowGenerator() (*DateDimRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.DateDim, dateDimColumns)
	if err != nil {
		return nil, err
	}
	return &DateDimRowGenerator{abstractRowGenerator: base}, nil
}

func (g *DateDimRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.DateDim, g.Stream(dNulls))

	dateSk := rowNumber + dateDimBaseJulian
	date := dsdate.FromJulianDays(int32(dateSk))

	year := date.Year
	dow := date.DayOfWeek()
	moy := date.Month
	dom := date.Day

	// Sequence numbers assume the first row lands on a year boundary. The
	// quarter sequence keeps the original moy/3 arithmetic, which files
	// March under the second quarter.
	weekSeq := int32((rowNumber + 6) / 7)
	monthSeq := (year-1900)*12 + moy - 1
	quarterSeq := (year-1900)*4 + moy/3 + 1

	dayIndex := date.DayOfYear()
	qoy := distribution.QuarterAtIndex(dayIndex)

	// TPC-DS fiscal years coincide with calendar years.
	fyYear := year
	fyQuarterSeq := quarterSeq
	fyWeekSeq := weekSeq

	dayName := dsdate.WeekdayNames[dow]
	quarterName := fmt.Sprintf("%dQ%d", year, qoy)

	holiday := distribution.IsHolidayFlagAtIndex(dayIndex) != 0
	// The original counts Friday and Saturday as the weekend.
	weekend := dow == 5 || dow == 6

	var followingHoliday bool
	if dayIndex == 1 {
		lastDayPrevYear := int32(365)
		if dsdate.IsLeapYear(year - 1) {
			lastDayPrevYear = 366
		}
		followingHoliday = distribution.IsHolidayFlagAtIndex(lastDayPrevYear) != 0
	} else {
		followingHoliday = distribution.IsHolidayFlagAtIndex(dayIndex-1) != 0
	}

	firstDom := date.FirstDateOfMonth().ToJulianDays()
	lastDom := date.LastDateOfMonth().ToJulianDays()
	sameDayLy := date.SameDayLastYear().ToJulianDays()
	sameDayLq := date.SameDayLastQuarter().ToJulianDays()

	// The original compares the Julian day against today's day of month, so
	// this flag is never set; kept as-is.
	currentDay := dateSk == int64(dsdate.TodaysDate.Day)
	currentYear := year == dsdate.TodaysDate.Year
	currentMonth := currentYear && moy == dsdate.TodaysDate.Month
	currentQuarter := currentYear && qoy == dsdate.CurrentQuarter
	currentWeek := currentYear && weekSeq == dsdate.CurrentWeek

	row := &DateDimRow{
		dateSk:           dateSk,
		dateId:           keys.MakeBusinessKey(dateSk),
		date:             date,
		monthSeq:         monthSeq,
		weekSeq:          weekSeq,
		quarterSeq:       quarterSeq,
		year:             year,
		dow:              dow,
		moy:              moy,
		dom:              dom,
		qoy:              qoy,
		fyYear:           fyYear,
		fyQuarterSeq:     fyQuarterSeq,
		fyWeekSeq:        fyWeekSeq,
		dayName:          dayName,
		quarterName:      quarterName,
		holiday:          holiday,
		weekend:          weekend,
		followingHoliday: followingHoliday,
		firstDom:         firstDom,
		lastDom:          lastDom,
		sameDayLy:        sameDayLy,
		sameDayLq:        sameDayLq,
		currentDay:       currentDay,
		currentWeek:      currentWeek,
		currentMonth:     currentMonth,
		currentQuarter:   currentQuarter,
		currentYear:      currentYear,
		nullBitMap:       nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
