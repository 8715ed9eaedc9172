package keys

import (
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

const (
	webPagesPerSite = 123
	webDateStagger  = 17

	catalogsPerYear = 18
)

// WebDateColumn distinguishes the web columns whose date join keys are
// derived from the site lifecycle instead of the calendar.
type WebDateColumn int

const (
	WebDateNone WebDateColumn = iota
	WebDateCreation
	WebDateOpen
	WebDateClose
)

// JoinSource describes the column asking for a join key: which table it
// belongs to and whether it is one of the special web date columns.
type JoinSource struct {
	Table   table.Table
	WebDate WebDateColumn
}

// GenerateJoinKey draws a foreign key from the source column into toTable.
// julianDate carries the row's context date where one applies (SCD windows,
// catalog layouts, web site lifecycles) and is ignored otherwise.
func GenerateJoinKey(from JoinSource, s *random.Stream, toTable table.Table, julianDate int64, scaling *table.Scaling) (int64, error) {
	switch toTable {
	case table.CatalogPage:
		return generateCatalogPageJoinKey(s, julianDate, scaling)
	case table.DateDim:
		year := random.UniformInt(dsdate.DateMinimum.Year, dsdate.DateMaximum.Year, s)
		return generateDateJoinKey(from, s, julianDate, year, scaling)
	case table.TimeDim:
		return generateTimeJoinKey(from, s)
	}

	if toTable.KeepsHistory() {
		return generateScdJoinKey(toTable, s, julianDate, scaling)
	}

	rowCount, err := scaling.RowCount(toTable)
	if err != nil {
		return 0, err
	}
	return random.UniformKey(1, rowCount, s), nil
}

func generateDateJoinKey(from JoinSource, s *random.Stream, joinCount int64, year int32, scaling *table.Scaling) (int64, error) {
	if from.WebDate != WebDateNone {
		// for the web lifecycle columns the context value is the row's
		// surrogate key, not a date
		return generateWebJoinKey(from, s, joinCount, scaling)
	}

	leap := dsdate.IsLeapYear(year)
	var lag int32

	var weights distribution.CalendarWeights
	switch from.Table {
	case table.StoreSales, table.CatalogSales, table.WebSales:
		weights = distribution.CalendarSales
		if leap {
			weights = distribution.CalendarSalesLeapYear
		}
	case table.StoreReturns, table.CatalogReturns, table.WebReturns:
		// returns trail sales by a uniform lag
		weights = distribution.CalendarSales
		if leap {
			weights = distribution.CalendarSalesLeapYear
		}
		lag = random.UniformInt(0, 60, s)
	default:
		weights = distribution.CalendarUniform
		if leap {
			weights = distribution.CalendarUniformLeapYear
		}
	}

	dayNumber, err := distribution.PickRandomDayOfYear(weights, s)
	if err != nil {
		return 0, err
	}

	result := int64(dsdate.New(year, 1, 1).ToJulianDays()) + int64(dayNumber) - 1 + int64(lag)
	if result > int64(dsdate.JulianTodaysDate) {
		return -1, nil
	}
	return result, nil
}

func generateTimeJoinKey(from JoinSource, s *random.Stream) (int64, error) {
	var weights distribution.HoursWeights
	switch from.Table {
	case table.StoreSales, table.StoreReturns:
		weights = distribution.HoursStore
	case table.CatalogSales, table.CatalogReturns, table.WebSales, table.WebReturns:
		weights = distribution.HoursCatalogAndWeb
	default:
		weights = distribution.HoursUniform
	}

	hour, err := distribution.PickRandomHour(weights, s)
	if err != nil {
		return 0, err
	}
	seconds := random.UniformInt(0, 3599, s)
	return int64(hour)*3600 + int64(seconds), nil
}

// generateCatalogPageJoinKey locates a page inside the catalog that was
// current on the context date. Each year ships 18 catalogs: 2 bi-annual, 4
// quarterly and 12 monthly.
func generateCatalogPageJoinKey(s *random.Stream, julianDate int64, scaling *table.Scaling) (int64, error) {
	rowCount, err := scaling.RowCount(table.CatalogPage)
	if err != nil {
		return 0, err
	}
	yearCount := int64(dsdate.DateMaximum.Year-dsdate.DateMinimum.Year) + 2
	pagesPerCatalog := rowCount / catalogsPerYear / yearCount

	typeIndex, err := distribution.CatalogPageTypes().PickRandomIndex(0, s)
	if err != nil {
		return 0, err
	}
	page := random.UniformInt(1, int32(pagesPerCatalog), s)

	offset := julianDate - int64(dsdate.JulianDateMinimum) - 1
	count := (offset / 365) * catalogsPerYear
	offset %= 365

	switch typeIndex {
	case 0: // bi-annual
		count += offset / 183
	case 1: // quarterly
		count += 2 + offset/91
	case 2: // monthly
		count += 6 + offset/31
	}

	return count*pagesPerCatalog + int64(page), nil
}

func generateScdJoinKey(toTable table.Table, s *random.Stream, julianDate int64, scaling *table.Scaling) (int64, error) {
	// revisions cannot lie in the future
	if julianDate > dsdate.JulianDataEndDate {
		return -1, nil
	}

	idCount, err := scaling.IDCount(toTable)
	if err != nil {
		return 0, err
	}
	key := random.UniformKey(1, idCount, s)
	return MatchSurrogateKey(key, julianDate, toTable, scaling)
}

// generateWebJoinKey derives a Julian date from the site lifecycle. Sites
// live for a fixed duration staggered across the data window; pages are
// created in the gap before their site opens.
func generateWebJoinKey(from JoinSource, s *random.Stream, key int64, scaling *table.Scaling) (int64, error) {
	duration, err := webSiteDuration(scaling)
	if err != nil {
		return 0, err
	}

	switch from.WebDate {
	case WebDateCreation:
		site := key/webPagesPerSite + 1
		gap := (site * webDateStagger) % duration / 2
		offset := random.UniformInt(int32(-gap), 0, s)
		return int64(dsdate.JulianDateMinimum) - gap - int64(offset), nil
	case WebDateOpen:
		return int64(dsdate.JulianDateMinimum) - (key*webDateStagger)%duration/2, nil
	case WebDateClose:
		result := int64(dsdate.JulianDateMinimum) - (key*webDateStagger)%duration/2 - duration
		if isReplaced(key) && isFirstOfReplacedPair(key) {
			result += duration / 2
		}
		return result, nil
	}
	return -1, nil
}

func webSiteDuration(scaling *table.Scaling) (int64, error) {
	concurrent, err := scaling.ConcurrentWebSites()
	if err != nil {
		return 0, err
	}
	return (dsdate.JulianDataEndDate - dsdate.JulianDataStartDate) * concurrent, nil
}

func isReplaced(joinKey int64) bool {
	return joinKey%2 == 0
}

func isFirstOfReplacedPair(joinKey int64) bool {
	return (joinKey/2)%2 == 0
}
