// Package address assembles US street addresses for dimension rows. Every
// component is drawn from the shared distributions so that city, county,
// state, zip and GMT offset stay mutually consistent.
package address

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Address is one fully resolved street address.
type Address struct {
	SuiteNumber  string
	StreetNumber int32
	StreetName1  string
	StreetName2  string
	StreetType   string
	City         string
	County       string
	State        string
	Country      string
	Zip          int32
	GMTOffset    int32
}

// StreetName joins the two street name parts with a single space. The join is
// unconditional, so an empty second part leaves a trailing space in the
// rendered name.
func (a *Address) StreetName() string {
	return a.StreetName1 + " " + a.StreetName2
}

// MakeAddressForColumn draws a complete address from one column stream.
// Small tables cluster their cities and counties into the active ranges for
// the scale instead of sampling the full distributions.
func MakeAddressForColumn(t table.Table, s *random.Stream, scaling *table.Scaling) (*Address, error) {
	addr := &Address{Country: "United States"}

	addr.StreetNumber = random.UniformInt(1, 1000, s)

	var err error
	if addr.StreetName1, err = distribution.PickRandomStreetName(distribution.StreetNamesDefault, s); err != nil {
		return nil, err
	}
	if addr.StreetName2, err = distribution.PickRandomStreetName(distribution.StreetNamesHalfEmpty, s); err != nil {
		return nil, err
	}
	if addr.StreetType, err = distribution.PickRandomStreetType(s); err != nil {
		return nil, err
	}

	// odd draws make a numeric suite, even draws a lettered one
	suiteRoll := random.UniformInt(1, 100, s)
	if suiteRoll%2 == 1 {
		addr.SuiteNumber = fmt.Sprintf("Suite %d", (suiteRoll/2)*10)
	} else {
		addr.SuiteNumber = fmt.Sprintf("Suite %c", byte((suiteRoll/2)%25)+'A')
	}

	rowCount, err := scaling.RowCount(t)
	if err != nil {
		return nil, err
	}

	if t.IsSmall() {
		maxCities, err := scaling.ActiveCities()
		if err != nil {
			return nil, err
		}
		bound := int32(maxCities) - 1
		if maxCities > rowCount {
			bound = int32(rowCount) - 1
		}
		cityIndex := random.UniformInt(0, bound, s)
		if addr.City, err = distribution.CityAtIndex(int(cityIndex)); err != nil {
			return nil, err
		}
	} else {
		if addr.City, err = distribution.PickRandomCity(distribution.CitiesUnifiedStepFunction, s); err != nil {
			return nil, err
		}
	}

	// the county keys state, zip prefix and GMT offset
	var regionNumber int
	if t.IsSmall() {
		maxCounties, err := scaling.ActiveCounties()
		if err != nil {
			return nil, err
		}
		bound := int32(maxCounties) - 1
		if maxCounties > rowCount {
			bound = int32(rowCount) - 1
		}
		regionNumber = int(random.UniformInt(0, bound, s))
	} else {
		if regionNumber, err = distribution.PickRandomFipsIndex(distribution.FipsUniform, s); err != nil {
			return nil, err
		}
	}

	if addr.County, err = distribution.CountyAtIndex(regionNumber); err != nil {
		return nil, err
	}
	if addr.State, err = distribution.StateAbbreviationAtIndex(regionNumber); err != nil {
		return nil, err
	}

	zip := ComputeCityHash(addr.City)
	zipPrefix, err := distribution.ZipPrefixAtIndex(regionNumber)
	if err != nil {
		return nil, err
	}
	// zips 00000 through 00600 are unassigned
	if zipPrefix == 0 && zip < 9400 {
		zip += 600
	}
	addr.Zip = zip + zipPrefix*10000

	if addr.GMTOffset, err = distribution.GmtOffsetAtIndex(regionNumber); err != nil {
		return nil, err
	}

	return addr, nil
}

// ComputeCityHash folds a city name into a four digit number used as the low
// part of the zip code.
func ComputeCityHash(name string) int32 {
	var hash, result int32
	for _, ch := range name {
		hash = hash*26 + (int32(ch) - 'A')
		if hash > 1000000 {
			hash %= 10000
			result += hash
			hash = 0
		}
	}
	hash %= 1000
	result += hash
	return result % 10000
}
