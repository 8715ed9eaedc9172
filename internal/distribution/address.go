package distribution

import (
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// Weight columns of the street_names distribution. HalfEmpty gives the empty
// second street-name component roughly half the total weight.
type StreetNamesWeights int

const (
	StreetNamesDefault StreetNamesWeights = iota
	StreetNamesHalfEmpty
)

// Weight columns of the cities distribution.
type CitiesWeights int

const (
	CitiesUsgsSkewed CitiesWeights = iota
	CitiesUniform
	CitiesLarge
	CitiesMedium
	CitiesSmall
	CitiesUnifiedStepFunction
)

var (
	streetNamesOnce sync.Once
	streetNamesDist *StringValues
	streetTypesOnce sync.Once
	streetTypesDist *StringValues
	citiesOnce      sync.Once
	citiesDist      *StringValues
)

func streetNames() *StringValues {
	streetNamesOnce.Do(func() { streetNamesDist = mustLoadStringValues("street_names.dst", 1, 2) })
	return streetNamesDist
}

func streetTypes() *StringValues {
	streetTypesOnce.Do(func() { streetTypesDist = mustLoadStringValues("street_types.dst", 1, 1) })
	return streetTypesDist
}

func cities() *StringValues {
	citiesOnce.Do(func() { citiesDist = mustLoadStringValues("cities.dst", 1, 6) })
	return citiesDist
}

func PickRandomStreetName(weights StreetNamesWeights, s *random.Stream) (string, error) {
	return streetNames().PickRandomValue(0, int(weights), s)
}

func PickRandomStreetType(s *random.Stream) (string, error) {
	return streetTypes().PickRandomValue(0, 0, s)
}

func PickRandomCity(weights CitiesWeights, s *random.Stream) (string, error) {
	return cities().PickRandomValue(0, int(weights), s)
}

func CityAtIndex(index int) (string, error) {
	return cities().ValueAtIndex(0, index)
}
