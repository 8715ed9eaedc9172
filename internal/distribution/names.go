package distribution

import (
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// Weight columns of the first_names distribution.
type FirstNamesWeights int

const (
	FirstNamesMaleFrequency FirstNamesWeights = iota
	FirstNamesFemaleFrequency
	FirstNamesGeneralFrequency
)

var (
	firstNamesOnce sync.Once
	firstNamesDist *StringValues
	lastNamesOnce  sync.Once
	lastNamesDist  *StringValues
)

func firstNames() *StringValues {
	firstNamesOnce.Do(func() { firstNamesDist = mustLoadStringValues("first_names.dst", 1, 3) })
	return firstNamesDist
}

func lastNames() *StringValues {
	lastNamesOnce.Do(func() { lastNamesDist = mustLoadStringValues("last_names.dst", 1, 1) })
	return lastNamesDist
}

func PickRandomFirstName(weights FirstNamesWeights, s *random.Stream) (string, error) {
	return firstNames().PickRandomValue(0, int(weights), s)
}

func PickRandomLastName(s *random.Stream) (string, error) {
	return lastNames().PickRandomValue(0, 0, s)
}

