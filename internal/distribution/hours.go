package distribution

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// Weight columns of the hours distribution.
type HoursWeights int

const (
	HoursUniform HoursWeights = iota
	HoursStore
	HoursCatalogAndWeb
)

// HourInfo is the per-hour attribute bundle emitted into time_dim.
type HourInfo struct {
	AmPm     string
	Shift    string
	SubShift string
	Meal     string
}

type hoursDistribution struct {
	hours        []int32
	amPm         []string
	shifts       []string
	subShifts    []string
	meals        []string
	weightsLists [][]int32
}

var (
	hoursOnce sync.Once
	hoursDist *hoursDistribution
)

const hoursNumWeightFields = 3

func hoursInstance() *hoursDistribution {
	hoursOnce.Do(func() {
		d, err := loadHours()
		if err != nil {
			panic(err)
		}
		hoursDist = d
	})
	return hoursDist
}

func loadHours() (*hoursDistribution, error) {
	lines, err := loadDistributionFile("hours.dst")
	if err != nil {
		return nil, err
	}

	d := &hoursDistribution{}
	builders := make([]weightsBuilder, hoursNumWeightFields)

	for i, line := range lines {
		// The meal field is present only on meal hours.
		if len(line.values) < 4 || len(line.values) > 5 {
			return nil, &ParseError{File: "hours.dst", Line: i + 1, Reason: fmt.Sprintf("expected 4 or 5 values, got %d", len(line.values))}
		}
		if len(line.weights) != hoursNumWeightFields {
			return nil, &ParseError{File: "hours.dst", Line: i + 1, Reason: fmt.Sprintf("expected %d weights, got %d", hoursNumWeightFields, len(line.weights))}
		}

		hour, err := strconv.ParseInt(line.values[0], 10, 32)
		if err != nil {
			return nil, &ParseError{File: "hours.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric hour %q", line.values[0])}
		}
		d.hours = append(d.hours, int32(hour))
		d.amPm = append(d.amPm, line.values[1])
		d.shifts = append(d.shifts, line.values[2])
		d.subShifts = append(d.subShifts, line.values[3])

		meal := ""
		if len(line.values) > 4 {
			meal = line.values[4]
		}
		d.meals = append(d.meals, meal)

		for j, weightStr := range line.weights {
			weight, err := strconv.ParseInt(weightStr, 10, 32)
			if err != nil {
				return nil, &ParseError{File: "hours.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric weight %q", weightStr)}
			}
			if err := builders[j].add(int32(weight)); err != nil {
				return nil, &ParseError{File: "hours.dst", Line: i + 1, Reason: err.Error()}
			}
		}
	}

	d.weightsLists = make([][]int32, hoursNumWeightFields)
	for j := range builders {
		d.weightsLists[j] = builders[j].build()
	}

	return d, nil
}

// HourInfoForHour looks up the attributes of an hour in [0, 23].
func HourInfoForHour(hour int32) HourInfo {
	d := hoursInstance()
	return HourInfo{
		AmPm:     d.amPm[hour],
		Shift:    d.shifts[hour],
		SubShift: d.subShifts[hour],
		Meal:     d.meals[hour],
	}
}

// PickRandomHour samples an hour of day with the given weight column.
func PickRandomHour(weights HoursWeights, s *random.Stream) (int32, error) {
	d := hoursInstance()
	index, err := PickRandomIndex(d.weightsLists[weights], s)
	if err != nil {
		return 0, err
	}
	return d.hours[index], nil
}
