package distribution

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// Weight columns of the fips distribution.
type FipsWeights int

const (
	FipsUniform FipsWeights = iota
	FipsPopulation
	FipsTimezone
	FipsInZone1
	FipsInZone2
	FipsInZone3
)

// fipsCounty ties together the county-level address fields so that county,
// state, zip prefix and GMT offset are always drawn from the same row.
type fipsCounty struct {
	counties           []string
	stateAbbreviations []string
	zipPrefixes        []int32
	gmtOffsets         []int32
	weightsLists       [][]int32
}

var (
	fipsOnce sync.Once
	fipsDist *fipsCounty
)

const fipsNumWeightFields = 6

func fips() *fipsCounty {
	fipsOnce.Do(func() {
		d, err := loadFipsCounty()
		if err != nil {
			panic(err)
		}
		fipsDist = d
	})
	return fipsDist
}

func loadFipsCounty() (*fipsCounty, error) {
	lines, err := loadDistributionFile("fips.dst")
	if err != nil {
		return nil, err
	}

	d := &fipsCounty{}
	builders := make([]weightsBuilder, fipsNumWeightFields)

	for i, line := range lines {
		if len(line.values) != 6 {
			return nil, &ParseError{File: "fips.dst", Line: i + 1, Reason: fmt.Sprintf("expected 6 values, got %d", len(line.values))}
		}
		if len(line.weights) != fipsNumWeightFields {
			return nil, &ParseError{File: "fips.dst", Line: i + 1, Reason: fmt.Sprintf("expected %d weights, got %d", fipsNumWeightFields, len(line.weights))}
		}

		d.counties = append(d.counties, line.values[1])
		d.stateAbbreviations = append(d.stateAbbreviations, line.values[2])

		zipPrefix, err := strconv.ParseInt(line.values[4], 10, 32)
		if err != nil {
			return nil, &ParseError{File: "fips.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric zip prefix %q", line.values[4])}
		}
		d.zipPrefixes = append(d.zipPrefixes, int32(zipPrefix))

		gmtOffset, err := strconv.ParseInt(line.values[5], 10, 32)
		if err != nil {
			return nil, &ParseError{File: "fips.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric GMT offset %q", line.values[5])}
		}
		d.gmtOffsets = append(d.gmtOffsets, int32(gmtOffset))

		for j, weightStr := range line.weights {
			weight, err := strconv.ParseInt(weightStr, 10, 32)
			if err != nil {
				return nil, &ParseError{File: "fips.dst", Line: i + 1, Reason: fmt.Sprintf("non-numeric weight %q", weightStr)}
			}
			if err := builders[j].add(int32(weight)); err != nil {
				return nil, &ParseError{File: "fips.dst", Line: i + 1, Reason: err.Error()}
			}
		}
	}

	d.weightsLists = make([][]int32, fipsNumWeightFields)
	for j := range builders {
		d.weightsLists[j] = builders[j].build()
	}

	return d, nil
}

func PickRandomFipsIndex(weights FipsWeights, s *random.Stream) (int, error) {
	return PickRandomIndex(fips().weightsLists[weights], s)
}

func CountyAtIndex(index int) (string, error) {
	d := fips()
	if index < 0 || index >= len(d.counties) {
		return "", fmt.Errorf("county index %d out of range", index)
	}
	return d.counties[index], nil
}

func StateAbbreviationAtIndex(index int) (string, error) {
	d := fips()
	if index < 0 || index >= len(d.stateAbbreviations) {
		return "", fmt.Errorf("state index %d out of range", index)
	}
	return d.stateAbbreviations[index], nil
}

func ZipPrefixAtIndex(index int) (int32, error) {
	d := fips()
	if index < 0 || index >= len(d.zipPrefixes) {
		return 0, fmt.Errorf("zip prefix index %d out of range", index)
	}
	return d.zipPrefixes[index], nil
}

func GmtOffsetAtIndex(index int) (int32, error) {
	d := fips()
	if index < 0 || index >= len(d.gmtOffsets) {
		return 0, fmt.Errorf("GMT offset index %d out of range", index)
	}
	return d.gmtOffsets[index], nil
}

// FipsCountyCount is the number of rows in the fips distribution.
func FipsCountyCount() int {
	return len(fips().counties)
}
