package distribution

import (
	"fmt"
	"strconv"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// StringValues is a distribution of string values with one or more parallel
// value lists and one or more cumulative-weight lists.
type StringValues struct {
	valuesLists  [][]string
	weightsLists [][]int32
}

// LoadStringValues parses an embedded .dst file into a string distribution,
// enforcing the declared field counts per line.
func LoadStringValues(filename string, numValueFields, numWeightFields int) (*StringValues, error) {
	lines, err := loadDistributionFile(filename)
	if err != nil {
		return nil, err
	}

	valuesLists := make([][]string, numValueFields)
	weightsBuilders := make([]weightsBuilder, numWeightFields)

	for i, line := range lines {
		if len(line.values) != numValueFields {
			return nil, &ParseError{
				File:   filename,
				Line:   i + 1,
				Reason: fmt.Sprintf("expected %d values, got %d: %v", numValueFields, len(line.values), line.values),
			}
		}
		if len(line.weights) != numWeightFields {
			return nil, &ParseError{
				File:   filename,
				Line:   i + 1,
				Reason: fmt.Sprintf("expected %d weights, got %d: %v", numWeightFields, len(line.weights), line.weights),
			}
		}

		for j, value := range line.values {
			valuesLists[j] = append(valuesLists[j], value)
		}
		for j, weightStr := range line.weights {
			weight, err := strconv.ParseInt(weightStr, 10, 32)
			if err != nil {
				return nil, &ParseError{File: filename, Line: i + 1, Reason: fmt.Sprintf("non-numeric weight %q", weightStr)}
			}
			if err := weightsBuilders[j].add(int32(weight)); err != nil {
				return nil, &ParseError{File: filename, Line: i + 1, Reason: err.Error()}
			}
		}
	}

	weightsLists := make([][]int32, numWeightFields)
	for j := range weightsBuilders {
		weightsLists[j] = weightsBuilders[j].build()
	}

	return &StringValues{valuesLists: valuesLists, weightsLists: weightsLists}, nil
}

// mustLoadStringValues is LoadStringValues for embedded data known to be
// well-formed; distribution-load failures are fatal at startup.
func mustLoadStringValues(filename string, numValueFields, numWeightFields int) *StringValues {
	d, err := LoadStringValues(filename, numValueFields, numWeightFields)
	if err != nil {
		panic(err)
	}
	return d
}

// PickRandomValue samples from valueList using weightList.
func (d *StringValues) PickRandomValue(valueList, weightList int, s *random.Stream) (string, error) {
	if valueList >= len(d.valuesLists) {
		return "", fmt.Errorf("value list index %d out of range, max is %d", valueList, len(d.valuesLists)-1)
	}
	if weightList >= len(d.weightsLists) {
		return "", fmt.Errorf("weight list index %d out of range, max is %d", weightList, len(d.weightsLists)-1)
	}
	return pickRandomValue(d.valuesLists[valueList], d.weightsLists[weightList], s)
}

// PickRandomIndex samples an index using weightList.
func (d *StringValues) PickRandomIndex(weightList int, s *random.Stream) (int, error) {
	if weightList >= len(d.weightsLists) {
		return 0, fmt.Errorf("weight list index %d out of range, max is %d", weightList, len(d.weightsLists)-1)
	}
	return PickRandomIndex(d.weightsLists[weightList], s)
}

// ValueForIndexModSize indexes valueList by idx modulo its length.
func (d *StringValues) ValueForIndexModSize(idx int64, valueList int) (string, error) {
	if valueList >= len(d.valuesLists) {
		return "", fmt.Errorf("value list index %d out of range, max is %d", valueList, len(d.valuesLists)-1)
	}
	values := d.valuesLists[valueList]
	return values[idx%int64(len(values))], nil
}

// ValueAtIndex reads valueList at an exact index.
func (d *StringValues) ValueAtIndex(valueList, index int) (string, error) {
	if valueList >= len(d.valuesLists) {
		return "", fmt.Errorf("value list index %d out of range, max is %d", valueList, len(d.valuesLists)-1)
	}
	values := d.valuesLists[valueList]
	if index < 0 || index >= len(values) {
		return "", fmt.Errorf("index %d out of range for distribution of size %d", index, len(values))
	}
	return values[index], nil
}

// Size is the number of values in each list.
func (d *StringValues) Size() int {
	if len(d.valuesLists) == 0 {
		return 0
	}
	return len(d.valuesLists[0])
}
