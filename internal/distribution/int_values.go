package distribution

import (
	"fmt"
	"strconv"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// IntValues is the integer-valued counterpart of StringValues.
type IntValues struct {
	valuesLists  [][]int32
	weightsLists [][]int32
}

func LoadIntValues(filename string, numValueFields, numWeightFields int) (*IntValues, error) {
	lines, err := loadDistributionFile(filename)
	if err != nil {
		return nil, err
	}

	valuesLists := make([][]int32, numValueFields)
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

		for j, valueStr := range line.values {
			value, err := strconv.ParseInt(valueStr, 10, 32)
			if err != nil {
				return nil, &ParseError{File: filename, Line: i + 1, Reason: fmt.Sprintf("non-numeric value %q", valueStr)}
			}
			valuesLists[j] = append(valuesLists[j], int32(value))
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

	return &IntValues{valuesLists: valuesLists, weightsLists: weightsLists}, nil
}

func mustLoadIntValues(filename string, numValueFields, numWeightFields int) *IntValues {
	d, err := LoadIntValues(filename, numValueFields, numWeightFields)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *IntValues) PickRandomValue(valueList, weightList int, s *random.Stream) (int32, error) {
	if valueList >= len(d.valuesLists) {
		return 0, fmt.Errorf("value list index %d out of range, max is %d", valueList, len(d.valuesLists)-1)
	}
	if weightList >= len(d.weightsLists) {
		return 0, fmt.Errorf("weight list index %d out of range, max is %d", weightList, len(d.weightsLists)-1)
	}
	index, err := PickRandomIndex(d.weightsLists[weightList], s)
	if err != nil {
		return 0, err
	}
	return d.valuesLists[valueList][index], nil
}

func (d *IntValues) ValueForIndexModSize(idx int64, valueList int) (int32, error) {
	if valueList >= len(d.valuesLists) {
		return 0, fmt.Errorf("value list index %d out of range, max is %d", valueList, len(d.valuesLists)-1)
	}
	values := d.valuesLists[valueList]
	return values[idx%int64(len(values))], nil
}

func (d *IntValues) ValueAtIndex(valueList, index int) (int32, error) {
	if valueList >= len(d.valuesLists) {
		return 0, fmt.Errorf("value list index %d out of range, max is %d", valueList, len(d.valuesLists)-1)
	}
	values := d.valuesLists[valueList]
	if index < 0 || index >= len(values) {
		return 0, fmt.Errorf("index %d out of range for distribution of size %d", index, len(values))
	}
	return values[index], nil
}

func (d *IntValues) Size() int {
	if len(d.valuesLists) == 0 {
		return 0
	}
	return len(d.valuesLists[0])
}
