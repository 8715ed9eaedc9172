package distribution

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// weightsBuilder accumulates raw weights into a cumulative vector.
type weightsBuilder struct {
	weights        []int32
	previousWeight int32
}

func (b *weightsBuilder) add(weight int32) error {
	if weight < 0 {
		return fmt.Errorf("invalid weight %d: cannot be negative", weight)
	}
	b.previousWeight += weight
	b.weights = append(b.weights, b.previousWeight)
	return nil
}

func (b *weightsBuilder) build() []int32 {
	return b.weights
}

// PickRandomIndex draws one uniform integer in [1, totalWeight] and returns
// the smallest index whose cumulative weight covers it.
func PickRandomIndex(weights []int32, s *random.Stream) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("cannot pick from empty weights")
	}
	maxWeight := weights[len(weights)-1]
	if maxWeight <= 0 {
		return 0, fmt.Errorf("total weight must be positive, got %d", maxWeight)
	}
	randomWeight := random.UniformInt(1, maxWeight, s)
	return indexForWeight(randomWeight, weights)
}

func indexForWeight(weight int32, weights []int32) (int, error) {
	for index, w := range weights {
		if weight <= w {
			return index, nil
		}
	}
	return 0, fmt.Errorf("random weight %d greater than max weight", weight)
}

func pickRandomValue(values []string, weights []int32, s *random.Stream) (string, error) {
	if len(values) != len(weights) {
		return "", fmt.Errorf("values (%d) and weights (%d) must be the same size", len(values), len(weights))
	}
	index, err := PickRandomIndex(weights, s)
	if err != nil {
		return "", err
	}
	return values[index], nil
}

// WeightForIndex recovers the raw (non-cumulative) weight at an index.
func WeightForIndex(index int, weights []int32) (int32, error) {
	if index >= len(weights) {
		return 0, fmt.Errorf("index %d larger than distribution size %d", index, len(weights))
	}
	if index == 0 {
		return weights[0], nil
	}
	return weights[index] - weights[index-1], nil
}
