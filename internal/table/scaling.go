package table

import (
	"fmt"
	"math"
)

// ScalingModel selects how row counts move between the defined scale points.
type ScalingModel int

const (
	// Static tables hold the scale-1 row count at every scale.
	Static ScalingModel = iota
	// Linear tables accumulate defined-scale row counts to reach the target
	// volume.
	Linear
	// Logarithmic tables interpolate between the neighboring defined scales.
	Logarithmic
)

// DefinedScales are the scale factors with pinned row counts. Everything in
// between is derived per the table's scaling model.
var DefinedScales = [10]float64{0, 1, 10, 100, 300, 1000, 3000, 10000, 30000, 100000}

// ScalingInfo carries the per-scale row counts for one table or pseudo
// table.
type ScalingInfo struct {
	multiplier       int32
	model            ScalingModel
	rowCountsByScale [10]int64
}

// NewScalingInfo validates and builds a ScalingInfo. rowCounts must have one
// entry per defined scale.
func NewScalingInfo(multiplier int32, model ScalingModel, rowCounts []int64) (*ScalingInfo, error) {
	if multiplier < 0 {
		return nil, fmt.Errorf("multiplier %d is negative", multiplier)
	}
	if len(rowCounts) != len(DefinedScales) {
		return nil, fmt.Errorf("expected %d row counts, got %d", len(DefinedScales), len(rowCounts))
	}

	info := &ScalingInfo{multiplier: multiplier, model: model}
	for i, count := range rowCounts {
		if count < 0 {
			return nil, fmt.Errorf("row count %d at scale %v is negative", count, DefinedScales[i])
		}
		info.rowCountsByScale[i] = count
	}
	return info, nil
}

func mustScalingInfo(multiplier int32, model ScalingModel, rowCounts []int64) *ScalingInfo {
	info, err := NewScalingInfo(multiplier, model, rowCounts)
	if err != nil {
		panic(err)
	}
	return info
}

// RowCountForScale resolves the row count at an arbitrary scale in
// (0, 100000].
func (s *ScalingInfo) RowCountForScale(scale float64) (int64, error) {
	if scale > DefinedScales[len(DefinedScales)-1] {
		return 0, fmt.Errorf("scale %v exceeds the maximum defined scale", scale)
	}

	for i, defined := range DefinedScales {
		if scale == defined {
			return s.applyMultiplier(s.rowCountsByScale[i]), nil
		}
	}

	switch s.model {
	case Static:
		return s.applyMultiplier(s.rowCountsByScale[1]), nil
	case Linear:
		return s.linearRowCount(scale)
	case Logarithmic:
		return s.logRowCount(scale)
	}
	return 0, fmt.Errorf("unknown scaling model %d", s.model)
}

func (s *ScalingInfo) applyMultiplier(count int64) int64 {
	for i := int32(0); i < s.multiplier; i++ {
		count *= 10
	}
	return count
}

func (s *ScalingInfo) logRowCount(scale float64) (int64, error) {
	slot, err := scaleSlot(scale)
	if err != nil {
		return 0, err
	}

	delta := s.rowCountsByScale[slot] - s.rowCountsByScale[slot-1]
	offset := (scale - DefinedScales[slot-1]) / (DefinedScales[slot] - DefinedScales[slot-1])

	base := s.rowCountsByScale[1]
	if scale < 1 {
		base = s.rowCountsByScale[0]
	}

	count := int64(offset*float64(delta)) + base
	if count == 0 {
		count = 1
	}
	return s.applyMultiplier(count), nil
}

func (s *ScalingInfo) linearRowCount(scale float64) (int64, error) {
	if scale < 1 {
		count := int64(math.Round(scale * float64(s.rowCountsByScale[1])))
		if count == 0 {
			count = 1
		}
		return s.applyMultiplier(count), nil
	}

	var count int64
	remaining := scale
	for i := len(DefinedScales) - 1; i >= 1; i-- {
		for remaining >= DefinedScales[i] {
			count += s.rowCountsByScale[i]
			remaining -= DefinedScales[i]
		}
	}
	return s.applyMultiplier(count), nil
}

func scaleSlot(scale float64) (int, error) {
	for i, defined := range DefinedScales {
		if scale <= defined {
			return i, nil
		}
	}
	return 0, fmt.Errorf("scale %v exceeds the maximum defined scale", scale)
}

var scalingInfos = map[Table]*ScalingInfo{
	CallCenter:            mustScalingInfo(0, Logarithmic, []int64{0, 6, 24, 30, 36, 42, 48, 54, 60, 60}),
	CatalogPage:           mustScalingInfo(0, Logarithmic, []int64{0, 11718, 12000, 20400, 26000, 30000, 36000, 40000, 46000, 50000}),
	CatalogReturns:        mustScalingInfo(0, Linear, []int64{0, 144067, 1439749, 14404374, 43193472, 143996756, 432018033, 1440012142, 4319925093, 14400175879}),
	CatalogSales:          mustScalingInfo(0, Linear, []int64{0, 1441548, 14401261, 143997065, 431969836, 1439980416, 4320078880, 14399964710, 43200404822, 143999334399}),
	Customer:              mustScalingInfo(0, Logarithmic, []int64{0, 100000, 500000, 2000000, 5000000, 12000000, 30000000, 65000000, 80000000, 100000000}),
	CustomerAddress:       mustScalingInfo(0, Logarithmic, []int64{0, 50000, 250000, 1000000, 2500000, 6000000, 15000000, 32500000, 40000000, 50000000}),
	CustomerDemographics:  mustScalingInfo(2, Static, []int64{0, 19208, 19208, 19208, 19208, 19208, 19208, 19208, 19208, 19208}),
	DateDim:               mustScalingInfo(0, Static, []int64{0, 73049, 73049, 73049, 73049, 73049, 73049, 73049, 73049, 73049}),
	HouseholdDemographics: mustScalingInfo(0, Static, []int64{0, 7200, 7200, 7200, 7200, 7200, 7200, 7200, 7200, 7200}),
	IncomeBand:            mustScalingInfo(0, Static, []int64{0, 20, 20, 20, 20, 20, 20, 20, 20, 20}),
	Inventory:             mustScalingInfo(0, Linear, []int64{0, 11745000, 33480000, 399330000, 783000000, 1311525000, 1965853125, 2506566000, 3155410875, 3935103750}),
	Item:                  mustScalingInfo(0, Logarithmic, []int64{0, 18000, 102000, 204000, 264000, 300000, 360000, 402000, 462000, 502000}),
	Promotion:             mustScalingInfo(0, Logarithmic, []int64{0, 300, 500, 1000, 1300, 1500, 1800, 2000, 2300, 2500}),
	Reason:                mustScalingInfo(0, Logarithmic, []int64{0, 35, 45, 55, 60, 65, 67, 70, 72, 75}),
	ShipMode:              mustScalingInfo(0, Static, []int64{0, 20, 20, 20, 20, 20, 20, 20, 20, 20}),
	Store:                 mustScalingInfo(0, Logarithmic, []int64{0, 12, 102, 402, 804, 1002, 1350, 1500, 1704, 1902}),
	StoreReturns:          mustScalingInfo(0, Linear, []int64{0, 287514, 2875432, 28795080, 86393244, 287999764, 863989652, 2879970104, 8639952111, 28800018820}),
	StoreSales:            mustScalingInfo(0, Linear, []int64{0, 2879987, 28800991, 287997024, 864001869, 2879987999, 8639936081, 28799983563, 86399341874, 287997818084}),
	TimeDim:               mustScalingInfo(0, Static, []int64{0, 86400, 86400, 86400, 86400, 86400, 86400, 86400, 86400, 86400}),
	Warehouse:             mustScalingInfo(0, Logarithmic, []int64{0, 5, 10, 15, 17, 20, 22, 25, 27, 30}),
	WebPage:               mustScalingInfo(0, Logarithmic, []int64{0, 60, 200, 2040, 3000, 3600, 4602, 5004, 5460, 6000}),
	WebReturns:            mustScalingInfo(0, Linear, []int64{0, 71763, 719217, 7197670, 21599377, 71997522, 216003761, 720020485, 2160007345, 7199904459}),
	WebSales:              mustScalingInfo(0, Linear, []int64{0, 719384, 7197566, 72001237, 216009853, 720000376, 2159968881, 7199963324, 21600036511, 71999670164}),
	WebSite:               mustScalingInfo(0, Logarithmic, []int64{0, 30, 42, 54, 66, 78, 90, 96, 102, 108}),
}

// Scaling resolves row counts for a fixed scale factor.
type Scaling struct {
	scale float64
}

// NewScaling validates the scale factor and binds it.
func NewScaling(scale float64) (*Scaling, error) {
	if scale <= 0 || scale > DefinedScales[len(DefinedScales)-1] {
		return nil, fmt.Errorf("scale %v is outside (0, %v]", scale, DefinedScales[len(DefinedScales)-1])
	}
	return &Scaling{scale: scale}, nil
}

func (s *Scaling) Scale() float64 {
	return s.scale
}

// RowCount returns the number of rows the table holds at this scale.
func (s *Scaling) RowCount(t Table) (int64, error) {
	info, ok := scalingInfos[t]
	if !ok {
		return 0, fmt.Errorf("no scaling info for table %s", t)
	}
	return info.RowCountForScale(s.scale)
}

// IDCount returns the number of distinct business keys. History-keeping
// tables spread their rows across up to six revisions over three key
// cadences, so the unique count trails the row count.
func (s *Scaling) IDCount(t Table) (int64, error) {
	rowCount, err := s.RowCount(t)
	if err != nil {
		return 0, err
	}
	if !t.KeepsHistory() {
		return rowCount, nil
	}

	uniqueCount := (rowCount / 6) * 3
	switch rowCount % 6 {
	case 1:
		uniqueCount++
	case 2, 3:
		uniqueCount += 2
	case 4, 5:
		uniqueCount += 3
	}
	return uniqueCount, nil
}
