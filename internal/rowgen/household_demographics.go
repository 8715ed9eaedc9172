package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the household_demographics table.
var (
	hdDemoSk       = GeneratorColumn{188, 1}
	hdIncomeBandId = GeneratorColumn{189, 1}
	hdBuyPotential = GeneratorColumn{190, 1}
	hdDepCount     = GeneratorColumn{191, 1}
	hdVehicleCount = GeneratorColumn{192, 1}
	hdNulls        = GeneratorColumn{193, 2}
)

var householdDemographicsColumns = []GeneratorColumn{
	hdDemoSk, hdIncomeBandId, hdBuyPotential, hdDepCount, hdVehicleCount, hdNulls,
}

// HouseholdDemographicsRow is one household_demographics row.
type HouseholdDemographicsRow struct {
	demoSk       int64
	incomeBandSk int64
	buyPotential string
	depCount     int32
	vehicleCount int32
	nullBitMap   int64
}

func (r *HouseholdDemographicsRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 5)
	b.addKey(r.demoSk)
	b.addKey(r.incomeBandSk)
	b.addString(r.buyPotential)
	b.addInt(r.depCount)
	b.addInt(r.vehicleCount)
	return b.build()
}

// HouseholdDemographicsRowGenerator enumerates the cartesian product of
// income band, buy potential, dependents and vehicles.
type HouseholdDemographicsRowGenerator struct {
	*abstractRowGenerator
}

func NewHouseholdDemographicsRowGenerator() (*HouseholdDemographicsRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.HouseholdDemographics, householdDemographicsColumns)
	if err != nil {
		return nil, err
	}
	return &HouseholdDemographicsRowGenerator{abstractRowGenerator: base}, nil
}

func (g *HouseholdDemographicsRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.HouseholdDemographics, g.Stream(hdNulls))

	index := rowNumber

	incomeBandSk := index%int64(distribution.IncomeBands().Size()) + 1
	index /= int64(distribution.IncomeBands().Size())

	buyPotential, err := distribution.BuyPotentials().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.BuyPotentials().Size())

	depCount, err := distribution.DepCounts().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.DepCounts().Size())

	vehicleCount, err := distribution.VehicleCounts().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}

	row := &HouseholdDemographicsRow{
		demoSk:       rowNumber,
		incomeBandSk: incomeBandSk,
		buyPotential: buyPotential,
		depCount:     depCount,
		vehicleCount: vehicleCount,
		nullBitMap:   nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
