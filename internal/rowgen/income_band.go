package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the income_band table.
var (
	ibIncomeBandId = GeneratorColumn{194, 1}
	ibLowerBound   = GeneratorColumn{195, 1}
	ibUpperBound   = GeneratorColumn{196, 1}
	ibNulls        = GeneratorColumn{197, 2}
)

var incomeBandColumns = []GeneratorColumn{
	ibIncomeBandId, ibLowerBound, ibUpperBound, ibNulls,
}

// IncomeBandRow is one income_band row.
type IncomeBandRow struct {
	incomeBandId int32
	lowerBound   int32
	upperBound   int32
	nullBitMap   int64
}

func (r *IncomeBandRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 3)
	b.addInt(r.incomeBandId)
	b.addInt(r.lowerBound)
	b.addInt(r.upperBound)
	return b.build()
}

// IncomeBandRowGenerator reads the income band bounds straight from the
// distribution, one row per band.
type IncomeBandRowGenerator struct {
	*abstractRowGenerator
}

func NewIncomeBandRowGenerator() (*IncomeBandRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.IncomeBand, incomeBandColumns)
	if err != nil {
		return nil, err
	}
	return &IncomeBandRowGenerator{abstractRowGenerator: base}, nil
}

func (g *IncomeBandRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.IncomeBand, g.Stream(ibNulls))

	lowerBound, err := distribution.IncomeBands().ValueAtIndex(0, int(rowNumber-1))
	if err != nil {
		return nil, err
	}
	upperBound, err := distribution.IncomeBands().ValueAtIndex(1, int(rowNumber-1))
	if err != nil {
		return nil, err
	}

	row := &IncomeBandRow{
		incomeBandId: int32(rowNumber),
		lowerBound:   lowerBound,
		upperBound:   upperBound,
		nullBitMap:   nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
