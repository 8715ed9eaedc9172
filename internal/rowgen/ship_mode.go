package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the ship_mode table.
var (
	smShipModeSk = GeneratorColumn{252, 1}
	smShipModeId = GeneratorColumn{253, 1}
	smType       = GeneratorColumn{254, 1}
	smCode       = GeneratorColumn{255, 1}
	smContract   = GeneratorColumn{256, 21}
	smCarrier    = GeneratorColumn{257, 1}
	smNulls      = GeneratorColumn{258, 2}
)

var shipModeColumns = []GeneratorColumn{
	smShipModeSk, smShipModeId, smType, smCode, smContract, smCarrier, smNulls,
}

// ShipModeRow is one ship_mode row.
type ShipModeRow struct {
	shipModeSk int64
	shipModeId string
	shipType   string
	code       string
	carrier    string
	contract   string
	nullBitMap int64
}

func (r *ShipModeRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 6)
	b.addKey(r.shipModeSk)
	b.addString(r.shipModeId)
	b.addString(r.shipType)
	b.addString(r.code)
	b.addString(r.carrier)
	b.addString(r.contract)
	return b.build()
}

// ShipModeRowGenerator crosses the type and code distributions by index and
// assigns one carrier per row.
type ShipModeRowGenerator struct {
	*abstractRowGenerator
}

func NewShipModeRowGenerator() (*ShipModeRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.ShipMode, shipModeColumns)
	if err != nil {
		return nil, err
	}
	return &ShipModeRowGenerator{abstractRowGenerator: base}, nil
}

func (g *ShipModeRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.ShipMode, g.Stream(smNulls))

	shipType, err := distribution.ShipModeTypes().ValueForIndexModSize(rowNumber, 0)
	if err != nil {
		return nil, err
	}
	index := rowNumber / int64(distribution.ShipModeTypes().Size())

	code, err := distribution.ShipModeCodes().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}

	carrier, err := distribution.ShipModeCarriers().ValueAtIndex(0, int(rowNumber-1))
	if err != nil {
		return nil, err
	}

	contract := random.RandomCharset(random.AlphaNumeric, 1, 20, g.Stream(smContract))

	row := &ShipModeRow{
		shipModeSk: rowNumber,
		shipModeId: keys.MakeBusinessKey(rowNumber),
		shipType:   shipType,
		code:       code,
		carrier:    carrier,
		contract:   contract,
		nullBitMap: nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
