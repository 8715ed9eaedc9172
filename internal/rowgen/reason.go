package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the reason table.
var (
	rReasonSk          = GeneratorColumn{248, 1}
	rReasonId          = GeneratorColumn{249, 1}
	rReasonDescription = GeneratorColumn{250, 1}
	rNulls             = GeneratorColumn{251, 2}
)

var reasonColumns = []GeneratorColumn{
	rReasonSk, rReasonId, rReasonDescription, rNulls,
}

// ReasonRow is one reason row.
type ReasonRow struct {
	reasonSk          int64
	reasonId          string
	reasonDescription string
	nullBitMap        int64
}

func (r *ReasonRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 3)
	b.addKey(r.reasonSk)
	b.addString(r.reasonId)
	b.addString(r.reasonDescription)
	return b.build()
}

// ReasonRowGenerator reads return reasons straight from the distribution.
type ReasonRowGenerator struct {
	*abstractRowGenerator
}

func NewReasonRowGenerator() (*ReasonRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.Reason, reasonColumns)
	if err != nil {
		return nil, err
	}
	return &ReasonRowGenerator{abstractRowGenerator: base}, nil
}

func (g *ReasonRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.Reason, g.Stream(rNulls))

	description, err := distribution.ReturnReasons().ValueAtIndex(0, int(rowNumber-1))
	if err != nil {
		return nil, err
	}

	row := &ReasonRow{
		reasonSk:          rowNumber,
		reasonId:          keys.MakeBusinessKey(rowNumber),
		reasonDescription: description,
		nullBitMap:        nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
