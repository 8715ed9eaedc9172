package rowgen

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/address"
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the warehouse table.
var (
	wWarehouseSk      = GeneratorColumn{351, 1}
	wWarehouseId      = GeneratorColumn{352, 1}
	wWarehouseName    = GeneratorColumn{353, 80}
	wWarehouseSqFt    = GeneratorColumn{354, 1}
	wAddressStreetNum = GeneratorColumn{355, 1}
	wAddressStreet1   = GeneratorColumn{356, 1}
	wAddressStreeType = GeneratorColumn{357, 1}
	wAddressSuiteNum  = GeneratorColumn{358, 1}
	wAddressCity      = GeneratorColumn{359, 1}
	wAddressCounty    = GeneratorColumn{360, 1}
	wAddressState     = GeneratorColumn{361, 1}
	wAddressZip       = GeneratorColumn{362, 1}
	wAddressCountry   = GeneratorColumn{363, 1}
	wAddressGmtOffset = GeneratorColumn{364, 1}
	wNulls            = GeneratorColumn{365, 2}
	wWarehouseAddress = GeneratorColumn{366, 7}
)

var warehouseColumns = []GeneratorColumn{
	wWarehouseSk, wWarehouseId, wWarehouseName, wWarehouseSqFt,
	wAddressStreetNum, wAddressStreet1, wAddressStreeType, wAddressSuiteNum,
	wAddressCity, wAddressCounty, wAddressState, wAddressZip,
	wAddressCountry, wAddressGmtOffset, wNulls, wWarehouseAddress,
}

// WarehouseRow is one warehouse row.
type WarehouseRow struct {
	warehouseSk   int64
	warehouseId   string
	warehouseName string
	warehouseSqFt int32
	address       *address.Address
	nullBitMap    int64
}

func (r *WarehouseRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 14)
	b.addKey(r.warehouseSk)
	b.addString(r.warehouseId)
	b.addString(r.warehouseName)
	b.addInt(r.warehouseSqFt)
	b.addInt(r.address.StreetNumber)
	b.addString(r.address.StreetName())
	b.addString(r.address.StreetType)
	b.addString(r.address.SuiteNumber)
	b.addString(r.address.City)
	b.addString(r.address.County)
	b.addString(r.address.State)
	b.addString(fmt.Sprintf("%05d", r.address.Zip))
	b.addString(r.address.Country)
	b.addInt(r.address.GMTOffset)
	return b.build()
}

// WarehouseRowGenerator emits warehouse rows.
type WarehouseRowGenerator struct {
	*abstractRowGenerator
}

func NewWarehouseRowGenerator() (*WarehouseRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.Warehouse, warehouseColumns)
	if err != nil {
		return nil, err
	}
	return &WarehouseRowGenerator{abstractRowGenerator: base}, nil
}

func (g *WarehouseRowGenerator) GenerateRowAndChildRows(rowNumber int64, session *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.Warehouse, g.Stream(wNulls))

	name, err := distribution.RandomText(10, 20, g.Stream(wWarehouseName))
	if err != nil {
		return nil, err
	}

	sqFt := random.UniformInt(50000, 1000000, g.Stream(wWarehouseSqFt))

	addr, err := address.MakeAddressForColumn(table.Warehouse, g.Stream(wWarehouseAddress), session.Scaling())
	if err != nil {
		return nil, err
	}

	row := &WarehouseRow{
		warehouseSk:   rowNumber,
		warehouseId:   keys.MakeBusinessKey(rowNumber),
		warehouseName: name,
		warehouseSqFt: sqFt,
		address:       addr,
		nullBitMap:    nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
