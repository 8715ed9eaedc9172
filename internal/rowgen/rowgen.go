package rowgen

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// GeneratorColumn identifies one random-number stream of a table. The global
// number fixes the stream's seed offset; seedsPerRow is the per-row draw
// budget every stream must consume to stay aligned across rows.
type GeneratorColumn struct {
	GlobalNumber int32
	SeedsPerRow  int32
}

// TableRow is one generated row, formatted on demand.
type TableRow interface {
	// Values returns the row's columns in output order. Null columns render
	// as nullString.
	Values(nullString string) []string
}

// Result is the output of generating one row number.
type Result struct {
	Rows         []TableRow
	ShouldEndRow bool
}

// RowGenerator produces the rows of a single table.
type RowGenerator interface {
	// GenerateRowAndChildRows produces the rows for the given 1-based row
	// number. Callers must invoke ConsumeRemainingSeedsForRow after every
	// call once ShouldEndRow is true.
	GenerateRowAndChildRows(rowNumber int64, session *config.Session) (*Result, error)

	// ConsumeRemainingSeedsForRow pads every stream to its per-row budget
	// and resets the per-row counts.
	ConsumeRemainingSeedsForRow()

	// SkipRowsUntilStartingRowNumber advances every stream past the rows
	// another chunk generates.
	SkipRowsUntilStartingRowNumber(startingRowNumber int64)
}

// NewRowGenerator returns the generator for a dimension table.
func NewRowGenerator(t table.Table) (RowGenerator, error) {
	switch t {
	case table.CallCenter:
		return NewCallCenterRowGenerator()
	case table.CustomerDemographics:
		return NewCustomerDemographicsRowGenerator()
	case table.DateDim:
		return NewDateDimRowGenerator()
	case table.HouseholdDemographics:
		return NewHouseholdDemographicsRowGenerator()
	case table.IncomeBand:
		return NewIncomeBandRowGenerator()
	case table.Promotion:
		return NewPromotionRowGenerator()
	case table.Reason:
		return NewReasonRowGenerator()
	case table.ShipMode:
		return NewShipModeRowGenerator()
	case table.TimeDim:
		return NewTimeDimRowGenerator()
	case table.Warehouse:
		return NewWarehouseRowGenerator()
	case table.WebPage:
		return NewWebPageRowGenerator()
	case table.WebSite:
		return NewWebSiteRowGenerator()
	}
	return nil, fmt.Errorf("no row generator for table %s", t.Name())
}

// abstractRowGenerator owns the per-column streams of one table. Streams are
// created up front so skipping and per-row seed accounting cover every
// column, including those a given row never draws from.
type abstractRowGenerator struct {
	table   table.Table
	columns []GeneratorColumn
	streams map[int32]*random.Stream
}

func newAbstractRowGenerator(t table.Table, columns []GeneratorColumn) (*abstractRowGenerator, error) {
	streams := make(map[int32]*random.Stream, len(columns))
	for _, column := range columns {
		stream, err := random.NewStreamForColumn(column.GlobalNumber, column.SeedsPerRow)
		if err != nil {
			return nil, fmt.Errorf("creating stream for column %d of %s: %w",
				column.GlobalNumber, t.Name(), err)
		}
		streams[column.GlobalNumber] = stream
	}
	return &abstractRowGenerator{table: t, columns: columns, streams: streams}, nil
}

func (g *abstractRowGenerator) Stream(column GeneratorColumn) *random.Stream {
	return g.streams[column.GlobalNumber]
}

func (g *abstractRowGenerator) ConsumeRemainingSeedsForRow() {
	for _, stream := range g.streams {
		for stream.SeedsUsed() < stream.SeedsPerRow() {
			random.UniformInt(1, 100, stream)
		}
		stream.ResetSeedsUsed()
	}
}

func (g *abstractRowGenerator) SkipRowsUntilStartingRowNumber(startingRowNumber int64) {
	for _, stream := range g.streams {
		stream.SkipRows(startingRowNumber - 1)
	}
}
