package rowgen

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/address"
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/decimal"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the call_center table.
var (
	ccCallCenterSk   = GeneratorColumn{1, 0}
	ccCallCenterId   = GeneratorColumn{2, 15}
	ccRecStartDateId = GeneratorColumn{3, 10}
	ccRecEndDateId   = GeneratorColumn{4, 1}
	ccClosedDateId   = GeneratorColumn{5, 4}
	ccOpenDateId     = GeneratorColumn{6, 10}
	ccName           = GeneratorColumn{7, 0}
	ccClass          = GeneratorColumn{8, 2}
	ccEmployees      = GeneratorColumn{9, 1}
	ccSqFt           = GeneratorColumn{10, 1}
	ccHours          = GeneratorColumn{11, 1}
	ccManager        = GeneratorColumn{12, 2}
	ccMarketId       = GeneratorColumn{13, 1}
	ccMarketClass    = GeneratorColumn{14, 50}
	ccMarketDesc     = GeneratorColumn{15, 50}
	ccMarketManager  = GeneratorColumn{16, 2}
	ccDivision       = GeneratorColumn{17, 2}
	ccDivisionName   = GeneratorColumn{18, 2}
	ccCompany        = GeneratorColumn{19, 2}
	ccCompanyName    = GeneratorColumn{20, 2}
	ccStreetNumber   = GeneratorColumn{21, 0}
	ccStreetName     = GeneratorColumn{22, 0}
	ccStreetType     = GeneratorColumn{23, 0}
	ccSuiteNumber    = GeneratorColumn{24, 0}
	ccCity           = GeneratorColumn{25, 0}
	ccCounty         = GeneratorColumn{26, 0}
	ccState          = GeneratorColumn{27, 0}
	ccZip            = GeneratorColumn{28, 0}
	ccCountry        = GeneratorColumn{29, 0}
	ccGmtOffset      = GeneratorColumn{30, 0}
	ccAddress        = GeneratorColumn{31, 15}
	ccTaxPercentage  = GeneratorColumn{32, 1}
	ccScd            = GeneratorColumn{33, 1}
	ccNulls          = GeneratorColumn{34, 2}
)

var callCenterColumns = []GeneratorColumn{
	ccCallCenterSk, ccCallCenterId, ccRecStartDateId, ccRecEndDateId,
	ccClosedDateId, ccOpenDateId, ccName, ccClass, ccEmployees, ccSqFt,
	ccHours, ccManager, ccMarketId, ccMarketClass, ccMarketDesc,
	ccMarketManager, ccDivision, ccDivisionName, ccCompany, ccCompanyName,
	ccStreetNumber, ccStreetName, ccStreetType, ccSuiteNumber, ccCity,
	ccCounty, ccState, ccZip, ccCountry, ccGmtOffset, ccAddress,
	ccTaxPercentage, ccScd, ccNulls,
}

const (
	widthCcDivisionName          = 50
	widthCcMarketClass           = 50
	widthCcMarketDesc            = 100
	maxNumberOfEmployeesUnscaled = 7

	// 23 is the ordinal of the call_center table in the original schema.
	callCenterJulianDateStart = dsdate.JulianDataStartDate - 23
)

var (
	ccMinTaxPercentage = decimal.MustNew(0, 2)
	ccMaxTaxPercentage = decimal.MustNew(12, 2)
)

// CallCenterRow is one call_center row.
type CallCenterRow struct {
	callCenterSk   int64
	callCenterId   string
	recStartDateId int64
	recEndDateId   int64
	closedDateId   int64
	openDateId     int64
	name           string
	class          string
	employees      int32
	sqFt           int32
	hours          string
	manager        string
	marketId       int32
	marketClass    string
	marketDesc     string
	marketManager  string
	divisionId     int32
	divisionName   string
	company        int32
	companyName    string
	address        *address.Address
	taxPercentage  decimal.Decimal
	nullBitMap     int64
}

func (r *CallCenterRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 31)
	b.addKey(r.callCenterSk)
	b.addString(r.callCenterId)
	b.addJulianDate(r.recStartDateId)
	b.addJulianDate(r.recEndDateId)
	b.addKey(r.closedDateId)
	b.addKey(r.openDateId)
	b.addString(r.name)
	b.addString(r.class)
	b.addInt(r.employees)
	b.addInt(r.sqFt)
	b.addString(r.hours)
	b.addString(r.manager)
	b.addInt(r.marketId)
	b.addString(r.marketClass)
	b.addString(r.marketDesc)
	b.addString(r.marketManager)
	b.addInt(r.divisionId)
	b.addString(r.divisionName)
	b.addInt(r.company)
	b.addString(r.companyName)
	b.addInt(r.address.StreetNumber)
	b.addString(r.address.StreetName())
	b.addString(r.address.StreetType)
	b.addString(r.address.SuiteNumber)
	b.addString(r.address.City)
	b.addString(r.address.County)
	b.addString(r.address.State)
	b.addInt(r.address.Zip)
	b.addString(r.address.Country)
	b.addInt(r.address.GMTOffset)
	b.addDecimal(r.taxPercentage)
	return b.build()
}

// CallCenterRowGenerator emits call_center rows with type-2 history.
type CallCenterRowGenerator struct {
	*abstractRowGenerator
	previousRow *CallCenterRow
}

func NewCallCenterRowGenerator() (*CallCenterRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.CallCenter, callCenterColumns)
	if err != nil {
		return nil, err
	}
	return &CallCenterRowGenerator{abstractRowGenerator: base}, nil
}

func (g *CallCenterRowGenerator) GenerateRowAndChildRows(rowNumber int64, session *config.Session) (*Result, error) {
	row, err := g.generateRow(rowNumber, session)
	if err != nil {
		return nil, err
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}

func (g *CallCenterRowGenerator) generateRow(rowNumber int64, session *config.Session) (*CallCenterRow, error) {
	nullBitMap := keys.CreateNullBitMap(table.CallCenter, g.Stream(ccNulls))

	// The business key plus the revision dates identify one version of a
	// call center. Fields below only regenerate when the key is new or the
	// per-field change bit is clear.
	scdKey := keys.ComputeScdKey(table.CallCenter, rowNumber)
	isNewKey := scdKey.IsNewKey
	scaling := session.Scaling()

	var openDateId int64
	var name string
	var addr *address.Address
	if isNewKey {
		openDateRandom := random.UniformInt(-365, 0, g.Stream(ccOpenDateId))
		openDateId = callCenterJulianDateStart - int64(openDateRandom)

		callCenters := distribution.CallCenters()
		baseName, err := callCenters.ValueAtIndex(0, int(rowNumber%int64(callCenters.Size())))
		if err != nil {
			return nil, err
		}
		suffix := rowNumber / int64(callCenters.Size())
		name = baseName
		if suffix > 0 {
			name = fmt.Sprintf("%s_%d", baseName, suffix)
		}

		addr, err = address.MakeAddressForColumn(table.CallCenter, g.Stream(ccAddress), scaling)
		if err != nil {
			return nil, err
		}
	} else {
		if g.previousRow == nil {
			return nil, fmt.Errorf("call_center row %d revises a key before its first version", rowNumber)
		}
		openDateId = g.previousRow.openDateId
		name = g.previousRow.name
		addr = g.previousRow.address
	}

	fieldChangeFlags := int32(g.Stream(ccScd).Next())

	// The original C generator always regenerates string fields backed by
	// distributions, so class and hours ignore the change flag.
	class, err := distribution.PickRandomCallCenterClass(g.Stream(ccClass))
	if err != nil {
		return nil, err
	}
	fieldChangeFlags >>= 1

	scaleFactor := int32(ceilScale(scaling.Scale()))
	employees := random.UniformInt(1, maxNumberOfEmployeesUnscaled*scaleFactor*scaleFactor, g.Stream(ccEmployees))
	if g.previousRow != nil {
		employees = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.employees, employees)
	}
	fieldChangeFlags >>= 1

	sqFt := random.UniformInt(100, 700, g.Stream(ccSqFt)) * employees
	if g.previousRow != nil {
		sqFt = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.sqFt, sqFt)
	}
	fieldChangeFlags >>= 1

	hours, err := distribution.PickRandomCallCenterHours(g.Stream(ccHours))
	if err != nil {
		return nil, err
	}
	fieldChangeFlags >>= 1

	manager, err := pickRandomManager(session, g.Stream(ccManager))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		manager = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.manager, manager)
	}
	fieldChangeFlags >>= 1

	marketId := random.UniformInt(1, 6, g.Stream(ccMarketId))
	if g.previousRow != nil {
		marketId = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketId, marketId)
	}
	fieldChangeFlags >>= 1

	marketClass, err := distribution.RandomText(20, widthCcMarketClass, g.Stream(ccMarketClass))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		marketClass = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketClass, marketClass)
	}
	fieldChangeFlags >>= 1

	marketDesc, err := distribution.RandomText(20, widthCcMarketDesc, g.Stream(ccMarketDesc))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		marketDesc = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketDesc, marketDesc)
	}
	fieldChangeFlags >>= 1

	marketManager, err := pickRandomManager(session, g.Stream(ccMarketManager))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		marketManager = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketManager, marketManager)
	}
	fieldChangeFlags >>= 1

	company := random.UniformInt(1, 6, g.Stream(ccCompany))
	if g.previousRow != nil {
		company = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.company, company)
	}
	fieldChangeFlags >>= 1

	// The division draws from the company stream, as the original does.
	divisionId := random.UniformInt(1, 6, g.Stream(ccCompany))
	if g.previousRow != nil {
		divisionId = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.divisionId, divisionId)
	}
	fieldChangeFlags >>= 1

	divisionName := distribution.GenerateWord(int64(divisionId), widthCcDivisionName)
	if g.previousRow != nil {
		divisionName = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.divisionName, divisionName)
	}
	fieldChangeFlags >>= 1

	companyName := distribution.GenerateWord(int64(company), 10)
	if g.previousRow != nil {
		companyName = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.companyName, companyName)
	}
	fieldChangeFlags >>= 1

	taxPercentage := random.UniformDecimal(ccMinTaxPercentage, ccMaxTaxPercentage, g.Stream(ccTaxPercentage))
	if g.previousRow != nil {
		taxPercentage = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.taxPercentage, taxPercentage)
	}

	row := &CallCenterRow{
		callCenterSk:   rowNumber,
		callCenterId:   scdKey.BusinessKey,
		recStartDateId: scdKey.StartDate,
		recEndDateId:   scdKey.EndDate,
		closedDateId:   -1,
		openDateId:     openDateId,
		name:           name,
		class:          class,
		employees:      employees,
		sqFt:           sqFt,
		hours:          hours,
		manager:        manager,
		marketId:       marketId,
		marketClass:    marketClass,
		marketDesc:     marketDesc,
		marketManager:  marketManager,
		divisionId:     divisionId,
		divisionName:   divisionName,
		company:        company,
		companyName:    companyName,
		address:        addr,
		taxPercentage:  taxPercentage,
		nullBitMap:     nullBitMap,
	}
	g.previousRow = row
	return row, nil
}

// pickRandomManager draws a first and last name from one stream. The male
// frequency table is used unless the session disables the historical skew.
func pickRandomManager(session *config.Session, s *random.Stream) (string, error) {
	weights := distribution.FirstNamesGeneralFrequency
	if session.IsSexist() {
		weights = distribution.FirstNamesMaleFrequency
	}
	firstName, err := distribution.PickRandomFirstName(weights, s)
	if err != nil {
		return "", err
	}
	lastName, err := distribution.PickRandomLastName(s)
	if err != nil {
		return "", err
	}
	return firstName + " " + lastName, nil
}

func ceilScale(scale float64) int64 {
	n := int64(scale)
	if float64(n) < scale {
		n++
	}
	return n
}
