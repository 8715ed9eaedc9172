package rowgen

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/address"
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/decimal"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the web_site table.
var (
	webSiteSk            = GeneratorColumn{447, 1}
	webSiteId            = GeneratorColumn{448, 1}
	webRecStartDateId    = GeneratorColumn{449, 1}
	webRecEndDateId      = GeneratorColumn{450, 1}
	webName              = GeneratorColumn{451, 1}
	webOpenDate          = GeneratorColumn{452, 1}
	webCloseDate         = GeneratorColumn{453, 1}
	webClass             = GeneratorColumn{454, 1}
	webManager           = GeneratorColumn{455, 2}
	webMarketId          = GeneratorColumn{456, 1}
	webMarketClass       = GeneratorColumn{457, 20}
	webMarketDesc        = GeneratorColumn{458, 100}
	webMarketManager     = GeneratorColumn{459, 2}
	webCompanyId         = GeneratorColumn{460, 1}
	webCompanyName       = GeneratorColumn{461, 1}
	webAddressStreetNum  = GeneratorColumn{462, 1}
	webAddressStreet1    = GeneratorColumn{463, 1}
	webAddressStreetType = GeneratorColumn{464, 1}
	webAddressSuiteNum   = GeneratorColumn{465, 1}
	webAddressCity       = GeneratorColumn{466, 1}
	webAddressCounty     = GeneratorColumn{467, 1}
	webAddressState      = GeneratorColumn{468, 1}
	webAddressZip        = GeneratorColumn{469, 1}
	webAddressCountry    = GeneratorColumn{470, 1}
	webAddressGmtOffset  = GeneratorColumn{471, 1}
	webTaxPercentage     = GeneratorColumn{472, 1}
	webNulls             = GeneratorColumn{473, 2}
	webAddress           = GeneratorColumn{474, 7}
	webScd               = GeneratorColumn{475, 70}
)

var webSiteColumns = []GeneratorColumn{
	webSiteSk, webSiteId, webRecStartDateId, webRecEndDateId, webName,
	webOpenDate, webCloseDate, webClass, webManager, webMarketId,
	webMarketClass, webMarketDesc, webMarketManager, webCompanyId,
	webCompanyName, webAddressStreetNum, webAddressStreet1,
	webAddressStreetType, webAddressSuiteNum, webAddressCity,
	webAddressCounty, webAddressState, webAddressZip, webAddressCountry,
	webAddressGmtOffset, webTaxPercentage, webNulls, webAddress, webScd,
}

var webMaxTaxPercentage = decimal.MustNew(12, 2)

// WebSiteRow is one web_site row.
type WebSiteRow struct {
	siteSk         int64
	siteId         string
	recStartDateId int64
	recEndDateId   int64
	name           string
	openDate       int64
	closeDate      int64
	class          string
	manager        string
	marketId       int32
	marketClass    string
	marketDesc     string
	marketManager  string
	companyId      int32
	companyName    string
	address        *address.Address
	taxPercentage  decimal.Decimal
	nullBitMap     int64
}

func (r *WebSiteRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 26)
	b.addKey(r.siteSk)
	b.addString(r.siteId)
	b.addJulianDate(r.recStartDateId)
	b.addJulianDate(r.recEndDateId)
	b.addString(r.name)
	b.addKey(r.openDate)
	b.addKey(r.closeDate)
	b.addString(r.class)
	b.addString(r.manager)
	b.addInt(r.marketId)
	b.addString(r.marketClass)
	b.addString(r.marketDesc)
	b.addString(r.marketManager)
	b.addInt(r.companyId)
	b.addString(r.companyName)
	b.addString(fmt.Sprintf("%d", r.address.StreetNumber))
	b.addString(r.address.StreetName())
	b.addString(r.address.StreetType)
	b.addString(r.address.SuiteNumber)
	b.addString(r.address.City)
	b.addString(r.address.County)
	b.addString(r.address.State)
	b.addString(fmt.Sprintf("%05d", r.address.Zip))
	b.addString(r.address.Country)
	b.addInt(r.address.GMTOffset)
	b.addDecimal(r.taxPercentage)
	return b.build()
}

// WebSiteRowGenerator emits web_site rows with type-2 history and staggered
// open and close dates.
type WebSiteRowGenerator struct {
	*abstractRowGenerator
	previousRow *WebSiteRow
}

func NewWebSiteRowGenerator() (*WebSiteRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.WebSite, webSiteColumns)
	if err != nil {
		return nil, err
	}
	return &WebSiteRowGenerator{abstractRowGenerator: base}, nil
}

func (g *WebSiteRowGenerator) GenerateRowAndChildRows(rowNumber int64, session *config.Session) (*Result, error) {
	scaling := session.Scaling()
	nullBitMap := keys.CreateNullBitMap(table.WebSite, g.Stream(webNulls))

	scdKey := keys.ComputeScdKey(table.WebSite, rowNumber)
	isNewKey := scdKey.IsNewKey

	var openDate, closeDate int64
	var name string
	if isNewKey {
		var err error
		openDate, err = keys.GenerateJoinKey(
			keys.JoinSource{Table: table.WebSite, WebDate: keys.WebDateOpen},
			g.Stream(webOpenDate), table.DateDim, rowNumber, scaling)
		if err != nil {
			return nil, err
		}
		closeDate, err = keys.GenerateJoinKey(
			keys.JoinSource{Table: table.WebSite, WebDate: keys.WebDateClose},
			g.Stream(webCloseDate), table.DateDim, rowNumber, scaling)
		if err != nil {
			return nil, err
		}
		if closeDate > scdKey.EndDate {
			closeDate = -1
		}
		name = fmt.Sprintf("site_%d", rowNumber/6)
	} else {
		if g.previousRow == nil {
			return nil, fmt.Errorf("web_site row %d revises a key before its first version", rowNumber)
		}
		openDate = g.previousRow.openDate
		closeDate = g.previousRow.closeDate
		name = g.previousRow.name
	}

	fieldChangeFlags := int32(g.Stream(webScd).Next())

	manager, err := pickRandomManager(session, g.Stream(webManager))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		manager = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.manager, manager)
	}
	fieldChangeFlags >>= 1

	marketId := random.UniformInt(1, 6, g.Stream(webMarketId))
	if g.previousRow != nil {
		marketId = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketId, marketId)
	}
	fieldChangeFlags >>= 1

	marketClass, err := distribution.RandomText(20, 50, g.Stream(webMarketClass))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		marketClass = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketClass, marketClass)
	}
	fieldChangeFlags >>= 1

	marketDesc, err := distribution.RandomText(20, 100, g.Stream(webMarketDesc))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		marketDesc = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketDesc, marketDesc)
	}
	fieldChangeFlags >>= 1

	marketManager, err := pickRandomManager(session, g.Stream(webMarketManager))
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		marketManager = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.marketManager, marketManager)
	}
	fieldChangeFlags >>= 1

	companyId := random.UniformInt(1, 6, g.Stream(webCompanyId))
	if g.previousRow != nil {
		companyId = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.companyId, companyId)
	}
	fieldChangeFlags >>= 1

	companyName := distribution.GenerateWord(int64(companyId), 100)
	if g.previousRow != nil {
		companyName = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.companyName, companyName)
	}
	fieldChangeFlags >>= 1

	addr, err := address.MakeAddressForColumn(table.WebSite, g.Stream(webAddress), scaling)
	if err != nil {
		return nil, err
	}

	// The original C generator never carries the string address fields
	// forward, so only the numeric ones consult the change flags. The flag
	// bits for the string fields are still consumed.
	fieldChangeFlags >>= 1 // city
	fieldChangeFlags >>= 1 // county

	gmtOffset := addr.GMTOffset
	if g.previousRow != nil {
		gmtOffset = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.address.GMTOffset, gmtOffset)
	}
	fieldChangeFlags >>= 1

	fieldChangeFlags >>= 1 // state
	fieldChangeFlags >>= 1 // street type
	fieldChangeFlags >>= 1 // street name 1
	fieldChangeFlags >>= 1 // street name 2

	streetNumber := addr.StreetNumber
	if g.previousRow != nil {
		streetNumber = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.address.StreetNumber, streetNumber)
	}
	fieldChangeFlags >>= 1

	zip := addr.Zip
	if g.previousRow != nil {
		zip = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.address.Zip, zip)
	}
	fieldChangeFlags >>= 1

	addr.StreetNumber = streetNumber
	addr.Zip = zip
	addr.GMTOffset = gmtOffset

	taxPercentage := random.UniformDecimal(decimal.Zero, webMaxTaxPercentage, g.Stream(webTaxPercentage))
	if g.previousRow != nil {
		taxPercentage = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.taxPercentage, taxPercentage)
	}

	row := &WebSiteRow{
		siteSk:         rowNumber,
		siteId:         scdKey.BusinessKey,
		recStartDateId: scdKey.StartDate,
		recEndDateId:   scdKey.EndDate,
		name:           name,
		openDate:       openDate,
		closeDate:      closeDate,
		class:          "Unknown",
		manager:        manager,
		marketId:       marketId,
		marketClass:    marketClass,
		marketDesc:     marketDesc,
		marketManager:  marketManager,
		companyId:      companyId,
		companyName:    companyName,
		address:        addr,
		taxPercentage:  taxPercentage,
		nullBitMap:     nullBitMap,
	}
	g.previousRow = row
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
