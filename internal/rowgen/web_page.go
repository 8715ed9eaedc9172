package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the web_page table.
var (
	wpPageSk         = GeneratorColumn{367, 1}
	wpPageId         = GeneratorColumn{368, 1}
	wpRecStartDateId = GeneratorColumn{369, 1}
	wpRecEndDateId   = GeneratorColumn{370, 1}
	wpCreationDateSk = GeneratorColumn{371, 2}
	wpAccessDateSk   = GeneratorColumn{372, 1}
	wpAutogenFlag    = GeneratorColumn{373, 1}
	wpCustomerSk     = GeneratorColumn{374, 1}
	wpUrl            = GeneratorColumn{375, 1}
	wpType           = GeneratorColumn{376, 1}
	wpCharCount      = GeneratorColumn{377, 1}
	wpLinkCount      = GeneratorColumn{378, 1}
	wpImageCount     = GeneratorColumn{379, 1}
	wpMaxAdCount     = GeneratorColumn{380, 1}
	wpNulls          = GeneratorColumn{381, 2}
	wpScd            = GeneratorColumn{382, 1}
)

var webPageColumns = []GeneratorColumn{
	wpPageSk, wpPageId, wpRecStartDateId, wpRecEndDateId, wpCreationDateSk,
	wpAccessDateSk, wpAutogenFlag, wpCustomerSk, wpUrl, wpType, wpCharCount,
	wpLinkCount, wpImageCount, wpMaxAdCount, wpNulls, wpScd,
}

const wpAutogenPercent = 30

// WebPageRow is one web_page row.
type WebPageRow struct {
	pageSk         int64
	pageId         string
	recStartDateId int64
	recEndDateId   int64
	creationDateSk int64
	accessDateSk   int64
	autogenFlag    bool
	customerSk     int64
	url            string
	pageType       string
	charCount      int32
	linkCount      int32
	imageCount     int32
	maxAdCount     int32
	nullBitMap     int64
}

func (r *WebPageRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 14)
	b.addKey(r.pageSk)
	b.addString(r.pageId)
	b.addJulianDate(r.recStartDateId)
	b.addJulianDate(r.recEndDateId)
	b.addKey(r.creationDateSk)
	b.addKey(r.accessDateSk)
	b.addBool(r.autogenFlag)
	b.addKey(r.customerSk)
	b.addString(r.url)
	b.addString(r.pageType)
	b.addInt(r.charCount)
	b.addInt(r.linkCount)
	b.addInt(r.imageCount)
	b.addInt(r.maxAdCount)
	return b.build()
}

// WebPageRowGenerator emits web_page rows with type-2 history.
type WebPageRowGenerator struct {
	*abstractRowGenerator
	previousRow *WebPageRow
}

func NewWebPageRowGenerator() (*WebPageRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.WebPage, webPageColumns)
	if err != nil {
		return nil, err
	}
	return &WebPageRowGenerator{abstractRowGenerator: base}, nil
}

func (g *WebPageRowGenerator) GenerateRowAndChildRows(rowNumber int64, session *config.Session) (*Result, error) {
	scaling := session.Scaling()
	nullBitMap := keys.CreateNullBitMap(table.WebPage, g.Stream(wpNulls))

	scdKey := keys.ComputeScdKey(table.WebPage, rowNumber)
	isNewKey := scdKey.IsNewKey

	fieldChangeFlags := int32(g.Stream(wpScd).Next())

	creationDateSk, err := keys.GenerateJoinKey(
		keys.JoinSource{Table: table.WebPage, WebDate: keys.WebDateCreation},
		g.Stream(wpCreationDateSk), table.DateDim, rowNumber, scaling)
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		creationDateSk = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.creationDateSk, creationDateSk)
	}
	fieldChangeFlags >>= 1

	lastAccess := random.UniformInt(0, 100, g.Stream(wpAccessDateSk))
	accessDateSk := int64(dsdate.JulianTodaysDate) - int64(lastAccess)
	if g.previousRow != nil {
		accessDateSk = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.accessDateSk, accessDateSk)
	}
	fieldChangeFlags >>= 1

	autogenFlag := random.UniformInt(0, 99, g.Stream(wpAutogenFlag)) < wpAutogenPercent
	if g.previousRow != nil {
		autogenFlag = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.autogenFlag, autogenFlag)
	}
	fieldChangeFlags >>= 1

	customerSk, err := keys.GenerateJoinKey(
		keys.JoinSource{Table: table.WebPage}, g.Stream(wpCustomerSk), table.Customer, 1, scaling)
	if err != nil {
		return nil, err
	}
	if g.previousRow != nil {
		customerSk = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.customerSk, customerSk)
	}
	fieldChangeFlags >>= 1

	// The URL is constant, so the change flag is consumed without a check.
	url := distribution.RandomURL(g.Stream(wpUrl))
	fieldChangeFlags >>= 1

	// The original C code never carries the type forward; every revision
	// draws a fresh one.
	pageType, err := distribution.PickRandomWebPageUse(g.Stream(wpType))
	if err != nil {
		return nil, err
	}
	fieldChangeFlags >>= 1

	linkCount := random.UniformInt(2, 25, g.Stream(wpLinkCount))
	if g.previousRow != nil {
		linkCount = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.linkCount, linkCount)
	}
	fieldChangeFlags >>= 1

	imageCount := random.UniformInt(1, 7, g.Stream(wpImageCount))
	if g.previousRow != nil {
		imageCount = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.imageCount, imageCount)
	}
	fieldChangeFlags >>= 1

	maxAdCount := random.UniformInt(0, 4, g.Stream(wpMaxAdCount))
	if g.previousRow != nil {
		maxAdCount = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.maxAdCount, maxAdCount)
	}
	fieldChangeFlags >>= 1

	charCount := random.UniformInt(linkCount*125+imageCount*50, linkCount*300+imageCount*150, g.Stream(wpCharCount))
	if g.previousRow != nil {
		charCount = keys.ValueForSlowlyChangingDimension(fieldChangeFlags, isNewKey, g.previousRow.charCount, charCount)
	}

	// The carried-forward row keeps the drawn customer key even when the
	// emitted row blanks it for manually maintained pages.
	g.previousRow = &WebPageRow{
		pageSk:         rowNumber,
		pageId:         scdKey.BusinessKey,
		recStartDateId: scdKey.StartDate,
		recEndDateId:   scdKey.EndDate,
		creationDateSk: creationDateSk,
		accessDateSk:   accessDateSk,
		autogenFlag:    autogenFlag,
		customerSk:     customerSk,
		url:            url,
		pageType:       pageType,
		charCount:      charCount,
		linkCount:      linkCount,
		imageCount:     imageCount,
		maxAdCount:     maxAdCount,
		nullBitMap:     nullBitMap,
	}

	emittedCustomerSk := customerSk
	if !autogenFlag {
		emittedCustomerSk = -1
	}
	row := &WebPageRow{
		pageSk:         rowNumber,
		pageId:         scdKey.BusinessKey,
		recStartDateId: scdKey.StartDate,
		recEndDateId:   scdKey.EndDate,
		creationDateSk: creationDateSk,
		accessDateSk:   accessDateSk,
		autogenFlag:    autogenFlag,
		customerSk:     emittedCustomerSk,
		url:            url,
		pageType:       pageType,
		charCount:      charCount,
		linkCount:      linkCount,
		imageCount:     imageCount,
		maxAdCount:     maxAdCount,
		nullBitMap:     nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
