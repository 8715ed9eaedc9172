package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/decimal"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/dsdate"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/random"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the promotion table.
var (
	pPromoSk        = GeneratorColumn{228, 1}
	pPromoId        = GeneratorColumn{229, 1}
	pStartDateId    = GeneratorColumn{230, 1}
	pEndDateId      = GeneratorColumn{231, 1}
	pItemSk         = GeneratorColumn{232, 1}
	pCost           = GeneratorColumn{233, 1}
	pResponseTarget = GeneratorColumn{234, 1}
	pPromoName      = GeneratorColumn{235, 1}
	pChannelDmail   = GeneratorColumn{236, 1}
	pChannelEmail   = GeneratorColumn{237, 1}
	pChannelCatalog = GeneratorColumn{238, 1}
	pChannelTv      = GeneratorColumn{239, 1}
	pChannelRadio   = GeneratorColumn{240, 1}
	pChannelPress   = GeneratorColumn{241, 1}
	pChannelEvent   = GeneratorColumn{242, 1}
	pChannelDemo    = GeneratorColumn{243, 1}
	pChannelDetails = GeneratorColumn{244, 100}
	pPurpose        = GeneratorColumn{245, 1}
	pDiscountActive = GeneratorColumn{246, 1}
	pNulls          = GeneratorColumn{247, 2}
)

var promotionColumns = []GeneratorColumn{
	pPromoSk, pPromoId, pStartDateId, pEndDateId, pItemSk, pCost,
	pResponseTarget, pPromoName, pChannelDmail, pChannelEmail,
	pChannelCatalog, pChannelTv, pChannelRadio, pChannelPress,
	pChannelEvent, pChannelDemo, pChannelDetails, pPurpose,
	pDiscountActive, pNulls,
}

const (
	promoStartMin        = -720
	promoStartMax        = 100
	promoLengthMin       = 1
	promoLengthMax       = 60
	promoNameLength      = 5
	promoDetailLengthMin = 20
	promoDetailLengthMax = 60
)

var promoCost = decimal.MustNew(100000, 2)

// PromotionRow is one promotion row.
type PromotionRow struct {
	promoSk        int64
	promoId        string
	startDateId    int64
	endDateId      int64
	itemSk         int64
	cost           decimal.Decimal
	responseTarget int32
	promoName      string
	channelDmail   bool
	channelEmail   bool
	channelCatalog bool
	channelTv      bool
	channelRadio   bool
	channelPress   bool
	channelEvent   bool
	channelDemo    bool
	channelDetails string
	purpose        string
	discountActive bool
	nullBitMap     int64
}

func (r *PromotionRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 19)
	b.addKey(r.promoSk)
	b.addString(r.promoId)
	b.addKey(r.startDateId)
	b.addKey(r.endDateId)
	b.addKey(r.itemSk)
	b.addDecimal(r.cost)
	b.addInt(r.responseTarget)
	b.addString(r.promoName)
	b.addBool(r.channelDmail)
	b.addBool(r.channelEmail)
	b.addBool(r.channelCatalog)
	b.addBool(r.channelTv)
	b.addBool(r.channelRadio)
	b.addBool(r.channelPress)
	b.addBool(r.channelEvent)
	b.addBool(r.channelDemo)
	b.addString(r.channelDetails)
	b.addString(r.purpose)
	b.addBool(r.discountActive)
	return b.build()
}

// PromotionRowGenerator emits promotion rows.
type PromotionRowGenerator struct {
	*abstractRowGenerator
}

func NewPromotionRowGenerator() (*PromotionRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.Promotion, promotionColumns)
	if err != nil {
		return nil, err
	}
	return &PromotionRowGenerator{abstractRowGenerator: base}, nil
}

func (g *PromotionRowGenerator) GenerateRowAndChildRows(rowNumber int64, session *config.Session) (*Result, error) {
	scaling := session.Scaling()
	nullBitMap := keys.CreateNullBitMap(table.Promotion, g.Stream(pNulls))

	startDateId := int64(dsdate.JulianDateMinimum) +
		int64(random.UniformInt(promoStartMin, promoStartMax, g.Stream(pStartDateId)))
	endDateId := startDateId +
		int64(random.UniformInt(promoLengthMin, promoLengthMax, g.Stream(pEndDateId)))

	itemSk, err := keys.GenerateJoinKey(
		keys.JoinSource{Table: table.Promotion}, g.Stream(pItemSk), table.Item, 1, scaling)
	if err != nil {
		return nil, err
	}

	promoName := distribution.GenerateWord(rowNumber, promoNameLength)

	// One draw covers all nine channel flags. The shift direction follows
	// the original, which zeroes the tested bit for every flag after the
	// first.
	flags := random.UniformInt(0, 511, g.Stream(pChannelDmail))
	channelDmail := flags&0x01 != 0
	flags <<= 1
	channelEmail := flags&0x01 != 0
	flags <<= 1
	channelCatalog := flags&0x01 != 0
	flags <<= 1
	channelTv := flags&0x01 != 0
	flags <<= 1
	channelRadio := flags&0x01 != 0
	flags <<= 1
	channelPress := flags&0x01 != 0
	flags <<= 1
	channelEvent := flags&0x01 != 0
	flags <<= 1
	channelDemo := flags&0x01 != 0
	flags <<= 1
	discountActive := flags&0x01 != 0

	channelDetails, err := distribution.RandomText(promoDetailLengthMin, promoDetailLengthMax, g.Stream(pChannelDetails))
	if err != nil {
		return nil, err
	}

	row := &PromotionRow{
		promoSk:        rowNumber,
		promoId:        keys.MakeBusinessKey(rowNumber),
		startDateId:    startDateId,
		endDateId:      endDateId,
		itemSk:         itemSk,
		cost:           promoCost,
		responseTarget: 1,
		promoName:      promoName,
		channelDmail:   channelDmail,
		channelEmail:   channelEmail,
		channelCatalog: channelCatalog,
		channelTv:      channelTv,
		channelRadio:   channelRadio,
		channelPress:   channelPress,
		channelEvent:   channelEvent,
		channelDemo:    channelDemo,
		channelDetails: channelDetails,
		purpose:        "Unknown",
		discountActive: discountActive,
		nullBitMap:     nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
