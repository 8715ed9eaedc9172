package rowgen

import (
	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/distribution"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Generator columns of the customer_demographics table.
var (
	cdDemoSk           = GeneratorColumn{149, 1}
	cdGender           = GeneratorColumn{150, 1}
	cdMaritalStatus    = GeneratorColumn{151, 1}
	cdEducationStatus  = GeneratorColumn{152, 1}
	cdPurchaseEstimate = GeneratorColumn{153, 1}
	cdCreditRating     = GeneratorColumn{154, 1}
	cdDepCount         = GeneratorColumn{155, 1}
	cdDepEmployedCount = GeneratorColumn{156, 1}
	cdDepCollegeCount  = GeneratorColumn{157, 1}
	cdNulls            = GeneratorColumn{158, 2}
)

var customerDemographicsColumns = []GeneratorColumn{
	cdDemoSk, cdGender, cdMaritalStatus, cdEducationStatus,
	cdPurchaseEstimate, cdCreditRating, cdDepCount, cdDepEmployedCount,
	cdDepCollegeCount, cdNulls,
}

const (
	cdMaxChildren = 7
	cdMaxEmployed = 7
	cdMaxCollege  = 7
)

// CustomerDemographicsRow is one customer_demographics row.
type CustomerDemographicsRow struct {
	demoSk           int64
	gender           string
	maritalStatus    string
	educationStatus  string
	purchaseEstimate int32
	creditRating     string
	depCount         int32
	depEmployedCount int32
	depCollegeCount  int32
	nullBitMap       int64
}

func (r *CustomerDemographicsRow) Values(nullString string) []string {
	b := newValueBuilder(r.nullBitMap, nullString, 9)
	b.addKey(r.demoSk)
	b.addString(r.gender)
	b.addString(r.maritalStatus)
	b.addString(r.educationStatus)
	b.addInt(r.purchaseEstimate)
	b.addString(r.creditRating)
	b.addInt(r.depCount)
	b.addInt(r.depEmployedCount)
	b.addInt(r.depCollegeCount)
	return b.build()
}

// CustomerDemographicsRowGenerator enumerates the cartesian product of the
// demographic attribute sets; the surrogate key is a mixed-radix index into
// that product.
type CustomerDemographicsRowGenerator struct {
	*abstractRowGenerator
}

func NewCustomerDemographicsRowGenerator() (*CustomerDemographicsRowGenerator, error) {
	base, err := newAbstractRowGenerator(table.CustomerDemographics, customerDemographicsColumns)
	if err != nil {
		return nil, err
	}
	return &CustomerDemographicsRowGenerator{abstractRowGenerator: base}, nil
}

func (g *CustomerDemographicsRowGenerator) GenerateRowAndChildRows(rowNumber int64, _ *config.Session) (*Result, error) {
	nullBitMap := keys.CreateNullBitMap(table.CustomerDemographics, g.Stream(cdNulls))

	index := rowNumber - 1

	gender, err := distribution.Genders().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.Genders().Size())

	maritalStatus, err := distribution.MaritalStatuses().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.MaritalStatuses().Size())

	educationStatus, err := distribution.EducationLevels().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.EducationLevels().Size())

	purchaseEstimate, err := distribution.PurchaseBands().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.PurchaseBands().Size())

	creditRating, err := distribution.CreditRatings().ValueForIndexModSize(index, 0)
	if err != nil {
		return nil, err
	}
	index /= int64(distribution.CreditRatings().Size())

	depCount := int32(index % cdMaxChildren)
	index /= cdMaxChildren

	depEmployedCount := int32(index % cdMaxEmployed)
	index /= cdMaxEmployed

	depCollegeCount := int32(index % cdMaxCollege)

	row := &CustomerDemographicsRow{
		demoSk:           rowNumber,
		gender:           gender,
		maritalStatus:    maritalStatus,
		educationStatus:  educationStatus,
		purchaseEstimate: purchaseEstimate,
		creditRating:     creditRating,
		depCount:         depCount,
		depEmployedCount: depEmployedCount,
		depCollegeCount:  depCollegeCount,
		nullBitMap:       nullBitMap,
	}
	return &Result{Rows: []TableRow{row}, ShouldEndRow: true}, nil
}
