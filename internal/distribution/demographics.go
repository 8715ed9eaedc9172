package distribution

import "sync"

// Demographics distributions. The demographic tables walk these by Cartesian
// index rather than by weighted sample, so the accessors expose the
// distributions themselves.
var (
	gendersOnce       sync.Once
	gendersDist       *StringValues
	maritalOnce       sync.Once
	maritalDist       *StringValues
	educationOnce     sync.Once
	educationDist     *StringValues
	purchaseBandOnce  sync.Once
	purchaseBandDist  *IntValues
	creditRatingsOnce sync.Once
	creditRatingsDist *StringValues
	incomeBandOnce    sync.Once
	incomeBandDist    *IntValues
	buyPotentialOnce  sync.Once
	buyPotentialDist  *StringValues
	depCountOnce      sync.Once
	depCountDist      *IntValues
	vehicleCountOnce  sync.Once
	vehicleCountDist  *IntValues
)

func Genders() *StringValues {
	gendersOnce.Do(func() { gendersDist = mustLoadStringValues("genders.dst", 1, 1) })
	return gendersDist
}

func MaritalStatuses() *StringValues {
	maritalOnce.Do(func() { maritalDist = mustLoadStringValues("marital_statuses.dst", 1, 1) })
	return maritalDist
}

func EducationLevels() *StringValues {
	educationOnce.Do(func() { educationDist = mustLoadStringValues("education.dst", 1, 1) })
	return educationDist
}

func PurchaseBands() *IntValues {
	purchaseBandOnce.Do(func() { purchaseBandDist = mustLoadIntValues("purchase_band.dst", 1, 1) })
	return purchaseBandDist
}

func CreditRatings() *StringValues {
	creditRatingsOnce.Do(func() { creditRatingsDist = mustLoadStringValues("credit_ratings.dst", 1, 1) })
	return creditRatingsDist
}

// IncomeBands carries two value lists: lower and upper bound.
func IncomeBands() *IntValues {
	incomeBandOnce.Do(func() { incomeBandDist = mustLoadIntValues("income_band.dst", 2, 1) })
	return incomeBandDist
}

func BuyPotentials() *StringValues {
	buyPotentialOnce.Do(func() { buyPotentialDist = mustLoadStringValues("buy_potential.dst", 1, 1) })
	return buyPotentialDist
}

func DepCounts() *IntValues {
	depCountOnce.Do(func() { depCountDist = mustLoadIntValues("dep_count.dst", 1, 1) })
	return depCountDist
}

func VehicleCounts() *IntValues {
	vehicleCountOnce.Do(func() { vehicleCountDist = mustLoadIntValues("vehicle_count.dst", 1, 1) })
	return vehicleCountDist
}
