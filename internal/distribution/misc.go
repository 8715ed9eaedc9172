package distribution

import (
	"sync"

	"github.com/mmrzaf/dsdgen/internal/random"
)

// Remaining table-specific distributions.
var (
	callCentersOnce       sync.Once
	callCentersDist       *StringValues
	callCenterClassesOnce sync.Once
	callCenterClassesDist *StringValues
	callCenterHoursOnce   sync.Once
	callCenterHoursDist   *StringValues
	shipModeTypesOnce     sync.Once
	shipModeTypesDist     *StringValues
	shipModeCodesOnce     sync.Once
	shipModeCodesDist     *StringValues
	shipModeCarriersOnce  sync.Once
	shipModeCarriersDist  *StringValues
	returnReasonsOnce     sync.Once
	returnReasonsDist     *StringValues
	webPageUseOnce        sync.Once
	webPageUseDist        *StringValues
	catalogPageTypesOnce  sync.Once
	catalogPageTypesDist  *StringValues
)

// CallCenters carries one value list and two weight columns (uniform and
// scale-skewed).
func CallCenters() *StringValues {
	callCentersOnce.Do(func() { callCentersDist = mustLoadStringValues("call_centers.dst", 1, 2) })
	return callCentersDist
}

func CallCenterClasses() *StringValues {
	callCenterClassesOnce.Do(func() { callCenterClassesDist = mustLoadStringValues("call_center_classes.dst", 1, 1) })
	return callCenterClassesDist
}

func CallCenterHours() *StringValues {
	callCenterHoursOnce.Do(func() { callCenterHoursDist = mustLoadStringValues("call_center_hours.dst", 1, 1) })
	return callCenterHoursDist
}

func ShipModeTypes() *StringValues {
	shipModeTypesOnce.Do(func() { shipModeTypesDist = mustLoadStringValues("ship_mode_type.dst", 1, 1) })
	return shipModeTypesDist
}

func ShipModeCodes() *StringValues {
	shipModeCodesOnce.Do(func() { shipModeCodesDist = mustLoadStringValues("ship_mode_code.dst", 1, 1) })
	return shipModeCodesDist
}

func ShipModeCarriers() *StringValues {
	shipModeCarriersOnce.Do(func() { shipModeCarriersDist = mustLoadStringValues("ship_mode_carrier.dst", 1, 1) })
	return shipModeCarriersDist
}

func ReturnReasons() *StringValues {
	returnReasonsOnce.Do(func() { returnReasonsDist = mustLoadStringValues("return_reasons.dst", 1, 1) })
	return returnReasonsDist
}

func WebPageUses() *StringValues {
	webPageUseOnce.Do(func() { webPageUseDist = mustLoadStringValues("web_page_use.dst", 1, 1) })
	return webPageUseDist
}

// CatalogPageTypes has two weight columns: uniform and in-year frequency.
func CatalogPageTypes() *StringValues {
	catalogPageTypesOnce.Do(func() { catalogPageTypesDist = mustLoadStringValues("catalog_page_types.dst", 1, 2) })
	return catalogPageTypesDist
}

func PickRandomCallCenterClass(s *random.Stream) (string, error) {
	return CallCenterClasses().PickRandomValue(0, 0, s)
}

func PickRandomCallCenterHours(s *random.Stream) (string, error) {
	return CallCenterHours().PickRandomValue(0, 0, s)
}

func PickRandomWebPageUse(s *random.Stream) (string, error) {
	return WebPageUses().PickRandomValue(0, 0, s)
}
