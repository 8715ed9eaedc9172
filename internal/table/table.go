// Package table holds the static identity of every table the generator
// knows about: names, flags, null-column metadata and the scaling data that
// maps a scale factor to a row count.
package table

import (
	"fmt"
	"strings"
)

// Table identifies one output table.
type Table int

const (
	CallCenter Table = iota
	CatalogPage
	CatalogReturns
	CatalogSales
	Customer
	CustomerAddress
	CustomerDemographics
	DateDim
	HouseholdDemographics
	IncomeBand
	Inventory
	Item
	Promotion
	Reason
	ShipMode
	Store
	StoreReturns
	StoreSales
	TimeDim
	Warehouse
	WebPage
	WebReturns
	WebSales
	WebSite
)

var names = map[Table]string{
	CallCenter:            "call_center",
	CatalogPage:           "catalog_page",
	CatalogReturns:        "catalog_returns",
	CatalogSales:          "catalog_sales",
	Customer:              "customer",
	CustomerAddress:       "customer_address",
	CustomerDemographics:  "customer_demographics",
	DateDim:               "date_dim",
	HouseholdDemographics: "household_demographics",
	IncomeBand:            "income_band",
	Inventory:             "inventory",
	Item:                  "item",
	Promotion:             "promotion",
	Reason:                "reason",
	ShipMode:              "ship_mode",
	Store:                 "store",
	StoreReturns:          "store_returns",
	StoreSales:            "store_sales",
	TimeDim:               "time_dim",
	Warehouse:             "warehouse",
	WebPage:               "web_page",
	WebReturns:            "web_returns",
	WebSales:              "web_sales",
	WebSite:               "web_site",
}

func (t Table) Name() string {
	return names[t]
}

func (t Table) String() string {
	return names[t]
}

// Lookup resolves a table by its lowercase name, case-insensitively.
func Lookup(name string) (Table, error) {
	lower := strings.ToLower(name)
	for t, n := range names {
		if n == lower {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown table %q", name)
}

// All returns every table in declaration order.
func All() []Table {
	tables := make([]Table, 0, len(names))
	for t := CallCenter; t <= WebSite; t++ {
		tables = append(tables, t)
	}
	return tables
}

// Dimensions returns the dimension tables this generator can emit, in
// declaration order.
func Dimensions() []Table {
	return []Table{
		CallCenter,
		CustomerDemographics,
		DateDim,
		HouseholdDemographics,
		IncomeBand,
		Promotion,
		Reason,
		ShipMode,
		TimeDim,
		Warehouse,
		WebPage,
		WebSite,
	}
}

// HasRowGenerator reports whether this generator can emit the table.
func (t Table) HasRowGenerator() bool {
	for _, d := range Dimensions() {
		if t == d {
			return true
		}
	}
	return false
}

// KeepsHistory marks slowly changing dimensions. Each business key owns up
// to six surrogate rows split across revisions.
func (t Table) KeepsHistory() bool {
	switch t {
	case CallCenter, Item, Store, WebPage, WebSite:
		return true
	}
	return false
}

// IsSmall marks tables whose addresses cluster into the active city and
// county ranges instead of sampling the full distributions.
func (t Table) IsSmall() bool {
	switch t {
	case CallCenter, Store, Warehouse, WebSite:
		return true
	}
	return false
}

// IsDateBased marks fact tables whose row counts follow the calendar.
func (t Table) IsDateBased() bool {
	switch t {
	case CatalogSales, StoreSales, WebSales, Inventory:
		return true
	}
	return false
}

// NullBasisPoints is the per-row chance, in basis points, that the row gets
// a non-zero null bitmap.
func (t Table) NullBasisPoints() int32 {
	switch t {
	case IncomeBand, CustomerDemographics, DateDim, TimeDim:
		return 0
	}
	return 100
}

// NotNullBitMap has a bit set for every column position that must never be
// null, keyed from bit zero for the first column.
func (t Table) NotNullBitMap() int64 {
	switch t {
	case CallCenter:
		return 0xB
	case IncomeBand, CustomerDemographics, HouseholdDemographics:
		return 0x1
	}
	return 0x3
}
