package table

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Table
	}{
		{"call_center", CallCenter},
		{"CALL_CENTER", CallCenter},
		{"date_dim", DateDim},
		{"web_site", WebSite},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := Lookup("no_such_table"); err == nil {
		t.Error("Lookup of unknown table did not fail")
	}
}

func TestDimensions(t *testing.T) {
	dims := Dimensions()
	if len(dims) != 12 {
		t.Fatalf("len(Dimensions()) = %d, want 12", len(dims))
	}
	for _, d := range dims {
		if !d.HasRowGenerator() {
			t.Errorf("dimension %s reports no row generator", d)
		}
	}
	if StoreSales.HasRowGenerator() {
		t.Error("store_sales reports a row generator")
	}
	if CatalogPage.HasRowGenerator() {
		t.Error("catalog_page reports a row generator")
	}
}

func TestKeepsHistory(t *testing.T) {
	for _, tbl := range []Table{CallCenter, Item, Store, WebPage, WebSite} {
		if !tbl.KeepsHistory() {
			t.Errorf("%s should keep history", tbl)
		}
	}
	for _, tbl := range []Table{DateDim, Warehouse, Promotion} {
		if tbl.KeepsHistory() {
			t.Errorf("%s should not keep history", tbl)
		}
	}
}

func TestRowCountAtDefinedScales(t *testing.T) {
	tests := []struct {
		table Table
		scale float64
		want  int64
	}{
		{CallCenter, 1, 6},
		{CallCenter, 10, 24},
		{CallCenter, 100000, 60},
		{DateDim, 1, 73049},
		{DateDim, 1000, 73049},
		{TimeDim, 1, 86400},
		{IncomeBand, 300, 20},
		{Reason, 1, 35},
		{Warehouse, 1, 5},
		{WebPage, 1, 60},
		{WebSite, 1, 30},
		{Promotion, 1, 300},
		{CustomerDemographics, 1, 1920800},
		{HouseholdDemographics, 1, 7200},
	}
	for _, tt := range tests {
		scaling, err := NewScaling(tt.scale)
		if err != nil {
			t.Fatalf("NewScaling(%v): %v", tt.scale, err)
		}
		got, err := scaling.RowCount(tt.table)
		if err != nil {
			t.Fatalf("RowCount(%s) at scale %v: %v", tt.table, tt.scale, err)
		}
		if got != tt.want {
			t.Errorf("RowCount(%s) at scale %v = %d, want %d", tt.table, tt.scale, got, tt.want)
		}
	}
}

func TestStaticTablesIgnoreScale(t *testing.T) {
	for _, scale := range []float64{0.5, 2, 47, 8000} {
		scaling, err := NewScaling(scale)
		if err != nil {
			t.Fatalf("NewScaling(%v): %v", scale, err)
		}
		got, err := scaling.RowCount(TimeDim)
		if err != nil {
			t.Fatalf("RowCount(time_dim): %v", err)
		}
		if got != 86400 {
			t.Errorf("time_dim at scale %v = %d, want 86400", scale, got)
		}
	}
}

func TestLogarithmicRowCountsGrowMonotonically(t *testing.T) {
	var previous int64
	for _, scale := range []float64{1, 10, 100, 300, 1000, 3000, 10000, 30000, 100000} {
		scaling, err := NewScaling(scale)
		if err != nil {
			t.Fatalf("NewScaling(%v): %v", scale, err)
		}
		got, err := scaling.RowCount(WebSite)
		if err != nil {
			t.Fatalf("RowCount(web_site): %v", err)
		}
		if got < previous {
			t.Errorf("web_site row count shrank to %d at scale %v", got, scale)
		}
		previous = got
	}
}

func TestIDCount(t *testing.T) {
	scaling, err := NewScaling(1)
	if err != nil {
		t.Fatalf("NewScaling: %v", err)
	}

	tests := []struct {
		table Table
		want  int64
	}{
		// 30 rows over complete six-row cycles yield 15 distinct keys.
		{WebSite, 15},
		{CallCenter, 3},
		{WebPage, 30},
		// Tables without history have one key per row.
		{Warehouse, 5},
		{Reason, 35},
	}
	for _, tt := range tests {
		got, err := scaling.IDCount(tt.table)
		if err != nil {
			t.Fatalf("IDCount(%s): %v", tt.table, err)
		}
		if got != tt.want {
			t.Errorf("IDCount(%s) = %d, want %d", tt.table, got, tt.want)
		}
	}
}

func TestNewScalingRejectsOutOfRange(t *testing.T) {
	for _, scale := range []float64{0, -1, 100001} {
		if _, err := NewScaling(scale); err == nil {
			t.Errorf("NewScaling(%v) did not fail", scale)
		}
	}
}

func TestNewScalingInfoValidation(t *testing.T) {
	counts := make([]int64, len(DefinedScales))
	if _, err := NewScalingInfo(-1, Static, counts); err == nil {
		t.Error("negative multiplier did not fail")
	}
	if _, err := NewScalingInfo(0, Static, counts[:3]); err == nil {
		t.Error("short row-count slice did not fail")
	}
	counts[2] = -7
	if _, err := NewScalingInfo(0, Static, counts); err == nil {
		t.Error("negative row count did not fail")
	}
}

func TestAllCoversEveryName(t *testing.T) {
	all := All()
	if len(all) != 24 {
		t.Fatalf("len(All()) = %d, want 24", len(all))
	}
	seen := make(map[string]bool)
	for _, tbl := range all {
		name := tbl.Name()
		if name == "" {
			t.Errorf("table %d has no name", tbl)
		}
		if seen[name] {
			t.Errorf("duplicate table name %q", name)
		}
		seen[name] = true

		got, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		} else if got != tbl {
			t.Errorf("Lookup(%q) = %v, want %v", name, got, tbl)
		}
	}
}
