package rowgen

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/keys"
	"github.com/mmrzaf/dsdgen/internal/table"
)

func generateRange(t *testing.T, tbl table.Table, firstRow, lastRow int64) [][]string {
	t.Helper()
	session := config.DefaultSession()

	generator, err := NewRowGenerator(tbl)
	if err != nil {
		t.Fatalf("NewRowGenerator(%s): %v", tbl, err)
	}
	if firstRow > 1 {
		generator.SkipRowsUntilStartingRowNumber(firstRow)
	}

	var rows [][]string
	for rowNumber := firstRow; rowNumber <= lastRow; rowNumber++ {
		result, err := generator.GenerateRowAndChildRows(rowNumber, session)
		if err != nil {
			t.Fatalf("%s row %d: %v", tbl, rowNumber, err)
		}
		for _, row := range result.Rows {
			rows = append(rows, row.Values(session.NullString()))
		}
		if result.ShouldEndRow {
			generator.ConsumeRemainingSeedsForRow()
		}
	}
	return rows
}

func TestNewRowGeneratorCoversDimensions(t *testing.T) {
	for _, tbl := range table.Dimensions() {
		if _, err := NewRowGenerator(tbl); err != nil {
			t.Errorf("NewRowGenerator(%s): %v", tbl, err)
		}
	}
	if _, err := NewRowGenerator(table.StoreSales); err == nil {
		t.Error("NewRowGenerator(store_sales) did not fail")
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	for _, tbl := range table.Dimensions() {
		t.Run(tbl.Name(), func(t *testing.T) {
			first := generateRange(t, tbl, 1, 6)
			second := generateRange(t, tbl, 1, 6)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("two runs over rows 1..6 differ")
			}
		})
	}
}

func TestSkippedGenerationMatchesSequential(t *testing.T) {
	// Chunk starts align with fresh business keys, so every dimension can be
	// resumed at a six-row boundary plus one.
	tests := []struct {
		table    table.Table
		firstRow int64
		lastRow  int64
	}{
		{table.Warehouse, 3, 5},
		{table.Promotion, 100, 110},
		{table.Reason, 20, 35},
		{table.ShipMode, 10, 20},
		{table.TimeDim, 50000, 50010},
		{table.CustomerDemographics, 9000, 9010},
		{table.HouseholdDemographics, 7000, 7010},
		{table.IncomeBand, 15, 20},
		{table.DateDim, 40000, 40010},
		{table.WebPage, 7, 18},
		{table.WebSite, 13, 24},
		{table.CallCenter, 7, 12},
	}
	for _, tt := range tests {
		t.Run(tt.table.Name(), func(t *testing.T) {
			sequential := generateRange(t, tt.table, 1, tt.lastRow)
			skipped := generateRange(t, tt.table, tt.firstRow, tt.lastRow)

			tail := sequential[tt.firstRow-1:]
			if !reflect.DeepEqual(tail, skipped) {
				t.Errorf("rows %d..%d differ between sequential and skipped generation",
					tt.firstRow, tt.lastRow)
			}
		})
	}
}

func TestSeedBudgetsResetBetweenRows(t *testing.T) {
	session := config.DefaultSession()

	warehouse, err := NewWarehouseRowGenerator()
	if err != nil {
		t.Fatal(err)
	}
	webSite, err := NewWebSiteRowGenerator()
	if err != nil {
		t.Fatal(err)
	}

	bases := map[string]*abstractRowGenerator{
		"warehouse": warehouse.abstractRowGenerator,
		"web_site":  webSite.abstractRowGenerator,
	}
	generators := map[string]RowGenerator{
		"warehouse": warehouse,
		"web_site":  webSite,
	}
	for name, generator := range generators {
		for rowNumber := int64(1); rowNumber <= 3; rowNumber++ {
			if _, err := generator.GenerateRowAndChildRows(rowNumber, session); err != nil {
				t.Fatalf("%s row %d: %v", name, rowNumber, err)
			}
			generator.ConsumeRemainingSeedsForRow()
			for column, stream := range bases[name].streams {
				if stream.SeedsUsed() != 0 {
					t.Fatalf("%s column %d: seedsUsed = %d after row %d",
						name, column, stream.SeedsUsed(), rowNumber)
				}
			}
		}
	}
}

func TestCustomerDemographicsEnumeration(t *testing.T) {
	rows := generateRange(t, table.CustomerDemographics, 1, 4)

	first := rows[0]
	want := []string{"1", "M", "M", "Primary", "500", "Low Risk", "0", "0", "0"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("row 1 = %v, want %v", first, want)
	}

	// Gender is the fastest-cycling attribute.
	if rows[1][1] != "F" {
		t.Errorf("row 2 gender = %q, want F", rows[1][1])
	}
	if rows[2][1] != "M" || rows[2][2] != "S" {
		t.Errorf("row 3 = gender %q marital %q, want M S", rows[2][1], rows[2][2])
	}
}

func TestIncomeBandRows(t *testing.T) {
	rows := generateRange(t, table.IncomeBand, 1, 2)
	if !reflect.DeepEqual(rows[0], []string{"1", "0", "10000"}) {
		t.Errorf("row 1 = %v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], []string{"2", "10001", "20000"}) {
		t.Errorf("row 2 = %v", rows[1])
	}
}

func TestTimeDimFirstRow(t *testing.T) {
	rows := generateRange(t, table.TimeDim, 1, 1)
	row := rows[0]
	if len(row) != 10 {
		t.Fatalf("column count = %d, want 10", len(row))
	}
	if row[0] != "0" {
		t.Errorf("t_time_sk = %q, want 0", row[0])
	}
	if row[1] != keys.MakeBusinessKey(1) {
		t.Errorf("t_time_id = %q, want %q", row[1], keys.MakeBusinessKey(1))
	}
	for i := 2; i <= 5; i++ {
		if row[i] != "0" {
			t.Errorf("column %d = %q, want 0", i, row[i])
		}
	}
	if row[6] != "AM" {
		t.Errorf("t_am_pm = %q, want AM", row[6])
	}
}

func TestDateDimFirstRow(t *testing.T) {
	rows := generateRange(t, table.DateDim, 1, 1)
	row := rows[0]
	if len(row) != 28 {
		t.Fatalf("column count = %d, want 28", len(row))
	}
	// Day numbering starts the day after 1900-01-01.
	if row[0] != "2415022" {
		t.Errorf("d_date_sk = %q, want 2415022", row[0])
	}
	if row[1] != keys.MakeBusinessKey(2415022) {
		t.Errorf("d_date_id = %q, want %q", row[1], keys.MakeBusinessKey(2415022))
	}
	if row[2] != "1900-01-02" {
		t.Errorf("d_date = %q, want 1900-01-02", row[2])
	}
	if row[6] != "1900" {
		t.Errorf("d_year = %q, want 1900", row[6])
	}
	if row[9] != "2" {
		t.Errorf("d_dom = %q, want 2", row[9])
	}
}

func TestReasonRows(t *testing.T) {
	rows := generateRange(t, table.Reason, 1, 2)
	if rows[0][0] != "1" || rows[0][1] != keys.MakeBusinessKey(1) {
		t.Errorf("row 1 key columns = %v", rows[0][:2])
	}
	// The description column is nullable, so a blanked value is acceptable.
	if got := rows[0][2]; got != "Package was damaged" && got != "" {
		t.Errorf("r_reason_desc = %q", got)
	}
	if got := rows[1][2]; got != "Stopped working" && got != "" {
		t.Errorf("row 2 r_reason_desc = %q", got)
	}
}

func TestCallCenterRowShape(t *testing.T) {
	rows := generateRange(t, table.CallCenter, 1, 6)
	for i, row := range rows {
		if len(row) != 31 {
			t.Fatalf("row %d column count = %d, want 31", i+1, len(row))
		}
	}
	if rows[0][0] != "1" {
		t.Errorf("cc_call_center_sk = %q, want 1", rows[0][0])
	}
	// Rows 2 and 3 are revisions of one center and share a business key.
	if rows[1][1] != rows[2][1] {
		t.Errorf("rows 2 and 3 business keys differ: %q vs %q", rows[1][1], rows[2][1])
	}
	if rows[0][1] == rows[1][1] {
		t.Errorf("rows 1 and 2 share a business key %q", rows[0][1])
	}
	// cc_closed_date_sk is always null.
	if rows[0][4] != "" {
		t.Errorf("cc_closed_date_sk = %q, want empty", rows[0][4])
	}
}

func TestWebSiteRowShape(t *testing.T) {
	rows := generateRange(t, table.WebSite, 1, 12)
	for i, row := range rows {
		if len(row) != 26 {
			t.Fatalf("row %d column count = %d, want 26", i+1, len(row))
		}
	}
	// Sites are named by business-key cadence, six surrogate rows per name.
	if got := rows[0][4]; got != "site_0" && got != "" {
		t.Errorf("row 1 web_name = %q, want site_0", got)
	}
	if got := rows[6][4]; got != "site_1" && got != "" {
		t.Errorf("row 7 web_name = %q, want site_1", got)
	}
	if got := rows[0][7]; got != "Unknown" && got != "" {
		t.Errorf("web_class = %q, want Unknown", got)
	}
	// Revisions keep the business key of the row they revise.
	if rows[1][1] != rows[2][1] {
		t.Errorf("rows 2 and 3 business keys differ: %q vs %q", rows[1][1], rows[2][1])
	}
}

func TestWebPageRowShape(t *testing.T) {
	rows := generateRange(t, table.WebPage, 1, 12)
	for i, row := range rows {
		if len(row) != 14 {
			t.Fatalf("row %d column count = %d, want 14", i+1, len(row))
		}
		if v := row[6]; v != "Y" && v != "N" && v != "" {
			t.Fatalf("row %d wp_autogen_flag = %q", i+1, v)
		}
		// Pages that are not autogenerated carry no customer key.
		if row[6] == "N" && row[7] != "" {
			t.Fatalf("row %d has a customer key %q without the autogen flag", i+1, row[7])
		}
		if got := row[8]; got != "http://www.foo.com" && got != "" {
			t.Fatalf("row %d wp_url = %q", i+1, got)
		}
	}
}

func TestWarehouseRowShape(t *testing.T) {
	rows := generateRange(t, table.Warehouse, 1, 5)
	for i, row := range rows {
		if len(row) != 14 {
			t.Fatalf("row %d column count = %d, want 14", i+1, len(row))
		}
		if zip := row[11]; zip != "" && len(zip) != 5 {
			t.Fatalf("row %d w_zip = %q, want five digits", i+1, zip)
		}
	}
}

func TestPromotionChannelFlags(t *testing.T) {
	rows := generateRange(t, table.Promotion, 1, 50)
	for i, row := range rows {
		if len(row) != 19 {
			t.Fatalf("row %d column count = %d, want 19", i+1, len(row))
		}
		for col := 8; col <= 15; col++ {
			if v := row[col]; v != "Y" && v != "N" && v != "" {
				t.Fatalf("row %d channel column %d = %q", i+1, col, v)
			}
		}
		if row[17] != "Unknown" && row[17] != "" {
			t.Fatalf("row %d p_purpose = %q", i+1, row[17])
		}
	}
}

func TestHouseholdDemographicsRows(t *testing.T) {
	rows := generateRange(t, table.HouseholdDemographics, 1, 7200)
	bandSize := int64(20)
	for i, row := range rows {
		if len(row) != 5 {
			t.Fatalf("row %d column count = %d, want 5", i+1, len(row))
		}
		// The income band cycles fastest through its twenty values. The
		// column is nullable, so blanked values pass.
		wantBand := int64(i+1)%bandSize + 1
		if row[1] != strconv.FormatInt(wantBand, 10) && row[1] != "" {
			t.Fatalf("row %d hd_income_band_sk = %q, want %d", i+1, row[1], wantBand)
		}
	}
}
