package target

import (
	"fmt"

	"github.com/mmrzaf/dsdgen/internal/table"
)

// Column is one column of a loadable table, with its SQL type as written in
// the TPC-DS schema.
type Column struct {
	Name    string
	Type    string
	NotNull bool
}

// Columns returns the schema of a dimension table in output order.
func Columns(t table.Table) ([]Column, error) {
	switch t {
	case table.CallCenter:
		return []Column{
			{Name: "cc_call_center_sk", Type: "integer", NotNull: true},
			{Name: "cc_call_center_id", Type: "char(16)", NotNull: true},
			{Name: "cc_rec_start_date", Type: "date"},
			{Name: "cc_rec_end_date", Type: "date"},
			{Name: "cc_closed_date_sk", Type: "integer"},
			{Name: "cc_open_date_sk", Type: "integer"},
			{Name: "cc_name", Type: "varchar(50)"},
			{Name: "cc_class", Type: "varchar(50)"},
			{Name: "cc_employees", Type: "integer"},
			{Name: "cc_sq_ft", Type: "integer"},
			{Name: "cc_hours", Type: "char(20)"},
			{Name: "cc_manager", Type: "varchar(40)"},
			{Name: "cc_mkt_id", Type: "integer"},
			{Name: "cc_mkt_class", Type: "char(50)"},
			{Name: "cc_mkt_desc", Type: "varchar(100)"},
			{Name: "cc_market_manager", Type: "varchar(40)"},
			{Name: "cc_division", Type: "integer"},
			{Name: "cc_division_name", Type: "varchar(50)"},
			{Name: "cc_company", Type: "integer"},
			{Name: "cc_company_name", Type: "char(50)"},
			{Name: "cc_street_number", Type: "char(10)"},
			{Name: "cc_street_name", Type: "varchar(60)"},
			{Name: "cc_street_type", Type: "char(15)"},
			{Name: "cc_suite_number", Type: "char(10)"},
			{Name: "cc_city", Type: "varchar(60)"},
			{Name: "cc_county", Type: "varchar(30)"},
			{Name: "cc_state", Type: "char(2)"},
			{Name: "cc_zip", Type: "char(10)"},
			{Name: "cc_country", Type: "varchar(20)"},
			{Name: "cc_gmt_offset", Type: "decimal(5,2)"},
			{Name: "cc_tax_percentage", Type: "decimal(5,2)"},
		}, nil
	case table.CustomerDemographics:
		return []Column{
			{Name: "cd_demo_sk", Type: "integer", NotNull: true},
			{Name: "cd_gender", Type: "char(1)"},
			{Name: "cd_marital_status", Type: "char(1)"},
			{Name: "cd_education_status", Type: "char(20)"},
			{Name: "cd_purchase_estimate", Type: "integer"},
			{Name: "cd_credit_rating", Type: "char(10)"},
			{Name: "cd_dep_count", Type: "integer"},
			{Name: "cd_dep_employed_count", Type: "integer"},
			{Name: "cd_dep_college_count", Type: "integer"},
		}, nil
	case table.DateDim:
		return []Column{
			{Name: "d_date_sk", Type: "integer", NotNull: true},
			{Name: "d_date_id", Type: "char(16)", NotNull: true},
			{Name: "d_date", Type: "date"},
			{Name: "d_month_seq", Type: "integer"},
			{Name: "d_week_seq", Type: "integer"},
			{Name: "d_quarter_seq", Type: "integer"},
			{Name: "d_year", Type: "integer"},
			{Name: "d_dow", Type: "integer"},
			{Name: "d_moy", Type: "integer"},
			{Name: "d_dom", Type: "integer"},
			{Name: "d_qoy", Type: "integer"},
			{Name: "d_fy_year", Type: "integer"},
			{Name: "d_fy_quarter_seq", Type: "integer"},
			{Name: "d_fy_week_seq", Type: "integer"},
			{Name: "d_day_name", Type: "char(9)"},
			{Name: "d_quarter_name", Type: "char(6)"},
			{Name: "d_holiday", Type: "char(1)"},
			{Name: "d_weekend", Type: "char(1)"},
			{Name: "d_following_holiday", Type: "char(1)"},
			{Name: "d_first_dom", Type: "integer"},
			{Name: "d_last_dom", Type: "integer"},
			{Name: "d_same_day_ly", Type: "integer"},
			{Name: "d_same_day_lq", Type: "integer"},
			{Name: "d_current_day", Type: "char(1)"},
			{Name: "d_current_week", Type: "char(1)"},
			{Name: "d_current_month", Type: "char(1)"},
			{Name: "d_current_quarter", Type: "char(1)"},
			{Name: "d_current_year", Type: "char(1)"},
		}, nil
	case table.HouseholdDemographics:
		return []Column{
			{Name: "hd_demo_sk", Type: "integer", NotNull: true},
			{Name: "hd_income_band_sk", Type: "integer"},
			{Name: "hd_buy_potential", Type: "char(15)"},
			{Name: "hd_dep_count", Type: "integer"},
			{Name: "hd_vehicle_count", Type: "integer"},
		}, nil
	case table.IncomeBand:
		return []Column{
			{Name: "ib_income_band_sk", Type: "integer", NotNull: true},
			{Name: "ib_lower_bound", Type: "integer"},
			{Name: "ib_upper_bound", Type: "integer"},
		}, nil
	case table.Promotion:
		return []Column{
			{Name: "p_promo_sk", Type: "integer", NotNull: true},
			{Name: "p_promo_id", Type: "char(16)", NotNull: true},
			{Name: "p_start_date_sk", Type: "integer"},
			{Name: "p_end_date_sk", Type: "integer"},
			{Name: "p_item_sk", Type: "integer"},
			{Name: "p_cost", Type: "decimal(15,2)"},
			{Name: "p_response_target", Type: "integer"},
			{Name: "p_promo_name", Type: "char(50)"},
			{Name: "p_channel_dmail", Type: "char(1)"},
			{Name: "p_channel_email", Type: "char(1)"},
			{Name: "p_channel_catalog", Type: "char(1)"},
			{Name: "p_channel_tv", Type: "char(1)"},
			{Name: "p_channel_radio", Type: "char(1)"},
			{Name: "p_channel_press", Type: "char(1)"},
			{Name: "p_channel_event", Type: "char(1)"},
			{Name: "p_channel_demo", Type: "char(1)"},
			{Name: "p_channel_details", Type: "varchar(100)"},
			{Name: "p_purpose", Type: "char(15)"},
			{Name: "p_discount_active", Type: "char(1)"},
		}, nil
	case table.Reason:
		return []Column{
			{Name: "r_reason_sk", Type: "integer", NotNull: true},
			{Name: "r_reason_id", Type: "char(16)", NotNull: true},
			{Name: "r_reason_desc", Type: "char(100)"},
		}, nil
	case table.ShipMode:
		return []Column{
			{Name: "sm_ship_mode_sk", Type: "integer", NotNull: true},
			{Name: "sm_ship_mode_id", Type: "char(16)", NotNull: true},
			{Name: "sm_type", Type: "char(30)"},
			{Name: "sm_code", Type: "char(10)"},
			{Name: "sm_carrier", Type: "char(20)"},
			{Name: "sm_contract", Type: "char(20)"},
		}, nil
	case table.TimeDim:
		return []Column{
			{Name: "t_time_sk", Type: "integer", NotNull: true},
			{Name: "t_time_id", Type: "char(16)", NotNull: true},
			{Name: "t_time", Type: "integer"},
			{Name: "t_hour", Type: "integer"},
			{Name: "t_minute", Type: "integer"},
			{Name: "t_second", Type: "integer"},
			{Name: "t_am_pm", Type: "char(2)"},
			{Name: "t_shift", Type: "char(20)"},
			{Name: "t_sub_shift", Type: "char(20)"},
			{Name: "t_meal_time", Type: "char(20)"},
		}, nil
	case table.Warehouse:
		return []Column{
			{Name: "w_warehouse_sk", Type: "integer", NotNull: true},
			{Name: "w_warehouse_id", Type: "char(16)", NotNull: true},
			{Name: "w_warehouse_name", Type: "varchar(20)"},
			{Name: "w_warehouse_sq_ft", Type: "integer"},
			{Name: "w_street_number", Type: "char(10)"},
			{Name: "w_street_name", Type: "varchar(60)"},
			{Name: "w_street_type", Type: "char(15)"},
			{Name: "w_suite_number", Type: "char(10)"},
			{Name: "w_city", Type: "varchar(60)"},
			{Name: "w_county", Type: "varchar(30)"},
			{Name: "w_state", Type: "char(2)"},
			{Name: "w_zip", Type: "char(10)"},
			{Name: "w_country", Type: "varchar(20)"},
			{Name: "w_gmt_offset", Type: "decimal(5,2)"},
		}, nil
	case table.WebPage:
		return []Column{
			{Name: "wp_web_page_sk", Type: "integer", NotNull: true},
			{Name: "wp_web_page_id", Type: "char(16)", NotNull: true},
			{Name: "wp_rec_start_date", Type: "date"},
			{Name: "wp_rec_end_date", Type: "date"},
			{Name: "wp_creation_date_sk", Type: "integer"},
			{Name: "wp_access_date_sk", Type: "integer"},
			{Name: "wp_autogen_flag", Type: "char(1)"},
			{Name: "wp_customer_sk", Type: "integer"},
			{Name: "wp_url", Type: "varchar(100)"},
			{Name: "wp_type", Type: "char(50)"},
			{Name: "wp_char_count", Type: "integer"},
			{Name: "wp_link_count", Type: "integer"},
			{Name: "wp_image_count", Type: "integer"},
			{Name: "wp_max_ad_count", Type: "integer"},
		}, nil
	case table.WebSite:
		return []Column{
			{Name: "web_site_sk", Type: "integer", NotNull: true},
			{Name: "web_site_id", Type: "char(16)", NotNull: true},
			{Name: "web_rec_start_date", Type: "date"},
			{Name: "web_rec_end_date", Type: "date"},
			{Name: "web_name", Type: "varchar(50)"},
			{Name: "web_open_date_sk", Type: "integer"},
			{Name: "web_close_date_sk", Type: "integer"},
			{Name: "web_class", Type: "varchar(50)"},
			{Name: "web_manager", Type: "varchar(40)"},
			{Name: "web_mkt_id", Type: "integer"},
			{Name: "web_mkt_class", Type: "varchar(50)"},
			{Name: "web_mkt_desc", Type: "varchar(100)"},
			{Name: "web_market_manager", Type: "varchar(40)"},
			{Name: "web_company_id", Type: "integer"},
			{Name: "web_company_name", Type: "char(50)"},
			{Name: "web_street_number", Type: "char(10)"},
			{Name: "web_street_name", Type: "varchar(60)"},
			{Name: "web_street_type", Type: "char(15)"},
			{Name: "web_suite_number", Type: "char(10)"},
			{Name: "web_city", Type: "varchar(60)"},
			{Name: "web_county", Type: "varchar(30)"},
			{Name: "web_state", Type: "char(2)"},
			{Name: "web_zip", Type: "char(10)"},
			{Name: "web_country", Type: "varchar(20)"},
			{Name: "web_gmt_offset", Type: "decimal(5,2)"},
			{Name: "web_tax_percentage", Type: "decimal(5,2)"},
		}, nil
	}
	return nil, fmt.Errorf("no schema for table %s", t.Name())
}
