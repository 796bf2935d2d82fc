// README: Cost breakdown schema; field names are a stable API contract.
package duty

// Breakdown is the fully itemized landed cost for one bid. Every monetary
// field is an integer in its currency, truncated toward zero exactly once
// when placed here; DutyPercentage is the single rounded field.
//
// The JSON field names and grouping are consumed verbatim by external
// callers and must not change.
type Breakdown struct {
	CurrencyConversion  CurrencyConversion `json:"currency_conversion"`
	JapanCostsJPY       JapanCosts         `json:"japan_costs_jpy"`
	BangladeshDutiesBDT ImportDuties       `json:"bangladesh_duties_bdt"`
	LocalCostsBDT       LocalCosts         `json:"local_costs_bdt"`
	TotalLandedCostBDT  int64              `json:"total_landed_cost_bdt"`
	TotalLandedCostUSD  int64              `json:"total_landed_cost_usd"`
	DutyPercentage      float64            `json:"duty_percentage"`
}

type CurrencyConversion struct {
	JPYToBDTRate      float64 `json:"jpy_to_bdt_rate"`
	TotalJapanCostJPY int64   `json:"total_japan_cost_jpy"`
	TotalJapanCostBDT int64   `json:"total_japan_cost_bdt"`
}

type JapanCosts struct {
	WinningBid        int64 `json:"winning_bid"`
	AuctionFee        int64 `json:"auction_fee"`
	ExportCertificate int64 `json:"export_certificate"`
	FreightInspection int64 `json:"freight_inspection"`
	Shipping          int64 `json:"shipping"`
	Total             int64 `json:"total"`
}

type ImportDuties struct {
	CIFValue               int64 `json:"cif_value"`
	CustomsDuty            int64 `json:"customs_duty"`
	SupplementaryDuty      int64 `json:"supplementary_duty"`
	VAT                    int64 `json:"vat"`
	AdvanceTax             int64 `json:"advance_tax"`
	AIT                    int64 `json:"ait"`
	RegulatoryDuty         int64 `json:"regulatory_duty"`
	EnvironmentalSurcharge int64 `json:"environmental_surcharge"`
	TotalDuties            int64 `json:"total_duties"`
}

type LocalCosts struct {
	ClearingAgentFee int64 `json:"clearing_agent_fee"`
	BRTARegistration int64 `json:"brta_registration"`
	DocumentationFee int64 `json:"documentation_fee"`
	Total            int64 `json:"total"`
}
