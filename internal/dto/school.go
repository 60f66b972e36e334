package dto

// ── school lookup DTOs ──

// SchoolListResponse lists school names matching a filter query.
type SchoolListResponse struct {
	Query   string   `json:"query,omitempty"`
	Schools []string `json:"schools"`
	Total   int      `json:"total"`
}

// MetricValue is one formatted metric with its raw value alongside.
type MetricValue struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Formatted string   `json:"formatted"`
	Value     *float64 `json:"value,omitempty"`
}

// NetPriceResponse carries a school's net-price-calculator link.
type NetPriceResponse struct {
	SchoolName           string `json:"school_name"`
	NetPriceCalculatorURL string `json:"net_price_calculator_url,omitempty"`
	Available            bool   `json:"available"`
}

// FinancialAidResponse is the aid research panel of one school.
type FinancialAidResponse struct {
	SchoolName string        `json:"school_name"`
	Metrics    []MetricValue `json:"metrics"`
}

// ContactResponse carries a school's financial-aid contact page.
type ContactResponse struct {
	SchoolName string `json:"school_name"`
	SchoolURL  string `json:"school_url,omitempty"`
	Available  bool   `json:"available"`
}

// TransferResponse is the transfer admissions panel of one school.
type TransferResponse struct {
	SchoolName           string      `json:"school_name"`
	AdmitRate            MetricValue `json:"admit_rate"`
	CreditAcceptance     MetricValue `json:"credit_acceptance"`
	ArticulationPartners string      `json:"articulation_partners"`
}
