package model

// School is one row of the College Scorecard dataset. Every attribute except
// the name is optional in the source file; numeric columns that fail to parse
// are stored as nil, never as an error.
type School struct {
	RowID      uint    `gorm:"primaryKey;autoIncrement"        json:"-"` // preserves file order
	UnitID     *int64  `gorm:"column:unit_id"                  json:"unit_id,omitempty"`
	SchoolName string  `gorm:"column:school_name;index"        json:"school_name"`
	City       *string `gorm:"column:city"                     json:"city,omitempty"`
	State      *string `gorm:"column:state;index"              json:"state,omitempty"`

	SchoolURL             *string `gorm:"column:school_url"               json:"school_url,omitempty"`
	NetPriceCalculatorURL *string `gorm:"column:net_price_calculator_url" json:"net_price_calculator_url,omitempty"`
	UnigoSlug             *string `gorm:"column:unigo_slug"               json:"unigo_slug,omitempty"`

	InStateTuition     *float64 `gorm:"column:in_state_tuition"     json:"in_state_tuition,omitempty"`
	OutOfStateTuition  *float64 `gorm:"column:out_of_state_tuition" json:"out_of_state_tuition,omitempty"`
	AttendanceCost     *float64 `gorm:"column:attendance_cost"      json:"attendance_cost,omitempty"`
	NetPricePublic     *float64 `gorm:"column:net_price_public"     json:"net_price_public,omitempty"`
	NetPricePrivate    *float64 `gorm:"column:net_price_private"    json:"net_price_private,omitempty"`
	MedianDebt         *float64 `gorm:"column:median_debt"          json:"median_debt,omitempty"`
	CompletionRate     *float64 `gorm:"column:completion_rate"      json:"completion_rate,omitempty"`
	AdmissionRate      *float64 `gorm:"column:admission_rate"       json:"admission_rate,omitempty"`
	SATAverage         *float64 `gorm:"column:sat_average"          json:"sat_average,omitempty"`
	EnrollmentSize     *float64 `gorm:"column:enrollment_size"      json:"enrollment_size,omitempty"`
	FirstGenerationRate *float64 `gorm:"column:first_generation_rate" json:"first_generation_rate,omitempty"`
	AgeEntry           *float64 `gorm:"column:age_entry"            json:"age_entry,omitempty"`
	MedianFamilyIncome *float64 `gorm:"column:median_family_income" json:"median_family_income,omitempty"`
	MedianEarnings10yr *float64 `gorm:"column:median_earnings_10yr" json:"median_earnings_10yr,omitempty"`

	PercentWhite    *float64 `gorm:"column:percent_white"    json:"percent_white,omitempty"`
	PercentBlack    *float64 `gorm:"column:percent_black"    json:"percent_black,omitempty"`
	PercentHispanic *float64 `gorm:"column:percent_hispanic" json:"percent_hispanic,omitempty"`
	PercentAsian    *float64 `gorm:"column:percent_asian"    json:"percent_asian,omitempty"`

	Locale *float64 `gorm:"column:locale" json:"locale,omitempty"`

	TransferAdmitRate        *float64 `gorm:"column:transfer_admit_rate"        json:"transfer_admit_rate,omitempty"`
	TransferCreditAcceptance *float64 `gorm:"column:transfer_credit_acceptance" json:"transfer_credit_acceptance,omitempty"`
	ArticulationPartners     *string  `gorm:"column:articulation_partners"      json:"articulation_partners,omitempty"`
}

// TableName sets the table name.
func (School) TableName() string { return "schools" }

// MetricValue returns the raw value behind a metric catalog key, nil when the
// school does not carry it.
func (s *School) MetricValue(key string) *float64 {
	switch key {
	case "in_state_tuition":
		return s.InStateTuition
	case "out_of_state_tuition":
		return s.OutOfStateTuition
	case "attendance_cost":
		return s.AttendanceCost
	case "net_price_public":
		return s.NetPricePublic
	case "net_price_private":
		return s.NetPricePrivate
	case "median_debt":
		return s.MedianDebt
	case "completion_rate":
		return s.CompletionRate
	case "admission_rate":
		return s.AdmissionRate
	case "sat_average":
		return s.SATAverage
	case "enrollment_size":
		return s.EnrollmentSize
	case "first_generation_rate":
		return s.FirstGenerationRate
	case "age_entry":
		return s.AgeEntry
	case "median_family_income":
		return s.MedianFamilyIncome
	case "median_earnings_10yr":
		return s.MedianEarnings10yr
	case "percent_white":
		return s.PercentWhite
	case "percent_black":
		return s.PercentBlack
	case "percent_hispanic":
		return s.PercentHispanic
	case "percent_asian":
		return s.PercentAsian
	case "locale":
		return s.Locale
	case "transfer_admit_rate":
		return s.TransferAdmitRate
	case "transfer_credit_acceptance":
		return s.TransferCreditAcceptance
	default:
		return nil
	}
}
