package model

// MaxCompareSchools is the ceiling on schools in one comparison selection.
const MaxCompareSchools = 5

// FormatKind selects the display-formatting rule for a metric value.
type FormatKind string

// Format kinds.
const (
	KindCurrency   FormatKind = "currency"
	KindPercent    FormatKind = "percent"
	KindInteger    FormatKind = "integer"
	KindCount      FormatKind = "count"
	KindAgeYears   FormatKind = "age_years"
	KindLocaleCode FormatKind = "locale_code"
	KindRaw        FormatKind = "raw"
)

// MetricEntry describes one comparable metric of a school.
type MetricEntry struct {
	Key     string     `json:"key"`
	Label   string     `json:"label"`
	Tooltip string     `json:"tooltip"`
	Kind    FormatKind `json:"kind"`
}

// MetricCategory groups metrics as they appear in the comparison picker.
// Picking metrics is exclusive to one category per comparison.
type MetricCategory struct {
	Name    string        `json:"name"`
	Metrics []MetricEntry `json:"metrics"`
}

// MetricCatalog is the static metric catalog, read-only for the process
// lifetime. Order matters: it is the display order of the picker.
var MetricCatalog = []MetricCategory{
	{
		Name: "Cost & Financial",
		Metrics: []MetricEntry{
			{Key: "in_state_tuition", Label: "In-State Tuition", Tooltip: "Published in-state tuition and fees", Kind: KindCurrency},
			{Key: "out_of_state_tuition", Label: "Out-of-State Tuition", Tooltip: "Published out-of-state tuition and fees", Kind: KindCurrency},
			{Key: "attendance_cost", Label: "Cost of Attendance", Tooltip: "Average annual total cost of attendance", Kind: KindCurrency},
			{Key: "net_price_public", Label: "Net Price (Public)", Tooltip: "Average net price for public institutions", Kind: KindCurrency},
			{Key: "net_price_private", Label: "Net Price (Private)", Tooltip: "Average net price for private institutions", Kind: KindCurrency},
			{Key: "median_debt", Label: "Median Debt", Tooltip: "Median federal loan debt at completion", Kind: KindCurrency},
		},
	},
	{
		Name: "Academic Performance",
		Metrics: []MetricEntry{
			{Key: "completion_rate", Label: "Graduation Rate", Tooltip: "Share of students completing within 150% of expected time", Kind: KindPercent},
			{Key: "admission_rate", Label: "Admission Rate", Tooltip: "Share of applicants admitted", Kind: KindPercent},
			{Key: "sat_average", Label: "SAT Avg", Tooltip: "Average SAT equivalent score of admitted students", Kind: KindInteger},
		},
	},
	{
		Name: "Diversity",
		Metrics: []MetricEntry{
			{Key: "percent_white", Label: "% White", Tooltip: "Share of enrolled students identifying as white", Kind: KindPercent},
			{Key: "percent_black", Label: "% Black", Tooltip: "Share of enrolled students identifying as Black", Kind: KindPercent},
			{Key: "percent_hispanic", Label: "% Hispanic", Tooltip: "Share of enrolled students identifying as Hispanic", Kind: KindPercent},
			{Key: "percent_asian", Label: "% Asian", Tooltip: "Share of enrolled students identifying as Asian", Kind: KindPercent},
			{Key: "first_generation_rate", Label: "% First-Generation", Tooltip: "Share of first-generation college students", Kind: KindPercent},
		},
	},
	{
		Name: "Outcomes",
		Metrics: []MetricEntry{
			{Key: "median_earnings_10yr", Label: "Median Earnings 10yr", Tooltip: "Median earnings ten years after entry", Kind: KindCurrency},
			{Key: "median_family_income", Label: "Median Family Income", Tooltip: "Median family income of enrolled students", Kind: KindCurrency},
		},
	},
	{
		Name: "Student Body",
		Metrics: []MetricEntry{
			{Key: "enrollment_size", Label: "Enrollment", Tooltip: "Undergraduate enrollment size", Kind: KindCount},
			{Key: "age_entry", Label: "Average Age at Entry", Tooltip: "Average student age at entry", Kind: KindAgeYears},
			{Key: "locale", Label: "Campus Setting", Tooltip: "Degree of urbanization of the campus location", Kind: KindLocaleCode},
		},
	},
}

// CategoryByName returns the catalog category with the given name.
func CategoryByName(name string) (MetricCategory, bool) {
	for _, cat := range MetricCatalog {
		if cat.Name == name {
			return cat, true
		}
	}
	return MetricCategory{}, false
}

// Entry returns the metric entry for key within the category.
func (c MetricCategory) Entry(key string) (MetricEntry, bool) {
	for _, m := range c.Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return MetricEntry{}, false
}

// LocaleLabels maps the twelve NCES locale codes to display labels. Codes
// outside the table render as "Unknown".
var LocaleLabels = map[int]string{
	11: "City: Large",
	12: "City: Midsize",
	13: "City: Small",
	21: "Suburb: Large",
	22: "Suburb: Midsize",
	23: "Suburb: Small",
	31: "Town: Fringe",
	32: "Town: Distant",
	33: "Town: Remote",
	41: "Rural: Fringe",
	42: "Rural: Distant",
	43: "Rural: Remote",
}
