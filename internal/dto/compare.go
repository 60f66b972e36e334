package dto

// ── comparison DTOs ──

// CompareRequest asks for a side-by-side comparison. Metric keys must all
// belong to the named catalog category.
type CompareRequest struct {
	SchoolNames []string `json:"school_names" binding:"required"`
	Category    string   `json:"category"     binding:"required"`
	MetricKeys  []string `json:"metric_keys"  binding:"required,min=1"`
}

// ComparisonRow is one school's formatted cells, in requested metric order.
type ComparisonRow struct {
	School string   `json:"school"`
	Cells  []string `json:"cells"`
}

// ChartPoint pairs a school with the raw (unformatted) metric value.
type ChartPoint struct {
	School string   `json:"school"`
	Value  *float64 `json:"value"`
}

// ChartSeries is the raw data behind one per-metric bar chart.
type ChartSeries struct {
	Key    string       `json:"key"`
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// ComparisonResponse is the assembled display table plus chart data.
type ComparisonResponse struct {
	Category string          `json:"category"`
	Columns  []string        `json:"columns"` // "School" + metric labels
	Rows     []ComparisonRow `json:"rows"`
	Charts   []ChartSeries   `json:"charts"`
}

// SimilarRequest asks for a discovery sample of same-state schools.
type SimilarRequest struct {
	SchoolNames []string `json:"school_names" binding:"required"`
	Count       int      `json:"count"`
}

// SimilarSchool is one sampled discovery suggestion.
type SimilarSchool struct {
	SchoolName string `json:"school_name"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
}
