package dto

// ── enrichment DTOs (reviews, campus visits) ──

// Review is one scraped student review.
type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Source string  `json:"source"` // unigo | collegewise
}

// ReviewsResponse aggregates reviews from all sources for a school.
type ReviewsResponse struct {
	SchoolName    string   `json:"school_name"`
	Reviews       []Review `json:"reviews"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	Total         int      `json:"total"`
}

// VisitEvent is one scraped campus tour event.
type VisitEvent struct {
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VisitEventsResponse lists upcoming campus visit events for a school.
type VisitEventsResponse struct {
	SchoolName string       `json:"school_name"`
	Events     []VisitEvent `json:"events"`
	Total      int          `json:"total"`
}
