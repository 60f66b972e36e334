package dto

// ── scholarship resource DTOs ──

// ResourceLink is a named external link.
type ResourceLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AidType describes one category of financial aid.
type AidType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScholarshipResponse is the static scholarship-resources page content.
type ScholarshipResponse struct {
	AidTypes    []AidType      `json:"aid_types"`
	FAFSA       []string       `json:"fafsa"`
	SearchTools []ResourceLink `json:"search_tools"`
	Tips        []string       `json:"tips"`
}
