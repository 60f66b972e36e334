package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeColumn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"School Name", "school_name"},
		{"  In-State Tuition  ", "in_state_tuition"},
		{"NET   PRICE (Public)", "net_price_public"},
		{"state", "state"},
		{"%_White", "white"},
		// Known synonyms get renamed after normalization.
		{"UNITID", "unit_id"},
		{"Price Calculator URL", "net_price_calculator_url"},
		{"Median Earnings 10yrs", "median_earnings_10yr"},
	}
	for _, tc := range cases {
		if got := NormalizeColumn(tc.in); got != tc.want {
			t.Errorf("NormalizeColumn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

const sampleCSV = `School Name,City,State,In-State Tuition,Completion Rate,SAT Average,UNITID,Price Calculator URL
Acme University,Acmeville,CA,10000,0.75,1280,100654,npc.acme.edu
Beta College,Betatown,NY,20000,NULL,PrivacySuppressed,100663,
Gamma Institute,,TX,not-a-number,0.5,,100690,www.gamma.edu/npc
`

func TestParse(t *testing.T) {
	schools, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schools) != 3 {
		t.Fatalf("expected 3 schools, got %d", len(schools))
	}

	acme := schools[0]
	if acme.SchoolName != "Acme University" {
		t.Errorf("unexpected name %q", acme.SchoolName)
	}
	if acme.City == nil || *acme.City != "Acmeville" {
		t.Errorf("unexpected city %v", acme.City)
	}
	if acme.InStateTuition == nil || *acme.InStateTuition != 10000 {
		t.Errorf("unexpected tuition %v", acme.InStateTuition)
	}
	if acme.CompletionRate == nil || *acme.CompletionRate != 0.75 {
		t.Errorf("unexpected completion rate %v", acme.CompletionRate)
	}
	if acme.UnitID == nil || *acme.UnitID != 100654 {
		t.Errorf("renamed unit_id column not picked up: %v", acme.UnitID)
	}
	if acme.NetPriceCalculatorURL == nil || *acme.NetPriceCalculatorURL != "npc.acme.edu" {
		t.Errorf("renamed calculator column not picked up: %v", acme.NetPriceCalculatorURL)
	}

	// Missing-data sentinels and unparseable numbers become nil.
	beta := schools[1]
	if beta.CompletionRate != nil {
		t.Errorf("NULL cell must parse to nil, got %v", *beta.CompletionRate)
	}
	if beta.SATAverage != nil {
		t.Errorf("PrivacySuppressed cell must parse to nil, got %v", *beta.SATAverage)
	}
	if beta.NetPriceCalculatorURL != nil {
		t.Errorf("empty cell must parse to nil, got %v", *beta.NetPriceCalculatorURL)
	}

	gamma := schools[2]
	if gamma.City != nil {
		t.Errorf("empty city must parse to nil, got %v", *gamma.City)
	}
	if gamma.InStateTuition != nil {
		t.Errorf("garbage numeric cell must parse to nil, got %v", *gamma.InStateTuition)
	}
}

func TestParse_UnknownColumnsIgnored(t *testing.T) {
	csv := `School Name,Mystery Column,State
Acme University,whatever,CA
`
	schools, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schools) != 1 || schools[0].SchoolName != "Acme University" {
		t.Errorf("unexpected result: %+v", schools)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	// Rows shorter or longer than the header must not fail the import.
	csv := `School Name,City,State
Acme University,Acmeville
Beta College,Betatown,NY,extra,cells
`
	schools, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schools) != 2 {
		t.Fatalf("expected 2 schools, got %d", len(schools))
	}
	if schools[0].State != nil {
		t.Errorf("short row must leave trailing columns nil, got %v", *schools[0].State)
	}
	if schools[1].State == nil || *schools[1].State != "NY" {
		t.Errorf("long row lost a value: %v", schools[1].State)
	}
}

func TestParse_EmptyDataset(t *testing.T) {
	// A header with zero data rows is an unavailable dataset.
	_, err := Parse(strings.NewReader("School Name,City,State\n"))
	if !errors.Is(err, ErrDatasetUnavailable) {
		t.Errorf("expected ErrDatasetUnavailable, got %v", err)
	}

	// So is an entirely empty file.
	_, err = Parse(strings.NewReader(""))
	if !errors.Is(err, ErrDatasetUnavailable) {
		t.Errorf("expected ErrDatasetUnavailable, got %v", err)
	}
}
