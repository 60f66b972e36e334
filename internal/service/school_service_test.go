package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
)

func setupTestSchoolService(schools ...model.School) (SchoolService, *mockEnsurer) {
	repo, _ := testRepo(schools...)
	ensurer := &mockEnsurer{}
	svc := NewSchoolService(repo, ensurer, zap.NewNop())
	return svc, ensurer
}

func TestSchoolService_ListSchools_All(t *testing.T) {
	svc, ensurer := setupTestSchoolService(
		model.School{SchoolName: "Acme University"},
		model.School{SchoolName: "Beta College"},
		model.School{SchoolName: "Gamma Institute"},
	)

	resp, err := svc.ListSchools(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 3 || len(resp.Schools) != 3 {
		t.Errorf("expected 3 schools, got total=%d len=%d", resp.Total, len(resp.Schools))
	}
	// Dataset (file) order is preserved.
	if resp.Schools[0] != "Acme University" || resp.Schools[2] != "Gamma Institute" {
		t.Errorf("unexpected order: %v", resp.Schools)
	}
	if ensurer.calls != 1 {
		t.Errorf("expected 1 Ensure call, got %d", ensurer.calls)
	}
}

func TestSchoolService_ListSchools_Filtered(t *testing.T) {
	svc, _ := setupTestSchoolService(
		model.School{SchoolName: "Acme University"},
		model.School{SchoolName: "Beta College"},
		model.School{SchoolName: "University of Beta"},
	)

	resp, err := svc.ListSchools(context.Background(), "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected 2 matches for %q, got %d: %v", "beta", resp.Total, resp.Schools)
	}

	// Filtering twice with the same query returns the same result.
	again, err := svc.ListSchools(context.Background(), "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Schools) != len(resp.Schools) {
		t.Errorf("filter is not stable: %v vs %v", resp.Schools, again.Schools)
	}
}

func TestSchoolService_ListSchools_NoMatches(t *testing.T) {
	svc, _ := setupTestSchoolService(model.School{SchoolName: "Acme University"})

	resp, err := svc.ListSchools(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Schools == nil {
		t.Error("expected empty slice, got nil")
	}
	if resp.Total != 0 {
		t.Errorf("expected 0 matches, got %d", resp.Total)
	}
}

func TestSchoolService_ListSchools_DatasetUnavailable(t *testing.T) {
	repo, _ := testRepo()
	wantErr := errors.New("dataset gone")
	svc := NewSchoolService(repo, &mockEnsurer{err: wantErr}, zap.NewNop())

	_, err := svc.ListSchools(context.Background(), "")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected ensure error to propagate, got %v", err)
	}
}

func TestSchoolService_GetNetPrice(t *testing.T) {
	svc, _ := setupTestSchoolService(
		model.School{SchoolName: "Acme University", NetPriceCalculatorURL: sptr("npc.acme.edu/calc")},
		model.School{SchoolName: "Beta College"},
	)

	resp, err := svc.GetNetPrice(context.Background(), "Acme University")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Available {
		t.Error("expected calculator to be available")
	}
	if resp.NetPriceCalculatorURL != "https://npc.acme.edu/calc" {
		t.Errorf("expected https scheme prepended, got %q", resp.NetPriceCalculatorURL)
	}

	// A school without the column is a soft miss, not an error.
	resp, err = svc.GetNetPrice(context.Background(), "Beta College")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Available || resp.NetPriceCalculatorURL != "" {
		t.Errorf("expected unavailable calculator, got %+v", resp)
	}
}

func TestSchoolService_GetNetPrice_NotFound(t *testing.T) {
	svc, _ := setupTestSchoolService(model.School{SchoolName: "Acme University"})

	_, err := svc.GetNetPrice(context.Background(), "Nowhere State")
	if !errors.Is(err, ErrSchoolNotFound) {
		t.Errorf("expected ErrSchoolNotFound, got %v", err)
	}
}

func TestSchoolService_GetFinancialAid(t *testing.T) {
	svc, _ := setupTestSchoolService(model.School{
		SchoolName:     "Acme University",
		InStateTuition: fptr(10000),
		MedianDebt:     fptr(15500),
		CompletionRate: fptr(0.75),
	})

	resp, err := svc.GetFinancialAid(context.Background(), "Acme University")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Metrics) != 6 {
		t.Fatalf("expected 6 panel metrics, got %d", len(resp.Metrics))
	}

	byKey := make(map[string]string, len(resp.Metrics))
	for _, m := range resp.Metrics {
		byKey[m.Key] = m.Formatted
	}
	if byKey["in_state_tuition"] != "$10,000" {
		t.Errorf("in_state_tuition = %q, want $10,000", byKey["in_state_tuition"])
	}
	if byKey["completion_rate"] != "75.0%" {
		t.Errorf("completion_rate = %q, want 75.0%%", byKey["completion_rate"])
	}
	// Absent columns render as N/A, never fail the panel.
	if byKey["sat_average"] != NotAvailable {
		t.Errorf("sat_average = %q, want %q", byKey["sat_average"], NotAvailable)
	}
	if byKey["admission_rate"] != NotAvailable {
		t.Errorf("admission_rate = %q, want %q", byKey["admission_rate"], NotAvailable)
	}
}

func TestSchoolService_GetContact(t *testing.T) {
	svc, _ := setupTestSchoolService(
		model.School{SchoolName: "Acme University", SchoolURL: sptr("www.acme.edu")},
		model.School{SchoolName: "Beta College"},
	)

	resp, err := svc.GetContact(context.Background(), "Acme University")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Available || resp.SchoolURL != "https://www.acme.edu" {
		t.Errorf("unexpected contact response: %+v", resp)
	}

	resp, err = svc.GetContact(context.Background(), "Beta College")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Available {
		t.Error("expected no contact page for school without URL")
	}
}

func TestSchoolService_GetTransferProfile(t *testing.T) {
	svc, _ := setupTestSchoolService(
		model.School{
			SchoolName:               "Acme University",
			TransferAdmitRate:        fptr(0.62),
			TransferCreditAcceptance: fptr(45),
			ArticulationPartners:     sptr("Acme Community College; Gamma CC"),
		},
		model.School{SchoolName: "Beta College"},
	)

	resp, err := svc.GetTransferProfile(context.Background(), "Acme University")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AdmitRate.Formatted != "62.0%" {
		t.Errorf("admit rate = %q, want 62.0%%", resp.AdmitRate.Formatted)
	}
	if resp.CreditAcceptance.Formatted != "45" {
		t.Errorf("credit acceptance = %q, want 45", resp.CreditAcceptance.Formatted)
	}
	if resp.ArticulationPartners != "Acme Community College; Gamma CC" {
		t.Errorf("unexpected partners: %q", resp.ArticulationPartners)
	}

	// No transfer columns at all still renders a full panel.
	resp, err = svc.GetTransferProfile(context.Background(), "Beta College")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AdmitRate.Formatted != NotAvailable {
		t.Errorf("admit rate = %q, want %q", resp.AdmitRate.Formatted, NotAvailable)
	}
	if resp.ArticulationPartners != "No data" {
		t.Errorf("partners = %q, want \"No data\"", resp.ArticulationPartners)
	}
}
