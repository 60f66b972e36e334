package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
)

// ── Mock SchoolRepository ──

type mockSchoolRepo struct {
	schools []model.School
}

func newMockSchoolRepo(schools ...model.School) *mockSchoolRepo {
	return &mockSchoolRepo{schools: schools}
}

func (m *mockSchoolRepo) ReplaceAll(_ context.Context, schools []model.School) error {
	m.schools = schools
	return nil
}

func (m *mockSchoolRepo) ListNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.schools))
	for _, s := range m.schools {
		names = append(names, s.SchoolName)
	}
	return names, nil
}

func (m *mockSchoolRepo) SearchNames(_ context.Context, query string) ([]string, error) {
	q := strings.ToLower(query)
	var names []string
	for _, s := range m.schools {
		if strings.Contains(strings.ToLower(s.SchoolName), q) {
			names = append(names, s.SchoolName)
		}
	}
	return names, nil
}

func (m *mockSchoolRepo) GetByName(_ context.Context, name string) (*model.School, error) {
	for i := range m.schools {
		if m.schools[i].SchoolName == name {
			return &m.schools[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSchoolRepo) ListByNames(_ context.Context, names []string) ([]model.School, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var result []model.School
	for _, s := range m.schools {
		if want[s.SchoolName] {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockSchoolRepo) ListByStates(_ context.Context, states []string, excludeNames []string) ([]model.School, error) {
	wantState := make(map[string]bool, len(states))
	for _, st := range states {
		wantState[st] = true
	}
	excluded := make(map[string]bool, len(excludeNames))
	for _, n := range excludeNames {
		excluded[n] = true
	}
	var result []model.School
	for _, s := range m.schools {
		if s.State == nil || !wantState[*s.State] || excluded[s.SchoolName] {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *mockSchoolRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.schools)), nil
}

// ── Mock DatasetEnsurer ──

type mockEnsurer struct {
	err   error
	calls int
}

func (m *mockEnsurer) Ensure(_ context.Context) error {
	m.calls++
	return m.err
}

// ── Shared helpers ──

func testRepo(schools ...model.School) (*repository.Repository, *mockSchoolRepo) {
	schoolRepo := newMockSchoolRepo(schools...)
	return &repository.Repository{School: schoolRepo}, schoolRepo
}

func fptr(v float64) *float64 { return &v }

func sptr(v string) *string { return &v }
