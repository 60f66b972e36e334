// Package dataset reads the College Scorecard CSV into the in-memory school
// table. The file is the only durable store: the table is rebuilt from it at
// startup and again once the refresh TTL lapses.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
)

// ErrDatasetUnavailable reports a missing, unreadable, or empty dataset file.
// At startup this error is fatal for the whole service.
var ErrDatasetUnavailable = errors.New("college dataset is missing or empty")

// columnRenames maps known header synonyms, applied after normalization.
// The four source revisions of the dashboard disagree on these names.
var columnRenames = map[string]string{
	"unitid":               "unit_id",
	"price_calculator_url": "net_price_calculator_url",
	"median_earnings_10yrs": "median_earnings_10yr",
}

var nonWordRun = regexp.MustCompile(`[^a-z0-9_]+`)
var underscoreRun = regexp.MustCompile(`_+`)

// NormalizeColumn canonicalizes a CSV header name: trim, lowercase, non-word
// runs to a single underscore, repeated underscores collapsed.
func NormalizeColumn(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonWordRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if renamed, ok := columnRenames[s]; ok {
		return renamed
	}
	return s
}

// Loader owns the CSV import and its time-based memoization.
type Loader struct {
	path   string
	ttl    time.Duration
	db     *gorm.DB
	repo   repository.SchoolRepository
	logger *zap.Logger

	mu       sync.Mutex
	loadedAt time.Time
	now      func() time.Time
}

// NewLoader creates a Loader over the configured dataset path.
func NewLoader(path string, ttl time.Duration, db *gorm.DB, repo repository.SchoolRepository, logger *zap.Logger) *Loader {
	return &Loader{
		path:   path,
		ttl:    ttl,
		db:     db,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Ensure makes sure a live copy of the dataset is loaded. Within the TTL it
// is a cheap timestamp check. After expiry the file is re-read; if the
// re-read fails while stale data exists, the stale copy keeps serving
// (last-write-wins on the next successful refresh).
func (l *Loader) Ensure(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.loadedAt.IsZero() && l.now().Sub(l.loadedAt) < l.ttl {
		return nil
	}

	err := l.reloadLocked(ctx)
	if err != nil && !l.loadedAt.IsZero() {
		l.logger.Warn("dataset refresh failed, serving previous copy",
			zap.String("path", l.path), zap.Error(err))
		l.loadedAt = l.now()
		return nil
	}
	return err
}

// Reload forces a re-read of the dataset file.
func (l *Loader) Reload(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reloadLocked(ctx)
}

func (l *Loader) reloadLocked(ctx context.Context) error {
	if err := l.db.WithContext(ctx).AutoMigrate(&model.School{}); err != nil {
		return fmt.Errorf("migrate school table: %w", err)
	}

	f, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	defer f.Close()

	schools, err := Parse(f)
	if err != nil {
		return err
	}

	if err := l.repo.ReplaceAll(ctx, schools); err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	l.loadedAt = l.now()
	l.logger.Info("dataset loaded",
		zap.String("path", l.path),
		zap.Int("schools", len(schools)),
	)
	return nil
}

// Parse reads CSV content into school records. Headers are normalized and
// renamed; unknown columns are ignored; numeric cells that fail to parse
// become nil, never an error. Zero data rows is ErrDatasetUnavailable.
func Parse(r io.Reader) ([]model.School, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = NormalizeColumn(h)
	}

	var schools []model.School
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
		}

		var s model.School
		for i, cell := range record {
			if i >= len(columns) {
				break
			}
			setField(&s, columns[i], cell)
		}
		schools = append(schools, s)
	}

	if len(schools) == 0 {
		return nil, ErrDatasetUnavailable
	}
	return schools, nil
}

// missingSentinels are cell values the Scorecard export uses for absent data.
var missingSentinels = map[string]bool{
	"":                  true,
	"null":              true,
	"na":                true,
	"n/a":               true,
	"privacysuppressed": true,
}

func setField(s *model.School, column, cell string) {
	cell = strings.TrimSpace(cell)

	switch column {
	case "school_name":
		s.SchoolName = cell
		return
	case "city":
		s.City = optString(cell)
		return
	case "state":
		s.State = optString(cell)
		return
	case "school_url":
		s.SchoolURL = optString(cell)
		return
	case "net_price_calculator_url":
		s.NetPriceCalculatorURL = optString(cell)
		return
	case "unigo_slug":
		s.UnigoSlug = optString(cell)
		return
	case "articulation_partners":
		s.ArticulationPartners = optString(cell)
		return
	case "unit_id":
		if n, ok := optInt(cell); ok {
			s.UnitID = &n
		}
		return
	}

	if v, ok := optNumber(cell); ok {
		switch column {
		case "in_state_tuition":
			s.InStateTuition = &v
		case "out_of_state_tuition":
			s.OutOfStateTuition = &v
		case "attendance_cost":
			s.AttendanceCost = &v
		case "net_price_public":
			s.NetPricePublic = &v
		case "net_price_private":
			s.NetPricePrivate = &v
		case "median_debt":
			s.MedianDebt = &v
		case "completion_rate":
			s.CompletionRate = &v
		case "admission_rate":
			s.AdmissionRate = &v
		case "sat_average":
			s.SATAverage = &v
		case "enrollment_size":
			s.EnrollmentSize = &v
		case "first_generation_rate":
			s.FirstGenerationRate = &v
		case "age_entry":
			s.AgeEntry = &v
		case "median_family_income":
			s.MedianFamilyIncome = &v
		case "median_earnings_10yr":
			s.MedianEarnings10yr = &v
		case "percent_white":
			s.PercentWhite = &v
		case "percent_black":
			s.PercentBlack = &v
		case "percent_hispanic":
			s.PercentHispanic = &v
		case "percent_asian":
			s.PercentAsian = &v
		case "locale":
			s.Locale = &v
		case "transfer_admit_rate":
			s.TransferAdmitRate = &v
		case "transfer_credit_acceptance":
			s.TransferCreditAcceptance = &v
		}
	}
}

func optString(cell string) *string {
	if missingSentinels[strings.ToLower(cell)] {
		return nil
	}
	return &cell
}

func optNumber(cell string) (float64, bool) {
	if missingSentinels[strings.ToLower(cell)] {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func optInt(cell string) (int64, bool) {
	v, ok := optNumber(cell)
	if !ok {
		return 0, false
	}
	return int64(v), true
}
