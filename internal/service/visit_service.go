package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/config"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/cache"
)

// visitEventDuration is the assumed length of a campus tour slot in the
// calendar export; the source pages publish no end time.
const visitEventDuration = time.Hour

// VisitService plans campus visits: it scrapes a school's tour-event page
// (best-effort, same degradation rules as reviews) and renders the events as
// an iCalendar download.
type VisitService interface {
	GetEvents(ctx context.Context, name string) (*dto.VisitEventsResponse, error)
	// Calendar returns the events as an .ics file.
	Calendar(ctx context.Context, name string) (*bytes.Buffer, string, error)
}

type visitService struct {
	cfg    *config.FetchConfig
	repo   *repository.Repository
	loader DatasetEnsurer
	logger *zap.Logger
	client *http.Client
	cache  *cache.TTL[[]dto.VisitEvent]
}

// NewVisitService creates a VisitService instance.
func NewVisitService(cfg *config.FetchConfig, repo *repository.Repository, loader DatasetEnsurer, logger *zap.Logger) VisitService {
	return &visitService{
		cfg:    cfg,
		repo:   repo,
		loader: loader,
		logger: logger,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cache.New[[]dto.VisitEvent](),
	}
}

func (s *visitService) GetEvents(ctx context.Context, name string) (*dto.VisitEventsResponse, error) {
	school, err := lookupSchool(ctx, s.loader, s.repo, name)
	if err != nil {
		return nil, err
	}

	resp := &dto.VisitEventsResponse{SchoolName: school.SchoolName, Events: []dto.VisitEvent{}}
	if school.SchoolURL == nil || *school.SchoolURL == "" {
		// No website on record: nothing to scrape, not an error.
		return resp, nil
	}
	base := strings.TrimRight(normalizeLinkURL(*school.SchoolURL), "/")

	events, err := s.cache.GetOrLoad(school.SchoolName, s.cfg.EventsTTL, func() ([]dto.VisitEvent, error) {
		return s.scrapeEvents(ctx, base+"/visit/events"), nil
	})
	if err != nil {
		return nil, err
	}

	resp.Events = events
	resp.Total = len(events)
	return resp, nil
}

func (s *visitService) Calendar(ctx context.Context, name string) (*bytes.Buffer, string, error) {
	resp, err := s.GetEvents(ctx, name)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EduAid//Campus Visit Planner//EN")

	now := time.Now()
	for i, event := range resp.Events {
		start, ok := parseEventDate(event.Date)
		if !ok {
			// An unparseable date stays visible in the event list but cannot
			// be placed on a calendar.
			continue
		}
		ve := cal.AddEvent(fmt.Sprintf("visit-%d-%s@eduaid", i, kebabName(resp.SchoolName)))
		ve.SetCreatedTime(now)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(visitEventDuration))
		ve.SetSummary(event.Name)
		ve.SetLocation(resp.SchoolName)
		ve.SetGeo(event.Latitude, event.Longitude)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("campus_visits_%s.ics", kebabName(resp.SchoolName))
	return buf, filename, nil
}

func (s *visitService) scrapeEvents(ctx context.Context, url string) []dto.VisitEvent {
	doc, err := fetchDocument(ctx, s.client, url)
	if err != nil {
		s.logger.Warn("visit events fetch failed", zap.String("url", url), zap.Error(err))
		return nil
	}

	var events []dto.VisitEvent
	doc.Find(".event-item").Each(func(_ int, item *goquery.Selection) {
		name := strings.TrimSpace(item.Find(".event-title").First().Text())
		date := strings.TrimSpace(item.Find(".event-date").First().Text())
		latRaw, hasLat := item.Attr("data-lat")
		lngRaw, hasLng := item.Attr("data-lng")
		if name == "" || date == "" || !hasLat || !hasLng {
			return
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
		if err != nil {
			return
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
		if err != nil {
			return
		}
		events = append(events, dto.VisitEvent{
			Name:      name,
			Date:      date,
			Latitude:  lat,
			Longitude: lng,
		})
	})
	return events
}

// eventDateLayouts are the date shapes seen on tour pages.
var eventDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"01/02/2006",
}

func parseEventDate(raw string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
