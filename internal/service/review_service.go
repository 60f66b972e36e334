package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/config"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/cache"
)

// maxDisplayedReviews caps the review panel; the average still covers every
// scraped review.
const maxDisplayedReviews = 10

// ReviewService aggregates student reviews scraped from Unigo and
// Collegewise. Both sources are best-effort: a transport failure, timeout,
// or unexpected markup yields an empty (or partial) list, never an error to
// the caller. Malformed individual cards are skipped, not fatal to the batch.
type ReviewService interface {
	GetReviews(ctx context.Context, name string) (*dto.ReviewsResponse, error)
}

type reviewService struct {
	cfg    *config.FetchConfig
	repo   *repository.Repository
	loader DatasetEnsurer
	logger *zap.Logger
	client *http.Client
	cache  *cache.TTL[[]dto.Review]
}

// NewReviewService creates a ReviewService instance.
func NewReviewService(cfg *config.FetchConfig, repo *repository.Repository, loader DatasetEnsurer, logger *zap.Logger) ReviewService {
	return &reviewService{
		cfg:    cfg,
		repo:   repo,
		loader: loader,
		logger: logger,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cache.New[[]dto.Review](),
	}
}

func (s *reviewService) GetReviews(ctx context.Context, name string) (*dto.ReviewsResponse, error) {
	school, err := lookupSchool(ctx, s.loader, s.repo, name)
	if err != nil {
		return nil, err
	}

	slug := kebabName(school.SchoolName)
	if school.UnigoSlug != nil && *school.UnigoSlug != "" {
		slug = *school.UnigoSlug
	}

	reviews, err := s.cache.GetOrLoad(school.SchoolName, s.cfg.ReviewTTL, func() ([]dto.Review, error) {
		merged := append(
			s.scrapeUnigo(ctx, slug),
			s.scrapeCollegewise(ctx, school.SchoolName)...,
		)
		return merged, nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ReviewsResponse{
		SchoolName: school.SchoolName,
		Reviews:    reviews,
		Total:      len(reviews),
	}
	if len(reviews) > 0 {
		var sum float64
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := sum / float64(len(reviews))
		resp.AverageRating = &avg
	}
	if len(resp.Reviews) > maxDisplayedReviews {
		resp.Reviews = resp.Reviews[:maxDisplayedReviews]
	}
	return resp, nil
}

func (s *reviewService) scrapeUnigo(ctx context.Context, slug string) []dto.Review {
	url := strings.TrimRight(s.cfg.UnigoBaseURL, "/") + "/college/" + slug + "/reviews"
	doc, err := fetchDocument(ctx, s.client, url)
	if err != nil {
		s.logger.Warn("unigo fetch failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}

	var reviews []dto.Review
	doc.Find(".ReviewCard").Each(func(_ int, card *goquery.Selection) {
		review, ok := parseReviewCard(card, ".ReviewerName", ".StarRating", ".ReviewText", "unigo")
		if ok {
			reviews = append(reviews, review)
		}
	})
	return reviews
}

func (s *reviewService) scrapeCollegewise(ctx context.Context, schoolName string) []dto.Review {
	url := strings.TrimRight(s.cfg.CollegewiseBase, "/") + "/schools/" + kebabName(schoolName) + "/reviews"
	doc, err := fetchDocument(ctx, s.client, url)
	if err != nil {
		s.logger.Warn("collegewise fetch failed", zap.String("school", schoolName), zap.Error(err))
		return nil
	}

	var reviews []dto.Review
	doc.Find(".review-card").Each(func(_ int, card *goquery.Selection) {
		review, ok := parseReviewCard(card, ".review-author", ".review-stars", ".review-text", "collegewise")
		if ok {
			reviews = append(reviews, review)
		}
	})
	return reviews
}

// parseReviewCard extracts one review from a card. Any absent sub-element or
// unparseable rating skips the card.
func parseReviewCard(card *goquery.Selection, authorSel, ratingSel, textSel, source string) (dto.Review, bool) {
	author := strings.TrimSpace(card.Find(authorSel).First().Text())
	text := strings.TrimSpace(card.Find(textSel).First().Text())
	ratingRaw, hasRating := card.Find(ratingSel).First().Attr("data-rating")
	if author == "" || text == "" || !hasRating {
		return dto.Review{}, false
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(ratingRaw), 64)
	if err != nil {
		return dto.Review{}, false
	}
	return dto.Review{
		Author: author,
		Rating: rating,
		Text:   text,
		Source: source,
	}, true
}
