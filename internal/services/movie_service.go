package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"movie-insight/internal/apperrors"
	"movie-insight/internal/config"
	"movie-insight/internal/models"
	"movie-insight/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SearchPageSize is the fixed page size of OMDb search results.
const SearchPageSize = 10

type MovieService interface {
	ListPopular(ctx context.Context) ([]models.MovieSummary, error)
	GetMovieDetail(ctx context.Context, imdbID string) (*models.MovieDetailView, error)
	SearchMovies(ctx context.Context, query string, page int) (*models.SearchResults, error)
	GetSimilarMovies(ctx context.Context, imdbID string) ([]models.MovieSummary, error)
}

type movieService struct {
	client         OMDbClient
	similarity     SimilarityService
	reviews        repository.ReviewRepository
	sentiment      SentimentService
	popularTitles  []string
	maxConcurrency int
	logger         *logrus.Logger
}

func NewMovieService(
	client OMDbClient,
	similarity SimilarityService,
	reviews repository.ReviewRepository,
	sentiment SentimentService,
	cfg *config.Config,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		client:         client,
		similarity:     similarity,
		reviews:        reviews,
		sentiment:      sentiment,
		popularTitles:  cfg.Catalog.PopularTitles,
		maxConcurrency: cfg.OMDb.MaxConcurrency,
		logger:         logger,
	}
}

// ListPopular searches every configured title and keeps the first hit of each,
// in title order. Titles without a match are left out.
func (s *movieService) ListPopular(ctx context.Context) ([]models.MovieSummary, error) {
	hits := make([]*models.MovieSummary, len(s.popularTitles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.maxConcurrency, 1))
	for i, title := range s.popularTitles {
		g.Go(func() error {
			resp, err := s.client.Search(gctx, models.SearchQuery{Term: title, Type: models.TypeMovie})
			if err != nil {
				return fmt.Errorf("failed to search popular title %q: %w", title, err)
			}
			if resp.Found() && len(resp.Search) > 0 {
				hits[i] = &resp.Search[0]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	movies := make([]models.MovieSummary, 0, len(hits))
	for _, hit := range hits {
		if hit != nil {
			movies = append(movies, *hit)
		}
	}

	if missing := len(s.popularTitles) - len(movies); missing > 0 {
		s.logger.WithField("missing", missing).Debug("Some popular titles had no match")
	}
	return movies, nil
}

func (s *movieService) GetMovieDetail(ctx context.Context, imdbID string) (*models.MovieDetailView, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, apperrors.ValidationError("movie id is required")
	}

	movie, err := s.client.Lookup(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ReviewsFor(ctx, movie.Title)
	if err != nil {
		return nil, apperrors.InternalError("failed to load reviews", err)
	}

	similar, err := s.similarity.FindSimilar(ctx, movie)
	if err != nil {
		return nil, err
	}

	return &models.MovieDetailView{
		Movie:     movie,
		Cast:      SplitCast(movie.Actors),
		Reviews:   reviews,
		Sentiment: s.sentiment.Score(reviews),
		Similar:   similar,
	}, nil
}

func (s *movieService) SearchMovies(ctx context.Context, query string, page int) (*models.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ValidationError("query is required")
	}
	if page < 1 {
		page = 1
	}

	resp, err := s.client.Search(ctx, models.SearchQuery{Term: query, Type: models.TypeMovie, Page: page})
	if err != nil {
		return nil, err
	}

	results := &models.SearchResults{
		Query:  query,
		Page:   page,
		Movies: []models.MovieSummary{},
	}
	if resp.Found() {
		results.Movies = resp.Search
		results.TotalResults, _ = strconv.ParseInt(resp.TotalResults, 10, 64)
	}
	return results, nil
}

func (s *movieService) GetSimilarMovies(ctx context.Context, imdbID string) ([]models.MovieSummary, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, apperrors.ValidationError("movie id is required")
	}

	movie, err := s.client.Lookup(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	return s.similarity.FindSimilar(ctx, movie)
}

// SplitCast turns OMDb's comma-separated actor list into cast entries.
// "N/A" and blank entries are dropped.
func SplitCast(actors string) []models.CastMember {
	cast := []models.CastMember{}
	for _, name := range strings.Split(actors, ",") {
		name = strings.TrimSpace(name)
		if name == "" || name == "N/A" {
			continue
		}
		cast = append(cast, models.CastMember{Name: name})
	}
	return cast
}
