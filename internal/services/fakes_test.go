package services

import (
	"context"
	"sync"

	"movie-insight/internal/apperrors"
	"movie-insight/internal/models"
)

// stubClient is an in-memory OMDbClient keyed by search term and imdbID.
type stubClient struct {
	mu       sync.Mutex
	movies   map[string]*models.MovieDetail
	searches map[string]*models.SearchResponse
	errs     map[string]error
	queries  []models.SearchQuery
	lookups  []string
}

func newStubClient() *stubClient {
	return &stubClient{
		movies:   make(map[string]*models.MovieDetail),
		searches: make(map[string]*models.SearchResponse),
		errs:     make(map[string]error),
	}
}

func (s *stubClient) Lookup(ctx context.Context, imdbID string) (*models.MovieDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups = append(s.lookups, imdbID)

	if err, ok := s.errs[imdbID]; ok {
		return nil, err
	}
	movie, ok := s.movies[imdbID]
	if !ok {
		return nil, apperrors.NotFoundError("movie not found", models.ErrMovieNotFound)
	}
	return movie, nil
}

func (s *stubClient) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)

	if err, ok := s.errs[query.Term]; ok {
		return nil, err
	}
	resp, ok := s.searches[query.Term]
	if !ok {
		return &models.SearchResponse{Response: "False", Error: "Movie not found!"}, nil
	}
	return resp, nil
}

func (s *stubClient) Ping(ctx context.Context) error { return nil }

func (s *stubClient) BreakerState() string { return "closed" }

func (s *stubClient) Queries() []models.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SearchQuery(nil), s.queries...)
}

func foundResults(movies ...models.MovieSummary) *models.SearchResponse {
	return &models.SearchResponse{Search: movies, Response: "True"}
}

func summary(id, title string) models.MovieSummary {
	return models.MovieSummary{ImdbID: id, Title: title, Year: "2010", Type: "movie"}
}
