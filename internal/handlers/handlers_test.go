package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-insight/internal/apperrors"
	"movie-insight/internal/models"
	"movie-insight/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstreamDown = apperrors.UpstreamUnavailableError("omdb search failed", errors.New("connection refused"))

type fakeMovieService struct {
	popular []models.MovieSummary
	details map[string]*models.MovieDetailView
	results *models.SearchResults
	similar map[string][]models.MovieSummary
	err     error

	searchedQuery string
	searchedPage  int
}

func (f *fakeMovieService) ListPopular(ctx context.Context) ([]models.MovieSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.popular, nil
}

func (f *fakeMovieService) GetMovieDetail(ctx context.Context, imdbID string) (*models.MovieDetailView, error) {
	if f.err != nil {
		return nil, f.err
	}
	view, ok := f.details[imdbID]
	if !ok {
		return nil, apperrors.NotFoundError("movie not found", models.ErrMovieNotFound)
	}
	return view, nil
}

func (f *fakeMovieService) SearchMovies(ctx context.Context, query string, page int) (*models.SearchResults, error) {
	f.searchedQuery, f.searchedPage = query, page
	if query == "" {
		return nil, apperrors.ValidationError("query is required")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeMovieService) GetSimilarMovies(ctx context.Context, imdbID string) ([]models.MovieSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	similar, ok := f.similar[imdbID]
	if !ok {
		return nil, apperrors.NotFoundError("movie not found", models.ErrMovieNotFound)
	}
	return similar, nil
}

type fakeOMDbClient struct {
	pingErr error
	state   string
	pings   int
}

func (f *fakeOMDbClient) Lookup(ctx context.Context, imdbID string) (*models.MovieDetail, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOMDbClient) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOMDbClient) Ping(ctx context.Context) error {
	f.pings++
	return f.pingErr
}

func (f *fakeOMDbClient) BreakerState() string { return f.state }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestApp(t *testing.T, svc *fakeMovieService) *fiber.App {
	t.Helper()
	engine, err := web.NewEngine()
	require.NoError(t, err)

	log := testLogger()
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: ErrorHandler(log),
	})

	pages := NewPageHandler(svc, log)
	app.Get("/", pages.Index)
	app.Get("/movie/:id", pages.MovieDetail)
	app.Get("/search", pages.Search)

	api := NewAPIHandler(svc, log)
	app.Get("/api/similar/:id", api.GetSimilarMovies)
	app.Get("/api/v1/movies/popular", api.GetPopularMovies)
	app.Get("/api/v1/movies/search", api.SearchMovies)
	app.Get("/api/v1/movies/:id", api.GetMovieDetail)
	return app
}

func do(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func inception() *models.MovieDetailView {
	return &models.MovieDetailView{
		Movie: &models.MovieDetail{
			ImdbID: "tt1375666", Title: "Inception", Year: "2010", Genre: "Action, Sci-Fi",
			Director: "Christopher Nolan", Poster: "N/A", Response: "True",
		},
		Cast:      []models.CastMember{{Name: "Leonardo DiCaprio"}},
		Reviews:   []models.Review{{Author: "MovieFan1", Content: "Absolutely loved this movie!", Date: "2024-03-15"}},
		Sentiment: models.SentimentSummary{Positive: 1, Average: 1},
		Similar:   []models.MovieSummary{{ImdbID: "tt0468569", Title: "The Dark Knight", Year: "2008", Poster: "https://img/dk.jpg"}},
	}
}

func TestIndexPage(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{popular: []models.MovieSummary{
		{ImdbID: "tt0111161", Title: "The Shawshank Redemption", Year: "1994", Poster: "https://img/s.jpg"},
	}})

	resp, body := do(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, body, "Popular Movies")
	assert.Contains(t, body, `href="/movie/tt0111161"`)
	assert.Contains(t, body, "https://img/s.jpg")
}

func TestIndexPage_UpstreamDown(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{err: errUpstreamDown})

	resp, body := do(t, app, "/")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, body, "Service unavailable")
	assert.NotContains(t, body, "connection refused")
}

func TestMovieDetailPage(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{details: map[string]*models.MovieDetailView{"tt1375666": inception()}})

	resp, body := do(t, app, "/movie/tt1375666")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Inception")
	assert.Contains(t, body, "Christopher Nolan")
	assert.Contains(t, body, "Leonardo DiCaprio")
	assert.Contains(t, body, "MovieFan1")
	assert.Contains(t, body, `href="/movie/tt0468569"`)
	assert.Contains(t, body, `src="https://via.placeholder.com/300x445?text=No&#43;Poster"`, "missing posters fall back to the placeholder")
}

func TestMovieDetailPage_UnknownIDRedirects(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{})

	resp, _ := do(t, app, "/movie/tt0000000")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestMovieDetailPage_UpstreamDown(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{err: errUpstreamDown})

	resp, _ := do(t, app, "/movie/tt1375666")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSearchPage(t *testing.T) {
	svc := &fakeMovieService{results: &models.SearchResults{
		Query:        "matrix",
		Page:         2,
		TotalResults: 42,
		Movies:       []models.MovieSummary{{ImdbID: "tt0133093", Title: "The Matrix", Year: "1999"}},
	}}
	app := newTestApp(t, svc)

	resp, body := do(t, app, "/search?query=matrix&page=2")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "matrix", svc.searchedQuery)
	assert.Equal(t, 2, svc.searchedPage)
	assert.Contains(t, body, "The Matrix")
	assert.Contains(t, body, "Page 2 of 5")
	assert.Contains(t, body, "page=1")
	assert.Contains(t, body, "page=3")
}

func TestSearchPage_NoMatches(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{results: &models.SearchResults{Query: "zzzz", Page: 1, Movies: []models.MovieSummary{}}})

	resp, body := do(t, app, "/search?query=zzzz")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No movies matched your search.")
}

func TestSearchPage_EmptyQueryRedirects(t *testing.T) {
	svc := &fakeMovieService{}
	app := newTestApp(t, svc)

	for _, target := range []string{"/search", "/search?query=", "/search?query=%20%20"} {
		resp, _ := do(t, app, target)

		assert.Equal(t, http.StatusFound, resp.StatusCode, target)
		assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation), target)
	}
	assert.Empty(t, svc.searchedQuery)
}

func TestUnknownPageRendersNotFound(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{})

	resp, body := do(t, app, "/nope")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func decodeJSON(t *testing.T, body string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v))
}

func TestSimilarAPI_BareArray(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{similar: map[string][]models.MovieSummary{
		"tt1375666": {{ImdbID: "tt0468569", Title: "The Dark Knight", Year: "2008"}},
		"tt0000001": {},
	}})

	resp, body := do(t, app, "/api/similar/tt1375666")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var similar []map[string]any
	decodeJSON(t, body, &similar)
	require.Len(t, similar, 1)
	assert.Equal(t, "tt0468569", similar[0]["imdbID"])
	assert.Equal(t, "The Dark Knight", similar[0]["Title"])

	_, body = do(t, app, "/api/similar/tt0000001")
	assert.JSONEq(t, "[]", body)
}

func TestSimilarAPI_UnknownID(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{})

	resp, body := do(t, app, "/api/similar/tt404")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out map[string]any
	decodeJSON(t, body, &out)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "movie not found", out["message"])
}

func TestPopularAPI(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{popular: []models.MovieSummary{{ImdbID: "tt1", Title: "One"}}})

	resp, body := do(t, app, "/api/v1/movies/popular")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Status string                `json:"status"`
		Data   []models.MovieSummary `json:"data"`
	}
	decodeJSON(t, body, &out)
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, []models.MovieSummary{{ImdbID: "tt1", Title: "One"}}, out.Data)
}

func TestPopularAPI_UpstreamDown(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{err: errUpstreamDown})

	resp, body := do(t, app, "/api/v1/movies/popular")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var out map[string]any
	decodeJSON(t, body, &out)
	assert.Equal(t, "fail", out["status"])
	assert.NotContains(t, body, "connection refused")
}

func TestSearchAPI(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{results: &models.SearchResults{
		Query: "matrix", Page: 1, TotalResults: 12,
		Movies: []models.MovieSummary{{ImdbID: "tt0133093", Title: "The Matrix"}},
	}})

	resp, body := do(t, app, "/api/v1/movies/search?query=matrix")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Data []models.MovieSummary `json:"data"`
		Meta struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
			HasNext    bool  `json:"has_next"`
		} `json:"meta"`
	}
	decodeJSON(t, body, &out)
	assert.Len(t, out.Data, 1)
	assert.Equal(t, 10, out.Meta.Limit)
	assert.Equal(t, int64(12), out.Meta.Total)
	assert.Equal(t, 2, out.Meta.TotalPages)
	assert.True(t, out.Meta.HasNext)
}

func TestSearchAPI_MissingQuery(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{})

	resp, _ := do(t, app, "/api/v1/movies/search")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovieDetailAPI(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{details: map[string]*models.MovieDetailView{"tt1375666": inception()}})

	resp, body := do(t, app, "/api/v1/movies/tt1375666")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Data models.MovieDetailView `json:"data"`
	}
	decodeJSON(t, body, &out)
	assert.Equal(t, "Inception", out.Data.Movie.Title)
	assert.Equal(t, 1, out.Data.Sentiment.Positive)
	assert.Len(t, out.Data.Similar, 1)
}

func TestMovieDetailAPI_NotFound(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{})

	resp, _ := do(t, app, "/api/v1/movies/tt404")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownAPIRouteIsJSON(t *testing.T) {
	app := newTestApp(t, &fakeMovieService{})

	resp, body := do(t, app, "/api/v2/nothing")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")
	var out map[string]any
	decodeJSON(t, body, &out)
	assert.Equal(t, "error", out["status"])
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		client       *fakeOMDbClient
		wantStatus   string
		wantUpstream string
	}{
		{"healthy", &fakeOMDbClient{state: "closed"}, "ok", "healthy"},
		{"ping fails", &fakeOMDbClient{state: "closed", pingErr: errUpstreamDown}, "degraded", "unhealthy"},
		{"breaker open", &fakeOMDbClient{state: "open"}, "degraded", "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.client, testLogger()).Check)

			resp, body := do(t, app, "/health")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			var out map[string]any
			decodeJSON(t, body, &out)
			assert.Equal(t, tt.wantStatus, out["status"])
			assert.Equal(t, tt.wantUpstream, out["omdb"])
			assert.Equal(t, tt.client.state, out["circuit_breaker"])
		})
	}
}

func TestHealthCheck_ReusesRecentUpstreamResult(t *testing.T) {
	client := &fakeOMDbClient{state: "closed"}
	handler := NewHealthHandler(client, testLogger())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return now }

	app := fiber.New()
	app.Get("/health", handler.Check)

	do(t, app, "/health")
	do(t, app, "/health")
	assert.Equal(t, 1, client.pings, "polls within the ttl share one upstream call")

	now = now.Add(DefaultUpstreamCheckTTL)
	client.pingErr = errUpstreamDown
	resp, body := do(t, app, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, client.pings)
	var out map[string]any
	decodeJSON(t, body, &out)
	assert.Equal(t, "unhealthy", out["omdb"])
}

func TestHealthCheck_OpenBreakerSkipsUpstream(t *testing.T) {
	client := &fakeOMDbClient{state: "open"}
	app := fiber.New()
	app.Get("/health", NewHealthHandler(client, testLogger()).Check)

	do(t, app, "/health")
	do(t, app, "/health")

	assert.Zero(t, client.pings)
}
