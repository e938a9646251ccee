package services

import (
	"context"
	"strings"

	"movie-insight/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	maxSimilarMovies = 8

	// fallbackTerm is searched when the genre search finds nothing.
	fallbackTerm = "movie"
)

// SimilarityService suggests movies related to a given one. OMDb has no
// recommendation endpoint, so the primary genre and release year stand in.
type SimilarityService interface {
	FindSimilar(ctx context.Context, movie *models.MovieDetail) ([]models.MovieSummary, error)
}

type similarityService struct {
	client OMDbClient
	logger *logrus.Logger
}

func NewSimilarityService(client OMDbClient, logger *logrus.Logger) SimilarityService {
	return &similarityService{
		client: client,
		logger: logger,
	}
}

func (s *similarityService) FindSimilar(ctx context.Context, movie *models.MovieDetail) ([]models.MovieSummary, error) {
	genre := PrimaryGenre(movie.Genre)
	year := StartYear(movie.Year)

	if genre != "" {
		similar, found, err := s.searchExcluding(ctx, genre, year, movie.ImdbID)
		if err != nil {
			return nil, err
		}
		if found {
			return similar, nil
		}
	}

	s.logger.WithFields(logrus.Fields{
		"imdb_id": movie.ImdbID,
		"genre":   genre,
		"year":    year,
	}).Debug("Genre search found nothing, falling back to year search")

	similar, _, err := s.searchExcluding(ctx, fallbackTerm, year, movie.ImdbID)
	if err != nil {
		return nil, err
	}
	return similar, nil
}

// searchExcluding searches term within year and drops the movie identified by
// excludeID. found reports whether the upstream matched anything at all.
func (s *similarityService) searchExcluding(ctx context.Context, term, year, excludeID string) ([]models.MovieSummary, bool, error) {
	resp, err := s.client.Search(ctx, models.SearchQuery{
		Term: term,
		Type: models.TypeMovie,
		Year: year,
	})
	if err != nil {
		return nil, false, err
	}
	if !resp.Found() {
		return []models.MovieSummary{}, false, nil
	}

	similar := make([]models.MovieSummary, 0, maxSimilarMovies)
	for _, candidate := range resp.Search {
		if candidate.ImdbID == excludeID {
			continue
		}
		similar = append(similar, candidate)
		if len(similar) == maxSimilarMovies {
			break
		}
	}
	return similar, true, nil
}

// PrimaryGenre returns the first entry of a comma-separated genre list.
func PrimaryGenre(genre string) string {
	first, _, _ := strings.Cut(genre, ",")
	return strings.TrimSpace(first)
}

// StartYear returns the first year of a range such as "2015–2018".
func StartYear(year string) string {
	first, _, _ := strings.Cut(year, "–")
	return strings.TrimSpace(first)
}
