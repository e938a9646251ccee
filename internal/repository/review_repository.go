package repository

import (
	"context"

	"movie-insight/internal/models"
)

// MaxReviewsPerMovie caps how many reviews are shown for one title.
const MaxReviewsPerMovie = 3

// ReviewRepository supplies audience reviews for a movie title.
type ReviewRepository interface {
	ReviewsFor(ctx context.Context, title string) ([]models.Review, error)
}

// OMDb has no review endpoint, so reviews come from a fixed pool. A real
// source only needs to satisfy ReviewRepository.
var mockReviews = []models.Review{
	{Author: "MovieFan1", Content: "Absolutely loved this movie! The acting was superb.", Date: "2024-03-15"},
	{Author: "CriticEye", Content: "While the visuals were stunning, the plot was somewhat lacking in depth.", Date: "2024-02-28"},
	{Author: "FilmBuff42", Content: "A masterpiece of modern cinema. One of the best films I've seen this year.", Date: "2024-01-20"},
	{Author: "RegularViewer", Content: "It was okay. Not great, not terrible. Decent way to spend an evening.", Date: "2024-04-10"},
	{Author: "DisappointedFan", Content: "I expected much more based on the trailer. The pacing was off and characters underdeveloped.", Date: "2024-03-05"},
}

type mockReviewRepository struct {
	pool  []models.Review
	limit int
}

func NewMockReviewRepository() ReviewRepository {
	return &mockReviewRepository{
		pool:  mockReviews,
		limit: MaxReviewsPerMovie,
	}
}

// ReviewsFor ignores the title and returns the head of the pool in order.
func (r *mockReviewRepository) ReviewsFor(ctx context.Context, title string) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := min(r.limit, len(r.pool))
	reviews := make([]models.Review, n)
	copy(reviews, r.pool[:n])
	return reviews, nil
}

// AllMockReviews returns a copy of the whole pool.
func AllMockReviews() []models.Review {
	return append([]models.Review(nil), mockReviews...)
}
