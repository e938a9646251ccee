package handlers

import (
	"movie-insight/internal/services"
	"movie-insight/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewAPIHandler(service services.MovieService, logger *logrus.Logger) *APIHandler {
	return &APIHandler{
		service: service,
		logger:  logger,
	}
}

// GetSimilarMovies godoc
// @Summary Get similar movies
// @Description Movies sharing the primary genre and release year of the given movie, at most 8. Returns a bare array.
// @Tags movies
// @Produce json
// @Param id path string true "IMDb ID" example(tt1375666)
// @Success 200 {array} models.MovieSummary "Similar movies"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 503 {object} utils.StandardResponse "Movie database unavailable"
// @Router /api/similar/{id} [get]
func (h *APIHandler) GetSimilarMovies(c *fiber.Ctx) error {
	similar, err := h.service.GetSimilarMovies(c.Context(), c.Params("id"))
	if err != nil {
		h.logError(c, err, "Failed to get similar movies")
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(similar)
}

// GetPopularMovies godoc
// @Summary Get popular movies
// @Description First search hit for each configured popular title, in list order
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSummary} "Popular movies"
// @Failure 503 {object} utils.StandardResponse "Movie database unavailable"
// @Router /api/v1/movies/popular [get]
func (h *APIHandler) GetPopularMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListPopular(c.Context())
	if err != nil {
		h.logError(c, err, "Failed to list popular movies")
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Popular movies retrieved successfully", movies)
}

// SearchMovies godoc
// @Summary Search movies
// @Description Search movies by title. Pages hold 10 results.
// @Tags movies
// @Produce json
// @Param query query string true "Title to search for"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSummary,meta=utils.PaginationMeta} "Matching movies"
// @Failure 400 {object} utils.StandardResponse "Missing query"
// @Failure 503 {object} utils.StandardResponse "Movie database unavailable"
// @Router /api/v1/movies/search [get]
func (h *APIHandler) SearchMovies(c *fiber.Ctx) error {
	results, err := h.service.SearchMovies(c.Context(), c.Query("query"), c.QueryInt("page", 1))
	if err != nil {
		h.logError(c, err, "Failed to search movies")
		return utils.AppErrorResponse(c, err)
	}

	meta := utils.CreatePaginationMeta(results.Page, services.SearchPageSize, results.TotalResults)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", results.Movies, meta)
}

// GetMovieDetail godoc
// @Summary Get movie details
// @Description Full movie record with cast, reviews, review sentiment and similar movies
// @Tags movies
// @Produce json
// @Param id path string true "IMDb ID" example(tt1375666)
// @Success 200 {object} utils.StandardResponse{data=models.MovieDetailView} "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 503 {object} utils.StandardResponse "Movie database unavailable"
// @Router /api/v1/movies/{id} [get]
func (h *APIHandler) GetMovieDetail(c *fiber.Ctx) error {
	view, err := h.service.GetMovieDetail(c.Context(), c.Params("id"))
	if err != nil {
		h.logError(c, err, "Failed to get movie detail")
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", view)
}

func (h *APIHandler) logError(c *fiber.Ctx, err error, msg string) {
	h.logger.WithError(err).WithFields(logrus.Fields{
		"path":       c.Path(),
		"request_id": requestID(c),
	}).Error(msg)
}
