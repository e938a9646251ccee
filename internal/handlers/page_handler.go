package handlers

import (
	"strings"

	"movie-insight/internal/apperrors"
	"movie-insight/internal/services"
	"movie-insight/internal/utils"
	"movie-insight/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewPageHandler(service services.MovieService, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	movies, err := h.service.ListPopular(c.Context())
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"Title":  "Popular Movies",
		"Query":  "",
		"Movies": movies,
	}, web.Layout)
}

// MovieDetail renders one movie, sending unknown ids back to the index.
func (h *PageHandler) MovieDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	view, err := h.service.GetMovieDetail(c.Context(), id)
	if err != nil {
		if apperrors.Is(err, apperrors.TypeNotFound) || apperrors.Is(err, apperrors.TypeValidation) {
			h.logger.WithFields(logrus.Fields{
				"imdb_id":    id,
				"request_id": requestID(c),
			}).Info("Movie not found, redirecting to index")
			return c.Redirect("/")
		}
		return err
	}

	return c.Render("movie_detail", fiber.Map{
		"Title": view.Movie.Title,
		"Query": "",
		"View":  view,
	}, web.Layout)
}

func (h *PageHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Redirect("/")
	}

	results, err := h.service.SearchMovies(c.Context(), query, c.QueryInt("page", 1))
	if err != nil {
		return err
	}

	meta := utils.CreatePaginationMeta(results.Page, services.SearchPageSize, results.TotalResults)
	return c.Render("search_results", fiber.Map{
		"Title":    "Search: " + query,
		"Query":    query,
		"Results":  results,
		"Meta":     meta,
		"PrevPage": meta.Page - 1,
		"NextPage": meta.Page + 1,
	}, web.Layout)
}
