package routes

import (
	"movie-insight/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, pageHandler *handlers.PageHandler, apiHandler *handlers.APIHandler) {
	// HTML pages
	app.Get("/", pageHandler.Index)
	app.Get("/movie/:id", pageHandler.MovieDetail)
	app.Get("/search", pageHandler.Search)

	api := app.Group("/api")
	api.Get("/similar/:id", apiHandler.GetSimilarMovies)

	// API versioning
	v1 := api.Group("/v1")

	movies := v1.Group("/movies")
	{
		movies.Get("/popular", apiHandler.GetPopularMovies)
		movies.Get("/search", apiHandler.SearchMovies)
		movies.Get("/:id", apiHandler.GetMovieDetail)
	}
}
