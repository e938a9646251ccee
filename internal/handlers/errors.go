package handlers

import (
	"errors"
	"strings"

	"movie-insight/internal/apperrors"
	"movie-insight/internal/utils"
	"movie-insight/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "requestid"

// ErrorHandler renders errors that escape a handler: JSON under /api, the
// error page everywhere else.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		var appErr *apperrors.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &appErr):
			code = appErr.HTTPStatus()
			message = appErr.Message
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
			"request_id": requestID(c),
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request error")
		}

		if isAPI(c) {
			return utils.ErrorResponse(c, code, message)
		}

		heading, text := errorPageText(code)
		renderErr := c.Status(code).Render("error", fiber.Map{
			"Title":   heading,
			"Query":   "",
			"Heading": heading,
			"Message": text,
		}, web.Layout)
		if renderErr != nil {
			log.WithError(renderErr).Error("Failed to render error page")
			return c.Status(code).SendString(text)
		}
		return nil
	}
}

func errorPageText(code int) (string, string) {
	switch code {
	case fiber.StatusServiceUnavailable:
		return "Service unavailable", "The movie database is not responding right now. Please try again in a moment."
	case fiber.StatusNotFound:
		return "Page not found", "We couldn't find what you were looking for."
	case fiber.StatusBadRequest:
		return "Bad request", "That request doesn't look right."
	default:
		return "Something went wrong", "An unexpected error occurred. Please try again later."
	}
}

func isAPI(c *fiber.Ctx) bool {
	return c.Path() == "/api" || strings.HasPrefix(c.Path(), "/api/")
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
