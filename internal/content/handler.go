package content

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// product names contain commas and pipes, so the item goes in the query
	// string rather than the path
	app.Get("/api/v1/recommendations/similar", h.getSimilar)
	app.Get("/api/v1/recommendations/history/:userId<[0-9]+>", h.getHistoryPicks)
}

func (h *Handler) getSimilar(c *fiber.Ctx) error {
	item := c.Query("item")
	if item == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "item query parameter is required"})
	}

	recs, err := h.service.SimilarTo(item, queryLimit(c))
	if err != nil {
		return similarityError(c, err)
	}
	return c.JSON(fiber.Map{"item": item, "recommendations": recs})
}

func (h *Handler) getHistoryPicks(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	basedOn, recs, err := h.service.ForUserHistory(userID, queryLimit(c))
	if err != nil {
		return similarityError(c, err)
	}
	return c.JSON(fiber.Map{"basedOn": basedOn, "recommendations": recs})
}

// similarityError maps service sentinels onto the response taxonomy:
// lookup failures are 404 (the caller renders a fallback section),
// empty-data conditions are 422 so the rest of the page keeps rendering.
func similarityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrNoHistory):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrNoVocabulary):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

func queryLimit(c *fiber.Ctx) int {
	limit := 8
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return limit
}
