package collab

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shop-recommender-backend/internal/trending"
)

type Handler struct {
	service  *Service
	trending *trending.Service
}

// NewHandler takes the trending service for the cold-start fallback: unknown
// users and users with no neighbor overlap get the trending list instead of
// an empty section.
func NewHandler(s *Service, t *trending.Service) *Handler {
	return &Handler{service: s, trending: t}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/recommendations/collaborative/:userId<[0-9]+>", h.getCollaborative)
}

func (h *Handler) getCollaborative(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	limit := 8
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	recs, err := h.service.ForUser(userID, limit)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return c.JSON(fiber.Map{
				"fallback":        "trending",
				"recommendations": h.trending.TopRated(limit),
			})
		}
		if errors.Is(err, ErrNoInteractions) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	if len(recs) == 0 {
		return c.JSON(fiber.Map{
			"fallback":        "trending",
			"recommendations": h.trending.TopRated(limit),
		})
	}
	return c.JSON(fiber.Map{"recommendations": recs})
}
