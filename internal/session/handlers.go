package session

import (
	"errors"

	"github.com/dgennetten/trailsMapper/internal/gate"
	"github.com/dgennetten/trailsMapper/internal/triplog"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, mgr *Manager) {
	r.Get("/:device", func(c *fiber.Ctx) error {
		return c.JSON(mgr.View(c.Context(), c.Params("device")))
	})

	r.Put("/:device/query", func(c *fiber.Ctx) error {
		var req struct {
			Query string `json:"query"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		mgr.SetQuery(c.Context(), c.Params("device"), req.Query)
		return c.JSON(mgr.View(c.Context(), c.Params("device")))
	})

	r.Put("/:device/tag", func(c *fiber.Ctx) error {
		var req struct {
			Tag string `json:"tag"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		mgr.SetTag(c.Context(), c.Params("device"), req.Tag)
		return c.JSON(mgr.View(c.Context(), c.Params("device")))
	})

	r.Put("/:device/sort", func(c *fiber.Ctx) error {
		var req struct {
			Key  string `json:"key"`
			Desc bool   `json:"desc"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		mgr.SetSort(c.Context(), c.Params("device"), req.Key, req.Desc)
		return c.JSON(mgr.View(c.Context(), c.Params("device")))
	})

	r.Put("/:device/selection", func(c *fiber.Ctx) error {
		var req struct {
			TrailID   string `json:"trail_id"`
			TripTrail string `json:"trip_trail"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if req.TripTrail != "" {
			// fuzzy jump from a trip record; a miss leaves selection unchanged
			mgr.SelectTripTrail(c.Context(), c.Params("device"), req.TripTrail)
		} else if !mgr.Select(c.Context(), c.Params("device"), req.TrailID) {
			return fiber.NewError(fiber.StatusNotFound, "trail not found")
		}
		return c.JSON(mgr.View(c.Context(), c.Params("device")))
	})

	r.Post("/:device/mutations", func(c *fiber.Ctx) error {
		var action Action
		if err := c.BodyParser(&action); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		result, err := mgr.RequestMutation(c.Context(), c.Params("device"), action)
		if errors.Is(err, ErrUnknownOp) || errors.Is(err, triplog.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !result.Executed {
			// queued behind the gate; the client should prompt for the password
			return c.Status(fiber.StatusAccepted).JSON(result)
		}
		return c.JSON(result)
	})

	r.Post("/:device/unlock", func(c *fiber.Ctx) error {
		var req struct {
			Password string `json:"password"`
			Remember bool   `json:"remember"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		token, result, err := mgr.Unlock(c.Context(), c.Params("device"), req.Password, req.Remember)
		if errors.Is(err, gate.ErrWrongPassword) {
			// pending action is retained for retry
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"token": token, "token_type": "Bearer", "result": result})
	})

	r.Delete("/:device/unlock", func(c *fiber.Ctx) error {
		mgr.CancelUnlock(c.Context(), c.Params("device"))
		return c.SendStatus(fiber.StatusNoContent)
	})
}
