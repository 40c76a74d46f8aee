package triplog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, gateMiddleware fiber.Handler) {
	r.Get("/:device", func(c *fiber.Ctx) error {
		sortBy := c.Query("sort", SortByDate)
		desc := c.Query("desc", "true") != "false"
		trips, err := svc.List(c.Context(), c.Params("device"), sortBy, desc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if trips == nil {
			trips = []Trip{}
		}
		return c.JSON(trips)
	})

	r.Get("/:device/totals", func(c *fiber.Ctx) error {
		totals, err := svc.Totals(c.Context(), c.Params("device"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(totals)
	})

	r.Post("/:device", gateMiddleware, func(c *fiber.Ctx) error {
		trip, err := svc.Add(c.Context(), c.Params("device"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		// the new record goes straight into edit mode on the client
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"trip": trip, "editing": true})
	})

	r.Put("/:device/:id", gateMiddleware, func(c *fiber.Ctx) error {
		var patch Trip
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		trip, err := svc.Update(c.Context(), c.Params("device"), c.Params("id"), patch)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(trip)
	})

	r.Delete("/:device/:id", gateMiddleware, func(c *fiber.Ctx) error {
		err := svc.Delete(c.Context(), c.Params("device"), c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
