package gate

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/unlock", func(c *fiber.Ctx) error {
		var req struct {
			DeviceID string `json:"device_id"`
			Password string `json:"password"`
			Remember bool   `json:"remember"`
		}
		if err := c.BodyParser(&req); err != nil || req.DeviceID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "device_id and password required")
		}

		token, err := svc.Unlock(c.Context(), req.DeviceID, req.Password, req.Remember)
		if errors.Is(err, ErrWrongPassword) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"token":      token,
			"token_type": "Bearer",
			"remembered": req.Remember,
		})
	})

	r.Get("/remembered/:device", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"remembered": svc.Remembered(c.Context(), c.Params("device"))})
	})

	r.Delete("/remembered/:device", func(c *fiber.Ctx) error {
		if err := svc.Forget(c.Context(), c.Params("device")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
