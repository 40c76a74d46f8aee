package viewport

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router) {
	r.Get("/layers", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"default": DefaultLayer, "layers": Layers()})
	})

	r.Get("/layers/:key", func(c *fiber.Ctx) error {
		layer, ok := LayerByKey(c.Params("key"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown layer")
		}
		return c.JSON(layer)
	})

	r.Get("/icons", func(c *fiber.Ctx) error {
		return c.JSON(IconTable())
	})
}
