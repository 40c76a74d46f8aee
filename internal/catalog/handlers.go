package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, trails []Trail) {
	r.Get("/", func(c *fiber.Ctx) error {
		filtered := Filter(trails, c.Query("q"), c.Query("difficulty", "all"))
		if filtered == nil {
			filtered = []Trail{}
		}
		return c.JSON(fiber.Map{"trails": filtered, "count": len(filtered)})
	})

	r.Get("/near", func(c *fiber.Ctx) error {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lng required")
		}
		radius, _ := strconv.ParseFloat(c.Query("radius_km"), 64)
		if radius == 0 {
			radius = 10
		}
		results := Near(trails, lat, lng, radius)
		if results == nil {
			results = []Trail{}
		}
		return c.JSON(results)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		trail := ByID(trails, c.Params("id"))
		if trail == nil {
			return fiber.NewError(fiber.StatusNotFound, "trail not found")
		}
		return c.JSON(trail)
	})
}
