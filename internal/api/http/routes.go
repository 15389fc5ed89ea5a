package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/heliowatch/solarwind/internal/solarwind"
	"github.com/heliowatch/solarwind/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *solarwind.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/solarwind/current", func(c *fiber.Ctx) error {
		view, err := service.Current()
		if err != nil {
			if errors.Is(err, store.ErrNoData) {
				return fiber.NewError(fiber.StatusNotFound, "no solar wind data fetched yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read solar wind data")
		}

		if len(view.Samples) == 0 {
			// Fetches succeeded but nothing falls inside the display window.
			return fiber.NewError(fiber.StatusNotFound, "no current data in display window")
		}

		return c.JSON(view)
	})

	v1.Get("/solarwind/nearest", func(c *fiber.Ctx) error {
		var req nearestQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sample, ok, err := service.Nearest(req.At)
		if err != nil {
			if errors.Is(err, store.ErrNoData) {
				return fiber.NewError(fiber.StatusNotFound, "no solar wind data fetched yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read solar wind data")
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no sample near requested instant")
		}

		return c.JSON(sample)
	})

	v1.Post("/solarwind/refresh", func(c *fiber.Ctx) error {
		if err := service.Refresh(c.Context()); err != nil {
			if errors.Is(err, solarwind.ErrRefreshInProgress) {
				return fiber.NewError(fiber.StatusConflict, "refresh already in progress")
			}
			return fiber.NewError(fiber.StatusBadGateway, "refresh failed; previous data kept")
		}

		view, err := service.Current()
		if err != nil {
			return c.JSON(fiber.Map{"refreshed": true, "samples": 0})
		}
		return c.JSON(fiber.Map{
			"refreshed": true,
			"fetchedAt": view.FetchedAt,
			"samples":   len(view.Samples),
		})
	})
}

// nearestQuery holds the hover hit-test parameters.
type nearestQuery struct {
	At time.Time `validate:"required"`
}

func (n *nearestQuery) bind(c *fiber.Ctx) error {
	raw := c.Query("t")
	if raw == "" {
		return errors.New("t query parameter is required")
	}

	at, err := parseTime(raw)
	if err != nil {
		return err
	}
	n.At = at

	return validate.Struct(n)
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
