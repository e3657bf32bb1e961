package handler

import (
	"errors"

	"go-storepos/internal/middleware"
	"go-storepos/internal/service"
	"go-storepos/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// actorFromCtx builds the acting identity from the locals set by the auth
// middleware.
func actorFromCtx(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: "system", Name: "Unknown"}
	if id, ok := c.Locals(middleware.LocalActorID).(string); ok {
		actor.ID = id
	}
	if name, ok := c.Locals(middleware.LocalActorName).(string); ok {
		actor.Name = name
	}
	actor.ShopkeeperID = middleware.ShopkeeperID(c)
	return actor
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// fail maps service errors onto HTTP responses. Everything is caught here;
// no error propagates as a crash.
func fail(c *fiber.Ctx, err error) error {
	var inUse *service.CategoryInUseError
	switch {
	case errors.Is(err, service.ErrTenantUnresolved):
		return c.Status(401).JSON(fiber.Map{"error": "Must be logged in"})
	case service.IsNotFound(err):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &inUse):
		return c.Status(409).JSON(fiber.Map{
			"error":          "Category cannot be deleted while products reference it",
			"blocking_count": inUse.ProductCount,
		})
	case errors.Is(err, service.ErrSKUExists),
		errors.Is(err, service.ErrEmailExists):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrAccountDisabled):
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidTransactionType),
		errors.Is(err, storage.ErrImageTooLarge),
		errors.Is(err, storage.ErrUnsupportedType):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}
