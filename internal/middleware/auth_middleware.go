package middleware

import (
	"strings"

	"go-storepos/internal/repository"
	"go-storepos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the middleware in this package. Exactly one of the
// three tenant-resolution paths (owner session, shopkeeper session, share
// token) sets LocalOwnerID before any downstream handler runs; handlers
// must reject when it is absent.
const (
	LocalOwnerID      = "owner_id"
	LocalActorID      = "actor_id"
	LocalActorName    = "actor_name"
	LocalActorKind    = "actor_kind"
	LocalShopkeeperID = "shopkeeper_id"
	LocalReadOnly     = "read_only"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireOwner validates an owner JWT, enforces the single-session token
// version, and resolves the tenant to the owner's own id.
func RequireOwner(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil || claims.Kind != jwt.KindOwner {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.SubjectID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}
		if !user.IsActive {
			return c.Status(403).JSON(fiber.Map{"error": "Account is disabled"})
		}

		c.Locals(LocalOwnerID, user.ID.String())
		c.Locals(LocalActorID, user.ID.String())
		c.Locals(LocalActorName, user.FullName)
		c.Locals(LocalActorKind, jwt.KindOwner)

		return c.Next()
	}
}

// RequireStaff accepts an owner session or a delegated shopkeeper session.
// A shopkeeper resolves the tenant through its owner back-reference and is
// additionally checked to still exist and be active.
func RequireStaff(userRepo repository.UserRepository, shopkeeperRepo repository.ShopkeeperRepository) fiber.Handler {
	ownerHandler := RequireOwner(userRepo)
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		if claims.Kind == jwt.KindOwner {
			return ownerHandler(c)
		}

		keeper, err := shopkeeperRepo.FindByID(claims.OwnerID, claims.SubjectID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Shopkeeper not found"})
		}
		if !keeper.IsActive {
			return c.Status(403).JSON(fiber.Map{"error": "Account is disabled"})
		}

		c.Locals(LocalOwnerID, keeper.OwnerID.String())
		c.Locals(LocalActorID, keeper.ID.String())
		c.Locals(LocalActorName, keeper.Name)
		c.Locals(LocalActorKind, jwt.KindShopkeeper)
		c.Locals(LocalShopkeeperID, keeper.ID.String())

		return c.Next()
	}
}

// ResolveShareToken maps a public storefront token onto its owning store.
// The resulting scope is read-only: mutating methods are rejected here, so
// routes mounted under a share group can never write, whatever handlers
// they point at.
func ResolveShareToken(settingsRepo repository.SettingsRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Params("token")
		if token == "" {
			token = c.Get("X-Share-Token")
		}
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing share token"})
		}

		settings, err := settingsRepo.FindByShareToken(token)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
		}

		c.Locals(LocalOwnerID, settings.OwnerID.String())
		c.Locals(LocalReadOnly, true)

		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return c.Status(403).JSON(fiber.Map{"error": "Share links are read-only"})
		}

		return c.Next()
	}
}

// ReadOnly reports whether the tenant was resolved through a share token.
// Mutating handlers check this so a share-scoped request can never write
// even if one is ever mounted behind ResolveShareToken.
func ReadOnly(c *fiber.Ctx) bool {
	readOnly, _ := c.Locals(LocalReadOnly).(bool)
	return readOnly
}

// OwnerID returns the resolved tenant id, or uuid.Nil when no resolution
// path succeeded.
func OwnerID(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals(LocalOwnerID).(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ShopkeeperID returns the acting shopkeeper's id when the session is a
// delegated one.
func ShopkeeperID(c *fiber.Ctx) *uuid.UUID {
	raw, ok := c.Locals(LocalShopkeeperID).(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
