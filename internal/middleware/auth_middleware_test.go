package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"go-storepos/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	settings *model.StoreSettings
}

func (r *fakeSettingsRepo) Create(settings *model.StoreSettings) error { return nil }

func (r *fakeSettingsRepo) FindByOwner(ownerID uuid.UUID) (*model.StoreSettings, error) {
	if r.settings != nil && r.settings.OwnerID == ownerID {
		return r.settings, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeSettingsRepo) FindByShareToken(token string) (*model.StoreSettings, error) {
	if r.settings != nil && r.settings.ShareToken == token {
		return r.settings, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeSettingsRepo) Update(settings *model.StoreSettings) error { return nil }

func newShareTokenApp(t *testing.T, ownerID uuid.UUID) *fiber.App {
	t.Helper()

	repo := &fakeSettingsRepo{settings: &model.StoreSettings{
		OwnerID:    ownerID,
		StoreName:  "Demo Store",
		ShareToken: "demo-token",
	}}

	app := fiber.New()
	store := app.Group("/store/:token", ResolveShareToken(repo))
	store.Get("/products", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"owner_id": OwnerID(c).String(), "read_only": ReadOnly(c)})
	})
	// A write route mounted under the share group must never be reachable.
	store.Post("/products", func(c *fiber.Ctx) error {
		return c.SendStatus(201)
	})
	return app
}

func TestShareTokenResolvesTenantForReads(t *testing.T) {
	ownerID := uuid.New()
	app := newShareTokenApp(t, ownerID)

	resp, err := app.Test(httptest.NewRequest("GET", "/store/demo-token/products", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestShareTokenNeverAuthorizesMutation(t *testing.T) {
	app := newShareTokenApp(t, uuid.New())

	resp, err := app.Test(httptest.NewRequest("POST", "/store/demo-token/products", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestShareTokenUnknownTokenIs404(t *testing.T) {
	app := newShareTokenApp(t, uuid.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/store/wrong-token/products", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestShareTokenMissingTokenIs401(t *testing.T) {
	repo := &fakeSettingsRepo{}
	app := fiber.New()
	app.Get("/storefront", ResolveShareToken(repo), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/storefront", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
