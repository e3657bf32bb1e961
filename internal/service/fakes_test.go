package service

import (
	"database/sql"
	"errors"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces so the services can be
// exercised without a database.

var errFakeNotFound = errors.New("record not found")

type fakeTxManager struct{}

func (fakeTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindAll(ownerID uuid.UUID) ([]model.Product, error) {
	var result []model.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) FindByID(ownerID, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return nil, errFakeNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindBySKU(ownerID uuid.UUID, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.OwnerID == ownerID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeProductRepo) FindByCategory(ownerID, categoryID uuid.UUID) ([]model.Product, error) {
	var result []model.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID && p.CategoryID != nil && *p.CategoryID == categoryID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) CountByCategory(ownerID, categoryID uuid.UUID) (int64, error) {
	products, _ := r.FindByCategory(ownerID, categoryID)
	return int64(len(products)), nil
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errFakeNotFound
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(ownerID, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return errFakeNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByIDForUpdate(tx *gorm.DB, ownerID, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(ownerID, id)
}

func (r *fakeProductRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int, updatedBy string) error {
	p, ok := r.products[id]
	if !ok {
		return errFakeNotFound
	}
	p.QuantityInStock = newQuantity
	p.UpdatedBy = updatedBy
	return nil
}

type fakeLedgerRepo struct {
	entries []model.StockTransaction
}

func (r *fakeLedgerRepo) Create(tx *gorm.DB, entry *model.StockTransaction) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeLedgerRepo) FindAll(ownerID uuid.UUID) ([]model.StockTransaction, error) {
	var result []model.StockTransaction
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeLedgerRepo) FindByID(ownerID, id uuid.UUID) (*model.StockTransaction, error) {
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeLedgerRepo) FindByProduct(ownerID, productID uuid.UUID) ([]model.StockTransaction, error) {
	var result []model.StockTransaction
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.ProductID == productID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeLedgerRepo) FindSales(ownerID uuid.UUID) ([]model.StockTransaction, error) {
	var result []model.StockTransaction
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.TransactionType == model.TxSale {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeLedgerRepo) SumDeltas(ownerID, productID uuid.UUID) (int64, error) {
	var sum int64
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.ProductID == productID {
			sum += int64(e.Quantity)
		}
	}
	return sum, nil
}

func (r *fakeLedgerRepo) GetStockMovement(ownerID uuid.UUID, startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newFakeCategoryRepo(categories ...*model.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
	for _, c := range categories {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindAll(ownerID uuid.UUID) ([]model.Category, error) {
	var result []model.Category
	for _, c := range r.categories {
		if c.OwnerID == ownerID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepo) FindByID(ownerID, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.OwnerID != ownerID {
		return nil, errFakeNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return errFakeNotFound
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(ownerID, id uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok || c.OwnerID != ownerID {
		return errFakeNotFound
	}
	delete(r.categories, id)
	return nil
}

type fakeReportRepo struct {
	reports map[uuid.UUID]*model.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*model.Report)}
}

func (r *fakeReportRepo) Create(report *model.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *fakeReportRepo) FindAll(ownerID uuid.UUID) ([]model.Report, error) {
	var result []model.Report
	for _, rep := range r.reports {
		if rep.OwnerID == ownerID {
			result = append(result, *rep)
		}
	}
	return result, nil
}

func (r *fakeReportRepo) FindByID(ownerID, id uuid.UUID) (*model.Report, error) {
	rep, ok := r.reports[id]
	if !ok || rep.OwnerID != ownerID {
		return nil, errFakeNotFound
	}
	cp := *rep
	return &cp, nil
}

func (r *fakeReportRepo) UpdateMeta(ownerID, id uuid.UUID, title, description, updatedBy string) error {
	rep, ok := r.reports[id]
	if !ok || rep.OwnerID != ownerID {
		return errFakeNotFound
	}
	rep.Title = title
	rep.Description = description
	rep.UpdatedBy = updatedBy
	return nil
}

func (r *fakeReportRepo) Delete(ownerID, id uuid.UUID) error {
	rep, ok := r.reports[id]
	if !ok || rep.OwnerID != ownerID {
		return errFakeNotFound
	}
	delete(r.reports, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return errFakeNotFound
	}
	// Save semantics, except the token version which only moves through
	// UpdateTokenVersion.
	version := stored.TokenVersion
	cp := *user
	cp.TokenVersion = version
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateTokenVersion(id uuid.UUID, version string) error {
	u, ok := r.users[id]
	if !ok {
		return errFakeNotFound
	}
	u.TokenVersion = version
	return nil
}

type fakeStoreSettingsRepo struct {
	byOwner map[uuid.UUID]*model.StoreSettings
}

func newFakeStoreSettingsRepo() *fakeStoreSettingsRepo {
	return &fakeStoreSettingsRepo{byOwner: make(map[uuid.UUID]*model.StoreSettings)}
}

func (r *fakeStoreSettingsRepo) Create(settings *model.StoreSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	cp := *settings
	r.byOwner[settings.OwnerID] = &cp
	return nil
}

func (r *fakeStoreSettingsRepo) FindByOwner(ownerID uuid.UUID) (*model.StoreSettings, error) {
	s, ok := r.byOwner[ownerID]
	if !ok {
		return nil, errFakeNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStoreSettingsRepo) FindByShareToken(token string) (*model.StoreSettings, error) {
	for _, s := range r.byOwner {
		if s.ShareToken == token {
			cp := *s
			return &cp, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeStoreSettingsRepo) Update(settings *model.StoreSettings) error {
	if _, ok := r.byOwner[settings.OwnerID]; !ok {
		return errFakeNotFound
	}
	cp := *settings
	r.byOwner[settings.OwnerID] = &cp
	return nil
}

type fakeShopkeeperRepo struct {
	shopkeepers map[uuid.UUID]*model.Shopkeeper
}

func newFakeShopkeeperRepo(shopkeepers ...*model.Shopkeeper) *fakeShopkeeperRepo {
	repo := &fakeShopkeeperRepo{shopkeepers: make(map[uuid.UUID]*model.Shopkeeper)}
	for _, sk := range shopkeepers {
		if sk.ID == uuid.Nil {
			sk.ID = uuid.New()
		}
		repo.shopkeepers[sk.ID] = sk
	}
	return repo
}

func (r *fakeShopkeeperRepo) Create(shopkeeper *model.Shopkeeper) error {
	if shopkeeper.ID == uuid.Nil {
		shopkeeper.ID = uuid.New()
	}
	r.shopkeepers[shopkeeper.ID] = shopkeeper
	return nil
}

func (r *fakeShopkeeperRepo) FindAll(ownerID uuid.UUID) ([]model.Shopkeeper, error) {
	var result []model.Shopkeeper
	for _, sk := range r.shopkeepers {
		if sk.OwnerID == ownerID {
			result = append(result, *sk)
		}
	}
	return result, nil
}

func (r *fakeShopkeeperRepo) FindByID(ownerID, id uuid.UUID) (*model.Shopkeeper, error) {
	sk, ok := r.shopkeepers[id]
	if !ok || sk.OwnerID != ownerID {
		return nil, errFakeNotFound
	}
	cp := *sk
	return &cp, nil
}

func (r *fakeShopkeeperRepo) FindByEmail(email string) (*model.Shopkeeper, error) {
	for _, sk := range r.shopkeepers {
		if sk.Email == email {
			cp := *sk
			return &cp, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeShopkeeperRepo) Update(shopkeeper *model.Shopkeeper) error {
	if _, ok := r.shopkeepers[shopkeeper.ID]; !ok {
		return errFakeNotFound
	}
	cp := *shopkeeper
	r.shopkeepers[shopkeeper.ID] = &cp
	return nil
}
