package service

import (
	"regexp"
	"strings"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/google/uuid"
)

// AttributedUnknown and AttributedOwner are the fallback attribution labels.
const (
	AttributedOwner   = "Store Owner"
	AttributedUnknown = "Unknown"
)

// AttributedSale is one sale-type ledger entry with its resolved seller.
type AttributedSale struct {
	Entry      model.StockTransaction `json:"entry"`
	SoldBy     string                 `json:"sold_by"`
	Structured bool                   `json:"structured"` // true when resolved from the shopkeeper reference
}

// SalesSummary aggregates attributed sales per seller.
type SalesSummary struct {
	Seller    string  `json:"seller"`
	SaleCount int     `json:"sale_count"`
	UnitsSold int     `json:"units_sold"`
	Value     float64 `json:"value"`
}

// notesTokenPattern matches the legacy identity hints embedded in free-text
// notes: "shopkeeper:<id-or-name>" or a trailing "by <name>".
var notesTokenPattern = regexp.MustCompile(`(?i)(?:shopkeeper:\s*([^\s,;]+)|\bby\s+([A-Za-z][A-Za-z .'-]*))`)

// AttributeSale resolves who made a sale, in precedence order: the
// structured shopkeeper reference on the entry, an identity token embedded
// in the notes, the store owner when the entry was owner-created, and
// Unknown otherwise. Notes matching is best effort and only exists for rows
// written before the structured reference was stamped at checkout.
func AttributeSale(entry *model.StockTransaction, shopkeepers map[uuid.UUID]model.Shopkeeper) (name string, structured bool) {
	if entry.ShopkeeperID != nil {
		if sk, ok := shopkeepers[*entry.ShopkeeperID]; ok {
			return sk.Name, true
		}
	}

	if m := notesTokenPattern.FindStringSubmatch(entry.Notes); m != nil {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		token = strings.TrimSpace(token)
		if id, err := uuid.Parse(token); err == nil {
			if sk, ok := shopkeepers[id]; ok {
				return sk.Name, false
			}
		}
		for _, sk := range shopkeepers {
			if strings.EqualFold(sk.Name, token) {
				return sk.Name, false
			}
		}
	}

	if entry.CreatedBy != "" {
		return AttributedOwner, false
	}
	return AttributedUnknown, false
}

// SalesService reads the ledger's sale entries and attributes each one to
// the acting party.
type SalesService interface {
	GetAttributedSales(ownerID uuid.UUID) ([]AttributedSale, error)
	GetSalesSummary(ownerID uuid.UUID) ([]SalesSummary, error)
}

type salesService struct {
	ledgerRepo     repository.LedgerRepository
	shopkeeperRepo repository.ShopkeeperRepository
}

func NewSalesService(lRepo repository.LedgerRepository, sRepo repository.ShopkeeperRepository) SalesService {
	return &salesService{ledgerRepo: lRepo, shopkeeperRepo: sRepo}
}

func (s *salesService) GetAttributedSales(ownerID uuid.UUID) ([]AttributedSale, error) {
	entries, err := s.ledgerRepo.FindSales(ownerID)
	if err != nil {
		return nil, err
	}
	shopkeepers, err := s.shopkeeperIndex(ownerID)
	if err != nil {
		return nil, err
	}

	sales := make([]AttributedSale, 0, len(entries))
	for _, entry := range entries {
		if entry.Quantity >= 0 {
			continue
		}
		name, structured := AttributeSale(&entry, shopkeepers)
		sales = append(sales, AttributedSale{Entry: entry, SoldBy: name, Structured: structured})
	}
	return sales, nil
}

func (s *salesService) GetSalesSummary(ownerID uuid.UUID) ([]SalesSummary, error) {
	sales, err := s.GetAttributedSales(ownerID)
	if err != nil {
		return nil, err
	}

	bySeller := make(map[string]*SalesSummary)
	order := []string{}
	for _, sale := range sales {
		summary, ok := bySeller[sale.SoldBy]
		if !ok {
			summary = &SalesSummary{Seller: sale.SoldBy}
			bySeller[sale.SoldBy] = summary
			order = append(order, sale.SoldBy)
		}
		units := -sale.Entry.Quantity
		summary.SaleCount++
		summary.UnitsSold += units
		if sale.Entry.Product != nil {
			summary.Value += sale.Entry.Product.UnitPrice * float64(units)
		}
	}

	result := make([]SalesSummary, 0, len(order))
	for _, seller := range order {
		result = append(result, *bySeller[seller])
	}
	return result, nil
}

func (s *salesService) shopkeeperIndex(ownerID uuid.UUID) (map[uuid.UUID]model.Shopkeeper, error) {
	shopkeepers, err := s.shopkeeperRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}
	index := make(map[uuid.UUID]model.Shopkeeper, len(shopkeepers))
	for _, sk := range shopkeepers {
		index[sk.ID] = sk
	}
	return index, nil
}
