package catalog

import "github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"

const AggregateTypeProduct = "Product"

const (
	EventTypeProductCreated = "ProductCreated"
	EventTypeProductUpdated = "ProductUpdated"
)

// ProductEvent snapshots the descriptive fields of a product after a catalog
// change. Stock movements are reported by inventory events instead.
type ProductEvent struct {
	shared.BaseDomainEvent
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Unit     string `json:"unit"`
}

func newProductEvent(eventType string, p *Product) *ProductEvent {
	return &ProductEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeProduct, p.ID, p.TenantID),
		SKU:             p.SKU,
		Name:            p.Name,
		Category:        p.Category,
		Unit:            p.Unit,
	}
}
