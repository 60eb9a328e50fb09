package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelWasteItem converts a domain WasteItem to a model WasteItem
func ToModelWasteItem(d domain.WasteItem) models.WasteItem {
	return models.WasteItem{
		WasteID:     d.WasteID,
		Description: d.Description,
		UnitPrice:   d.UnitPrice,
		Unit:        d.Unit,
		Currency:    d.Currency,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWasteItem converts a model WasteItem to a domain WasteItem
func ToDomainWasteItem(m models.WasteItem) domain.WasteItem {
	return domain.WasteItem{
		WasteID:     m.WasteID,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Unit:        m.Unit,
		Currency:    m.Currency,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWasteItemSlice converts a slice of model WasteItems to a slice of domain WasteItems
func ToDomainWasteItemSlice(ms []models.WasteItem) []domain.WasteItem {
	ds := make([]domain.WasteItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWasteItem(m)
	}
	return ds
}
