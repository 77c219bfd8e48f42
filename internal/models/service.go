package models

type ServiceCategory string

const (
	CategoryCorte      ServiceCategory = "corte"
	CategoryBarba      ServiceCategory = "barba"
	CategoryCombo      ServiceCategory = "combo"
	CategoryTratamento ServiceCategory = "tratamento"
	CategoryOutros     ServiceCategory = "outros"
)

func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryCorte, CategoryBarba, CategoryCombo, CategoryTratamento, CategoryOutros:
		return true
	}
	return false
}

// Serviço pertence a exatamente uma barbearia; o conjunto é sempre
// substituído por inteiro quando o update envia services.
type Service struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"-"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Price       float64         `json:"price"`
	Duration    int             `json:"duration"`
	Category    ServiceCategory `gorm:"size:20" json:"category"`
}
