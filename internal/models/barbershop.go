package models

import "time"

type PriceRange string

const (
	PriceRangeLow    PriceRange = "low"
	PriceRangeMedium PriceRange = "medium"
	PriceRangeHigh   PriceRange = "high"
)

func (p PriceRange) IsValid() bool {
	switch p {
	case PriceRangeLow, PriceRangeMedium, PriceRangeHigh:
		return true
	}
	return false
}

// Endereço achatado em colunas (address_*), mas aninhado no JSON.
type Address struct {
	Street       string   `gorm:"size:150" json:"street"`
	Number       string   `gorm:"size:20" json:"number"`
	Neighborhood string   `gorm:"size:100" json:"neighborhood"`
	City         string   `gorm:"size:100" json:"city"`
	State        string   `gorm:"size:50" json:"state"`
	ZipCode      string   `gorm:"size:20" json:"zipCode"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

type Contact struct {
	Phone     string `gorm:"size:30" json:"phone"`
	Whatsapp  string `gorm:"size:30" json:"whatsapp,omitempty"`
	Email     string `gorm:"size:100" json:"email,omitempty"`
	Website   string `gorm:"size:150" json:"website,omitempty"`
	Instagram string `gorm:"size:100" json:"instagram,omitempty"`
}

type Barbershop struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Contact Contact `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`

	Hours     HoursMap   `gorm:"type:text" json:"hours"`
	Amenities StringList `gorm:"type:text" json:"amenities"`
	Images    StringList `gorm:"type:text" json:"images"`

	Services []Service `gorm:"foreignKey:BarbershopID" json:"services"`

	PriceRange PriceRange `gorm:"size:10;not null" json:"priceRange"`
	Verified   bool       `gorm:"default:false" json:"verified"`

	// Agregados derivados do conjunto de reviews. Nunca aceitos via request.
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"reviewCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
