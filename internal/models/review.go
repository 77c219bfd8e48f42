package models

import "time"

// Review é imutável após a criação; não existe update nem delete.
type Review struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershopId"`

	CustomerName string `gorm:"size:100;not null" json:"customerName"`
	Rating       int    `gorm:"not null" json:"rating"`
	Comment      string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
