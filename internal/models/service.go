package models

type Service struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255;not null" json:"name"`
	Price float64 `gorm:"type:numeric(10,2);not null" json:"price"`
}
