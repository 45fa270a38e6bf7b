package domain

type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:140;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"image_url" gorm:"size:300"`
	Category    string  `json:"category" gorm:"size:80;default:'General'"`
	// no schema default: an explicit zero must persist as zero
	Stock       int     `json:"stock"`
}
