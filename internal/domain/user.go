package domain

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:200;not null"`
	IsAdmin      bool   `json:"is_admin" gorm:"default:false"`
}
