package entities

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `gorm:"column:password" json:"-"`
	Role         string `json:"role"` // user|admin
}
