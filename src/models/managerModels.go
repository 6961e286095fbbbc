package models

type ManagerModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
