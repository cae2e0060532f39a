package models

// UserModel is a lab operator. Operators identify themselves by swiping their card.
type UserModel struct {
	Id            int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Login         string `json:"login" gorm:"column:login;type:varchar(255);uniqueIndex;not null"`
	SwipecardCode string `json:"-" gorm:"column:swipecard_code;type:varchar(255);uniqueIndex;not null"`
	UUID          string `json:"uuid" gorm:"column:uuid;type:varchar(36)"`
	Password      string `json:"-" gorm:"type:varchar(100)"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Login         string `json:"login"`
	Password      string `json:"password"`
	SwipecardCode string `json:"swipecardCode"`
}

type RegisterResponse struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
}
