package models

import "time"

// UserModel represents a registered reader account.
type UserModel struct {
	Base
	Email    string `json:"email"    gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-"        gorm:"not null"`

	Tokens []AccessTokenModel `json:"-" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }

// AccessTokenModel is an issued bearer token. A token is live only while its
// row exists; deleting the row revokes it regardless of the embedded expiry.
type AccessTokenModel struct {
	Base
	Token     string    `json:"token"      gorm:"index;size:512;not null"`
	UserID    uint      `json:"user_id"    gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
}

func (AccessTokenModel) TableName() string { return "tokens" }
