package models

import (
	"encoding/json"
	"time"
)

// User представляет автора постов.
// Address и Company хранятся как произвольный JSON.
type User struct {
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Phone     *string         `json:"phone"`
	Website   *string         `json:"website"`
	Name      string          `json:"name"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Address   json.RawMessage `json:"address"`
	Company   json.RawMessage `json:"company"`
	ID        int64           `json:"id"`
}

// Clone создает глубокую копию пользователя
func (u *User) Clone() *User {
	clone := *u
	if u.Phone != nil {
		phone := *u.Phone
		clone.Phone = &phone
	}
	if u.Website != nil {
		website := *u.Website
		clone.Website = &website
	}
	if u.Address != nil {
		clone.Address = append(json.RawMessage(nil), u.Address...)
	}
	if u.Company != nil {
		clone.Company = append(json.RawMessage(nil), u.Company...)
	}
	return &clone
}
