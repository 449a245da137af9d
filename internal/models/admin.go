package models

type Admin struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`

	CreatedAt string `json:"createdAt"`
}
