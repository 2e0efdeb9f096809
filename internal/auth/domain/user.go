package domain

import "time"

const RoleAdmin = "admin"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
