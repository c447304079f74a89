package domain

import "time"

type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"` // bcrypt hashed
	CreatedAt    time.Time `db:"created_at"`
}

func NewUser(name, email, hashedPassword string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}
}
