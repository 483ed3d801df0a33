package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	CustomerID   sql.NullString `db:"customer_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Customer is a row of the customers table.
type Customer struct {
	CustomerID string    `db:"customer_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
}
