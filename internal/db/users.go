package db

import (
	"creatorhub/internal/models"
)

// CreateUser inserts a new user and returns it with the generated fields.
func CreateUser(email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at
	`
	user := &models.User{}
	err := DB.Get(user, query, email, passwordHash)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by exact email match.
func GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	user := &models.User{}
	err := DB.Get(user, query, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by primary key.
func GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	user := &models.User{}
	err := DB.Get(user, query, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
