package user

import (
	"context"

	"arena/internal/db"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, email, password_hash, role, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var created User
	if err := r.db.GetContext(ctx, &created, query, u.Name, u.Email, u.PasswordHash, u.Role, u.Status); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var u User
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *repository) ListByStatus(ctx context.Context, status string) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE status = $1 ORDER BY created_at ASC`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, status); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (*User, error) {
	query := `UPDATE users SET status = $1 WHERE id = $2 RETURNING ` + userColumns

	var u User
	if err := r.db.GetContext(ctx, &u, query, status, id); err != nil {
		return nil, err
	}

	return &u, nil
}
