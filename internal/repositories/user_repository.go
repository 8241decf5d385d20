package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}

	var u models.User
	err := r.db().QueryRow(`
		SELECT id, full_name, email, phone, COALESCE(gender,''), password_hash, role, created_at
		FROM users
		WHERE id=?`, id).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Gender, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: fmt.Sprintf("user %d", id)}
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, full_name, email, phone, COALESCE(gender,''), password_hash, role, created_at
		FROM users
		WHERE email=?`, email).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Gender, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user " + email}
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (full_name, email, phone, gender, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		u.FullName, u.Email, u.Phone, u.Gender, u.PasswordHash, u.Role,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
