package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"fixuBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
INSERT INTO users (id, email, display_name, password, role, user_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		user.ID, user.Email, user.DisplayName, user.Password, user.Role, user.Status,
	).Scan(&user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	query := `
		SELECT id, email, display_name, avatar_url, bio, role, user_status, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.Bio,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, display_name, avatar_url, bio, password, role, user_status, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.Bio,
		&user.Password, &user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
INSERT INTO sessions (user_id, role, refresh_token, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET role = $2, refresh_token = $3, expires_at = $4
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT user_id, role, refresh_token, expires_at
		FROM sessions
		WHERE refresh_token = $1
	`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}
