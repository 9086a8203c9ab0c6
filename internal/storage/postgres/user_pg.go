package postgres

import (
	"context"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/google/uuid"
)

func (s *Storage) CreateUser(ctx context.Context, user model.User) error {
	_, err := s.DB.Exec(ctx,
		`INSERT INTO users (username, email, password, refresh_token)
		 VALUES ($1, $2, $3, $4)`,
		user.UserName, user.Email, user.Password, user.RefreshToken)
	return err
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, username, email, password, refresh_token, created_at FROM users
		 WHERE email=$1`,
		email)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.RefreshToken, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, username, email, password, refresh_token, created_at FROM users
		 WHERE id=$1`,
		id)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.RefreshToken, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByRefresh(ctx context.Context, refreshToken string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, username, email, password, refresh_token, created_at
		 FROM users
		 WHERE refresh_token=$1`,
		refreshToken)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.RefreshToken, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET refresh_token=$1
		 WHERE id=$2`,
		refreshToken, id)
	return err
}
