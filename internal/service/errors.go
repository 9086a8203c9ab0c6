package service

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrPreviewNotFound — токен не выдавался или лента отсутствует.
	ErrPreviewNotFound = errors.New("preview token not found")
	// ErrPreviewExpired — токен существует, но срок его действия истек.
	// Для пользователя неотличим от ErrPreviewNotFound.
	ErrPreviewExpired = errors.New("preview token expired")
	// ErrPhotoNotFound — фотография не существует или принадлежит другой ленте.
	ErrPhotoNotFound = errors.New("photo not found")
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
