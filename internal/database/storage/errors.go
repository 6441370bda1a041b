package storage

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// likePattern строит шаблон ILIKE для поиска подстроки,
// экранируя метасимволы LIKE в пользовательском вводе
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// persistence оборачивает ошибку записи в domain.PersistenceError
func persistence(op string, err error) error {
	return domain.NewPersistenceError(op, err)
}

// notFound переводит sql.ErrNoRows в domain.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// pqCode возвращает код ошибки PostgreSQL, если он есть
func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
