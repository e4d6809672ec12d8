package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation 判断错误是否来自唯一约束冲突（PostgreSQL 23505 / SQLite UNIQUE）。
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// 兜底：未开启 TranslateError 的 SQLite 连接只会返回文本错误。
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
