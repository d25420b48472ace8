package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// pgErrorFields код ошибки postgres и нарушенное ограничение, если ошибка пришла от сервера.
func pgErrorFields(err error) logrus.Fields {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return logrus.Fields{}
	}
	fields := logrus.Fields{"pg_code": pgErr.Code}
	if pgErr.ConstraintName != "" {
		fields["constraint"] = pgErr.ConstraintName
	}
	return fields
}

// isIntegrityViolation нарушение ограничений схемы (уникальность, внешний ключ, check).
// Такие ошибки вызваны входными данными, а не сбоем хранилища.
func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
}

// logStatementError нарушения ограничений пишутся на уровне warn, остальные ошибки на уровне error.
func (g *Gateway) logStatementError(err error, sql, msg string) {
	entry := g.l.WithError(err).WithField("sql", sql).WithFields(pgErrorFields(err))
	if isIntegrityViolation(err) {
		entry.Warn(msg)
		return
	}
	entry.Error(msg)
}
