package operations

import (
	"context"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/workflow"
	"github.com/fsdevblog/orderflow/pkg/store"
)

// bcrypt учитывает только первые 72 байта пароля.
const maxPasswordBytes = 72

// Authenticate проверяет email и пароль пользователя. Неизвестный email и неверный пароль
// неразличимы для вызывающего: оба дают ErrInvalidCredentials.
func Authenticate(ctx context.Context, gw workflow.Gateway, email, password string) (domain.User, error) {
	row, ok := gw.Query(ctx, selectUserCredentials, email).First()
	if !ok || !ComparePassword(password, row.String(5)) {
		return domain.User{}, fmt.Errorf("%w: email `%s`", domain.ErrInvalidCredentials, email)
	}
	return parseUser(row)
}

// LookupUser выбирает пользователя с ролью role без проверки пароля. Без email берется первый
// пользователь с этой ролью. Для CLI с прямым доступом к базе.
func LookupUser(ctx context.Context, gw workflow.Gateway, role domain.Role, email string) (domain.User, error) {
	if !role.IsValid() {
		return domain.User{}, fmt.Errorf("%w: unknown role `%s`", domain.ErrInvalidArgument, role)
	}

	var rows store.Rows
	if email == "" {
		rows = gw.Query(ctx, selectFirstUserByRole, string(role))
	} else {
		rows = gw.Query(ctx, selectUserByRoleAndEmail, string(role), email)
	}

	row, ok := rows.First()
	if !ok {
		return domain.User{}, fmt.Errorf("%w: no %s user", domain.ErrRecordNotFound, role)
	}
	return parseUser(row)
}

// SetPassword сохраняет bcrypt хеш нового пароля пользователя с указанным email.
func SetPassword(ctx context.Context, gw workflow.Gateway, email, password string) error {
	if password == "" || len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be 1..%d bytes", domain.ErrInvalidArgument, maxPasswordBytes)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if !gw.ExecuteAffecting(ctx, updateUserPassword, email, hash) {
		return fmt.Errorf("%w: user `%s`", domain.ErrRecordNotFound, email)
	}
	return nil
}

func parseUser(row store.Row) (domain.User, error) {
	id, err := row.Int64(0)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse user id: %w", err)
	}
	var loyalty int
	if row.String(4) != "" {
		if loyalty, err = row.Int(4); err != nil {
			return domain.User{}, fmt.Errorf("parse loyalty level: %w", err)
		}
	}
	return domain.User{
		ID:           id,
		Name:         row.String(1),
		Email:        row.String(2),
		Role:         domain.Role(row.String(3)),
		LoyaltyLevel: loyalty,
	}, nil
}
