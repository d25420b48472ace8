package store

import (
	"context"
	"errors"
)

var (
	ErrBeginFailed  = errors.New("[store] begin transaction failed")
	ErrCommitFailed = errors.New("[store] commit failed")
)

// InTransaction выполняет fn между Begin и Commit.
// Если fn вернула ошибку или запаниковала, транзакция откатывается, Commit не вызывается.
// Паника после отката пробрасывается дальше.
func InTransaction(ctx context.Context, t Transactor, fn func(ctx context.Context) error) (err error) {
	if !t.Begin(ctx) {
		return ErrBeginFailed
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			t.Rollback(ctx)
			panic(p)
		}
		t.Rollback(ctx)
	}()

	if fnErr := fn(ctx); fnErr != nil {
		return fnErr
	}

	committed = true
	if !t.Commit(ctx) {
		return ErrCommitFailed
	}
	return nil
}
