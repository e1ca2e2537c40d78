// Package postgres stores principals and their answers in PostgreSQL through GORM.
package postgres

import (
	"context"

	domainerrors "surveyor/internal/domain/errors"
	"surveyor/internal/domain/repository"
	"surveyor/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// txFactory hands out repositories bound to one open transaction.
type txFactory struct {
	tx *gorm.DB
}

func (f *txFactory) NewPrincipalRepository() repository.PrincipalRepository {
	return NewPrincipalRepository(f.tx)
}

// Execute runs fn inside one transaction. Begin, commit and rollback failures
// are store errors; fn's own error is returned as is so Conflict and NotFound
// survive the rollback.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "begin transaction")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if rbErr := tx.Rollback().Error; rbErr != nil {
			err = errors.Join(err, domainerrors.NewDatabaseExecuteError(rbErr, "roll back transaction"))
		}
	}()

	if err = fn(&txFactory{tx: tx}); err != nil {
		return err
	}

	if cErr := tx.Commit().Error; cErr != nil {
		// A failed commit leaves nothing to roll back.
		committed = true

		return domainerrors.NewDatabaseExecuteError(cErr, "commit transaction")
	}
	committed = true

	return nil
}
