// Package postgres implements the domain repositories on PostgreSQL through gorm.
package postgres

import (
	"context"

	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories builds repositories that share one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewStationRepository() repository.StationRepository {
	return NewStationRepository(f.tx)
}

func (f txRepositories) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// NewTransactionManager is the Fx provider of repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, panics included.
// Errors from fn are returned unchanged. Begin and commit failures become ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return domainerrors.ErrTransactionFailed.WithCause(errors.WithStack(err))
	default:
		return nil
	}
}
