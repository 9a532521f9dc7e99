package repository

import "context"

// TransactionManager runs use case steps atomically without exposing the database driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewStationRepository() StationRepository
	NewReviewRepository() ReviewRepository
}
