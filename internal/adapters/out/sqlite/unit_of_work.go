package sqlite

import (
	"context"

	"storefront/internal/adapters/out/sqlite/orderrepo"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWork coordinates one database transaction while holding the
// store guard. It is not safe for concurrent use; each command creates its own.
type GormUnitOfWork struct {
	store *Store
	tx    *gorm.DB
}

// Begin takes the store guard and opens a transaction.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.store.mu.Lock()

	tx := uow.store.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		uow.store.mu.Unlock()
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction and releases the store guard.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.release()
	return err
}

// Rollback discards the transaction and releases the store guard.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.release()
	return err
}

// OrderRepository returns a repository bound to the current transaction.
// Call Begin first: outside a transaction the repository is not guarded.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.store.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}

func (uow *GormUnitOfWork) release() {
	uow.tx = nil
	uow.store.mu.Unlock()
}
