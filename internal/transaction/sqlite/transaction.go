package sqlite

import (
	stderrors "errors"

	errors "github.com/brunacaffaro/cashflowcontrol-backend/internal"
	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transaction"
	"gorm.io/gorm"
)

// TransactionRepository implements the transaction.Repository interface
// using GORM over SQLite. Each method runs a single unit of work on a
// session scoped to the call, so no connection state leaks across requests.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction row. The id is assigned by the store at
// insert time. A violated name uniqueness constraint surfaces as a conflict.
func (r *TransactionRepository) Create(t *transaction.Transaction) error {
	if err := r.db.Create(t).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrTransactionExists
		}
		return err
	}
	return nil
}

// GetByName retrieves a transaction by its exact name, case-sensitive.
func (r *TransactionRepository) GetByName(name string) (*transaction.Transaction, error) {
	var t transaction.Transaction
	err := r.db.Where("name = ?", name).First(&t).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetAll retrieves every transaction ordered by date, most recent first.
func (r *TransactionRepository) GetAll() ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	err := r.db.Order("t_date DESC").Find(&transactions).Error
	return transactions, err
}

// Save writes the full row back.
func (r *TransactionRepository) Save(t *transaction.Transaction) error {
	return r.db.Save(t).Error
}

// DeleteByName removes the named transaction and reports how many rows were
// affected; zero means nothing matched.
func (r *TransactionRepository) DeleteByName(name string) (int64, error) {
	result := r.db.Where("name = ?", name).Delete(&transaction.Transaction{})
	return result.RowsAffected, result.Error
}
