package transaction

import (
	"log/slog"

	errors "github.com/brunacaffaro/cashflowcontrol-backend/internal"
)

// Repository defines the data access methods for transactions. Every call is
// a single unit of work on a session scoped to the call itself.
type Repository interface {
	Create(t *Transaction) error
	GetByName(name string) (*Transaction, error)
	GetAll() ([]*Transaction, error)
	Save(t *Transaction) error
	DeleteByName(name string) (int64, error)
}

// Service handles transaction business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new transaction service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTransaction persists a new transaction. A duplicate name surfaces as
// a conflict; any other storage failure becomes a persistence error asking
// the caller to retry.
func (s *Service) CreateTransaction(dto *CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err, "name", dto.Name)
		return nil, err
	}

	t := NewTransaction(*dto)
	s.logger.Debug("adding transaction", "name", t.Name)

	if err := s.repo.Create(t); err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			s.logger.Warn("failed to add transaction", "name", t.Name, "error", appErr.Message)
			return nil, appErr
		}
		s.logger.Warn("failed to add transaction", "name", t.Name, "error", err)
		return nil, errors.NewPersistenceError("could not save the new transaction, try again", err)
	}

	s.logger.Debug("added transaction", "name", t.Name, "id", t.ID)
	return t, nil
}

// ListTransactions returns every transaction ordered from most recent to
// oldest. An empty store yields an empty slice.
func (s *Service) ListTransactions() ([]*Transaction, error) {
	s.logger.Debug("loading transactions")

	transactions, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, err
	}

	s.logger.Debug("transactions found", "count", len(transactions))
	return transactions, nil
}

// GetTransactionByName looks a transaction up by its exact name.
func (s *Service) GetTransactionByName(name string) (*Transaction, error) {
	s.logger.Debug("loading transaction", "name", name)

	t, err := s.repo.GetByName(name)
	if err != nil {
		s.logger.Warn("transaction not found", "name", name, "error", err)
		return nil, err
	}

	s.logger.Debug("transaction found", "name", name)
	return t, nil
}

// UpdateStatus sets the reconciled flag of the named transaction. There is
// no enforced transition order, both directions are legal.
func (s *Service) UpdateStatus(dto *UpdateStatusDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("status update validation failed", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Debug("updating transaction status", "name", dto.Name, "status", dto.Status)

	t, err := s.repo.GetByName(dto.Name)
	if err != nil {
		s.logger.Warn("failed to update transaction status", "name", dto.Name, "error", err)
		return nil, err
	}

	t.Status = dto.Status
	if err := s.repo.Save(t); err != nil {
		s.logger.Error("failed to save transaction status", "name", dto.Name, "error", err)
		return nil, errors.NewPersistenceError("could not update the transaction, try again", err)
	}

	s.logger.Debug("transaction status updated", "name", dto.Name, "status", dto.Status)
	return t, nil
}

// DeleteTransaction removes the named transaction. Matching zero rows is
// reported as not found.
func (s *Service) DeleteTransaction(name string) error {
	s.logger.Debug("deleting transaction", "name", name)

	count, err := s.repo.DeleteByName(name)
	if err != nil {
		s.logger.Error("failed to delete transaction", "name", name, "error", err)
		return errors.NewPersistenceError("could not delete the transaction, try again", err)
	}
	if count == 0 {
		s.logger.Warn("transaction not found for deletion", "name", name)
		return errors.ErrTransactionNotFound
	}

	s.logger.Debug("deleted transaction", "name", name)
	return nil
}
