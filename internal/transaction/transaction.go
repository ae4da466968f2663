package transaction

import (
	"time"
)

// Transaction represents a single financial record, either an entry
// ("Entrada") or an expense ("Saída"). The name is the natural lookup key
// for every read, update and delete besides listing.
type Transaction struct {
	ID       int64     `json:"id" gorm:"column:pk_transaction;primaryKey;autoIncrement"`
	Name     string    `json:"name" gorm:"column:name;size:50;not null;uniqueIndex"`
	Date     time.Time `json:"t_date" gorm:"column:t_date;type:date;not null"`
	Amount   float64   `json:"amount" gorm:"column:amount;not null"`
	Type     string    `json:"t_type" gorm:"column:t_type;size:20;not null"`
	Category string    `json:"category" gorm:"column:category;size:30;not null"`
	Status   bool      `json:"t_status" gorm:"column:t_status;default:false"`
	Comment  *string   `json:"comment" gorm:"column:comment;size:50"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transaction"
}

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

func NewTransaction(dto CreateTransactionDTO) *Transaction {
	return &Transaction{
		Name:     dto.Name,
		Date:     dto.Date,
		Amount:   dto.Amount,
		Type:     dto.Type,
		Category: dto.Category,
		Status:   dto.Status,
		Comment:  dto.Comment,
	}
}
