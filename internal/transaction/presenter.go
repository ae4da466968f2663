package transaction

// TransactionView is the JSON shape returned to clients for a single
// persisted transaction. The date is serialized as an ISO-8601 calendar-date
// string; a missing date serializes as null.
type TransactionView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     *string `json:"t_date"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"t_type"`
	Category string  `json:"category"`
	Status   bool    `json:"t_status"`
	Comment  *string `json:"comment"`
}

type TransactionListView struct {
	Transactions []TransactionView `json:"transactions"`
}

// DeleteView confirms a removal, echoing the name the row was matched on.
type DeleteView struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// Present maps a persisted transaction to its response view. Pure, no I/O.
func Present(t *Transaction) TransactionView {
	view := TransactionView{
		ID:       t.ID,
		Name:     t.Name,
		Amount:   t.Amount,
		Type:     t.Type,
		Category: t.Category,
		Status:   t.Status,
		Comment:  t.Comment,
	}
	if !t.Date.IsZero() {
		date := t.Date.Format(DateLayout)
		view.Date = &date
	}
	return view
}

// PresentMany maps an ordered sequence of transactions; empty input yields
// an empty list, never an error.
func PresentMany(transactions []*Transaction) TransactionListView {
	views := make([]TransactionView, len(transactions))
	for i, t := range transactions {
		views[i] = Present(t)
	}
	return TransactionListView{Transactions: views}
}
