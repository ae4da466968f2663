package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transport"
	"github.com/brunacaffaro/cashflowcontrol-backend/pkg/logger"
)

type ServiceAPI interface {
	CreateTransaction(dto *CreateTransactionDTO) (*Transaction, error)
	ListTransactions() ([]*Transaction, error)
	GetTransactionByName(name string) (*Transaction, error)
	UpdateStatus(dto *UpdateStatusDTO) (*Transaction, error)
	DeleteTransaction(name string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// CreateTransaction handles POST /transaction with a form-encoded body.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("CreateTransaction: invalid form body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	dto, appErr := ParseCreateForm(r.PostForm)
	if appErr != nil {
		h.Logger.Error("CreateTransaction: validation error", "error", appErr)
		h.HandleServiceError(w, appErr)
		return
	}

	t, err := h.Service.CreateTransaction(dto)
	if err != nil {
		h.Logger.Error("CreateTransaction: service error", "error", err, "name", dto.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction created",
		"id", t.ID,
		"name", t.Name,
		"amount", t.Amount)

	h.WriteJSON(w, http.StatusOK, Present(t))
}

// ListTransactions handles GET /transactions, most recent first.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Service.ListTransactions()
	if err != nil {
		h.Logger.Error("ListTransactions: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, PresentMany(transactions))
}

// GetTransaction handles GET /transaction?name=...
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.Logger.Error("GetTransaction: missing name parameter")
		h.WriteError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	t, err := h.Service.GetTransactionByName(name)
	if err != nil {
		h.Logger.Error("GetTransaction: service error", "error", err, "name", name)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, Present(t))
}

// UpdateStatus handles PATCH /transaction/status with a JSON body.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.UpdateStatus(&dto)
	if err != nil {
		h.Logger.Error("UpdateStatus: service error", "error", err, "name", dto.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpdateStatus: status updated", "name", t.Name, "t_status", t.Status)
	h.WriteJSON(w, http.StatusOK, Present(t))
}

// DeleteTransaction handles DELETE /transaction?name=...
//
// The name gets one extra percent-decode on top of the router's own decode,
// matching clients that double-encode it. A value the extra pass cannot
// decode (a literal '%' in the name) is used as-is.
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.Logger.Error("DeleteTransaction: missing name parameter")
		h.WriteError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}

	if err := h.Service.DeleteTransaction(name); err != nil {
		h.Logger.Error("DeleteTransaction: service error", "error", err, "name", name)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DeleteTransaction: transaction removed", "name", name)
	h.WriteJSON(w, http.StatusOK, DeleteView{
		Message: "transaction removed",
		Name:    name,
	})
}
