package transaction_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transaction"
	transactionSQLite "github.com/brunacaffaro/cashflowcontrol-backend/internal/transaction/sqlite"
)

var _ = Describe("Transaction Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    transaction.Repository
		service *transaction.Service
		handler *transaction.Handler
	)

	postForm := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/transaction", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)
		return w
	}

	createForm := func(name, date string) url.Values {
		return url.Values{
			"name":     {name},
			"t_date":   {date},
			"amount":   {"1200.0"},
			"t_type":   {"Saída"},
			"category": {"Housing"},
			"t_status": {"false"},
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&transaction.Transaction{})
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo = transactionSQLite.NewTransactionRepository(db)
		service = transaction.NewService(repo, slogger)
		handler = transaction.NewHandler(service)
	})

	Describe("POST /transaction", func() {
		It("should create a transaction and assign an id", func() {
			w := postForm(createForm("Rent-Jan", "2025-01-05"))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var view transaction.TransactionView
			Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
			Expect(view.ID).To(BeNumerically(">", 0))
			Expect(view.Name).To(Equal("Rent-Jan"))
			Expect(view.Date).NotTo(BeNil())
			Expect(*view.Date).To(Equal("2025-01-05"))
			Expect(view.Amount).To(Equal(1200.0))
			Expect(view.Type).To(Equal("Saída"))
			Expect(view.Status).To(BeFalse())
		})

		It("should return 409 with a message for a duplicate name", func() {
			Expect(postForm(createForm("Rent-Jan", "2025-01-05")).Code).To(Equal(http.StatusOK))

			w := postForm(createForm("Rent-Jan", "2025-01-05"))
			Expect(w.Code).To(Equal(http.StatusConflict))

			var body map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["message"]).NotTo(BeEmpty())
		})

		It("should return 400 for a malformed payload", func() {
			form := createForm("Rent-Jan", "not-a-date")
			w := postForm(form)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["message"]).NotTo(BeEmpty())
		})
	})

	Describe("GET /transactions", func() {
		It("should list transactions ordered by date descending", func() {
			Expect(postForm(createForm("d1", "2025-01-01")).Code).To(Equal(http.StatusOK))
			Expect(postForm(createForm("d3", "2025-01-03")).Code).To(Equal(http.StatusOK))
			Expect(postForm(createForm("d2", "2025-01-02")).Code).To(Equal(http.StatusOK))

			req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
			w := httptest.NewRecorder()
			handler.ListTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var list transaction.TransactionListView
			Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
			Expect(list.Transactions).To(HaveLen(3))
			Expect(list.Transactions[0].Name).To(Equal("d3"))
			Expect(list.Transactions[1].Name).To(Equal("d2"))
			Expect(list.Transactions[2].Name).To(Equal("d1"))
		})

		It("should return an empty list, not 404, when there are no rows", func() {
			req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
			w := httptest.NewRecorder()
			handler.ListTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"transactions": []}`))
		})
	})

	Describe("GET /transaction", func() {
		It("should fetch a transaction by name and round-trip its fields", func() {
			Expect(postForm(createForm("Rent-Jan", "2025-01-05")).Code).To(Equal(http.StatusOK))

			req := httptest.NewRequest(http.MethodGet, "/transaction?name=Rent-Jan", nil)
			w := httptest.NewRecorder()
			handler.GetTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var view transaction.TransactionView
			Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
			Expect(view.Name).To(Equal("Rent-Jan"))
			Expect(*view.Date).To(Equal("2025-01-05"))
			Expect(view.Amount).To(Equal(1200.0))
			Expect(view.Category).To(Equal("Housing"))
		})

		It("should return 404 with a message for an unknown name", func() {
			req := httptest.NewRequest(http.MethodGet, "/transaction?name=missing", nil)
			w := httptest.NewRecorder()
			handler.GetTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var body map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["message"]).NotTo(BeEmpty())
		})
	})

	Describe("PATCH /transaction/status", func() {
		patchStatus := func(name string, status bool) *httptest.ResponseRecorder {
			payload, err := json.Marshal(transaction.UpdateStatusDTO{Name: name, Status: status})
			Expect(err).NotTo(HaveOccurred())
			req := httptest.NewRequest(http.MethodPatch, "/transaction/status", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, req)
			return w
		}

		It("should toggle the status both ways", func() {
			Expect(postForm(createForm("Rent-Jan", "2025-01-05")).Code).To(Equal(http.StatusOK))

			w := patchStatus("Rent-Jan", true)
			Expect(w.Code).To(Equal(http.StatusOK))
			var view transaction.TransactionView
			Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
			Expect(view.Status).To(BeTrue())

			w = patchStatus("Rent-Jan", false)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
			Expect(view.Status).To(BeFalse())
		})

		It("should return 404 for an unknown name", func() {
			Expect(patchStatus("missing", true).Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /transaction", func() {
		It("should delete by name and confirm with the name", func() {
			Expect(postForm(createForm("Rent-Jan", "2025-01-05")).Code).To(Equal(http.StatusOK))

			req := httptest.NewRequest(http.MethodDelete, "/transaction?name=Rent-Jan", nil)
			w := httptest.NewRecorder()
			handler.DeleteTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var confirmation transaction.DeleteView
			Expect(json.NewDecoder(w.Body).Decode(&confirmation)).To(Succeed())
			Expect(confirmation.Name).To(Equal("Rent-Jan"))
			Expect(confirmation.Message).NotTo(BeEmpty())

			get := httptest.NewRequest(http.MethodGet, "/transaction?name=Rent-Jan", nil)
			gw := httptest.NewRecorder()
			handler.GetTransaction(gw, get)
			Expect(gw.Code).To(Equal(http.StatusNotFound))
		})

		It("should accept a double-encoded name", func() {
			Expect(postForm(createForm("Conta de Água", "2025-01-05")).Code).To(Equal(http.StatusOK))

			once := url.QueryEscape("Conta de Água")
			twice := url.QueryEscape(once)
			req := httptest.NewRequest(http.MethodDelete, "/transaction?name="+twice, nil)
			w := httptest.NewRecorder()
			handler.DeleteTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var confirmation transaction.DeleteView
			Expect(json.NewDecoder(w.Body).Decode(&confirmation)).To(Succeed())
			Expect(confirmation.Name).To(Equal("Conta de Água"))
		})

		It("should return 404 and leave the store untouched for an unknown name", func() {
			req := httptest.NewRequest(http.MethodDelete, "/transaction?name=missing", nil)
			w := httptest.NewRecorder()
			handler.DeleteTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var count int64
			Expect(db.Model(&transaction.Transaction{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})
	})
})
