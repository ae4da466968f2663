package transaction_test

import (
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transaction"
)

var _ = Describe("ParseCreateForm", func() {
	validForm := func() url.Values {
		return url.Values{
			"name":     {"Rent-Jan"},
			"t_date":   {"2025-01-05"},
			"amount":   {"1200.0"},
			"t_type":   {"Saída"},
			"category": {"Housing"},
		}
	}

	It("should parse a valid form", func() {
		dto, appErr := transaction.ParseCreateForm(validForm())
		Expect(appErr).To(BeNil())
		Expect(dto.Name).To(Equal("Rent-Jan"))
		Expect(dto.Date.Format(transaction.DateLayout)).To(Equal("2025-01-05"))
		Expect(dto.Amount).To(Equal(1200.0))
		Expect(dto.Status).To(BeFalse())
		Expect(dto.Comment).To(BeNil())
	})

	It("should parse optional status and comment", func() {
		form := validForm()
		form.Set("t_status", "true")
		form.Set("comment", "first month")

		dto, appErr := transaction.ParseCreateForm(form)
		Expect(appErr).To(BeNil())
		Expect(dto.Status).To(BeTrue())
		Expect(dto.Comment).ToNot(BeNil())
		Expect(*dto.Comment).To(Equal("first month"))
	})

	It("should reject a malformed date", func() {
		form := validForm()
		form.Set("t_date", "05/01/2025")

		dto, appErr := transaction.ParseCreateForm(form)
		Expect(dto).To(BeNil())
		Expect(appErr).ToNot(BeNil())
		Expect(appErr.StatusCode).To(Equal(400))
		Expect(appErr.Error()).To(ContainSubstring("t_date"))
	})

	It("should reject a non-numeric amount", func() {
		form := validForm()
		form.Set("amount", "a lot")

		dto, appErr := transaction.ParseCreateForm(form)
		Expect(dto).To(BeNil())
		Expect(appErr).ToNot(BeNil())
		Expect(appErr.Error()).To(ContainSubstring("amount"))
	})

	It("should reject a missing required field", func() {
		form := validForm()
		form.Del("category")

		dto, appErr := transaction.ParseCreateForm(form)
		Expect(dto).To(BeNil())
		Expect(appErr).ToNot(BeNil())
		Expect(appErr.Error()).To(ContainSubstring("category"))
	})

	It("should reject an over-long comment", func() {
		form := validForm()
		long := ""
		for len(long) <= 50 {
			long += "c"
		}
		form.Set("comment", long)

		dto, appErr := transaction.ParseCreateForm(form)
		Expect(dto).To(BeNil())
		Expect(appErr).ToNot(BeNil())
		Expect(appErr.Error()).To(ContainSubstring("comment"))
	})
})
