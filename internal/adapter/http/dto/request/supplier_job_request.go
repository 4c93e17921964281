package request

import (
	"strings"

	"towdispatch/internal/usecase"
)

type DeclineSupplierJobRequest struct {
	Reason string `json:"reason"`
}

type SubmitInvoiceRequest struct {
	Number      string `json:"number" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	BankAccount string `json:"bankAccount" binding:"required"`
	GSTNumber   string `json:"gstNumber"`
}

func (r SubmitInvoiceRequest) ToInput() usecase.SubmitInvoiceInput {
	return usecase.SubmitInvoiceInput{
		Number:      strings.TrimSpace(r.Number),
		Amount:      r.Amount,
		BankAccount: strings.TrimSpace(r.BankAccount),
		GSTNumber:   strings.TrimSpace(r.GSTNumber),
	}
}
