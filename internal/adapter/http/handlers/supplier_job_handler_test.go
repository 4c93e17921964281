package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"towdispatch/internal/adapter/http/handlers/mocks"
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSupplierJobHandler_Decline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"declined", nil, http.StatusOK},
		{"unknown ref", usecase.ErrSupplierJobNotFound, http.StatusNotFound},
		{"already invoiced", errors.Wrapf(usecase.ErrInvalidSupplierJobState, "status=%s", entities.SupplierJobStatusInvoiced), http.StatusConflict},
		{"main job write failed", errors.New("kv down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockISupplierJobUseCase(ctrl)
			h := NewSupplierJobHandler(uc)

			r := gin.New()
			r.POST("/v1/supplier/jobs/:ref/decline", h.DeclineSupplierJob)

			uc.EXPECT().Decline(gomock.Any(), "ABC234", "truck broke down").
				Return(entities.SupplierJobRecord{Ref: "ABC234", Status: entities.SupplierJobStatusDeclined}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/supplier/jobs/ABC234/decline", bytes.NewBufferString(`{"reason":"truck broke down"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestSupplierJobHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISupplierJobUseCase(ctrl)
	h := NewSupplierJobHandler(uc)

	r := gin.New()
	r.POST("/v1/supplier/jobs/:ref/accept", h.AcceptSupplierJob)

	uc.EXPECT().Accept(gomock.Any(), "abc234").Return(entities.SupplierJobRecord{Ref: "ABC234", Status: entities.SupplierJobStatusAccepted}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/supplier/jobs/abc234/accept", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSupplierJobHandler_SubmitInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing bank account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplierJobUseCase(ctrl)
		h := NewSupplierJobHandler(uc)

		r := gin.New()
		r.POST("/v1/supplier/jobs/:ref/invoice", h.SubmitInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/supplier/jobs/ABC234/invoice", bytes.NewBufferString(`{"number":"INV-1","amount":7000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid bank account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplierJobUseCase(ctrl)
		h := NewSupplierJobHandler(uc)

		r := gin.New()
		r.POST("/v1/supplier/jobs/:ref/invoice", h.SubmitInvoice)

		uc.EXPECT().SubmitInvoice(gomock.Any(), "ABC234", usecase.SubmitInvoiceInput{Number: "INV-1", Amount: 7000, BankAccount: "12"}).
			Return(entities.SupplierJobRecord{}, errors.Wrap(usecase.ErrInvalidInvoice, "bank account"))

		req := httptest.NewRequest(http.MethodPost, "/v1/supplier/jobs/ABC234/invoice", bytes.NewBufferString(`{"number":"INV-1","amount":7000,"bankAccount":"12"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
