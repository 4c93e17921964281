package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"towdispatch/internal/adapter/http/handlers/mocks"
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLookupHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILookupUseCase(ctrl)
		h := NewLookupHandler(uc)

		r := gin.New()
		r.POST("/v1/quote", h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "A", "B").Return(entities.Quote{Pickup: "A", Dropoff: "B", DistanceMeters: 14000, Price: 10900, Currency: "NZD"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewBufferString(`{"pickup":"A","dropoff":"B"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Quote entities.Quote `json:"quote"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Quote.Price != 10900 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("distance failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILookupUseCase(ctrl)
		h := NewLookupHandler(uc)

		r := gin.New()
		r.POST("/v1/quote", h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "A", "B").Return(entities.Quote{}, usecase.ErrDistanceLookupFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewBufferString(`{"pickup":"A","dropoff":"B"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestLookupHandler_Vehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILookupUseCase(ctrl)
	h := NewLookupHandler(uc)

	r := gin.New()
	r.GET("/v1/vehicles/:plate", h.Vehicle)

	uc.EXPECT().Vehicle(gomock.Any(), "abc123").Return(entities.Vehicle{Plate: "ABC123", Make: "Toyota", Demo: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/abc123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLookupHandler_Distance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILookupUseCase(ctrl)
	h := NewLookupHandler(uc)

	r := gin.New()
	r.POST("/v1/distance", h.Distance)

	req := httptest.NewRequest(http.MethodPost, "/v1/distance", bytes.NewBufferString(`{"locations":["only one"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
