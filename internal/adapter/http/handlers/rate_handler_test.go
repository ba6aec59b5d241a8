package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/handlers/mocks"
	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

func rateRouter(uc usecase.IRateCatalogUseCase) *gin.Engine {
	h := NewRateHandler(uc, fixedClock{testNow})
	r := gin.New()
	r.GET("/rates", h.ListRates)
	r.POST("/rates", h.CreateRate)
	r.POST("/rates/lookup", h.LookupRate)
	r.GET("/rates/:id", h.GetRate)
	r.PATCH("/rates/:id", h.UpdateRate)
	return r
}

func catalogRate() entities.Rate {
	return entities.Rate{
		ID: "r1", CarrierName: "Maersk", Mode: entities.ModeSea,
		OriginPort: "SGSIN", DestinationPort: "PHMNL",
		Currency: "USD", RatePerUnit: 50, Unit: entities.UnitKG,
		ValidFrom: testNow.Add(-24 * time.Hour), ValidTo: testNow.Add(24 * time.Hour),
		Source: "MANUAL",
	}
}

func TestRateHandler_CreateRate(t *testing.T) {
	body := `{
		"carrier_name": "Maersk", "mode": "SEA",
		"origin_port": "SGSIN", "destination_port": "PHMNL",
		"rate_per_unit": 50, "unit": "KG",
		"valid_from": "2026-01-01", "valid_to": "2026-12-31"
	}`

	t.Run("201 with derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)
		uc.EXPECT().CreateRate(gomock.Any(), gomock.Any()).Return(catalogRate(), nil)

		w := perform(rateRouter(uc), http.MethodPost, "/rates", strings.NewReader(body), nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["status"] != "ACTIVE" {
			t.Errorf("status = %v, want ACTIVE", got["status"])
		}
	})

	t.Run("400 on malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)

		w := perform(rateRouter(uc), http.MethodPost, "/rates", strings.NewReader(`{"mode":"SEA"}`), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if e := decodeError(t, w); e.Code != "INVALID_RATE_INPUT" {
			t.Errorf("code = %s", e.Code)
		}
	})

	t.Run("400 on an unparseable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)

		bad := strings.Replace(body, "2026-01-01", "01/01/2026", 1)
		w := perform(rateRouter(uc), http.MethodPost, "/rates", strings.NewReader(bad), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("400 on a validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)
		uc.EXPECT().CreateRate(gomock.Any(), gomock.Any()).
			Return(entities.Rate{}, fmt.Errorf("%w: rate_per_unit must be positive", usecase.ErrRateValidation))

		w := perform(rateRouter(uc), http.MethodPost, "/rates", strings.NewReader(body), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		e := decodeError(t, w)
		if e.Code != "INVALID_RATE_INPUT" || !strings.Contains(e.Message, "rate_per_unit") {
			t.Errorf("error = %+v", e)
		}
	})

	t.Run("504 when the store times out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)
		uc.EXPECT().CreateRate(gomock.Any(), gomock.Any()).Return(entities.Rate{}, usecase.ErrStoreTimeout)

		w := perform(rateRouter(uc), http.MethodPost, "/rates", strings.NewReader(body), nil)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("status = %d, want 504", w.Code)
		}
		if e := decodeError(t, w); e.Code != "STORE_TIMEOUT" {
			t.Errorf("code = %s", e.Code)
		}
	})
}

func TestRateHandler_GetRate(t *testing.T) {
	t.Run("200 with the rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)
		uc.EXPECT().GetRate(gomock.Any(), "r1").Return(catalogRate(), nil)

		w := perform(rateRouter(uc), http.MethodGet, "/rates/r1", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("404 when unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)
		uc.EXPECT().GetRate(gomock.Any(), "ghost").Return(entities.Rate{}, usecase.ErrRateNotFound)

		w := perform(rateRouter(uc), http.MethodGet, "/rates/ghost", nil, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if e := decodeError(t, w); e.Code != "RATE_NOT_FOUND" {
			t.Errorf("code = %s", e.Code)
		}
	})
}

func TestRateHandler_ListRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRateCatalogUseCase(ctrl)

	wantFilter := interfaces.RateFilter{Mode: "SEA", Origin: "SGSIN", Destination: "PHMNL"}
	uc.EXPECT().ListRates(gomock.Any(), wantFilter, usecase.RateFilterActive).
		Return([]entities.Rate{catalogRate()}, nil)

	w := perform(rateRouter(uc), http.MethodGet,
		"/rates?mode=SEA&origin=SGSIN&destination=PHMNL&status=ACTIVE", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rates, want 1", len(got))
	}
}

func TestRateHandler_UpdateRate(t *testing.T) {
	t.Run("200 with the patched rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)

		updated := catalogRate()
		updated.RatePerUnit = 60
		uc.EXPECT().UpdateRate(gomock.Any(), "r1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch usecase.RatePatch) (entities.Rate, error) {
				if patch.RatePerUnit == nil || *patch.RatePerUnit != 60 {
					t.Errorf("patch = %+v, want rate_per_unit 60", patch)
				}
				return updated, nil
			})

		w := perform(rateRouter(uc), http.MethodPatch, "/rates/r1",
			strings.NewReader(`{"rate_per_unit": 60}`), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("400 on malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)

		w := perform(rateRouter(uc), http.MethodPatch, "/rates/r1", strings.NewReader(`{`), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestRateHandler_LookupRate(t *testing.T) {
	t.Run("200 with the matcher verdict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)

		rate := catalogRate()
		cost := 50000.0
		uc.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(usecase.RateLookupResult{
			Found: true, MatchType: usecase.MatchExact, Rate: &rate,
			EstimatedCost: &cost, Confidence: 1.0, Message: "Exact rate found",
		}, nil)

		body := `{"origin":"SGSIN","destination":"PHMNL","mode":"SEA","weight_kg":1000}`
		w := perform(rateRouter(uc), http.MethodPost, "/rates/lookup", strings.NewReader(body), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["match_type"] != "EXACT" || got["found"] != true {
			t.Errorf("body = %v", got)
		}
	})

	t.Run("400 when required fields are missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRateCatalogUseCase(ctrl)

		w := perform(rateRouter(uc), http.MethodPost, "/rates/lookup",
			strings.NewReader(`{"origin":"SGSIN"}`), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
