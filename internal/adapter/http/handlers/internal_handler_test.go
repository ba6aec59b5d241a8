package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/handlers/mocks"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
)

func internalRouter(sla usecase.ISLAUseCase, token string) *gin.Engine {
	h := NewInternalHandler(sla, token)
	r := gin.New()
	r.POST("/internal/sla/run", h.RunSLACheck)
	return r
}

func TestInternalHandler_RunSLACheck(t *testing.T) {
	t.Run("hidden when no token is configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sla := mocks.NewMockISLAUseCase(ctrl)

		w := perform(internalRouter(sla, ""), http.MethodPost, "/internal/sla/run", nil,
			map[string]string{"X-Cron-Token": "anything"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("401 on a wrong token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sla := mocks.NewMockISLAUseCase(ctrl)

		w := perform(internalRouter(sla, "secret"), http.MethodPost, "/internal/sla/run", nil,
			map[string]string{"X-Cron-Token": "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if e := decodeError(t, w); e.Code != "UNAUTHORIZED" {
			t.Errorf("code = %s", e.Code)
		}
	})

	t.Run("runs the sweep with the right token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sla := mocks.NewMockISLAUseCase(ctrl)
		sla.EXPECT().RunCheck(gomock.Any()).Return(usecase.SLACheckResult{
			Checked: 5, NewlyBreached: 1, Timestamp: testNow.Format("2006-01-02T15:04:05Z07:00"),
		}, nil)

		w := perform(internalRouter(sla, "secret"), http.MethodPost, "/internal/sla/run", nil,
			map[string]string{"X-Cron-Token": "secret"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var got usecase.SLACheckResult
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got.Checked != 5 || got.NewlyBreached != 1 {
			t.Errorf("result = %+v", got)
		}
	})
}
