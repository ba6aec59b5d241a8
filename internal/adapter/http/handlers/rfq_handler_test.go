package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/handlers/mocks"
	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
)

func rfqRouter(workflow usecase.IRFQWorkflowUseCase, export usecase.IExportUseCase) *gin.Engine {
	h := NewRFQHandler(workflow, export)
	r := gin.New()
	r.GET("/rfqs", h.ListRFQs)
	r.POST("/rfqs/upload", h.Upload)
	r.GET("/rfqs/agents/workload", h.AgentWorkload)
	r.GET("/rfqs/:id", h.GetRFQ)
	r.POST("/rfqs/:id/assign-rate", h.AssignRate)
	r.POST("/rfqs/:id/submit-review", h.SubmitReview)
	r.POST("/rfqs/:id/approve", h.Approve)
	r.POST("/rfqs/:id/cancel", h.Cancel)
	r.PATCH("/rfqs/:id/assign", h.AssignAgent)
	r.GET("/rfqs/:id/export", h.Export)
	return r
}

func newRFQMocks(t *testing.T) (*mocks.MockIRFQWorkflowUseCase, *mocks.MockIExportUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mocks.NewMockIRFQWorkflowUseCase(ctrl), mocks.NewMockIExportUseCase(ctrl)
}

func emlUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestRFQHandler_Upload(t *testing.T) {
	t.Run("201 with the pipeline outcome", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().IngestUpload(gomock.Any(), "rfq.eml", []byte("raw email")).
			Return(entities.RFQ{ID: "rfq-1", Status: entities.StatusQuoteDraft},
				"Rate found (EXACT, confidence 1.00). Draft quote created: S01001", nil)

		body, contentType := emlUpload(t, "email_file", "rfq.eml", "raw email")
		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/upload", body,
			map[string]string{"Content-Type": contentType})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}

		var got struct {
			RFQ     map[string]any `json:"rfq"`
			Message string         `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got.RFQ["status"] != "quote_draft" {
			t.Errorf("status = %v", got.RFQ["status"])
		}
		if !strings.Contains(got.Message, "S01001") {
			t.Errorf("message = %q", got.Message)
		}
	})

	t.Run("400 when the file field is missing", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		body, contentType := emlUpload(t, "wrong_field", "rfq.eml", "raw")
		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/upload", body,
			map[string]string{"Content-Type": contentType})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if e := decodeError(t, w); e.Code != "MISSING_EMAIL_FILE" {
			t.Errorf("code = %s", e.Code)
		}
	})
}

func TestRFQHandler_ListRFQs(t *testing.T) {
	t.Run("400 on an unknown status filter", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs?status=bogus", nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("200 with the filtered listing", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().ListRFQs(gomock.Any(), gomock.Any()).
			Return([]entities.RFQ{{ID: "a", Status: entities.StatusRatesPending}}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs?status=rates_pending", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}

func TestRFQHandler_GetRFQ(t *testing.T) {
	t.Run("200 with the trail and allowed transitions", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().GetRFQ(gomock.Any(), "rfq-1").Return(
			entities.RFQ{ID: "rfq-1", Status: entities.StatusQuoteDraft},
			[]entities.AuditLogEntry{
				{Event: entities.AuditEventCreated, NewValue: "received"},
				{Event: entities.AuditEventStatusChanged, OldValue: "received", NewValue: "parsing"},
			}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs/rfq-1", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var got struct {
			Status             string           `json:"status"`
			AllowedTransitions []string         `json:"allowed_transitions"`
			AuditLog           []map[string]any `json:"audit_log"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(got.AuditLog) != 2 {
			t.Errorf("audit_log entries = %d, want 2", len(got.AuditLog))
		}
		want := []string{"quote_review", "cancelled"}
		if len(got.AllowedTransitions) != 2 || got.AllowedTransitions[0] != want[0] || got.AllowedTransitions[1] != want[1] {
			t.Errorf("allowed_transitions = %v, want %v", got.AllowedTransitions, want)
		}
	})

	t.Run("404 when unknown", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().GetRFQ(gomock.Any(), "ghost").
			Return(entities.RFQ{}, nil, usecase.ErrRFQNotFound)

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs/ghost", nil, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if e := decodeError(t, w); e.Code != "RFQ_NOT_FOUND" {
			t.Errorf("code = %s", e.Code)
		}
	})
}

func TestRFQHandler_AssignRate(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().AssignRate(gomock.Any(), "rfq-1", "r1").
			Return(entities.RFQ{ID: "rfq-1", Status: entities.StatusQuoteDraft}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/rfq-1/assign-rate",
			strings.NewReader(`{"rate_id":"r1"}`), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("400 without a rate_id", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/rfq-1/assign-rate",
			strings.NewReader(`{}`), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("404 when the rate does not exist", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().AssignRate(gomock.Any(), "rfq-1", "ghost").
			Return(entities.RFQ{}, usecase.ErrRateNotFound)

		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/rfq-1/assign-rate",
			strings.NewReader(`{"rate_id":"ghost"}`), nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestRFQHandler_Transitions(t *testing.T) {
	t.Run("invalid transition maps to 400", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().Approve(gomock.Any(), "rfq-1").
			Return(entities.RFQ{}, fmt.Errorf("%w: rfq is quote_draft, expected quote_review", usecase.ErrInvalidTransition))

		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/rfq-1/approve", nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		e := decodeError(t, w)
		if e.Code != "INVALID_TRANSITION" || !strings.Contains(e.Message, "quote_review") {
			t.Errorf("error = %+v", e)
		}
	})

	t.Run("concurrent transition maps to 409", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().SubmitReview(gomock.Any(), "rfq-1").
			Return(entities.RFQ{}, usecase.ErrRFQConflict)

		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/rfq-1/submit-review", nil, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
		if e := decodeError(t, w); e.Code != "RFQ_CONFLICT" {
			t.Errorf("code = %s", e.Code)
		}
	})

	t.Run("cancel returns the terminal record", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().Cancel(gomock.Any(), "rfq-1").
			Return(entities.RFQ{ID: "rfq-1", Status: entities.StatusCancelled}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodPost, "/rfqs/rfq-1/cancel", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["status"] != "cancelled" {
			t.Errorf("status = %v", got["status"])
		}
	})
}

func TestRFQHandler_AssignAgent(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		workflow.EXPECT().AssignAgent(gomock.Any(), "rfq-1", "maria").
			Return(entities.RFQ{ID: "rfq-1", Status: entities.StatusRatesPending, AssignedAgent: "maria"}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodPatch, "/rfqs/rfq-1/assign",
			strings.NewReader(`{"agent":"maria"}`), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("400 without an agent", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		w := perform(rfqRouter(workflow, export), http.MethodPatch, "/rfqs/rfq-1/assign",
			strings.NewReader(`{}`), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestRFQHandler_AgentWorkload(t *testing.T) {
	workflow, export := newRFQMocks(t)

	workflow.EXPECT().AgentWorkload(gomock.Any()).Return([]usecase.AgentWorkload{
		{Agent: "maria", ActiveRFQs: 2, PendingRFQs: 1, TotalAssigned: 3},
	}, nil)

	w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs/agents/workload", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []usecase.AgentWorkload
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got) != 1 || got[0].Agent != "maria" || got[0].TotalAssigned != 3 {
		t.Errorf("workload = %+v", got)
	}
}

func TestRFQHandler_Export(t *testing.T) {
	t.Run("streams the pack as an attachment", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		export.EXPECT().Export(gomock.Any(), "rfq-1", "csv").Return(usecase.DraftPack{
			RFQID: "rfq-1", Format: "csv",
			Filename:    "draft_pack_rfq-1_20260601_120000.csv",
			ContentType: "text/csv",
			RawBytes:    []byte("RFQ Draft Pack Export\n"),
		}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs/rfq-1/export?format=csv", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("content type = %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "draft_pack_rfq-1") {
			t.Errorf("content disposition = %s", cd)
		}
	})

	t.Run("defaults to json", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		export.EXPECT().Export(gomock.Any(), "rfq-1", "json").
			Return(usecase.DraftPack{ContentType: "application/json", Filename: "x.json", RawBytes: []byte("{}")}, nil)

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs/rfq-1/export", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("400 on an unknown format", func(t *testing.T) {
		workflow, export := newRFQMocks(t)

		export.EXPECT().Export(gomock.Any(), "rfq-1", "xml").
			Return(usecase.DraftPack{}, fmt.Errorf("%w: %q", usecase.ErrInvalidExportFormat, "xml"))

		w := perform(rfqRouter(workflow, export), http.MethodGet, "/rfqs/rfq-1/export?format=xml", nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
