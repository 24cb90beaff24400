package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/middleware"
	"campaign-srv/pkg/log"
)

// stubUseCase overrides only the operations a test exercises; anything
// else panics through the embedded nil interface.
type stubUseCase struct {
	campaign.UseCase
	export func(ctx context.Context, id string) (campaign.ExportOutput, error)
}

func (s *stubUseCase) Export(ctx context.Context, id string) (campaign.ExportOutput, error) {
	return s.export(ctx, id)
}

func newTestRouter(uc campaign.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNoopLogger(), uc, nil)
	h.RegisterRoutes(r.Group(""), middleware.New(log.NewNoopLogger()))
	return r
}

func TestExportEndpoint(t *testing.T) {
	uc := &stubUseCase{
		export: func(_ context.Context, id string) (campaign.ExportOutput, error) {
			if id != "camp-1" {
				t.Errorf("campaign id = %q, want camp-1", id)
			}
			return campaign.ExportOutput{
				ObjectName: "campaigns/camp-1/outputs-1.md",
				URL:        "https://minio.local/ecp-exports/campaigns/camp-1/outputs-1.md",
				ExpiresAt:  time.Now().Add(time.Hour),
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/camp-1/export", nil)
	newTestRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Data struct {
			ObjectName string `json:"object_name"`
			URL        string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.ObjectName == "" || body.Data.URL == "" {
		t.Errorf("body = %s, want object name and download url", w.Body.String())
	}
}

func TestExportEndpointWithoutOutputs(t *testing.T) {
	uc := &stubUseCase{
		export: func(context.Context, string) (campaign.ExportOutput, error) {
			return campaign.ExportOutput{}, campaign.ErrNoOutputsToExport
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/camp-1/export", nil)
	newTestRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}
