package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"dental_lab/docs"
	"dental_lab/internal/adapter/http/handlers"
	"dental_lab/internal/adapter/http/handlers/mocks"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/infrastructure/localstorage"
	"dental_lab/internal/logger"
	"dental_lab/internal/usecase"
	"dental_lab/internal/usecase/draft"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkOrderUseCase, *mocks.MockIDashboardUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	workOrders := mocks.NewMockIWorkOrderUseCase(ctrl)
	dashboard := mocks.NewMockIDashboardUseCase(ctrl)
	directory := mocks.NewMockIDirectoryUseCase(ctrl)
	log := logger.Discard()

	registry := draft.NewRegistry(draft.Dependencies{Submitter: workOrders, Logger: log}, localstorage.NewMemoryStore().ForOwner, nil)
	h := Handlers{
		Catalog:   handlers.NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl)),
		Directory: handlers.NewDirectoryHandler(directory),
		Draft:     handlers.NewDraftHandler(registry),
		WorkOrder: handlers.NewWorkOrderHandler(workOrders, directory, 0.19),
		Dashboard: handlers.NewDashboardHandler(dashboard),
		Payment:   handlers.NewSubscriptionPaymentHandler(mocks.NewMockISubscriptionPaymentUseCase(ctrl), true, log),
	}
	return NewRouter(h, log), workOrders, dashboard
}

func serve(r http.Handler, method, path string, owner bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if owner {
		req.Header.Set(handlers.OwnerHeader, "lab-1")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	t.Run("ping needs no owner", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := serve(r, http.MethodGet, "/v1/ping", false)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("owned routes reject anonymous calls", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		if w := serve(r, http.MethodGet, "/v1/work-orders", false); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("static segment wins over id", func(t *testing.T) {
		r, workOrders, _ := newTestRouter(t)
		workOrders.EXPECT().FindOrphans(gomock.Any(), "lab-1").Return([]entities.WorkOrder{}, nil)
		if w := serve(r, http.MethodGet, "/v1/work-orders/orphans", true); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("advance is a patch", func(t *testing.T) {
		r, workOrders, _ := newTestRouter(t)
		workOrders.EXPECT().AdvanceStatus(gomock.Any(), "lab-1", "wo-1").
			Return(entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusProduccion}, nil)
		if w := serve(r, http.MethodPatch, "/v1/work-orders/wo-1/advance", true); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("dashboard stats", func(t *testing.T) {
		r, _, dashboard := newTestRouter(t)
		dashboard.EXPECT().Stats(gomock.Any(), "lab-1").Return(usecase.DashboardStats{Clinics: 1}, nil)
		if w := serve(r, http.MethodGet, "/v1/dashboard/stats", true); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("draft session starts", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		if w := serve(r, http.MethodPost, "/v1/drafts/session", true); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics exposed", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		serve(r, http.MethodGet, "/v1/ping", false)
		w := serve(r, http.MethodGet, "/metrics", false)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "dental_lab_http_request_duration_seconds") {
			t.Fatalf("expected request histogram in /metrics")
		}
	})
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	r, _, _ := newTestRouter(t)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}

	param := regexp.MustCompile(`:([a-z_]+)`)
	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, docs.SwaggerInfo.BasePath+"/") {
			continue
		}
		path := param.ReplaceAllString(strings.TrimPrefix(route.Path, docs.SwaggerInfo.BasePath), "{$1}")
		if _, ok := doc.Paths[path][strings.ToLower(route.Method)]; !ok {
			t.Errorf("%s %s is not documented", route.Method, path)
		}
	}
}
