package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental_lab/internal/adapter/http/handlers/mocks"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/services", h.ListServices)
	r.POST("/services", h.CreateService)
	r.PATCH("/services/:id", h.UpdateServicePrice)
	r.DELETE("/services/:id", h.DeactivateService)
	r.GET("/catalog/template", h.DownloadTemplate)
	r.POST("/catalog/import", h.ImportCatalog)
	return r, uc
}

func TestCatalogHandler_ListServices(t *testing.T) {
	r, uc := newCatalogRouter(t)

	uc.EXPECT().
		ListActiveServices(gomock.Any(), "lab-1", usecase.ServiceFilter{Category: entities.CategoryCorona, Search: "zir"}).
		Return([]entities.Service{{ID: "s1", Name: "Corona zirconia", Price: 250000, Category: entities.CategoryCorona, Active: true}}, nil)

	w := performRequest(r, http.MethodGet, "/services?category=corona&q=zir", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "s1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCatalogHandler_CreateService(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := performRequest(r, http.MethodPost, "/services", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().CreateService(gomock.Any(), "lab-1", "X", entities.Category("nope"), int64(10)).
			Return(entities.Service{}, usecase.ErrInvalidCategory)

		w := performRequest(r, http.MethodPost, "/services", `{"name":"X","category":"nope","price":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().CreateService(gomock.Any(), "lab-1", "Carilla", entities.CategoryCarilla, int64(90000)).
			Return(entities.Service{ID: "s9", Name: "Carilla", Category: entities.CategoryCarilla, Price: 90000, Active: true}, nil)

		w := performRequest(r, http.MethodPost, "/services", `{"name":"Carilla","category":"carilla","price":90000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogHandler_UpdateAndDeactivate(t *testing.T) {
	t.Run("price update not found", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpdateServicePrice(gomock.Any(), "lab-1", "s1", int64(1)).Return(entities.Service{}, usecase.ErrServiceNotFound)

		w := performRequest(r, http.MethodPatch, "/services/s1", `{"price":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deactivate storage failure", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().DeactivateService(gomock.Any(), "lab-1", "s1").Return(entities.Service{}, errors.New("boom"))

		w := performRequest(r, http.MethodDelete, "/services/s1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_DownloadTemplate(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w := performRequest(r, http.MethodGet, "/catalog/template", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("template is not a workbook: %v", err)
	}
	defer f.Close()
}

func multipartWorkbook(t *testing.T, rows [][]any) (*bytes.Buffer, string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "catalogo.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if err := f.Write(part); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	mw.Close()
	return &body, mw.FormDataContentType()
}

func TestCatalogHandler_ImportCatalog(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := performRequest(r, http.MethodPost, "/catalog/import", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rows imported and rejections merged", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		body, contentType := multipartWorkbook(t, [][]any{
			{"Nombre", "Categoría", "Precio"},
			{"Corona metal porcelana", "corona", 180000},
			{"Sin precio", "corona", ""},
		})

		uc.EXPECT().ImportServices(gomock.Any(), "lab-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, rows []usecase.CatalogImportRow) (usecase.CatalogImportResult, error) {
				if len(rows) != 1 || rows[0].Name != "Corona metal porcelana" || rows[0].Price != 180000 {
					t.Fatalf("unexpected rows: %+v", rows)
				}
				return usecase.CatalogImportResult{
					Created: []entities.Service{{ID: "s1", Name: rows[0].Name, Category: entities.CategoryCorona, Price: 180000, Active: true}},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/catalog/import", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(OwnerHeader, "lab-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res struct {
			Created  []map[string]any                 `json:"created"`
			Rejected []usecase.CatalogImportRejection `json:"rejected"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(res.Created) != 1 || len(res.Rejected) != 1 || res.Rejected[0].Row != 3 {
			t.Fatalf("unexpected result: %s", w.Body.String())
		}
	})
}
