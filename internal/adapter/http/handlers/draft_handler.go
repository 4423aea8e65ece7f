package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	request "dental_lab/internal/adapter/http/dto/request"
	response "dental_lab/internal/adapter/http/dto/response"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/draft"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the work-order builder. Each owner has one live draft
// session; POST /drafts/session runs the startup check and every other route
// needs it to have happened.
type DraftHandler struct {
	registry *draft.Registry
}

func NewDraftHandler(registry *draft.Registry) *DraftHandler {
	return &DraftHandler{registry: registry}
}

// bindOptionalJSON binds the body when there is one.
func bindOptionalJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// session returns the owner's started session.
func (h *DraftHandler) session(c *gin.Context) (*draft.Session, bool) {
	s, ok := h.registry.Get(ownerID(c))
	if !ok || !s.View().Started {
		writeError(c, errDraftNotStarted)
		return nil, false
	}
	return s, true
}

// StartSession godoc
// @Summary      Open the draft session and run the recovery check
// @Description  Without "recover" the response asks for confirmation when a recent snapshot exists.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string                    true  "Owner id"
// @Param        body       body   request.StartDraftRequest false "Recovery answer"
// @Success      200 {object} response.StartDraftResponse
// @Router       /drafts/session [post]
func (h *DraftHandler) StartSession(c *gin.Context) {
	var payload request.StartDraftRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, _ := h.registry.Open(ownerID(c))
	ctx := c.Request.Context()

	answer := false
	if payload.Recover == nil {
		if prompt, ok := s.PendingRecovery(ctx); ok {
			c.JSON(http.StatusOK, response.FromRecoveryPrompt(prompt))
			return
		}
	} else {
		answer = *payload.Recover
	}

	res, err := s.Start(ctx, draft.Answer(answer))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStartResult(res, s.View()))
}

// GetSession godoc
// @Summary      Current draft
// @Tags         drafts
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Success      200 {object} draft.View
// @Failure      409 {object} pkg.HTTPError
// @Router       /drafts/session [get]
func (h *DraftHandler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// UpdateSelection godoc
// @Summary      Select clinic, dentist and technician
// @Description  Applies clinic, then dentist, then technician. Changing the clinic clears the dentist.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body request.SelectionRequest true "Payload"
// @Success      200 {object} draft.View
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/session/selection [put]
func (h *DraftHandler) UpdateSelection(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	if payload.ClinicID != nil {
		if err := s.SelectClinic(ctx, *payload.ClinicID); err != nil {
			writeError(c, mapDraftError(err))
			return
		}
	}
	if payload.DentistID != nil {
		if err := s.SelectDentist(ctx, *payload.DentistID); err != nil {
			writeError(c, mapDraftError(err))
			return
		}
	}
	if payload.TechnicianID != nil {
		if err := s.SelectTechnician(ctx, *payload.TechnicianID); err != nil {
			writeError(c, mapDraftError(err))
			return
		}
	}
	c.JSON(http.StatusOK, s.View())
}

// UpdatePatient godoc
// @Summary      Set patient name and tax id
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body request.PatientRequest true "Payload"
// @Success      200 {object} draft.View
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /drafts/session/patient [put]
func (h *DraftHandler) UpdatePatient(c *gin.Context) {
	var payload request.PatientRequest
	h.mutate(c, &payload, func(s *draft.Session) error {
		return s.SetPatient(payload.Name, payload.TaxID)
	})
}

// UpdateMode godoc
// @Summary      Switch between simple and detailed mode
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body request.ModeRequest true "Payload"
// @Success      200 {object} draft.View
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/session/mode [put]
func (h *DraftHandler) UpdateMode(c *gin.Context) {
	var payload request.ModeRequest
	h.mutate(c, &payload, func(s *draft.Session) error {
		return s.SetMode(payload.Mode)
	})
}

// UpdateFilters godoc
// @Summary      Set catalog filters
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body request.FiltersRequest true "Payload"
// @Success      200 {object} draft.View
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/session/filters [put]
func (h *DraftHandler) UpdateFilters(c *gin.Context) {
	var payload request.FiltersRequest
	h.mutate(c, &payload, func(s *draft.Session) error {
		return s.SetFilters(payload.Category, payload.Search)
	})
}

// UpdateMaterial godoc
// @Summary      Update the material configuration
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body entities.MaterialConfiguration true "Payload"
// @Success      200 {object} draft.View
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /drafts/session/material [put]
func (h *DraftHandler) UpdateMaterial(c *gin.Context) {
	var payload entities.MaterialConfiguration
	h.mutate(c, &payload, func(s *draft.Session) error {
		return s.UpdateMaterialConfiguration(payload)
	})
}

// UpdateCardInput godoc
// @Summary      Set quantity and tooth of a catalog card
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        service_id path string true "Service id"
// @Param        body body request.CardInputRequest true "Payload"
// @Success      200 {object} draft.View
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/session/cards/{service_id} [put]
func (h *DraftHandler) UpdateCardInput(c *gin.Context) {
	var payload request.CardInputRequest
	h.mutate(c, &payload, func(s *draft.Session) error {
		return s.SetCardInput(c.Param("service_id"), payload.Quantity, payload.Tooth)
	})
}

// mutate binds payload, applies fn and answers with the updated view.
func (h *DraftHandler) mutate(c *gin.Context, payload any, fn func(s *draft.Session) error) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := c.ShouldBindJSON(payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if err := fn(s); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// AddItem godoc
// @Summary      Add a catalog service
// @Description  Zero quantity and empty tooth fall back to the card input of the service.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body request.AddItemRequest true "Payload"
// @Success      201 {object} response.LineItemResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/session/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	item, err := s.AddSimpleLineItem(c.Request.Context(), draft.SimpleItemInput{
		ServiceID:    payload.ServiceID,
		Quantity:     payload.Quantity,
		Tooth:        payload.Tooth,
		Observations: payload.Observations,
	})
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.LineItemResponse{Item: item, Session: s.View()})
}

// AddDetailedItem godoc
// @Summary      Add a priced material configuration
// @Description  Prices the posted configuration, or the draft's current one when the body is empty.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        body body entities.MaterialConfiguration false "Configuration"
// @Success      201 {object} response.LineItemResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/session/items/detailed [post]
func (h *DraftHandler) AddDetailedItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	cfg := s.View().Draft.Material
	if err := bindOptionalJSON(c, &cfg); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	item, err := s.AddDetailedLineItem(cfg)
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.LineItemResponse{Item: item, Session: s.View()})
}

// RemoveItem godoc
// @Summary      Remove a line item
// @Tags         drafts
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        item_id path string true "Line item id"
// @Success      200 {object} draft.View
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /drafts/session/items/{item_id} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.RemoveLineItem(c.Param("item_id")); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// ClearSession godoc
// @Summary      Clear the draft (confirm=true)
// @Tags         drafts
// @Produce      json
// @Param        X-Owner-ID header string true "Owner id"
// @Param        confirm query bool true "Explicit confirmation"
// @Success      200 {object} draft.View
// @Failure      409 {object} pkg.HTTPError
// @Failure      428 {object} pkg.HTTPError
// @Router       /drafts/session [delete]
func (h *DraftHandler) ClearSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if err := s.ClearAll(c.Request.Context(), confirmed); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// Finalize godoc
// @Summary  Submit the draft as a work order
// @Tags     drafts
// @Produce  json
// @Param    X-Owner-ID header string true "Owner id"
// @Success  201 {object} response.SubmissionResponse
// @Failure  422 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /drafts/session/finalize [post]
func (h *DraftHandler) Finalize(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	receipt, err := s.Finalize(c.Request.Context())
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

// Unload godoc
// @Summary      Save the draft and close the session
// @Tags         drafts
// @Param        X-Owner-ID header string true "Owner id"
// @Success      204
// @Router       /drafts/session/unload [post]
func (h *DraftHandler) Unload(c *gin.Context) {
	h.registry.Close(c.Request.Context(), ownerID(c))
	c.Status(http.StatusNoContent)
}
