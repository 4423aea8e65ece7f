package handlers

import (
	"net/http"

	"dental_lab/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

func (h *DirectoryHandler) ListClinics(c *gin.Context) {
	clinics, err := h.usecase.ListClinics(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, mapDirectoryError(err))
		return
	}
	c.JSON(http.StatusOK, clinics)
}

func (h *DirectoryHandler) ListDentists(c *gin.Context) {
	dentists, err := h.usecase.ListDentists(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapDirectoryError(err))
		return
	}
	c.JSON(http.StatusOK, dentists)
}

func (h *DirectoryHandler) ListTechnicians(c *gin.Context) {
	techs, err := h.usecase.ListTechnicians(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, mapDirectoryError(err))
		return
	}
	c.JSON(http.StatusOK, techs)
}
