package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voterkyc/internal/service"
)

// CandidateHandler handles ballot candidate endpoints.
type CandidateHandler struct {
	candidateService service.CandidateService
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(candidateService service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// List handles GET /api/v1/candidates
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.Candidate}
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, candidates)
}

// GetByID handles GET /api/v1/candidates/:id
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	candidate, err := h.candidateService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, candidate)
}

// Create handles POST /api/v1/admin/candidates
// @Summary      Add a candidate
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body CandidateRequest true "Candidate"
// @Success      201 {object} APIResponse{data=domain.Candidate}
// @Failure      400 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input service.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	candidate, err := h.candidateService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, candidate)
}

// Update handles PUT /api/v1/admin/candidates/:id
// @Summary      Replace a candidate's details
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Param        body body CandidateRequest true "Candidate"
// @Success      200 {object} APIResponse{data=domain.Candidate}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input service.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	candidate, err := h.candidateService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, candidate)
}

// Delete handles DELETE /api/v1/admin/candidates/:id
// @Summary      Remove a candidate
// @Tags         admin
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.candidateService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "candidate deleted"})
}

// UploadImage handles POST /api/v1/admin/candidates/:id/image
// @Summary      Upload a candidate image
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Param        image formData file true "JPG or PNG image"
// @Success      200 {object} APIResponse{data=domain.Candidate}
// @Failure      400 {object} APIResponse
// @Failure      413 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/candidates/{id}/image [post]
func (h *CandidateHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "image field is required")
		return
	}
	defer func() { _ = file.Close() }()

	candidate, err := h.candidateService.UploadImage(c.Request.Context(), id, service.CandidateImageInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, candidate)
}
