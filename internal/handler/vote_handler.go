package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"voterkyc/internal/export"
	"voterkyc/internal/middleware"
	"voterkyc/internal/service"
)

// VoteHandler handles ballot casting and results.
type VoteHandler struct {
	voteService service.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Cast handles POST /api/v1/votes
// @Summary      Cast a vote
// @Description  Requires a verified offline KYC. Each user may vote once.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body body CastVoteRequest true "Ballot"
// @Success      201 {object} APIResponse{data=domain.Vote}
// @Failure      403 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /votes [post]
func (h *VoteHandler) Cast(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input service.CastVoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	vote, err := h.voteService.Cast(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, vote)
}

// Results handles GET /api/v1/admin/results
// @Summary      Vote tally per candidate
// @Tags         admin
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.CandidateTally}
// @Security     BearerAuth
// @Router       /admin/results [get]
func (h *VoteHandler) Results(c *gin.Context) {
	tallies, err := h.voteService.Results(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tallies)
}

// ExportResults handles GET /api/v1/admin/results/export?format=csv|xlsx
// @Summary      Download the tally
// @Tags         admin
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "csv or xlsx" default(csv)
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/results/export [get]
func (h *VoteHandler) ExportResults(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", export.FormatCSV))
	contentType, ok := export.ContentTypes[format]
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	tallies, err := h.voteService.Results(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("election_results", format, time.Now())
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if format == export.FormatXLSX {
		err = export.WriteXLSX(c.Writer, tallies)
	} else {
		err = export.WriteCSV(c.Writer, tallies)
	}
	if err != nil {
		// Headers are already sent.
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.ContextKeyRequestID)).
			Str("format", format).
			Msg("writing results export")
	}
}
