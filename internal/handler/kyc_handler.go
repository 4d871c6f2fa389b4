package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voterkyc/internal/service"
)

// KYCHandler handles offline KYC document endpoints.
type KYCHandler struct {
	kycService service.KYCService
	maxBytes   int64
}

// NewKYCHandler creates a new KYCHandler. Bodies are read up to one byte past
// maxBytes so the service can reject oversized documents.
func NewKYCHandler(kycService service.KYCService, maxBytes int64) *KYCHandler {
	return &KYCHandler{kycService: kycService, maxBytes: maxBytes}
}

// Preview handles POST /api/v1/kyc/preview
// @Summary      Preview an offline KYC document
// @Description  Parses the XML and returns the extracted document and its display summary. Nothing is stored.
// @Tags         kyc
// @Accept       xml
// @Accept       mpfd
// @Produce      json
// @Param        file formData file false "Offline KYC XML (multipart); alternatively send the XML as the raw body"
// @Success      200 {object} APIResponse{data=service.KYCPreview}
// @Failure      400 {object} APIResponse
// @Failure      413 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Router       /kyc/preview [post]
func (h *KYCHandler) Preview(c *gin.Context) {
	raw, err := h.readDocument(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.kycService.Preview(c.Request.Context(), raw)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Verify handles POST /api/v1/kyc/verify
// @Summary      Verify the caller with an offline KYC document
// @Description  Parses the XML, requires a name in the personal details, and marks the caller as KYC verified. The photo is not echoed back.
// @Tags         kyc
// @Accept       xml
// @Accept       mpfd
// @Produce      json
// @Param        file formData file false "Offline KYC XML (multipart); alternatively send the XML as the raw body"
// @Success      200 {object} APIResponse{data=service.KYCVerification}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      413 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Security     BearerAuth
// @Router       /kyc/verify [post]
func (h *KYCHandler) Verify(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	raw, err := h.readDocument(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := h.kycService.Verify(c.Request.Context(), userID, raw)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// readDocument returns the XML from the multipart "file" field when the
// request is multipart, and the raw body otherwise.
func (h *KYCHandler) readDocument(c *gin.Context) ([]byte, error) {
	var src io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("file field is required")
		}
		defer func() { _ = file.Close() }()
		src = file
	}
	if src == nil {
		return nil, nil
	}
	if h.maxBytes > 0 {
		src = io.LimitReader(src, h.maxBytes+1)
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return raw, nil
}
