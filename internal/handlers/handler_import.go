package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/middleware"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/SscSPs/mobilepos_backend/internal/utils/csvimport"
	"github.com/gin-gonic/gin"
)

const (
	previewSummaryLimit = 5
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// importHandler handles bulk product and part imports.
type importHandler struct {
	importService portssvc.ImportSvcFacade
	analytics     *utils.PosthogClientWrapper
}

func newImportHandler(is portssvc.ImportSvcFacade, analytics *utils.PosthogClientWrapper) *importHandler {
	return &importHandler{importService: is, analytics: analytics}
}

// registerImportRoutes registers routes related to imports. Committing needs the admin role.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade, analytics *utils.PosthogClientWrapper, extra ...gin.HandlerFunc) {
	h := newImportHandler(importService, analytics)

	imports := rg.Group("/imports", extra...)
	{
		imports.GET("/batches", h.listBatches)
		imports.GET("/:kind/template", h.getTemplate)
		imports.POST("/:kind/preview", h.preview)
		imports.POST("/:kind/commit", middleware.RequireRole(utils.RoleAdmin), h.commit)
	}
}

func kindFromPath(c *gin.Context) (domain.EntityKind, bool) {
	kind, err := domain.ParseEntityKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return "", false
	}
	return kind, true
}

// getTemplate godoc
// @Summary Download an import template
// @Description Returns a semicolon separated example file with a UTF-8 BOM
// @Tags imports
// @Produce  text/csv
// @Param   kind path string true "products or parts"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Unknown kind"
// @Security BearerAuth
// @Router /imports/{kind}/template [get]
func (h *importHandler) getTemplate(c *gin.Context) {
	kind, ok := kindFromPath(c)
	if !ok {
		return
	}
	tpl := h.importService.Template(kind)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, tpl.FileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", tpl.Content)
}

// preview godoc
// @Summary Validate an import file
// @Description Parses an uploaded CSV and validates every row. With format=xlsx the outcome is returned as a workbook.
// @Tags imports
// @Accept  multipart/form-data
// @Produce  json
// @Param   kind path string true "products or parts"
// @Param   file formData file true "CSV file"
// @Param   format query string false "json (default) or xlsx"
// @Success 200 {object} dto.ImportPreviewResponse
// @Failure 400 {object} map[string]string "Missing, empty or unreadable file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown kind"
// @Failure 415 {object} map[string]string "Not a CSV file"
// @Failure 500 {object} map[string]string "Failed to validate file"
// @Security BearerAuth
// @Router /imports/{kind}/preview [post]
func (h *importHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindFromPath(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Import file missing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, logger, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err), "Failed to validate file")
		return
	}
	defer file.Close()

	p, err := h.importService.Preview(c.Request.Context(), kind, fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to validate file")
		return
	}

	if c.Query("format") == "xlsx" {
		var buf bytes.Buffer
		if err := csvimport.WriteReport(&buf, p.Result); err != nil {
			respondServiceError(c, logger, err, "Failed to build report")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="validacion_%s.xlsx"`, kind))
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, dto.ToImportPreviewResponse(p, csvimport.Summarize(p.Result, previewSummaryLimit)))
}

// commit godoc
// @Summary Create the rows of a previewed import
// @Description Creates the submitted rows one at a time, in order, and stops at the first failure. Rows created before the failure stay.
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   kind path string true "products or parts"
// @Param   rows body dto.ImportCommitRequest true "Valid rows"
// @Success 201 {object} domain.BulkCreateResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 502 {object} map[string]interface{} "Backend rejected a row; body carries the partial result"
// @Security BearerAuth
// @Router /imports/{kind}/commit [post]
func (h *importHandler) commit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, ok := kindFromPath(c)
	if !ok {
		return
	}

	var req dto.ImportCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportCommit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.importService.Commit(c.Request.Context(), kind, req, userID, middleware.GetAuthTokenFromContext(c))
	if result != nil {
		middleware.PosthogEvent(c, h.analytics, middleware.EventImportCommitted, map[string]any{
			"kind":    string(kind),
			"created": result.Created,
			"failed":  err != nil,
		})
	}
	if err != nil {
		if result == nil || errors.Is(err, apperrors.ErrValidation) {
			respondServiceError(c, logger, err, "Failed to import rows")
			return
		}
		status := statusForError(err)
		if status < http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		logger.Warn("Import stopped", slog.Int("failed_row", result.FailedRow), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error(), "result": result})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// listBatches godoc
// @Summary List committed imports
// @Tags imports
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListImportBatchesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list import batches"
// @Security BearerAuth
// @Router /imports/batches [get]
func (h *importHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListImportBatches", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	batches, nextToken, err := h.importService.ListBatches(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list import batches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListImportBatchesResponse(batches, nextToken))
}
