package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/canvas-classifier/internal/engine"
	"github.com/donaldgifford/canvas-classifier/internal/metrics"
	"github.com/donaldgifford/canvas-classifier/internal/workbook"
	"github.com/donaldgifford/canvas-classifier/pkg/sheet"
)

// uploadField is the multipart form field carrying the workbook.
const uploadField = "file"

// Report headers attached to a successful conversion.
const (
	headerSheets      = "X-Sheets-Processed"
	headerEmptySheets = "X-Sheets-Empty"
)

// Converter turns an uploaded workbook into a classified one.
type Converter interface {
	Convert(ctx context.Context, r io.Reader, w io.Writer) (*engine.Report, error)
}

// UploadHandler accepts a multipart workbook upload and streams back the
// classified workbook as an attachment.
type UploadHandler struct {
	converter Converter
	suffix    string
	log       *slog.Logger
}

// NewUploadHandler creates a new UploadHandler. suffix is appended to the
// uploaded file's base name to form the download name.
func NewUploadHandler(c Converter, suffix string, log *slog.Logger) *UploadHandler {
	return &UploadHandler{converter: c, suffix: suffix, log: log}
}

// Upload handles POST /upload and POST /api/v1/convert.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file"})
	}
	metrics.UploadSizeBytes.Observe(float64(fh.Size))

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "reading upload: " + err.Error()})
	}
	defer f.Close()

	// The result is buffered so a failure part way through still gets a
	// JSON error instead of a truncated attachment.
	var out bytes.Buffer
	report, err := h.converter.Convert(c.Request().Context(), f, &out)
	if err != nil {
		return h.convertError(c, err)
	}

	name := workbook.DownloadName(fh.Filename, h.suffix)
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentDisposition, workbook.ContentDisposition(name))
	resp.Header().Set(headerSheets, strconv.Itoa(len(report.Sheets)))
	resp.Header().Set(headerEmptySheets, strconv.Itoa(len(report.EmptySheets)))

	return c.Blob(http.StatusOK, workbook.ContentType, out.Bytes())
}

func (h *UploadHandler) convertError(c echo.Context, err error) error {
	var layoutErr *sheet.LayoutError

	switch {
	case errors.Is(err, workbook.ErrInvalidWorkbook):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &layoutErr):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: err.Error(),
			Sheet: layoutErr.Sheet,
		})
	case errors.Is(err, workbook.ErrNoSheets):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "conversion cancelled"})
	default:
		h.log.Error("workbook conversion failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// RegisterUploadRoutes registers the workbook upload endpoints. mw wraps
// only these routes, for body limits and rate limiting.
func RegisterUploadRoutes(e *echo.Echo, h *UploadHandler, mw ...echo.MiddlewareFunc) {
	e.POST("/upload", h.Upload, mw...)
	e.POST("/api/v1/convert", h.Upload, mw...)
}
