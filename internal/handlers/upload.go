package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/services"
)

// Uploads beyond this are rejected before extraction.
const maxUploadBytes = 20 << 20

type UploadHandler struct {
	log        *logger.Logger
	extraction services.ExtractionService
}

func NewUploadHandler(log *logger.Logger, extraction services.ExtractionService) *UploadHandler {
	return &UploadHandler{
		log:        log.With("handler", "UploadHandler"),
		extraction: extraction,
	}
}

// POST /api/documents/extract
// Multipart upload; one module per document. A failed document is
// reported per file and never aborts the batch.
func (h *UploadHandler) ExtractModules(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_multipart", err)
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		RespondError(c, http.StatusBadRequest, "no_files", fmt.Errorf("no files in upload"))
		return
	}

	files := make([]services.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > maxUploadBytes {
			RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large",
				fmt.Errorf("%s exceeds the %d MB limit", fh.Filename, maxUploadBytes>>20))
			return
		}
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "unreadable_file", err)
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "unreadable_file", err)
			return
		}
		files = append(files, services.UploadedFile{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	results, err := h.extraction.ExtractModules(c.Request.Context(), files)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": results})
}
