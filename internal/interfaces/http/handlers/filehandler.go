package handlers

import (
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"weiyue/internal/infrastructure/storage"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
	"weiyue/internal/shared/utils"
)

type FileStore interface {
	Save(original string, r io.Reader) (string, error)
	Open(name string) (afero.File, error)
	MaxBytes() int64
}

type FileHandler struct {
	store  FileStore
	logger logger.Interface
}

func NewFileHandler(store FileStore, logger logger.Interface) *FileHandler {
	return &FileHandler{store: store, logger: logger}
}

type UploadResponse struct {
	AttachmentRef string `json:"attachment_ref"`
	FileName      string `json:"file_name"`
	Size          int64  `json:"size"`
}

// Upload handles POST /api/files (multipart field "file")
func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.store.MaxBytes()+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}
	if header.Size > h.store.MaxBytes() {
		utils.ErrorResponseWithError(c, errors.NewValidationError(storage.ErrTooLarge.Error()))
		return
	}

	src, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer src.Close()

	name, err := h.store.Save(header.Filename, src)
	if err != nil {
		if stderrors.Is(err, storage.ErrInvalidName) || stderrors.Is(err, storage.ErrTooLarge) {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
			return
		}
		h.logger.Errorw("failed to store upload", "file_name", header.Filename, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to store file"))
		return
	}

	h.logger.Infow("file uploaded", "attachment_ref", name, "size", header.Size)
	utils.CreatedResponse(c, UploadResponse{
		AttachmentRef: name,
		FileName:      header.Filename,
		Size:          header.Size,
	}, "file uploaded successfully")
}

// Download handles GET /api/files/:name
func (h *FileHandler) Download(c *gin.Context) {
	name := c.Param("name")
	f, err := h.store.Open(name)
	switch {
	case stderrors.Is(err, storage.ErrInvalidName):
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid file name"))
		return
	case stderrors.Is(err, storage.ErrNotFound):
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("file not found"))
		return
	case err != nil:
		h.logger.Errorw("failed to open stored file", "name", name, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to open file"))
		return
	}
	defer f.Close()

	modTime := time.Time{}
	if info, err := f.Stat(); err == nil {
		modTime = info.ModTime()
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeContent(c.Writer, c.Request, name, modTime, f)
}
