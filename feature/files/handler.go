package files

import (
	"bytes"
	"errors"
	"net/url"
	"strings"

	"file-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stored files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)

	group := app.Group("/files")
	// Head must be registered before Get, which also claims HEAD.
	group.Head("/:folder/:name", h.HandleExists)
	group.Get("/:folder/:name", h.HandleDownload)
	group.Put("/:folder/:name", h.HandleUpload)
	group.Delete("/:folder/:name", h.HandleDelete)
}

// HandleDownload serves a file, honouring If-None-Match.
// @Summary Download File
// @Description Streams a stored file. Sends 304 when If-None-Match matches the current ETag.
// @Tags files
// @Produce octet-stream
// @Param folder path string true "Folder (packages, package-backups, uploads, downloads)"
// @Param name path string true "File name"
// @Param If-None-Match header string false "Previously seen ETag"
// @Success 200 {file} file "File content"
// @Success 304 "Not Modified"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/{folder}/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	folder, name, err := location(c)
	if err != nil {
		return h.writeError(c, err)
	}

	ifNoneMatch := parseETag(c.Get(fiber.HeaderIfNoneMatch))
	if ifNoneMatch == "" {
		return h.serveDownload(c, folder, name)
	}

	ref, err := h.service.GetReference(c.Context(), folder, name, ifNoneMatch)
	if err != nil {
		return h.writeError(c, err)
	}
	if ref == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	}

	setETag(c, ref.ContentID())
	if !ref.HasContent() {
		return c.SendStatus(fiber.StatusNotModified)
	}

	stream, err := ref.OpenRead()
	if err != nil {
		return h.writeError(c, err)
	}

	contentType := fallbackContentType(folder)
	if m, ok := ref.(ModifiedReference); ok && m.ContentType() != "" {
		contentType = m.ContentType()
	}
	c.Set(fiber.HeaderContentType, contentType)
	// fasthttp closes the stream once the body is sent.
	return c.SendStream(stream)
}

// serveDownload streams the file with the content type it was stored with.
func (h *Handler) serveDownload(c *fiber.Ctx, folder, name string) error {
	result, err := h.service.CreateDownloadResult(c.Context(), folder, name)
	if err != nil {
		return h.writeError(c, err)
	}

	setETag(c, result.ContentID)
	c.Set(fiber.HeaderContentType, result.ContentType)
	return c.SendStream(result.Body)
}

// HandleExists reports whether a file exists.
// @Summary File Exists
// @Description Returns 200 when the file exists and 404 otherwise.
// @Tags files
// @Param folder path string true "Folder"
// @Param name path string true "File name"
// @Success 200 "Exists"
// @Failure 404 "Not Found"
// @Router /files/{folder}/{name} [head]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	folder, name, err := location(c)
	if err != nil {
		return h.writeError(c, err)
	}

	exists, err := h.service.Exists(c.Context(), folder, name)
	if err != nil {
		return h.writeError(c, err)
	}
	if !exists {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleUpload stores the request body.
// @Summary Upload File
// @Description Stores the request body. Pass overwrite=false to refuse replacing an existing file.
// @Tags files
// @Accept octet-stream
// @Produce json
// @Param folder path string true "Folder"
// @Param name path string true "File name"
// @Param overwrite query boolean false "Replace an existing file (default true)"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/{folder}/{name} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	folder, name, err := location(c)
	if err != nil {
		return h.writeError(c, err)
	}
	overwrite := c.Query("overwrite") != "false"

	if err := h.service.Save(c.Context(), folder, name, bytes.NewReader(c.Body()), overwrite); err != nil {
		return h.writeError(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("File saved",
		zap.String("folder", folder),
		zap.String("name", name),
		zap.Int("size", len(c.Body())))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "saved",
		"path":   folder + "/" + name,
	})
}

// HandleDelete removes a file.
// @Summary Delete File
// @Description Deletes a file. Deleting a missing file succeeds.
// @Tags files
// @Param folder path string true "Folder"
// @Param name path string true "File name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/{folder}/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	folder, name, err := location(c)
	if err != nil {
		return h.writeError(c, err)
	}

	if err := h.service.Delete(c.Context(), folder, name); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleHealth reports storage availability.
// @Summary Health
// @Description Checks that the storage bucket is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Available"
// @Failure 503 {object} map[string]string "Unavailable"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if !h.service.IsAvailable(c.Context()) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrUnsupportedFolder):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		status = fiber.StatusConflict
	default:
		logger.WithRayID(h.service.logger, c).Error("File request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// location returns the percent-decoded folder and name route params.
func location(c *fiber.Ctx) (string, string, error) {
	folder, err := url.PathUnescape(c.Params("folder"))
	if err != nil {
		return "", "", invalidArgument("folder name: %v", err)
	}
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", "", invalidArgument("file name: %v", err)
	}
	return folder, name, nil
}

// parseETag strips the weak marker and quotes from an If-None-Match value.
// Only the first entry of a list is used. A wildcard counts as no condition.
func parseETag(header string) string {
	tag, _, _ := strings.Cut(header, ",")
	tag = strings.TrimSpace(tag)
	if tag == "*" {
		return ""
	}
	tag = strings.TrimPrefix(tag, "W/")
	return strings.Trim(tag, `"`)
}

func setETag(c *fiber.Ctx, id string) {
	if id != "" {
		c.Set(fiber.HeaderETag, `"`+id+`"`)
	}
}
