package api

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/repository"
	"studio-api/internal/service"
	"studio-api/internal/storage"
)

type UploadHandler struct {
	uploadService service.UploadService
	validate      *validator.Validate
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		validate:      validator.New(),
	}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	uploaderID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file field"})
	}

	if fileHeader.Size > storage.MaxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File is too large"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read file"})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read file"})
	}

	var altText *string
	if alt := c.FormValue("alt_text"); alt != "" {
		altText = &alt
	}

	file, err := h.uploadService.Upload(c.Context(), uploaderID, fileHeader.Filename, content, c.FormValue("category"), altText)

	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File is too large"})
		case errors.Is(err, storage.ErrExtensionBlocked),
			errors.Is(err, storage.ErrMimeMismatch),
			errors.Is(err, storage.ErrUnsafeContent):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(file)
}

type PresignRequest struct {
	Filename string `json:"filename" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"omitempty,max=40"`
}

func (h *UploadHandler) PresignMediaUpload(c *fiber.Ctx) error {
	var request PresignRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	objectKey, uploadURL, err := h.uploadService.PresignMediaUpload(c.Context(), request.Filename, request.Category)

	if err != nil {
		if errors.Is(err, service.ErrPresignUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Direct media upload is not configured"})
		}
		if errors.Is(err, storage.ErrExtensionBlocked) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"object_key": objectKey,
		"upload_url": uploadURL,
	})
}

func (h *UploadHandler) ListFiles(c *fiber.Ctx) error {
	skip, limit := parsePagination(c, 50)

	filter := repository.FileFilter{Skip: skip, Limit: limit}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if used := c.Query("is_used"); used != "" {
		isUsed := used == "true" || used == "1"
		filter.IsUsed = &isUsed
	}

	files, total, err := h.uploadService.ListFiles(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": files,
		"total": total,
	})
}

type FileMetaRequest struct {
	AltText  *string `json:"alt_text" validate:"omitempty,max=255"`
	Category *string `json:"category" validate:"omitempty,max=50"`
	IsUsed   *bool   `json:"is_used"`
}

func (h *UploadHandler) UpdateFileMeta(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file id"})
	}

	var request FileMetaRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	file, err := h.uploadService.UpdateFileMeta(c.Context(), id, request.AltText, request.Category, request.IsUsed)

	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(file)
}

func (h *UploadHandler) DeleteFile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file id"})
	}

	if err := h.uploadService.DeleteFile(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "File deleted"})
}
