package controller

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"pdf-chatbot-be/internal/dto"
	"pdf-chatbot-be/internal/pkg/serverutils"
	"pdf-chatbot-be/internal/service"
	"pdf-chatbot-be/pkg/pdf"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	ingestService service.IIngestService
	uploadDir     string
}

func NewUploadController(ingestService service.IIngestService, uploadDir string) IUploadController {
	return &uploadController{
		ingestService: ingestService,
		uploadDir:     uploadDir,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	userId := ctx.Get("User-ID")
	if userId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "User-ID header is required"))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "File is required"))
	}

	if !pdf.IsPDF(fileHeader.Filename) {
		return ctx.Status(fiber.StatusUnsupportedMediaType).JSON(serverutils.ErrorResponse(415, "Only PDF files allowed"))
	}

	// One stored file per user, keyed the same way as the vector index
	savePath := filepath.Join(c.uploadDir, fmt.Sprintf("%s.pdf", userId))
	if err := ctx.SaveFile(fileHeader, savePath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to store uploaded file"))
	}

	if _, err := c.ingestService.Ingest(ctx.Context(), userId, savePath); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		Status:  "success",
		Message: "PDF uploaded and processed",
		File:    fileHeader.Filename,
		UserId:  userId,
	})
}
