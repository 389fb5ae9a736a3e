package handlers

import (
	"recipe-share-backend/domain"
	"recipe-share-backend/internal/api/presenters"
	"recipe-share-backend/pkg/snapshot"

	"github.com/gofiber/fiber/v2"
)

type (
	SnapshotHandler interface {
		ExportDatabase(c *fiber.Ctx) error
		ImportDatabase(c *fiber.Ctx) error
		WipeDatabase(c *fiber.Ctx) error
	}

	snapshotHandler struct {
		snapshotService snapshot.SnapshotService
	}
)

func NewSnapshotHandler(snapshotService snapshot.SnapshotService) SnapshotHandler {
	return &snapshotHandler{snapshotService: snapshotService}
}

// ExportDatabase writes a fresh snapshot and sends the file back as a
// download.
func (h *snapshotHandler) ExportDatabase(c *fiber.Ctx) error {
	path, err := h.snapshotService.Export(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExport, err)
	}
	return c.Download(path)
}

func (h *snapshotHandler) ImportDatabase(c *fiber.Ctx) error {
	if err := h.snapshotService.Import(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedImport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessImport)
}

func (h *snapshotHandler) WipeDatabase(c *fiber.Ctx) error {
	if err := h.snapshotService.Wipe(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedWipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWipe)
}
