package handlers

import (
	"log/slog"

	"github.com/alumconnect/directory-backend/internal/apperr"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DirectoryHandler struct {
	directory *services.DirectoryService
	pageSize  int
}

func NewDirectoryHandler(directory *services.DirectoryService, pageSize int) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, pageSize: pageSize}
}

// List serves one filtered directory page. A storage failure degrades to
// an empty-but-valid page with the error message set; it is never thrown
// past this boundary.
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	pred := services.BuildPredicate(
		c.Query("search"),
		c.Query("year"),
		c.Query("location"),
		c.Query("company"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", h.pageSize),
	)

	page, err := h.directory.List(c.Context(), pred)
	if err != nil {
		slog.Error("directory list failed", "action", "directory.list", "error", err.Error())
		cat := apperr.Classify(err)
		return c.Status(apperr.StatusFor(cat)).JSON(
			dto.FailPage[dto.ProfileResponse](apperr.Message(cat), pred.Page, pred.Limit))
	}

	return c.JSON(dto.OKPage(page.Entries, page.Pagination))
}
