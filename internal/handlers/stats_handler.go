package handlers

import (
	"log/slog"

	"github.com/alumconnect/directory-backend/internal/apperr"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Directory(c *fiber.Ctx) error {
	stats, err := h.stats.Directory(c.Context())
	if err != nil {
		slog.Error("stats aggregation failed", "action", "stats.directory", "error", err.Error())
		cat := apperr.Classify(err)
		return c.Status(apperr.StatusFor(cat)).JSON(dto.Fail[*dto.DirectoryStats](apperr.Message(cat)))
	}
	return c.JSON(dto.OK(stats))
}

func (h *StatsHandler) FilterOptions(c *fiber.Ctx) error {
	opts, err := h.stats.FilterOptions(c.Context())
	if err != nil {
		slog.Error("filter options failed", "action", "stats.options", "error", err.Error())
		cat := apperr.Classify(err)
		return c.Status(apperr.StatusFor(cat)).JSON(dto.Fail[*dto.FilterOptions](apperr.Message(cat)))
	}
	return c.JSON(dto.OK(opts))
}
