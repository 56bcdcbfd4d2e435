package handlers

import (
	"context"
	"log/slog"

	"github.com/alumconnect/directory-backend/internal/apperr"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest[*dto.ProfileResponse](c, "Invalid profile id")
	}

	profile, err := h.profiles.Get(c.Context(), id)
	if err != nil {
		return fail[*dto.ProfileResponse](c, "profile.get", err)
	}
	return c.JSON(dto.OK(profile))
}

func (h *ProfileHandler) UpdateBasic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest[*dto.BasicProfileResponse](c, "Invalid profile id")
	}

	var req dto.BasicProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest[*dto.BasicProfileResponse](c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationFail[*dto.BasicProfileResponse](c)
	}

	basic, err := h.profiles.UpdateBasic(c.Context(), id, &req)
	if err != nil {
		return fail[*dto.BasicProfileResponse](c, "profile.update_basic", err)
	}
	return c.JSON(dto.OK(basic))
}

// ReplaceCollection replaces one of the five child collections wholesale.
// The route's :collection segment selects the kind.
func (h *ProfileHandler) ReplaceCollection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest[[]any](c, "Invalid profile id")
	}

	kind, ok := services.ParseCollectionKind(c.Params("collection"))
	if !ok {
		return badRequest[[]any](c, "Unknown collection kind")
	}

	switch kind {
	case services.KindExperiences:
		return replaceCollection(c, id, h.profiles.ReplaceExperiences)
	case services.KindSkills:
		return replaceCollection(c, id, h.profiles.ReplaceSkills)
	case services.KindCertifications:
		return replaceCollection(c, id, h.profiles.ReplaceCertifications)
	case services.KindEducations:
		return replaceCollection(c, id, h.profiles.ReplaceEducations)
	default:
		return replaceCollection(c, id, h.profiles.ReplaceSocialLinks)
	}
}

// ReplaceComplete updates any subset of profile sections as one
// user-perceived action and returns the refreshed aggregate.
func (h *ProfileHandler) ReplaceComplete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest[*dto.ProfileResponse](c, "Invalid profile id")
	}

	var req dto.CompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest[*dto.ProfileResponse](c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationFail[*dto.ProfileResponse](c)
	}

	profile, err := h.profiles.ReplaceComplete(c.Context(), id, &req)
	if err != nil {
		return fail[*dto.ProfileResponse](c, "profile.replace_complete", err)
	}
	return c.JSON(dto.OK(profile))
}

// replaceCollection parses the request body as a list of R, validates each
// item and runs the given replace operation.
func replaceCollection[R any, T any](
	c *fiber.Ctx,
	id uuid.UUID,
	replace func(context.Context, uuid.UUID, []R) ([]T, error),
) error {
	var items []R
	if err := c.BodyParser(&items); err != nil {
		return badRequest[[]T](c, "Invalid request body")
	}
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return validationFail[[]T](c)
		}
	}

	rows, err := replace(c.Context(), id, items)
	if err != nil {
		return fail[[]T](c, "profile.replace_collection", err)
	}
	if rows == nil {
		rows = []T{}
	}
	return c.JSON(dto.OK(rows))
}

// fail converts a service error into the envelope; errors never propagate
// past the handler boundary.
func fail[T any](c *fiber.Ctx, action string, err error) error {
	slog.Error("profile operation failed", "action", action, "person_id", c.Params("id"), "error", err.Error())
	cat := apperr.Classify(err)
	return c.Status(apperr.StatusFor(cat)).JSON(dto.Fail[T](apperr.Message(cat)))
}

func badRequest[T any](c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[T](msg))
}

func validationFail[T any](c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[T](apperr.Message(apperr.CategoryValidation)))
}
