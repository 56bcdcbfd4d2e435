package middleware

import (
	"strings"

	"github.com/alumconnect/directory-backend/internal/config"
	"github.com/alumconnect/directory-backend/internal/dto"
	"github.com/alumconnect/directory-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SelfOrAdmin guards profile-write routes. A request passes when:
// 1. the X-Admin-Token header matches the configured token, or
// 2. the JWT subject equals the :id path param (editing own profile), or
// 3. the caller is an admin (config email list or Person.Role).
func SelfOrAdmin(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		email, _ := claims["email"].(string)
		sub, _ := claims["sub"].(string)

		if sub != "" && sub == c.Params("id") {
			return c.Next()
		}

		if contains(adminEmails, email) {
			return c.Next()
		}

		if sub != "" {
			callerID, err := uuid.Parse(sub)
			if err == nil {
				var person models.Person
				if err := db.First(&person, "id = ?", callerID).Error; err == nil {
					if person.Role == models.RoleAdmin {
						return c.Next()
					}
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You can only edit your own profile",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
