package apperr

import "net/http"

// StatusFor maps a category to the HTTP status the envelope travels with.
func StatusFor(cat Category) int {
	switch cat {
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryInvalidCredentials, CategoryExpiredSession, CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryPermissionDenied:
		return http.StatusForbidden
	case CategoryDuplicateAccount, CategoryDuplicateEntry:
		return http.StatusConflict
	case CategoryForeignKey, CategoryConstraint:
		return http.StatusUnprocessableEntity
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	case CategoryTimeout:
		return http.StatusGatewayTimeout
	case CategoryConnection, CategoryNetwork:
		return http.StatusServiceUnavailable
	case CategoryStorageQuota:
		return http.StatusInsufficientStorage
	}
	return http.StatusInternalServerError
}
