package dto

import "math"

// ServiceResponse is the uniform envelope for single-value operations.
// Error is null on success; when set, Data is the type's zero value,
// never a partial result.
type ServiceResponse[T any] struct {
	Data  T       `json:"data"`
	Error *string `json:"error"`
}

// PaginatedResponse is the envelope for paginated reads.
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Error      *string    `json:"error"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the derived pagination fields from the requested
// page/limit and the matched total.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// OK wraps a successful single-value result.
func OK[T any](data T) ServiceResponse[T] {
	return ServiceResponse[T]{Data: data}
}

// Fail wraps a failed single-value result; data stays zero.
func Fail[T any](message string) ServiceResponse[T] {
	return ServiceResponse[T]{Error: &message}
}

// OKPage wraps a successful page of results.
func OKPage[T any](data []T, p Pagination) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{Data: data, Pagination: p}
}

// FailPage wraps a failed paginated read: empty data, pagination computed
// from the requested page/limit with total 0.
func FailPage[T any](message string, page, limit int) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Data:       []T{},
		Pagination: NewPagination(page, limit, 0),
		Error:      &message,
	}
}
