// Package dto holds the JSON envelope and error catalogue of the HTTP API.
package dto

import "github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"

// Response is the envelope of every API reply. Exactly one of Data and Error
// is set; Meta accompanies list replies only.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Meta describes the page a list reply carries
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewSuccessResponse(data any) Response {
	return Response{Success: true, Data: data}
}

// NewPageResponse renders an empty page as [] rather than null
func NewPageResponse[T any](page shared.Paginated[T]) Response {
	if page.Items == nil {
		page.Items = []T{}
	}
	meta := Meta{Total: page.Total, Page: page.Page, PageSize: page.PageSize, TotalPages: page.TotalPages}
	return Response{Success: true, Data: page.Items, Meta: &meta}
}

func NewErrorResponse(code, message string) Response {
	return Response{Error: &ErrorInfo{Code: code, Message: message}}
}
