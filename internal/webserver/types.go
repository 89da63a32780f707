package webserver

import (
	"time"

	"github.com/shaharia-lab/reskin/internal/history"
)

// Pagination describes a page of a listing
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// ThemeResponse describes one registered theme
type ThemeResponse struct {
	Name    string `json:"name"`
	Suffix  string `json:"suffix,omitempty"`
	Source  string `json:"source,omitempty"`
	Package string `json:"package,omitempty"`
	Current bool   `json:"current"`
	Default bool   `json:"default"`
}

// ListThemesResponse is the body of GET /themes
type ListThemesResponse struct {
	Mode       string          `json:"mode"`
	Themes     []ThemeResponse `json:"themes"`
	Pagination Pagination      `json:"pagination"`
}

// ResourceResponse is the body of GET /resources/{kind}/{name}
type ResourceResponse struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Theme     string `json:"theme"`
	ID        string `json:"id"`
	Value     string `json:"value,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Data      []byte `json:"data,omitempty"`
}

// HistoryResponse is the body of GET /history
type HistoryResponse struct {
	Transitions []history.Transition `json:"transitions"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Error string    `json:"error"`
	Time  time.Time `json:"time"`
}
