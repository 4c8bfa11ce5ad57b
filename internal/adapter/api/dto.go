package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
)

// BookDTO is a book as serialized by /book/list. The server also sends the
// owning user; it is ignored.
type BookDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// MapBooks converts list DTOs to domain books, preserving server order
func MapBooks(dtos []BookDTO) []domain.Book {
	books := make([]domain.Book, len(dtos))
	for i, d := range dtos {
		books[i] = domain.Book{
			ID:     d.ID,
			Title:  d.Title,
			Author: d.Author,
			Year:   d.Year,
		}
	}
	return books
}

// textBody returns a reply body as display text. A JSON string literal is
// unquoted; anything else is returned trimmed.
func textBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// failureMessage extracts the server message from an error body. JSON
// objects yield their "message" field, or "" when it is missing.
func failureMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			switch v := obj["message"].(type) {
			case nil:
				return ""
			case string:
				return v
			default:
				return fmt.Sprint(v)
			}
		}
	}
	return textBody(trimmed)
}

// truthy reports whether a success body counts as a positive answer.
// Empty, false, 0, null and "" are falsy; any other body, including
// plain text such as "Added book Dune", is truthy.
func truthy(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return false
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return true
	}

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
