package dto

import (
	"strings"

	"github.com/Hwang9170/demo-llm-hack/domain"
)

// MakeStoryRequest mirrors the /api/story/make body. Title and outline may
// be empty; the remaining fields fall back to defaults.
type MakeStoryRequest struct {
	Title   string `json:"title"`
	Outline string `json:"outline"`
	Age     string `json:"age"`
	Style   string `json:"style"`
	Length  string `json:"length"`
	Moral   *bool  `json:"moral"`
}

func (r MakeStoryRequest) ToDomain() domain.StoryRequest {
	req := domain.StoryRequest{
		Title:   strings.TrimSpace(r.Title),
		Outline: strings.TrimSpace(r.Outline),
		Age:     r.Age,
		Style:   r.Style,
		Length:  r.Length,
		Moral:   true,
	}
	if req.Age == "" {
		req.Age = domain.DefaultAge
	}
	if req.Style == "" {
		req.Style = domain.DefaultStyle
	}
	if req.Length == "" {
		req.Length = domain.DefaultLength
	}
	if r.Moral != nil {
		req.Moral = *r.Moral
	}
	return req
}
