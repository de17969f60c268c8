package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/suggest"
	"github.com/gin-gonic/gin"
)

// SuggestHandler handles AI-assisted title suggestion requests
type SuggestHandler struct {
	BaseHandler
	suggester suggest.TitleSuggester
}

// NewSuggestHandler creates a new suggest handler
func NewSuggestHandler(suggester suggest.TitleSuggester) *SuggestHandler {
	return &SuggestHandler{suggester: suggester}
}

// SuggestTitlesRequest represents the request body for title suggestions
type SuggestTitlesRequest struct {
	Draft string `json:"draft" binding:"required,min=10,max=5000"`
}

// SuggestTitlesResponse represents the suggested titles
type SuggestTitlesResponse struct {
	Titles []string `json:"titles"`
}

// SuggestTitles proposes question titles for a drafted body. Suggestion
// failures surface as an empty list, never as an error.
func (h *SuggestHandler) SuggestTitles(c *gin.Context) {
	var req SuggestTitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	titles := h.suggester.Suggest(c.Request.Context(), req.Draft)
	if titles == nil {
		titles = []string{}
	}

	h.Success(c, SuggestTitlesResponse{Titles: titles})
}
