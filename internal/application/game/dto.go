package game

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/game"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// GameInput contains input for creating or updating a quiz
type GameInput struct {
	Title       string
	Description string
}

// QuestionInput contains input for adding or updating a quiz question
type QuestionInput struct {
	Prompt       string
	Options      [game.OptionCount]string
	CorrectIndex int
	Explanation  string
}

// AnswerInput contains input for answering a quiz question
type AnswerInput struct {
	QuestionID uuid.UUID
	Choice     int
}

// GameInfo is the listing projection of a quiz
type GameInfo struct {
	ID            uuid.UUID `json:"id"`
	PublicID      string    `json:"public_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	CoverURL      string    `json:"cover_url,omitempty"`
	Status        string    `json:"status"`
	QuestionCount int       `json:"question_count"`
	PlayCount     int64     `json:"play_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToGameInfo maps a quiz aggregate to its projection
func ToGameInfo(g *game.Game) GameInfo {
	return GameInfo{
		ID:            g.ID,
		PublicID:      g.PublicID,
		Title:         g.Title,
		Slug:          g.Slug,
		Description:   g.Description,
		CoverURL:      g.CoverURL,
		Status:        string(g.Status),
		QuestionCount: g.QuestionCount,
		PlayCount:     g.PlayCount,
		CreatedAt:     g.CreatedAt,
	}
}

// PlayQuestion is a question as shown to a player. The correct index and
// explanation stay server-side until the player answers.
type PlayQuestion struct {
	ID       uuid.UUID                `json:"id"`
	Position int                      `json:"position"`
	Prompt   string                   `json:"prompt"`
	Options  [game.OptionCount]string `json:"options"`
}

// ToPlayQuestion maps a question to its player-facing projection
func ToPlayQuestion(q *game.Question) PlayQuestion {
	return PlayQuestion{
		ID:       q.ID,
		Position: q.Position,
		Prompt:   q.Prompt,
		Options:  q.Options(),
	}
}

// EditorQuestion is a question as shown in the admin editor, answer included
type EditorQuestion struct {
	ID           uuid.UUID                `json:"id"`
	Position     int                      `json:"position"`
	Prompt       string                   `json:"prompt"`
	Options      [game.OptionCount]string `json:"options"`
	CorrectIndex int                      `json:"correct_index"`
	Explanation  string                   `json:"explanation,omitempty"`
}

// ToEditorQuestion maps a question to its editor projection
func ToEditorQuestion(q *game.Question) EditorQuestion {
	return EditorQuestion{
		ID:           q.ID,
		Position:     q.Position,
		Prompt:       q.Prompt,
		Options:      q.Options(),
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
	}
}

// PlayView is a playable quiz with its questions in order
type PlayView struct {
	Game      GameInfo       `json:"game"`
	Questions []PlayQuestion `json:"questions"`
}

// AnswerResult reveals whether a choice was right, plus the explanation
type AnswerResult struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation,omitempty"`
}

// gameCursor builds the keyset cursor for a game row
func gameCursor(g game.Game) shared.Cursor {
	return shared.EncodeCursor(g.CreatedAt, g.ID)
}
