package game

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// OptionCount is the fixed number of choices on every quiz question
const OptionCount = 4

// Question is one multiple-choice step in a quiz. Exactly four options;
// CorrectIndex points into them. The explanation is shown after answering.
type Question struct {
	shared.BaseAggregateRoot
	GameID       uuid.UUID `gorm:"type:uuid;not null;index:idx_game_question,priority:1"`
	Position     int       `gorm:"not null;index:idx_game_question,priority:2"`
	Prompt       string    `gorm:"type:text;not null"`
	OptionA      string    `gorm:"type:varchar(500);not null"`
	OptionB      string    `gorm:"type:varchar(500);not null"`
	OptionC      string    `gorm:"type:varchar(500);not null"`
	OptionD      string    `gorm:"type:varchar(500);not null"`
	CorrectIndex int       `gorm:"not null"`
	Explanation  string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Question) TableName() string {
	return "game_questions"
}

// NewQuestion creates a quiz question at the given position
func NewQuestion(gameID uuid.UUID, position int, prompt string, options [OptionCount]string, correctIndex int, explanation string) (*Question, error) {
	if err := validateQuestion(prompt, options, correctIndex); err != nil {
		return nil, err
	}
	if position < 0 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Question position cannot be negative")
	}

	return &Question{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		GameID:            gameID,
		Position:          position,
		Prompt:            strings.TrimSpace(prompt),
		OptionA:           strings.TrimSpace(options[0]),
		OptionB:           strings.TrimSpace(options[1]),
		OptionC:           strings.TrimSpace(options[2]),
		OptionD:           strings.TrimSpace(options[3]),
		CorrectIndex:      correctIndex,
		Explanation:       strings.TrimSpace(explanation),
	}, nil
}

// Update replaces prompt, options, answer and explanation
func (q *Question) Update(prompt string, options [OptionCount]string, correctIndex int, explanation string) error {
	if err := validateQuestion(prompt, options, correctIndex); err != nil {
		return err
	}

	q.Prompt = strings.TrimSpace(prompt)
	q.OptionA = strings.TrimSpace(options[0])
	q.OptionB = strings.TrimSpace(options[1])
	q.OptionC = strings.TrimSpace(options[2])
	q.OptionD = strings.TrimSpace(options[3])
	q.CorrectIndex = correctIndex
	q.Explanation = strings.TrimSpace(explanation)
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}

// Reposition moves the question within its game
func (q *Question) Reposition(position int) error {
	if position < 0 {
		return shared.NewDomainError("INVALID_POSITION", "Question position cannot be negative")
	}
	q.Position = position
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}

// Options returns the four choices in display order
func (q *Question) Options() [OptionCount]string {
	return [OptionCount]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// IsCorrect reports whether the chosen option index is the answer
func (q *Question) IsCorrect(choice int) bool {
	return choice == q.CorrectIndex
}

func validateQuestion(prompt string, options [OptionCount]string, correctIndex int) error {
	if strings.TrimSpace(prompt) == "" {
		return shared.NewDomainError("INVALID_PROMPT", "Question prompt cannot be empty")
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return shared.NewDomainError("INVALID_OPTIONS", "All four options must be non-empty")
		}
	}
	if correctIndex < 0 || correctIndex >= OptionCount {
		return shared.NewDomainError("INVALID_ANSWER", "Correct index must be between 0 and 3")
	}
	return nil
}
