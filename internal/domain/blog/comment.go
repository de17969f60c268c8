package blog

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// CommentStatus represents the visibility of a comment
type CommentStatus string

const (
	CommentStatusVisible CommentStatus = "visible"
	CommentStatusHidden  CommentStatus = "hidden"
)

const maxCommentLength = 2000

// Comment is a reader's remark on a published post
type Comment struct {
	shared.BaseAggregateRoot
	PostID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Content  string        `gorm:"type:varchar(2000);not null"`
	Status   CommentStatus `gorm:"type:varchar(20);not null;default:'visible'"`
}

// TableName returns the table name for GORM
func (Comment) TableName() string {
	return "comments"
}

// NewComment creates a visible comment on a post
func NewComment(postID, authorID uuid.UUID, content string) (*Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	return &Comment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PostID:            postID,
		AuthorID:          authorID,
		Content:           strings.TrimSpace(content),
		Status:            CommentStatusVisible,
	}, nil
}

// Update edits the comment content
func (c *Comment) Update(content string) error {
	if c.Status == CommentStatusHidden {
		return shared.ErrInvalidState
	}
	if err := validateCommentContent(content); err != nil {
		return err
	}

	c.Content = strings.TrimSpace(content)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Hide removes the comment from display (moderation)
func (c *Comment) Hide() error {
	if c.Status == CommentStatusHidden {
		return shared.NewDomainError("ALREADY_HIDDEN", "Comment is already hidden")
	}
	c.Status = CommentStatusHidden
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsAuthor reports whether the given user wrote the comment
func (c *Comment) IsAuthor(userID uuid.UUID) bool {
	return c.AuthorID == userID
}

// IsVisible reports whether the comment appears under its post
func (c *Comment) IsVisible() bool {
	return c.Status == CommentStatusVisible
}

func validateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Comment cannot be empty")
	}
	if len(trimmed) > maxCommentLength {
		return shared.NewDomainError("INVALID_CONTENT", "Comment cannot exceed 2000 characters")
	}
	return nil
}
