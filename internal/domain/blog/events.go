package blog

import (
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypePost = "Post"
)

// Event type constants
const (
	EventTypePostCreated   = "PostCreated"
	EventTypePostPublished = "PostPublished"
)

// PostCreatedEvent is published when a draft post is created
type PostCreatedEvent struct {
	shared.BaseDomainEvent
	PostID   uuid.UUID `json:"post_id"`
	PublicID string    `json:"public_id"`
	Title    string    `json:"title"`
	AuthorID uuid.UUID `json:"author_id"`
}

// NewPostCreatedEvent creates a new PostCreatedEvent
func NewPostCreatedEvent(p *Post) *PostCreatedEvent {
	return &PostCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePostCreated, AggregateTypePost, p.ID),
		PostID:          p.ID,
		PublicID:        p.PublicID,
		Title:           p.Title,
		AuthorID:        p.AuthorID,
	}
}

// PostPublishedEvent is published when a post goes live
type PostPublishedEvent struct {
	shared.BaseDomainEvent
	PostID uuid.UUID `json:"post_id"`
	Slug   string    `json:"slug"`
}

// NewPostPublishedEvent creates a new PostPublishedEvent
func NewPostPublishedEvent(p *Post) *PostPublishedEvent {
	return &PostPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePostPublished, AggregateTypePost, p.ID),
		PostID:          p.ID,
		Slug:            p.Slug,
	}
}
