package blog

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// PostStatus represents the publication state of a blog post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

const (
	maxPostTitleLength = 200
	maxExcerptLength   = 500
)

// Post is an editorial article. Unlike questions, the slug is stored so
// editors can override it; it defaults to the title-derived form and always
// ends with the public id.
type Post struct {
	shared.BaseAggregateRoot
	PublicID    string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Slug        string     `gorm:"type:varchar(250);uniqueIndex;not null"`
	Excerpt     string     `gorm:"type:varchar(500)"`
	Content     string     `gorm:"type:text;not null"`
	CoverURL    string     `gorm:"type:varchar(500)"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      PostStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// NewPost creates a draft post
func NewPost(authorID uuid.UUID, title, excerpt, content string) (*Post, error) {
	if err := validatePostTitle(title); err != nil {
		return nil, err
	}
	if err := validatePostContent(content); err != nil {
		return nil, err
	}
	if len(excerpt) > maxExcerptLength {
		return nil, shared.NewDomainError("INVALID_EXCERPT", "Excerpt cannot exceed 500 characters")
	}

	publicID := shared.NewPublicID()
	post := &Post{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PublicID:          publicID,
		Title:             strings.TrimSpace(title),
		Slug:              shared.SlugWithID(title, publicID),
		Excerpt:           strings.TrimSpace(excerpt),
		Content:           content,
		AuthorID:          authorID,
		Status:            PostStatusDraft,
	}

	post.AddDomainEvent(NewPostCreatedEvent(post))

	return post, nil
}

// Update edits title, excerpt and content. The slug follows the title so
// published URLs stay meaningful; the trailing public id keeps old links
// resolvable.
func (p *Post) Update(title, excerpt, content string) error {
	if p.Status == PostStatusArchived {
		return shared.ErrInvalidState
	}
	if err := validatePostTitle(title); err != nil {
		return err
	}
	if err := validatePostContent(content); err != nil {
		return err
	}
	if len(excerpt) > maxExcerptLength {
		return shared.NewDomainError("INVALID_EXCERPT", "Excerpt cannot exceed 500 characters")
	}

	p.Title = strings.TrimSpace(title)
	p.Slug = shared.SlugWithID(title, p.PublicID)
	p.Excerpt = strings.TrimSpace(excerpt)
	p.Content = content
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetCover sets the cover image URL
func (p *Post) SetCover(url string) {
	p.CoverURL = url
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Publish makes the post publicly visible. Republishing an archived post
// keeps the original publication timestamp.
func (p *Post) Publish() error {
	if p.Status == PostStatusPublished {
		return shared.NewDomainError("ALREADY_PUBLISHED", "Post is already published")
	}

	if p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	p.Status = PostStatusPublished
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewPostPublishedEvent(p))
	return nil
}

// Archive takes the post offline without deleting it
func (p *Post) Archive() error {
	if p.Status == PostStatusArchived {
		return shared.NewDomainError("ALREADY_ARCHIVED", "Post is already archived")
	}
	p.Status = PostStatusArchived
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsPublished reports whether the post is publicly visible
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// IsAuthor reports whether the given user wrote the post
func (p *Post) IsAuthor(userID uuid.UUID) bool {
	return p.AuthorID == userID
}

func validatePostTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	if len(trimmed) > maxPostTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Post title cannot exceed 200 characters")
	}
	return nil
}

func validatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Post content cannot be empty")
	}
	return nil
}
