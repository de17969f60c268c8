package persistence

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuestionRepository implements QuestionRepository using GORM
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewGormQuestionRepository creates a new GormQuestionRepository
func NewGormQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	return &GormQuestionRepository{db: db}
}

// FindByID finds a question by its ID
func (r *GormQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*forum.Question, error) {
	var question forum.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// FindByPublicID finds a question by the id recovered from a URL slug
func (r *GormQuestionRepository) FindByPublicID(ctx context.Context, publicID string) (*forum.Question, error) {
	var question forum.Question
	if err := r.db.WithContext(ctx).First(&question, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// FindPage returns one cursor page of visible questions
func (r *GormQuestionRepository) FindPage(ctx context.Context, req shared.PageRequest, categoryID *uuid.UUID) ([]forum.Question, error) {
	q := r.db.WithContext(ctx).Model(&forum.Question{}).
		Where("status <> ?", forum.QuestionStatusHidden)

	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var questions []forum.Question
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindPageForModeration returns one cursor page including hidden questions
func (r *GormQuestionRepository) FindPageForModeration(ctx context.Context, req shared.PageRequest) ([]forum.Question, error) {
	q := r.db.WithContext(ctx).Model(&forum.Question{})

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var questions []forum.Question
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// IncrementViewCount bumps the view counter without loading the row
func (r *GormQuestionRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&forum.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// Save creates or updates a question
func (r *GormQuestionRepository) Save(ctx context.Context, question *forum.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

// Delete removes a question
func (r *GormQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&forum.Question{}, "id = ?", id).Error
}

// GormAnswerRepository implements AnswerRepository using GORM
type GormAnswerRepository struct {
	db *gorm.DB
}

// NewGormAnswerRepository creates a new GormAnswerRepository
func NewGormAnswerRepository(db *gorm.DB) *GormAnswerRepository {
	return &GormAnswerRepository{db: db}
}

// FindByID finds an answer by its ID
func (r *GormAnswerRepository) FindByID(ctx context.Context, id uuid.UUID) (*forum.Answer, error) {
	var answer forum.Answer
	if err := r.db.WithContext(ctx).First(&answer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &answer, nil
}

// FindByQuestion returns visible answers, verified ones first, then oldest
// first
func (r *GormAnswerRepository) FindByQuestion(ctx context.Context, questionID uuid.UUID) ([]forum.Answer, error) {
	var answers []forum.Answer
	if err := r.db.WithContext(ctx).
		Where("question_id = ? AND status = ?", questionID, forum.AnswerStatusVisible).
		Order("expert_verified DESC, created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// Save creates or updates an answer
func (r *GormAnswerRepository) Save(ctx context.Context, answer *forum.Answer) error {
	return r.db.WithContext(ctx).Save(answer).Error
}

// Delete removes an answer
func (r *GormAnswerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&forum.Answer{}, "id = ?", id).Error
}

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*forum.Category, error) {
	var category forum.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindBySlug finds a category by its slug
func (r *GormCategoryRepository) FindBySlug(ctx context.Context, slug string) (*forum.Category, error) {
	var category forum.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns categories ordered by sort order then name
func (r *GormCategoryRepository) FindAll(ctx context.Context, activeOnly bool) ([]forum.Category, error) {
	q := r.db.WithContext(ctx).Model(&forum.Category{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var categories []forum.Category
	if err := q.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ExistsBySlug checks whether any category has the given slug
func (r *GormCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&forum.Category{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *forum.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&forum.Category{}, "id = ?", id).Error
}

// GormReportRepository implements ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// FindByID finds a report by its ID
func (r *GormReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*forum.Report, error) {
	var report forum.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// FindPage returns one cursor page of reports, optionally filtered by status
func (r *GormReportRepository) FindPage(ctx context.Context, req shared.PageRequest, status forum.ReportStatus) ([]forum.Report, error) {
	q := r.db.WithContext(ctx).Model(&forum.Report{})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var reports []forum.Report
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Save creates or updates a report
func (r *GormReportRepository) Save(ctx context.Context, report *forum.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}
