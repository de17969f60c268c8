package forum

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// ReportTarget identifies what kind of content was reported
type ReportTarget string

const (
	ReportTargetQuestion ReportTarget = "question"
	ReportTargetAnswer   ReportTarget = "answer"
	ReportTargetComment  ReportTarget = "comment"
)

// ReportStatus represents the moderation state of a report
type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusDismissed ReportStatus = "dismissed"
	ReportStatusActioned  ReportStatus = "actioned"
)

// Report is a member's flag on content for administrator review
type Report struct {
	shared.BaseAggregateRoot
	TargetKind ReportTarget `gorm:"type:varchar(20);not null;index:idx_report_target"`
	TargetID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_report_target"`
	ReporterID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Reason     string       `gorm:"type:text;not null"`
	Status     ReportStatus `gorm:"type:varchar(20);not null;default:'open'"`
	ResolverID *uuid.UUID   `gorm:"type:uuid"`
	ResolvedAt *time.Time
}

// TableName returns the table name for GORM
func (Report) TableName() string {
	return "reports"
}

// NewReport creates an open report
func NewReport(kind ReportTarget, targetID, reporterID uuid.UUID, reason string) (*Report, error) {
	switch kind {
	case ReportTargetQuestion, ReportTargetAnswer, ReportTargetComment:
	default:
		return nil, shared.NewDomainError("INVALID_TARGET", "Unknown report target kind")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Report reason cannot be empty")
	}
	if len(reason) > 2000 {
		return nil, shared.NewDomainError("INVALID_REASON", "Report reason cannot exceed 2000 characters")
	}

	return &Report{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TargetKind:        kind,
		TargetID:          targetID,
		ReporterID:        reporterID,
		Reason:            strings.TrimSpace(reason),
		Status:            ReportStatusOpen,
	}, nil
}

// Dismiss closes the report without action
func (r *Report) Dismiss(resolverID uuid.UUID) error {
	return r.resolve(ReportStatusDismissed, resolverID)
}

// MarkActioned closes the report after the content was moderated
func (r *Report) MarkActioned(resolverID uuid.UUID) error {
	return r.resolve(ReportStatusActioned, resolverID)
}

func (r *Report) resolve(status ReportStatus, resolverID uuid.UUID) error {
	if r.Status != ReportStatusOpen {
		return shared.NewDomainError("ALREADY_RESOLVED", "Report has already been resolved")
	}

	now := time.Now()
	r.Status = status
	r.ResolverID = &resolverID
	r.ResolvedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}
