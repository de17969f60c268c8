package forum

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/blog"
	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"go.uber.org/zap"
)

// ReportService handles content flags and their moderation outcome
type ReportService struct {
	reportRepo   forum.ReportRepository
	questionRepo forum.QuestionRepository
	answerRepo   forum.AnswerRepository
	commentRepo  blog.CommentRepository
	logger       *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo forum.ReportRepository,
	questionRepo forum.QuestionRepository,
	answerRepo forum.AnswerRepository,
	commentRepo blog.CommentRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		commentRepo:  commentRepo,
		logger:       logger,
	}
}

// Create flags a piece of content for administrator review. The target
// must exist at flag time.
func (s *ReportService) Create(ctx context.Context, input CreateReportInput) (*ReportInfo, error) {
	if err := s.targetExists(ctx, input.TargetKind, input); err != nil {
		return nil, err
	}

	report, err := forum.NewReport(input.TargetKind, input.TargetID, input.ReporterID, input.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		s.logger.Error("Failed to save report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit report")
	}

	s.logger.Info("Content reported",
		zap.String("report_id", report.ID.String()),
		zap.String("target_kind", string(input.TargetKind)),
		zap.String("target_id", input.TargetID.String()))

	info := ToReportInfo(report)
	return &info, nil
}

// List returns one cursor page of reports, optionally filtered by status (admin)
func (s *ReportService) List(ctx context.Context, req shared.PageRequest, status forum.ReportStatus) (*shared.Page[ReportInfo], error) {
	req = req.Normalize()

	reports, err := s.reportRepo.FindPage(ctx, req, status)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(reports, req.PageSize, reportCursor)
	infos := make([]ReportInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToReportInfo(&page.Items[i])
	}

	return &shared.Page[ReportInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

// Resolve closes a report. With Action set, the reported content is
// hidden in the same flow before the report is marked actioned.
func (s *ReportService) Resolve(ctx context.Context, input ResolveReportInput) (*ReportInfo, error) {
	report, err := s.reportRepo.FindByID(ctx, input.ReportID)
	if err != nil {
		return nil, err
	}

	if input.Action {
		if err := s.hideTarget(ctx, report); err != nil {
			return nil, err
		}
		if err := report.MarkActioned(input.ResolverID); err != nil {
			return nil, err
		}
	} else {
		if err := report.Dismiss(input.ResolverID); err != nil {
			return nil, err
		}
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		s.logger.Error("Failed to save report resolution", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve report")
	}

	s.logger.Info("Report resolved",
		zap.String("report_id", report.ID.String()),
		zap.Bool("actioned", input.Action))

	info := ToReportInfo(report)
	return &info, nil
}

func (s *ReportService) targetExists(ctx context.Context, kind forum.ReportTarget, input CreateReportInput) error {
	var err error
	switch kind {
	case forum.ReportTargetQuestion:
		_, err = s.questionRepo.FindByID(ctx, input.TargetID)
	case forum.ReportTargetAnswer:
		_, err = s.answerRepo.FindByID(ctx, input.TargetID)
	case forum.ReportTargetComment:
		_, err = s.commentRepo.FindByID(ctx, input.TargetID)
	default:
		return shared.NewDomainError("INVALID_TARGET", "Unknown report target kind")
	}
	if err != nil {
		return shared.NewDomainError("TARGET_NOT_FOUND", "Reported content does not exist")
	}
	return nil
}

// hideTarget hides the reported content. Already-hidden content is not
// an error here, the report still closes as actioned.
func (s *ReportService) hideTarget(ctx context.Context, report *forum.Report) error {
	switch report.TargetKind {
	case forum.ReportTargetQuestion:
		question, err := s.questionRepo.FindByID(ctx, report.TargetID)
		if err != nil {
			return err
		}
		if question.IsVisible() {
			if err := question.Hide(); err != nil {
				return err
			}
			return s.questionRepo.Save(ctx, question)
		}
		return nil

	case forum.ReportTargetAnswer:
		answer, err := s.answerRepo.FindByID(ctx, report.TargetID)
		if err != nil {
			return err
		}
		if answer.IsVisible() {
			if err := answer.Hide(); err != nil {
				return err
			}
			return s.answerRepo.Save(ctx, answer)
		}
		return nil

	case forum.ReportTargetComment:
		comment, err := s.commentRepo.FindByID(ctx, report.TargetID)
		if err != nil {
			return err
		}
		if comment.IsVisible() {
			if err := comment.Hide(); err != nil {
				return err
			}
			return s.commentRepo.Save(ctx, comment)
		}
		return nil

	default:
		return shared.NewDomainError("INVALID_TARGET", "Unknown report target kind")
	}
}
