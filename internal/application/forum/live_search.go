package forum

import (
	"context"
	"sync"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"go.uber.org/zap"
)

// LiveSearchService backs the question list's type-ahead search over
// visible questions. Keystrokes race: a slow fetch for an earlier query may
// finish after the fetch for the current one, so every search takes a
// ticket and results are dropped when a newer search from the same client
// has started since. Tickets are tracked per client; concurrent searchers
// never invalidate each other.
type LiveSearchService struct {
	questionRepo forum.QuestionRepository
	logger       *zap.Logger

	mu     sync.Mutex
	guards map[string]*shared.SearchGuard
}

// NewLiveSearchService creates a new LiveSearchService
func NewLiveSearchService(questionRepo forum.QuestionRepository, logger *zap.Logger) *LiveSearchService {
	return &LiveSearchService{
		questionRepo: questionRepo,
		logger:       logger,
		guards:       make(map[string]*shared.SearchGuard),
	}
}

func (s *LiveSearchService) guardFor(clientKey string) *shared.SearchGuard {
	s.mu.Lock()
	defer s.mu.Unlock()
	guard, ok := s.guards[clientKey]
	if !ok {
		guard = &shared.SearchGuard{}
		s.guards[clientKey] = guard
	}
	return guard
}

// LiveSearchResult is one delivered search response. Stale reports that
// a newer search superseded this one and Items must be discarded.
type LiveSearchResult struct {
	Query string         `json:"query"`
	Items []QuestionInfo `json:"items"`
	Stale bool           `json:"-"`
}

// Search runs one search over visible questions and reports whether its
// results are still current for this client. clientKey identifies the
// caller (user id, or remote address for anonymous visitors) so staleness
// is judged only against that caller's own searches. A failed fetch
// degrades to an empty result set so the search box keeps working.
func (s *LiveSearchService) Search(ctx context.Context, clientKey, query string, pageSize int) LiveSearchResult {
	guard := s.guardFor(clientKey)
	ticket := guard.Begin()

	req := shared.PageRequest{Search: query, PageSize: pageSize}
	req = req.Normalize()

	questions, err := s.questionRepo.FindPage(ctx, req, nil)
	if err != nil {
		s.logger.Warn("Live search fetch failed", zap.Error(err), zap.String("query", query))
		questions = nil
	}

	if !guard.Accept(ticket) {
		return LiveSearchResult{Query: query, Stale: true}
	}

	infos := make([]QuestionInfo, len(questions))
	for i := range questions {
		infos[i] = ToQuestionInfo(&questions[i])
	}
	return LiveSearchResult{Query: query, Items: infos}
}
