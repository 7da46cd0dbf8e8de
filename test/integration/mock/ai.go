package mock

import (
	"context"
	"sync"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// AIService is a scripted stand-in for the Gemini insight service.
type AIService struct {
	mu        sync.Mutex
	available bool
	reply     *entity.AIInsight
	err       error
	snapshots []*adapter.InsightSnapshot
}

func NewAIService() *AIService {
	s := &AIService{}
	s.Reset()
	return s
}

// Reset makes the service available with an empty reply.
func (s *AIService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = true
	s.reply = &entity.AIInsight{}
	s.err = nil
	s.snapshots = nil
}

func (s *AIService) SetAvailable(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = available
}

func (s *AIService) SetReply(reply *entity.AIInsight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = reply
	s.err = nil
}

func (s *AIService) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls returns the snapshots received so far.
func (s *AIService) Calls() []*adapter.InsightSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*adapter.InsightSnapshot(nil), s.snapshots...)
}

func (s *AIService) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

func (s *AIService) Generate(_ context.Context, snapshot *adapter.InsightSnapshot) (*entity.AIInsight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snapshot)
	if s.err != nil {
		return nil, s.err
	}
	reply := *s.reply
	return &reply, nil
}

var _ adapter.AIInsightService = (*AIService)(nil)
