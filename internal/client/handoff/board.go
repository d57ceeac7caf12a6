// Package handoff passes a finished analysis from the upload workflow to the
// results screen exactly once, in memory only.
package handoff

import (
	"sync"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/google/uuid"
)

// Handle identifies one published result. The zero Handle refers to nothing.
type Handle uuid.UUID

func (h Handle) IsZero() bool { return h == Handle(uuid.Nil) }

func (h Handle) String() string { return uuid.UUID(h).String() }

type Board struct {
	mu      sync.Mutex
	pending map[Handle]models.AnalysisResult
}

func NewBoard() *Board {
	return &Board{pending: make(map[Handle]models.AnalysisResult)}
}

// Publish stores a private copy of result and returns the handle to pass
// along with the navigation.
func (b *Board) Publish(result models.AnalysisResult) Handle {
	h := Handle(uuid.New())
	b.mu.Lock()
	b.pending[h] = result.Clone()
	b.mu.Unlock()
	return h
}

// Consume returns the result behind h and forgets it. A second call, an
// unknown handle or the zero handle all report false.
func (b *Board) Consume(h Handle) (models.AnalysisResult, bool) {
	if h.IsZero() {
		return models.AnalysisResult{}, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.pending[h]
	if !ok {
		return models.AnalysisResult{}, false
	}
	delete(b.pending, h)
	return r, true
}

// Drop discards everything not yet consumed, e.g. on sign-out.
func (b *Board) Drop() {
	b.mu.Lock()
	clear(b.pending)
	b.mu.Unlock()
}

// Len reports how many results are waiting.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
