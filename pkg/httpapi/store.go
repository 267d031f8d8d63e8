package httpapi

import (
	"sync"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
)

// SessionStore holds the latest settled pipeline result. The workflow is
// single-session: each new execution replaces the previous result.
type SessionStore struct {
	mu      sync.RWMutex
	current *model.Result
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Set(result model.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &result
}

func (s *SessionStore) Current() (model.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.Result{}, false
	}
	return *s.current, true
}
