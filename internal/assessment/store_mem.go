package assessment

import (
	"context"
	"sync"
	"time"
)

// memoryStore is a map-backed Store used in tests and single-session dev
// runs. It applies the same lifecycle rules as the SQL store.
type memoryStore struct {
	mu          sync.RWMutex
	assessments map[string]Assessment
	now         func() time.Time
}

func NewInMemoryStore() Store {
	return &memoryStore{
		assessments: map[string]Assessment{},
		now:         time.Now,
	}
}

func (m *memoryStore) Create(_ context.Context, studentID, targetBeltRank string) (Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.assessments {
		if a.StudentID == studentID && a.Status == StatusInProgress {
			return Assessment{}, ErrAssessmentOpen
		}
	}
	a := New(studentID, targetBeltRank, m.now())
	m.assessments[a.ID] = *a
	return *a, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return clone(a), nil
}

func (m *memoryStore) ListByStudent(_ context.Context, studentID string) ([]Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Assessment
	for _, a := range m.assessments {
		if a.StudentID == studentID {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

func (m *memoryStore) SaveScores(_ context.Context, id string, updates map[string]*float64) (Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	a = clone(a)
	if err := a.RecordScores(updates); err != nil {
		return Assessment{}, err
	}
	m.assessments[id] = a
	return clone(a), nil
}

func (m *memoryStore) Complete(_ context.Context, id string, passed bool, overall *float64) (Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	a = clone(a)
	if err := a.Complete(passed, overall, m.now()); err != nil {
		return Assessment{}, err
	}
	m.assessments[id] = a
	return clone(a), nil
}

func (m *memoryStore) Cancel(_ context.Context, id, reason string) (Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	a = clone(a)
	if err := a.Cancel(reason, m.now()); err != nil {
		return Assessment{}, err
	}
	m.assessments[id] = a
	return clone(a), nil
}

func clone(a Assessment) Assessment {
	scores := make(map[string]float64, len(a.Scores))
	for k, v := range a.Scores {
		scores[k] = v
	}
	a.Scores = scores
	return a
}
