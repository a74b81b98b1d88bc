package abac

import (
	"context"
	"fmt"
	"sync"

	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/types"
)

// MemoryStorage is the reference in-memory Storage: a
// uid→policy map guarded by a read-write lock, with an insertion-order
// slice for stable pagination. FindForInquiry is maximally conservative:
// it returns every policy.
type MemoryStorage struct {
	mu       sync.RWMutex
	policies map[string]*Policy
	order    []string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{policies: make(map[string]*Policy)}
}

func (s *MemoryStorage) Add(_ context.Context, p *Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.policies[p.UID]; exists {
		return fmt.Errorf("%w: %s", types.ErrExists, p.UID)
	}
	s.policies[p.UID] = p
	s.order = append(s.order, p.UID)
	return nil
}

func (s *MemoryStorage) Get(_ context.Context, uid string) (*Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.policies[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, uid)
	}
	return p, nil
}

func (s *MemoryStorage) GetAll(_ context.Context, limit, offset int) ([]*Policy, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must be non-negative", types.ErrInvalidArgument)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.order) {
		return []*Policy{}, nil
	}
	end := offset + limit
	if end > len(s.order) {
		end = len(s.order)
	}

	page := make([]*Policy, 0, end-offset)
	for _, uid := range s.order[offset:end] {
		page = append(page, s.policies[uid])
	}
	return page, nil
}

// Update replaces the policy by uid. A missing uid is ErrNotFound, the
// documented-per-adapter choice.
func (s *MemoryStorage) Update(_ context.Context, p *Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.policies[p.UID]; !ok {
		return fmt.Errorf("%w: %s", types.ErrNotFound, p.UID)
	}
	s.policies[p.UID] = p
	return nil
}

// Delete removes the policy by uid. A missing uid is a no-op.
func (s *MemoryStorage) Delete(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.policies[uid]; !ok {
		return nil
	}
	delete(s.policies, uid)
	for i, u := range s.order {
		if u == uid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStorage) FindForInquiry(_ context.Context, _ types.Inquiry, _ checker.Checker) ([]*Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*Policy, 0, len(s.order))
	for _, uid := range s.order {
		all = append(all, s.policies[uid])
	}
	return all, nil
}
