// Package members holds the dashboard's view of the member list: it loads the
// list from the gateway, applies confirmed creates and deletes, and derives the
// summary statistics.
package members

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/models/dto"
)

// Gateway is the subset of the API client the Store depends on.
type Gateway interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, name, phone string) (dto.MemberResponse, error)
	DeleteMember(ctx context.Context, id int64) error
}

type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	// StateFailed is the empty-with-error state: no load has succeeded yet.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Store owns the in-memory member list for one session.
//
// Workflows are not serialized against each other. Each one applies its effect
// to whatever the list holds when its gateway call returns, so overlapping
// calls can interleave. The mutex only protects the slice itself.
type Store struct {
	gateway  Gateway
	notifier Notifier

	mu      sync.RWMutex
	members []models.Member
	state   State
	loaded  bool
	lastErr error
}

// NewStore creates an empty Store. A nil notifier drops notifications.
func NewStore(gateway Gateway, notifier Notifier) *Store {
	if notifier == nil {
		notifier = discard()
	}
	return &Store{gateway: gateway, notifier: notifier, members: []models.Member{}}
}

// Refresh replaces the whole list with the gateway's. On failure the list is
// left as it was.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	list, err := s.gateway.ListMembers(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		if s.loaded {
			s.state = StateLoaded
		} else {
			s.state = StateFailed
		}
		s.mu.Unlock()
		s.notifyError("Error fetching members", err.Error())
		return err
	}

	s.mu.Lock()
	s.members = slices.Clone(list)
	if s.members == nil {
		s.members = []models.Member{}
	}
	s.state = StateLoaded
	s.loaded = true
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// AddMember creates a member on the gateway and appends the confirmed record,
// with defaults filled in for any field the gateway omitted.
func (s *Store) AddMember(ctx context.Context, name, phone string) (models.Member, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		err := &ValidationError{Message: msgMissingFields}
		s.fail(err, msgMissingFields)
		return models.Member{}, err
	}

	resp, err := s.gateway.CreateMember(ctx, name, phone)
	if err != nil {
		s.fail(err, messageOr(err, msgAddFailed))
		return models.Member{}, err
	}
	member := resp.Member()

	s.mu.Lock()
	if s.indexOf(member.ID) >= 0 {
		s.mu.Unlock()
		err := duplicateMember(member.ID)
		s.fail(err, err.Error())
		return models.Member{}, err
	}
	s.members = append(s.members, member)
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Success",
		Message: fmt.Sprintf("%s has been added to the team.", member.Name),
	})
	return member, nil
}

// RemoveMember deletes a member on the gateway and then drops it locally.
// An id that is not in the list is a no-op once the gateway confirms.
func (s *Store) RemoveMember(ctx context.Context, id int64) error {
	if err := s.gateway.DeleteMember(ctx, id); err != nil {
		s.fail(err, messageOr(err, msgDeleteFailed))
		return err
	}

	s.mu.Lock()
	s.members = slices.DeleteFunc(s.members, func(m models.Member) bool { return m.ID == id })
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Notify(Notification{Level: LevelSuccess, Title: "Deleted", Message: "Member has been removed."})
	return nil
}

// Members returns a copy of the list in arrival order.
func (s *Store) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

// Stats recomputes the summary from the current list.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.members)
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the most recent failed operation, cleared by the
// next success.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.members, func(m models.Member) bool { return m.ID == id })
}

func (s *Store) fail(err error, message string) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	s.notifyError("Error", message)
}

func (s *Store) notifyError(title, message string) {
	s.notifier.Notify(Notification{Level: LevelError, Title: title, Message: message})
}
