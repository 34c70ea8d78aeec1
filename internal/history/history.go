// Package history records question/answer interactions per user.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"analystDashboard/models"
	"analystDashboard/repository"
)

// Store owns the history table. Callers pass the authenticated username
// explicitly on every call.
type Store struct {
	entries repository.HistoryRepositoryI
	now     func() time.Time
	logger  *slog.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the clock used to timestamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func NewStore(entries repository.HistoryRepositoryI, opts ...Option) *Store {
	s := &Store{entries: entries, now: time.Now, logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("component", "history")
	return s
}

// SaveHistory records one interaction stamped with the local time as DD-MM-YYYY HH:MM.
func (s *Store) SaveHistory(ctx context.Context, username, question, answer string) (*models.HistoryEntry, error) {
	e, err := s.entries.Create(ctx, &models.HistoryEntry{
		Username: username,
		Question: question,
		Answer:   answer,
		Time:     s.now().Local().Format(models.HistoryTimeLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	s.logger.DebugContext(ctx, "history saved", "id", e.ID, "username", username)
	return e, nil
}

// GetUserHistory returns username's entries in insertion order; empty when none exist.
func (s *Store) GetUserHistory(ctx context.Context, username string) ([]models.UserHistoryRow, error) {
	list, err := s.entries.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}
	out := make([]models.UserHistoryRow, 0, len(list))
	for _, e := range list {
		out = append(out, models.UserHistoryRow{ID: e.ID, Question: e.Question, Answer: e.Answer, Time: e.Time})
	}
	return out, nil
}

// GetAllHistory returns every entry without answers, for the administrative view.
func (s *Store) GetAllHistory(ctx context.Context) ([]models.AdminHistoryRow, error) {
	list, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all history: %w", err)
	}
	out := make([]models.AdminHistoryRow, 0, len(list))
	for _, e := range list {
		out = append(out, models.AdminHistoryRow{ID: e.ID, Username: e.Username, Question: e.Question, Time: e.Time})
	}
	return out, nil
}

// DeleteHistory removes the entry with id. Deleting an unknown id is a no-op.
func (s *Store) DeleteHistory(ctx context.Context, id int64) error {
	_, err := s.DeleteEntry(ctx, id)
	return err
}

// DeleteEntry removes the entry with id and reports whether a row went away.
func (s *Store) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	n, err := s.entries.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete history %d: %w", id, err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "history deleted", "id", id)
	}
	return n > 0, nil
}

// DeleteOwnEntry removes the entry with id only if it belongs to username.
// Someone else's entry and an unknown id look the same: false, no error.
func (s *Store) DeleteOwnEntry(ctx context.Context, username string, id int64) (bool, error) {
	n, err := s.entries.DeleteOwned(ctx, id, username)
	if err != nil {
		return false, fmt.Errorf("delete history %d: %w", id, err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "history deleted", "id", id, "username", username)
	}
	return n > 0, nil
}
