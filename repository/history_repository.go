package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"analystDashboard/models"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create inserts e as given (Time must already be formatted) and returns a copy with its ID.
func (r *HistoryRepository) Create(ctx context.Context, e *models.HistoryEntry) (*models.HistoryEntry, error) {
	if e == nil {
		return nil, errors.New("nil history entry")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO history (username, question, answer, time) VALUES (?, ?, ?, ?)`,
		e.Username, e.Question, e.Answer, e.Time)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *e
	out.ID = id
	return &out, nil
}

// ListByUsername returns the user's entries in insertion order.
func (r *HistoryRepository) ListByUsername(ctx context.Context, username string) ([]models.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT id, username, question, answer, time FROM history WHERE username = ? ORDER BY id`, username)
}

// ListAll returns every entry in insertion order.
func (r *HistoryRepository) ListAll(ctx context.Context) ([]models.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT id, username, question, answer, time FROM history ORDER BY id`)
}

// Delete removes the entry with the given id and reports how many rows went away.
// Zero rows is not an error.
func (r *HistoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOwned removes the entry only when it belongs to username, in one statement.
func (r *HistoryRepository) DeleteOwned(ctx context.Context, id int64, username string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = ? AND username = ?`, id, username)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *HistoryRepository) query(ctx context.Context, q string, args ...any) ([]models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Question, &e.Answer, &e.Time); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
