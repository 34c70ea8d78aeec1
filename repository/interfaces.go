package repository

import (
	"context"

	"analystDashboard/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash string, role models.Role) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

// HistoryRepositoryI defines operations on HistoryEntry entities.
type HistoryRepositoryI interface {
	Create(ctx context.Context, e *models.HistoryEntry) (*models.HistoryEntry, error)
	ListByUsername(ctx context.Context, username string) ([]models.HistoryEntry, error)
	ListAll(ctx context.Context) ([]models.HistoryEntry, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteOwned(ctx context.Context, id int64, username string) (int64, error)
}

var (
	_ UserRepositoryI    = (*UserRepository)(nil)
	_ HistoryRepositoryI = (*HistoryRepository)(nil)
)
