package usecase

import (
	"context"

	"nexprev/internal/domain/entity"
)

// AdminUsecase defines the platform administration operations.
type AdminUsecase interface {
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
