package service

import (
	"context"
	"sync"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"go.uber.org/zap"
)

type SettingsService interface {
	Get(ctx context.Context) models.Settings
	Update(ctx context.Context, s models.Settings) models.Settings
}

type settingsService struct {
	mu       sync.RWMutex
	settings models.Settings
	logger   *zap.Logger
}

func NewSettingsService(initial models.Settings, logger *zap.Logger) SettingsService {
	return &settingsService{settings: initial, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the whole settings document; callers validate it first.
func (s *settingsService) Update(ctx context.Context, next models.Settings) models.Settings {
	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	s.logger.Info("settings updated",
		zap.String("park_name", next.ParkName),
		zap.Bool("maintenance_mode", next.Features.MaintenanceMode))
	return next
}
