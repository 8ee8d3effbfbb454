package services

import (
	"context"

	"go.uber.org/zap"

	"impactDashboardAPI/internal/notification"
	"impactDashboardAPI/internal/validation"
)

type DeviceService struct {
	registry *notification.DeviceRegistry
	logger   *zap.Logger
}

func NewDeviceService(registry *notification.DeviceRegistry, logger *zap.Logger) *DeviceService {
	return &DeviceService{registry: registry, logger: logger}
}

func (s *DeviceService) Register(ctx context.Context, userID string, token notification.DeviceToken) ([]notification.DeviceToken, error) {
	if token.Platform == "" {
		token.Platform = notification.PlatformAndroid
	}
	if err := validation.Struct(token); err != nil {
		return nil, err
	}
	tokens, err := s.registry.Register(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	s.logger.Info("device registered", zap.String("user_id", userID), zap.String("platform", string(token.Platform)), zap.Int("devices", len(tokens)))
	return tokens, nil
}
