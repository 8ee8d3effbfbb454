package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"impactDashboardAPI/internal/kv"
)

const (
	devicesKeyPrefix = "devices:"
	maxDevices       = 10
)

// DeviceRegistry keeps each user's push tokens in the kv store, newest last.
type DeviceRegistry struct {
	kv kv.Store
}

func NewDeviceRegistry(store kv.Store) *DeviceRegistry {
	return &DeviceRegistry{kv: store}
}

func (r *DeviceRegistry) Tokens(ctx context.Context, userID string) ([]DeviceToken, error) {
	raw, err := r.kv.Get(ctx, devicesKeyPrefix+userID)
	if errors.Is(err, kv.ErrNotFound) {
		return []DeviceToken{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load device tokens: %w", err)
	}

	var tokens []DeviceToken
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil, fmt.Errorf("failed to decode device tokens: %w", err)
	}
	return tokens, nil
}

// Register adds token for userID. Re-registering moves it to the end; the
// oldest tokens are dropped beyond maxDevices.
func (r *DeviceRegistry) Register(ctx context.Context, userID string, token DeviceToken) ([]DeviceToken, error) {
	tokens, err := r.Tokens(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]DeviceToken, 0, len(tokens)+1)
	for _, t := range tokens {
		if t.Token != token.Token {
			kept = append(kept, t)
		}
	}
	kept = append(kept, token)
	if len(kept) > maxDevices {
		kept = kept[len(kept)-maxDevices:]
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return nil, fmt.Errorf("failed to encode device tokens: %w", err)
	}
	if err := r.kv.Set(ctx, devicesKeyPrefix+userID, string(raw), 0); err != nil {
		return nil, fmt.Errorf("failed to save device tokens: %w", err)
	}
	return kept, nil
}
