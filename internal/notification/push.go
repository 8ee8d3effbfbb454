package notification

import "context"

type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

type DeviceToken struct {
	Token    string   `json:"token" validate:"required,min=20,max=4096"`
	Platform Platform `json:"platform" validate:"omitempty,oneof=android ios web"`
}

// PushProvider delivers a push message to a set of device tokens.
type PushProvider interface {
	SendPush(ctx context.Context, tokens []DeviceToken, title, body string, data map[string]string) error
}
