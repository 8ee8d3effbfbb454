package notification

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var ErrAllPushesFailed = errors.New("all push notifications failed")

type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type FCMService struct {
	client fcmSender
	logger *zap.Logger
}

// NewFCMService prefers base64 credentials in encodedCreds and falls back to
// the service account file at credentialsFile.
func NewFCMService(ctx context.Context, encodedCreds, credentialsFile string, logger *zap.Logger) (*FCMService, error) {
	var opt option.ClientOption

	if encodedCreds != "" {
		decoded, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 firebase credentials: %w", err)
		}
		opt = option.WithCredentialsJSON(decoded)
		logger.Info("fcm initializing from environment credentials")
	} else {
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("firebase credentials file %s: %w", credentialsFile, err)
		}
		opt = option.WithCredentialsFile(credentialsFile)
		logger.Info("fcm initializing from credentials file", zap.String("path", credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &FCMService{client: client, logger: logger}, nil
}

// SendPush sends one message per token. It fails only when every send failed.
func (s *FCMService) SendPush(ctx context.Context, tokens []DeviceToken, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}

	sent, failed := 0, 0
	for _, t := range tokens {
		_, err := s.client.Send(ctx, buildMessage(t, title, body, data))
		if err != nil {
			s.logger.Warn("fcm send failed", zap.String("platform", string(t.Platform)), zap.Error(err))
			failed++
			continue
		}
		sent++
	}

	s.logger.Info("fcm push finished", zap.Int("sent", sent), zap.Int("failed", failed))

	if sent == 0 && failed > 0 {
		return ErrAllPushesFailed
	}
	return nil
}

func buildMessage(t DeviceToken, title, body string, data map[string]string) *messaging.Message {
	msg := &messaging.Message{
		Token: t.Token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	switch t.Platform {
	case PlatformIOS:
		msg.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{Aps: &messaging.Aps{Sound: "default"}},
		}
	case PlatformWeb:
		msg.Webpush = &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{Title: title, Body: body},
		}
	default:
		msg.Android = &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{Sound: "default"},
		}
	}
	return msg
}
