package notification

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params holds dependencies for the notification sinks, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Result exposes the push service and the composed notifier
type Result struct {
	fx.Out

	Push     service.PushService
	Notifier service.Notifier
}

// New wires the log notifier and, when Firebase is available, Cloud Messaging push.
func New(params Params) (Result, error) {
	logSink := NewLogNotifier(params.Logger)

	if params.App == nil {
		return Result{Push: noopPush{}, Notifier: logSink}, nil
	}

	push, err := NewFirebasePushService(params.Ctx, params.App)
	if err != nil {
		return Result{}, err
	}

	notifier := logSink
	if topic := params.Config.Firebase.NotifyTopic; topic != "" {
		notifier = NewFanout(logSink, NewPushNotifier(push, topic, params.Logger))
	}

	return Result{Push: push, Notifier: notifier}, nil
}

type noopPush struct{}

func (noopPush) SendToTopic(context.Context, string, string, string, map[string]string) error {
	return nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
