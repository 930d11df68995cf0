package main

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-CampBooking/internal/widget/push"
)

var errNoServiceWorker = errors.New("service worker is not available in terminal")

// terminalPlatform платформа терминала: service worker и Push API отсутствуют
type terminalPlatform struct{}

func (terminalPlatform) Supported() bool { return false }

func (terminalPlatform) RegisterServiceWorker(context.Context, string) (push.Registration, error) {
	return nil, errNoServiceWorker
}

func (terminalPlatform) RequestPermission(context.Context) (push.Permission, error) {
	return push.PermissionDenied, nil
}
