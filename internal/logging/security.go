// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	appID = "team-service"

	eventAuthnSuccess   = "authn_login_success"
	eventAuthnFailure   = "authn_login_fail"
	eventAuthzFailure   = "authz_fail"
	eventTokenRevoked   = "authn_token_revoked"
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits audit events on a dedicated "security" logger so they
// can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(userID string) {
	s.l.Info("user signed in",
		zap.String("event", eventAuthnSuccess+":"+userID),
		zap.String("level", "INFO"),
	)
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("user sign in failed",
		zap.String("event", eventAuthnFailure+":"+subject),
		zap.String("reason", reason),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn("user not authorized",
		zap.String("event", eventAuthzFailure+":"+userID+","+resource),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) TokenRevoked(userID string) {
	s.l.Info("tokens revoked",
		zap.String("event", eventTokenRevoked+":"+userID),
		zap.String("level", "INFO"),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup",
		zap.String("event", eventSystemStartup+":"+appID),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown",
		zap.String("event", eventSystemShutdown+":"+appID),
		zap.String("level", "WARN"),
	)
}

func newSecurityLogger(z *zap.Logger) *SecurityLogger {
	return &SecurityLogger{
		l: z.Named("security").With(zap.String("appid", appID), zap.String("type", "security")),
	}
}
