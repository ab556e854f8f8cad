// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface records audit events in a fixed, machine readable shape.
type SecurityLoggerInterface interface {
	AuthnSuccess(userID string)
	AuthnFailure(subject, reason string)
	AuthzFailure(userID, resource string)
	TokenRevoked(userID string)
	SystemStartup()
	SystemShutdown()
}
