package auth

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Outcomes recorded by LogAuthAttempt
const (
	StatusSuccess = "Success"
	StatusFail    = "Fail"
)

// LogAuthAttempt records an authentication attempt.
// authType: Local|Token
// status: Success|Fail
// identifier: username or user id (optional)
// message: additional info (optional)
func LogAuthAttempt(logger *zap.Logger, level zapcore.Level, authType, status, identifier, message string) {
	if logger == nil {
		return
	}
	ce := logger.Check(level, "auth attempt")
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.String("auth_type", authType),
		zap.String("status", status),
	}
	if identifier != "" {
		fields = append(fields, zap.String("identifier", identifier))
	}
	if message != "" {
		fields = append(fields, zap.String("detail", message))
	}
	ce.Write(fields...)
}
