package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotLinked is returned by sync operations that need a linked session.
	ErrNotLinked = errors.New("sync is not linked")
	// ErrEngineClosed is returned after the sync engine has been closed.
	ErrEngineClosed = errors.New("sync engine is closed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidPairingCode = errors.New("invalid pairing code")
	ErrCodeAlreadyTaken   = errors.New("pairing code is registered by another device")
	ErrSecretMismatch     = errors.New("device secret does not match")
	ErrInvalidCredentials = errors.New("invalid device credentials")
	ErrDeviceNotLinked    = errors.New("device is not linked to an account")
)
