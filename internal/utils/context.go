// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, keyed hashing,
// HTTP JSON responses, HTTP client initialization and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// DeviceCtxKey is the key under which the authenticated device is stored
// by the server's auth middleware.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.DeviceCtxKey, device)
var DeviceCtxKey = contextKey("device")

// GetDeviceFromContext retrieves the authenticated device from the context.
//
// Returns the device and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetDeviceFromContext(ctx context.Context) (models.HubDevice, bool) {
	device, ok := ctx.Value(DeviceCtxKey).(models.HubDevice)
	return device, ok
}
