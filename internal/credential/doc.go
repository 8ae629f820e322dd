// Package credential owns the per-installation device identity and the
// pairing codes shown to the user while linking a device.
package credential
