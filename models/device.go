package models

// DeviceIdentity is the per-installation credential presented to the remote
// store. It is generated once and never rotated automatically.
type DeviceIdentity struct {
	ID     string `json:"deviceId"`
	Secret string `json:"secret"`
}

// BearerToken returns the static bearer credential "id:secret".
func (d DeviceIdentity) BearerToken() string {
	return d.ID + ":" + d.Secret
}

// IsZero reports whether the identity has not been generated yet.
func (d DeviceIdentity) IsZero() bool {
	return d.ID == "" || d.Secret == ""
}
