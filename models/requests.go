package models

// PairRequest is the body of POST /pair. It carries the device identity
// because no session exists yet.
type PairRequest struct {
	Code     string `json:"code"`
	DeviceID string `json:"deviceId"`
	Secret   string `json:"secret"`
}

// PairStatus is the body returned by GET /pair/status.
type PairStatus struct {
	Linked bool `json:"linked"`
}

// ClaimRequest is the body of POST /pair/claim, issued from the second
// device or session that links the code to an account.
type ClaimRequest struct {
	Code string `json:"code"`
}

// PushAllRequest is the body of PUT /notes: a full replace of the remote
// collection.
type PushAllRequest struct {
	Records []Record `json:"notes"`
	Version int64    `json:"version"`
}

// VersionResponse is returned by every collection write with the
// collection version after the write.
type VersionResponse struct {
	Version int64 `json:"version"`
}
