package models

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// HubDevice is a device known to the reference sync server.
type HubDevice struct {
	ID string
	// SecretHash is the bcrypt hash of the device secret.
	SecretHash []byte
	// AccountID is empty until the device's pairing code is claimed.
	AccountID string
	// Code is the pairing code the device registered last.
	Code string
}

// Linked reports whether the device belongs to an account.
func (d HubDevice) Linked() bool {
	return d.AccountID != ""
}

// Collection is one account's synchronised records on the server.
type Collection struct {
	AccountID string
	Records   map[uuid.UUID]Record
	Version   int64
}

// Snapshot returns the collection as a [RemoteSnapshot] ordered by ID.
func (c Collection) Snapshot() RemoteSnapshot {
	records := make([]Record, 0, len(c.Records))
	for _, r := range c.Records {
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return RemoteSnapshot{Records: records, Version: c.Version}
}
