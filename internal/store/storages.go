package store

// Storages groups the reference server's repositories.
type Storages struct {
	HubRepository HubRepository
}

// NewStorages returns server storages backed by memory.
func NewStorages() *Storages {
	return &Storages{
		HubRepository: NewMemoryHubRepository(),
	}
}
