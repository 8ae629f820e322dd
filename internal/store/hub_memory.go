package store

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

type memoryHubRepository struct {
	mu          sync.Mutex
	devices     map[string]models.HubDevice
	codes       map[string]string
	collections map[string]*models.Collection
}

// NewMemoryHubRepository returns a [HubRepository] that keeps all state in
// process memory.
func NewMemoryHubRepository() HubRepository {
	return &memoryHubRepository{
		devices:     make(map[string]models.HubDevice),
		codes:       make(map[string]string),
		collections: make(map[string]*models.Collection),
	}
}

func (m *memoryHubRepository) SaveDevice(_ context.Context, device models.HubDevice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.devices[device.ID]; ok && prev.Code != "" && prev.Code != device.Code {
		delete(m.codes, prev.Code)
	}
	m.devices[device.ID] = device
	if device.Code != "" && !device.Linked() {
		m.codes[device.Code] = device.ID
	}
	return nil
}

func (m *memoryHubRepository) GetDevice(_ context.Context, id string) (models.HubDevice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	device, ok := m.devices[id]
	if !ok {
		return models.HubDevice{}, ErrDeviceNotFound
	}
	return device, nil
}

func (m *memoryHubRepository) DeleteDevice(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	device, ok := m.devices[id]
	if !ok {
		return ErrDeviceNotFound
	}
	if device.Code != "" && m.codes[device.Code] == id {
		delete(m.codes, device.Code)
	}
	delete(m.devices, id)
	return nil
}

func (m *memoryHubRepository) FindCode(_ context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deviceID, ok := m.codes[code]
	if !ok {
		return "", ErrCodeNotFound
	}
	return deviceID, nil
}

func (m *memoryHubRepository) TakeCode(_ context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deviceID, ok := m.codes[code]
	if !ok {
		return "", ErrCodeNotFound
	}
	delete(m.codes, code)
	return deviceID, nil
}

func (m *memoryHubRepository) CreateAccount(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.collections[id] = &models.Collection{
		AccountID: id,
		Records:   make(map[uuid.UUID]models.Record),
	}
	return id, nil
}

func (m *memoryHubRepository) GetCollection(_ context.Context, accountID string) (models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[accountID]
	if !ok {
		return models.Collection{}, ErrAccountNotFound
	}
	return cloneCollection(c), nil
}

func (m *memoryHubRepository) UpdateCollection(_ context.Context, accountID string, fn func(c *models.Collection) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[accountID]
	if !ok {
		return ErrAccountNotFound
	}

	working := cloneCollection(c)
	if working.Records == nil {
		working.Records = make(map[uuid.UUID]models.Record)
	}
	if err := fn(&working); err != nil {
		return err
	}
	m.collections[accountID] = &working
	return nil
}

func cloneCollection(c *models.Collection) models.Collection {
	return models.Collection{
		AccountID: c.AccountID,
		Records:   maps.Clone(c.Records),
		Version:   c.Version,
	}
}
