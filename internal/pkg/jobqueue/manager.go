package jobqueue

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// Manager manages the global job queue
type Manager struct {
	queue   *Queue
	mu      sync.Mutex
	running bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global job queue manager (singleton)
func GetManager() *Manager {
	managerOnce.Do(func() {
		globalManager = &Manager{
			queue: NewQueue(2),
		}
	})
	return globalManager
}

// GetQueue returns the managed job queue
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// Start starts the job queue
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.running = true

	log.Info("[JobQueue Manager] Starting job queue")
	m.queue.Start()
}

// Stop stops the job queue
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.running = false

	m.queue.Stop()
	log.Info("[JobQueue Manager] Stopped")
}

// EnqueueCustomerTotalsRecalc schedules a spend-total recompute for one
// customer. Failures are logged, not surfaced; the denormalized total is a
// display convenience and the orders table stays authoritative.
func EnqueueCustomerTotalsRecalc(customerID uint) {
	payload := RecalcCustomerTotalsPayload{CustomerID: customerID}
	if _, err := GetManager().GetQueue().EnqueueJob(JobTypeRecalcCustomerTotals, payload.ToMap()); err != nil {
		log.Errorf("[JobQueue] Failed to enqueue totals recalc for customer %d: %v", customerID, err)
	}
}
