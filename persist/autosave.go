package persist

import (
	"context"
	"log"
	"sync"
	"time"

	"roteiro/models"
)

// DefaultDelay is the quiet period before an automatic save fires.
const DefaultDelay = 500 * time.Millisecond

type pendingSave struct {
	timer    *time.Timer
	snapshot *models.Itinerary
}

// Autosaver debounces automatic saves per itinerary: each Schedule call
// cancels the pending write for that trip and starts the delay over, so
// only the last snapshot of an editing burst reaches the gateway.
// SaveNow bypasses the debounce for manual saves. Failures of a debounced
// write are logged and swallowed; they must never interrupt editing.
type Autosaver struct {
	gw      Gateway
	delay   time.Duration
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
}

func NewAutosaver(gw Gateway, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Autosaver{
		gw:      gw,
		delay:   delay,
		timeout: 5 * time.Second,
		pending: make(map[string]*pendingSave),
	}
}

// Schedule queues a debounced save of the itinerary. The snapshot is a
// deep copy, so the caller may keep mutating its instance.
func (a *Autosaver) Schedule(it *models.Itinerary) {
	key := it.ItineraryID
	snap := it.Clone()

	a.mu.Lock()
	defer a.mu.Unlock()

	if p, ok := a.pending[key]; ok {
		p.timer.Stop()
		p.snapshot = snap
		p.timer.Reset(a.delay)
		return
	}

	p := &pendingSave{snapshot: snap}
	p.timer = time.AfterFunc(a.delay, func() { a.fire(key) })
	a.pending[key] = p
}

// Pending returns the not-yet-written snapshot for an itinerary, which is
// fresher than whatever the gateway holds. The result is a deep copy:
// the stored snapshot belongs to the timer goroutine and callers must
// never mutate it.
func (a *Autosaver) Pending(itineraryID string) (*models.Itinerary, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pending[itineraryID]; ok {
		return p.snapshot.Clone(), true
	}
	return nil, false
}

// SaveNow cancels any pending write for the itinerary and saves
// immediately. Errors are returned to the caller, manual saves surface
// failures to the user.
func (a *Autosaver) SaveNow(ctx context.Context, it *models.Itinerary) (string, error) {
	a.cancel(it.ItineraryID)
	return a.gw.Save(ctx, it)
}

// Flush writes every pending snapshot right away; used on shutdown.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	var snaps []*models.Itinerary
	for key, p := range a.pending {
		p.timer.Stop()
		snaps = append(snaps, p.snapshot)
		delete(a.pending, key)
	}
	a.mu.Unlock()

	for _, snap := range snaps {
		a.write(snap)
	}
}

func (a *Autosaver) cancel(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pending[key]; ok {
		p.timer.Stop()
		delete(a.pending, key)
	}
}

func (a *Autosaver) fire(key string) {
	a.mu.Lock()
	p, ok := a.pending[key]
	if ok {
		delete(a.pending, key)
	}
	a.mu.Unlock()
	if !ok {
		return
	}
	a.write(p.snapshot)
}

func (a *Autosaver) write(snap *models.Itinerary) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	if _, err := a.gw.Save(ctx, snap); err != nil {
		log.Printf("autosave of itinerary %q failed: %v", snap.ItineraryID, err)
	}
}
