package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roteiro/models"
)

type memGateway struct {
	mu    sync.Mutex
	saves []*models.Itinerary
	fail  bool
}

func (g *memGateway) Save(_ context.Context, it *models.Itinerary) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail {
		return "", ErrPersistence
	}
	g.saves = append(g.saves, it.Clone())
	return it.ItineraryID, nil
}

func (g *memGateway) Load(_ context.Context, _, _ string) (*models.Itinerary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.saves) == 0 {
		return nil, ErrNotFound
	}
	return g.saves[len(g.saves)-1].Clone(), nil
}

func (g *memGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.saves)
}

func (g *memGateway) last() *models.Itinerary {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves[len(g.saves)-1]
}

func TestAutosaverDebounceCollapsesBursts(t *testing.T) {
	gw := &memGateway{}
	saver := NewAutosaver(gw, 30*time.Millisecond)

	it := sampleItinerary()
	for i := 0; i < 5; i++ {
		it.Title = "rev " + string(rune('a'+i))
		saver.Schedule(it)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := gw.count(); got != 1 {
		t.Fatalf("expected 1 write after burst, got %d", got)
	}
	if got := gw.last().Title; got != "rev e" {
		t.Errorf("wrote %q, want the last snapshot %q", got, "rev e")
	}
}

func TestAutosaverPendingSnapshotIsFresh(t *testing.T) {
	gw := &memGateway{}
	saver := NewAutosaver(gw, time.Minute)

	it := sampleItinerary()
	saver.Schedule(it)
	it.Title = "mutated after schedule"

	snap, ok := saver.Pending(it.ItineraryID)
	if !ok {
		t.Fatal("no pending snapshot")
	}
	if snap.Title != "Litoral Norte" {
		t.Errorf("snapshot title = %q; Schedule must deep-copy", snap.Title)
	}
}

func TestAutosaverPendingReturnsCopy(t *testing.T) {
	gw := &memGateway{}
	saver := NewAutosaver(gw, 30*time.Millisecond)

	it := sampleItinerary()
	saver.Schedule(it)

	// A handler edits the snapshot it read back while the timer is armed.
	snap, ok := saver.Pending(it.ItineraryID)
	if !ok {
		t.Fatal("no pending snapshot")
	}
	snap.Title = "edited after read"
	snap.Days[0].Location = "Ilhabela"

	again, ok := saver.Pending(it.ItineraryID)
	if !ok {
		t.Fatal("pending snapshot vanished")
	}
	if again.Title != "Litoral Norte" || again.Days[0].Location != "Ubatuba" {
		t.Error("edits to one Pending result leaked into the stored snapshot")
	}

	time.Sleep(100 * time.Millisecond)

	if got := gw.count(); got != 1 {
		t.Fatalf("expected 1 write, got %d", got)
	}
	// The timer goroutine must have written its own snapshot, untouched
	// by the handler's edits.
	if got := gw.last().Title; got != "Litoral Norte" {
		t.Errorf("written title = %q, want %q", got, "Litoral Norte")
	}
	if got := gw.last().Days[0].Location; got != "Ubatuba" {
		t.Errorf("written location = %q, want %q", got, "Ubatuba")
	}
}

func TestAutosaverSaveNowCancelsPending(t *testing.T) {
	gw := &memGateway{}
	saver := NewAutosaver(gw, 30*time.Millisecond)

	it := sampleItinerary()
	saver.Schedule(it)

	if _, err := saver.SaveNow(context.Background(), it); err != nil {
		t.Fatalf("SaveNow: %v", err)
	}
	if _, ok := saver.Pending(it.ItineraryID); ok {
		t.Error("pending save survived SaveNow")
	}

	time.Sleep(100 * time.Millisecond)
	if got := gw.count(); got != 1 {
		t.Errorf("expected exactly 1 write, got %d", got)
	}
}

func TestAutosaverSaveNowSurfacesErrors(t *testing.T) {
	gw := &memGateway{fail: true}
	saver := NewAutosaver(gw, 30*time.Millisecond)

	if _, err := saver.SaveNow(context.Background(), sampleItinerary()); !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

func TestAutosaverSwallowsDebouncedFailures(t *testing.T) {
	gw := &memGateway{fail: true}
	saver := NewAutosaver(gw, 10*time.Millisecond)

	saver.Schedule(sampleItinerary())
	time.Sleep(50 * time.Millisecond)
	// Nothing to assert beyond "no panic, no write"; the failure is logged.
	if got := gw.count(); got != 0 {
		t.Errorf("failing gateway recorded %d writes", got)
	}
}

func TestAutosaverFlushWritesPending(t *testing.T) {
	gw := &memGateway{}
	saver := NewAutosaver(gw, time.Hour)

	a := sampleItinerary()
	b := sampleItinerary()
	b.ItineraryID = "trip2"
	saver.Schedule(a)
	saver.Schedule(b)

	saver.Flush()

	if got := gw.count(); got != 2 {
		t.Fatalf("expected 2 writes on flush, got %d", got)
	}
	if _, ok := saver.Pending(a.ItineraryID); ok {
		t.Error("pending entry survived flush")
	}
}

func TestAutosaverIndependentTrips(t *testing.T) {
	gw := &memGateway{}
	saver := NewAutosaver(gw, 20*time.Millisecond)

	a := sampleItinerary()
	b := sampleItinerary()
	b.ItineraryID = "trip2"
	b.Title = "Outro Destino"
	saver.Schedule(a)
	saver.Schedule(b)

	time.Sleep(100 * time.Millisecond)
	if got := gw.count(); got != 2 {
		t.Errorf("expected one write per trip, got %d", got)
	}
}
