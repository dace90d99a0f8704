// Package tracker implements the in-memory keg inventory store.
//
// The store owns the keyed collection and the next-id counter. It holds no
// package-level state: callers construct it explicitly and pass it to
// whatever drives it, so instances can coexist in tests. Writes are
// mutually exclusive and reads never observe a partial write, which keeps
// the store safe to embed behind concurrent callers even though the CLI
// drives it from a single goroutine.
package tracker

import (
	"sync"

	"github.com/tapworks/kegtrack/internal/clock"
	"github.com/tapworks/kegtrack/pkg/types"
)

// Store is the in-memory keg inventory. State lives only as long as the
// owning process; there is no persistence and no deletion.
type Store struct {
	mu     sync.RWMutex
	kegs   map[uint32]types.Keg
	nextID uint32
	clock  clock.Clock
}

// New returns an empty Store. IDs start at 1 and are never reused.
func New(clk clock.Clock) *Store {
	return &Store{
		kegs:   make(map[uint32]types.Keg),
		nextID: 1,
		clock:  clk,
	}
}

// Add creates a new keg and returns its ID. New kegs start full: the
// current volume is initialized to the size. Size is accepted as-is,
// including zero or negative values; Add never fails.
func (s *Store) Add(beerType string, size float64, location string) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.kegs[id] = types.Keg{
		ID:            id,
		BeerType:      beerType,
		Size:          size,
		CurrentVolume: size,
		Location:      location,
		LastUpdated:   s.clock.Now().Unix(),
	}
	s.nextID++
	return id
}

// SetVolume sets the current volume of the keg with the given ID.
// Returns types.ErrKegNotFound if no such keg exists, and
// types.ErrVolumeExceedsSize if volume is greater than the keg size.
// The record is unchanged on either error.
func (s *Store) SetVolume(id uint32, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keg, ok := s.kegs[id]
	if !ok {
		return types.ErrKegNotFound
	}
	if err := keg.SetVolume(volume, s.clock.Now().Unix()); err != nil {
		return err
	}
	s.kegs[id] = keg
	return nil
}

// Get retrieves the keg with the given ID.
// Returns types.ErrKegNotFound if no such keg exists.
func (s *Store) Get(id uint32) (types.Keg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keg, ok := s.kegs[id]
	if !ok {
		return types.Keg{}, types.ErrKegNotFound
	}
	return keg, nil
}

// List returns a snapshot of all kegs in unspecified order.
func (s *Store) List() []types.Keg {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kegs := make([]types.Keg, 0, len(s.kegs))
	for _, keg := range s.kegs {
		kegs = append(kegs, keg)
	}
	return kegs
}
