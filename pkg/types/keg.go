// Package types defines the Keg record, its volume invariant, and the
// standard errors for the keg tracker.
package types

import "errors"

// Operation errors. Both are recoverable; the caller reports them to the
// operator and carries on.
var (
	ErrKegNotFound       = errors.New("keg not found")
	ErrVolumeExceedsSize = errors.New("volume cannot exceed keg size")
)

// Keg represents a single beer keg in inventory.
type Keg struct {
	ID            uint32  `json:"id"`             // assigned by the tracker, immutable
	BeerType      string  `json:"beer_type"`      // free-form contents label
	Size          float64 `json:"size"`           // total capacity in gallons
	CurrentVolume float64 `json:"current_volume"` // never exceeds Size
	Location      string  `json:"location"`       // free-form placement text
	LastUpdated   int64   `json:"last_updated"`   // Unix seconds of the last change
}

// SetVolume sets the current volume and refreshes LastUpdated.
// Returns ErrVolumeExceedsSize if volume is greater than the keg size;
// the record is left unchanged on error. There is no lower bound:
// negative volumes are accepted as-is.
// Idempotent aside from LastUpdated, which may advance.
func (k *Keg) SetVolume(volume float64, now int64) error {
	if volume > k.Size {
		return ErrVolumeExceedsSize
	}
	k.CurrentVolume = volume
	k.LastUpdated = now
	return nil
}
