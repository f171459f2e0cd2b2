package availability

import (
	"fmt"
	"sort"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Active reports whether bookings in this status occupy their time.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// WholeResource is the part key of the whole-resource pseudo-part.
const WholeResource = 0

// WholeResourceLabel labels slots blocked by a whole-resource booking.
const WholeResourceLabel = "Whole resource"

// Config holds the per-resource booking rules. It only governs the
// whole-resource <-> part interaction; blocking inside the part tree is
// unconditional.
type Config struct {
	AllowWholeBooking         bool `json:"allow_whole_booking"`
	BlockPartsWhenWholeBooked bool `json:"block_parts_when_whole_booked"`
	BlockWholeWhenPartBooked  bool `json:"block_whole_when_part_booked"`
}

func DefaultConfig() Config {
	return Config{
		AllowWholeBooking:         true,
		BlockPartsWhenWholeBooked: true,
		BlockWholeWhenPartBooked:  true,
	}
}

// Booking is the subset of a reservation the engine needs. PartID nil means
// the whole resource.
type Booking struct {
	ID         int       `json:"id"`
	ResourceID int       `json:"resource_id"`
	PartID     *int      `json:"part_id,omitempty"`
	Start      time.Time `json:"start_time"`
	End        time.Time `json:"end_time"`
	Status     Status    `json:"status"`
}

// Overlaps reports whether b and o intersect. End times are exclusive.
func (b Booking) Overlaps(o Booking) bool {
	return b.Start.Before(o.End) && o.Start.Before(b.End)
}

// BlockedSlot is a derived, never persisted, statement that a part is
// unavailable during an interval because of another booking.
type BlockedSlot struct {
	PartID    *int      `json:"part_id"`
	Start     time.Time `json:"start_time"`
	End       time.Time `json:"end_time"`
	BlockedBy string    `json:"blocked_by"`
	BookingID int       `json:"booking_id"`
}

// Key returns the part key of the slot, WholeResource for the pseudo-part.
func (s BlockedSlot) Key() int {
	return partKey(s.PartID)
}

type target struct {
	key   int
	label string
}

func partKey(id *int) int {
	if id == nil {
		return WholeResource
	}
	return *id
}

func partRef(key int) *int {
	if key == WholeResource {
		return nil
	}
	k := key
	return &k
}

// blockedTargets lists the parts a single booking makes unavailable besides
// its own target.
func blockedTargets(cfg Config, h *Hierarchy, b Booking) []target {
	if b.PartID == nil {
		if !cfg.BlockPartsWhenWholeBooked {
			return nil
		}
		parts := h.Parts()
		out := make([]target, 0, len(parts))
		for _, p := range parts {
			out = append(out, target{key: p.ID, label: WholeResourceLabel})
		}
		return out
	}

	var out []target
	label := fmt.Sprintf("Part #%d", *b.PartID)
	if p, ok := h.Part(*b.PartID); ok {
		label = p.Name
	}

	if cfg.BlockWholeWhenPartBooked {
		out = append(out, target{key: WholeResource, label: label})
	}
	for _, d := range h.Descendants(*b.PartID) {
		out = append(out, target{key: d.ID, label: label})
	}
	for _, a := range h.Ancestors(*b.PartID) {
		out = append(out, target{key: a.ID, label: label})
	}
	return out
}

func participates(h *Hierarchy, b Booking) bool {
	if !b.Status.Active() || !b.Start.Before(b.End) {
		return false
	}
	return b.ResourceID == 0 || b.ResourceID == h.ResourceID()
}

// DeriveBlocks computes every blocked slot caused by the given bookings of
// one resource. Slots from different bookings are never merged so the
// "blocked by" label survives. The result does not depend on input order.
func DeriveBlocks(cfg Config, h *Hierarchy, bookings []Booking) []BlockedSlot {
	var out []BlockedSlot
	for _, b := range bookings {
		if !participates(h, b) {
			continue
		}
		for _, t := range blockedTargets(cfg, h, b) {
			out = append(out, BlockedSlot{
				PartID:    partRef(t.key),
				Start:     b.Start,
				End:       b.End,
				BlockedBy: t.label,
				BookingID: b.ID,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		if a.Key() != b.Key() {
			return a.Key() < b.Key()
		}
		if a.BookingID != b.BookingID {
			return a.BookingID < b.BookingID
		}
		return a.BlockedBy < b.BlockedBy
	})
	return out
}

// SlotsByPart groups slots by part key.
func SlotsByPart(slots []BlockedSlot) map[int][]BlockedSlot {
	out := make(map[int][]BlockedSlot)
	for _, s := range slots {
		out[s.Key()] = append(out[s.Key()], s)
	}
	return out
}

// SlotsForDay keeps the slots that intersect the calendar day containing day.
func SlotsForDay(slots []BlockedSlot, day time.Time) []BlockedSlot {
	start, end := DayBounds(day)
	var out []BlockedSlot
	for _, s := range slots {
		if s.Start.Before(end) && start.Before(s.End) {
			out = append(out, s)
		}
	}
	return out
}

// Conflicts returns the active bookings in existing that make candidate
// impossible: they overlap in time and either target the same part, block
// the candidate's part, or hold a part the candidate would block.
func Conflicts(cfg Config, h *Hierarchy, existing []Booking, candidate Booking) []Booking {
	want := partKey(candidate.PartID)
	blocks := make(map[int]bool)
	for _, t := range blockedTargets(cfg, h, candidate) {
		blocks[t.key] = true
	}

	var out []Booking
	for _, b := range existing {
		if candidate.ID != 0 && b.ID == candidate.ID {
			continue
		}
		if !participates(h, b) || !b.Overlaps(candidate) {
			continue
		}
		key := partKey(b.PartID)
		if key == want || blocks[key] || blockedBy(cfg, h, b, want) {
			out = append(out, b)
		}
	}
	return out
}

func blockedBy(cfg Config, h *Hierarchy, b Booking, key int) bool {
	for _, t := range blockedTargets(cfg, h, b) {
		if t.key == key {
			return true
		}
	}
	return false
}

// DayBounds returns the start of the calendar day containing t and the start
// of the following day, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
