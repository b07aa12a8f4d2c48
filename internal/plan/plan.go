// Package plan implements the weekly meal plan aggregate: a 7-day by
// 3-slot grid keyed by ISO week and year, with reset and randomize
// operations that respect cooked slots and past calendar days.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DayNames is the fixed day iteration order.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// SlotNames is the fixed slot iteration order within a day.
var SlotNames = []string{"breakfast", "lunch", "dinner"}

// EmptyMarker is the persisted sentinel for an empty slot.
const EmptyMarker = "-"

var (
	ErrInvalidDay  = errors.New("invalid day name")
	ErrInvalidSlot = errors.New("invalid slot name")
	ErrSlotCooked  = errors.New("slot already cooked")
)

// ValidDay reports whether name is one of Monday..Sunday.
func ValidDay(name string) bool {
	for _, d := range DayNames {
		if d == name {
			return true
		}
	}
	return false
}

// ValidSlot reports whether name is breakfast, lunch, or dinner.
func ValidSlot(name string) bool {
	for _, s := range SlotNames {
		if s == name {
			return true
		}
	}
	return false
}

// SlotKind tags the three slot states.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotAssigned
	SlotCooked
)

// Slot is the tagged slot value. Exactly one of the three kinds holds:
// Empty carries nothing, Assigned carries a recipe name, Cooked is the
// terminal frozen state carrying the cooked record fields.
type Slot struct {
	Kind      SlotKind
	Recipe    string
	Servings  int
	Quantity  int
	Overrides map[string]int
}

// Empty returns the empty slot value.
func Empty() Slot { return Slot{Kind: SlotEmpty} }

// Assigned returns a plain, not-yet-cooked recipe reference.
func Assigned(name string) Slot { return Slot{Kind: SlotAssigned, Recipe: name} }

// Cooked freezes a slot with the given cooked record fields.
func Cooked(name string, servings, quantity int, overrides map[string]int) Slot {
	return Slot{Kind: SlotCooked, Recipe: name, Servings: servings, Quantity: quantity, Overrides: overrides}
}

func (s Slot) IsEmpty() bool    { return s.Kind == SlotEmpty }
func (s Slot) IsAssigned() bool { return s.Kind == SlotAssigned }
func (s Slot) IsCooked() bool   { return s.Kind == SlotCooked }

// cookedJSON is the persisted shape of a cooked slot.
type cookedJSON struct {
	Name      string         `json:"name"`
	CookedFlg bool           `json:"cooked"`
	Servings  int            `json:"servings,omitempty"`
	Quantity  int            `json:"quantity,omitempty"`
	Overrides map[string]int `json:"overrides,omitempty"`
}

// MarshalJSON writes "-" for empty, the bare recipe name for assigned,
// and the cooked object for cooked slots.
func (s Slot) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SlotAssigned:
		return json.Marshal(s.Recipe)
	case SlotCooked:
		return json.Marshal(cookedJSON{
			Name:      s.Recipe,
			CookedFlg: true,
			Servings:  s.Servings,
			Quantity:  s.Quantity,
			Overrides: s.Overrides,
		})
	default:
		return json.Marshal(EmptyMarker)
	}
}

// UnmarshalJSON is the single place that sniffs the persisted shape:
// strings become Empty or Assigned, objects with cooked=true become
// Cooked, and legacy dict values without the flag fall back to an
// Assigned reference on their name. Every consumer works on the tagged
// variant afterwards.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == "" || str == EmptyMarker {
			*s = Empty()
		} else {
			*s = Assigned(str)
		}
		return nil
	}

	var obj cookedJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unparsable legacy value: recover by treating it as empty.
		*s = Empty()
		return nil
	}
	if obj.CookedFlg {
		*s = Cooked(obj.Name, obj.Servings, obj.Quantity, obj.Overrides)
		return nil
	}
	if obj.Name != "" {
		*s = Assigned(obj.Name)
		return nil
	}
	*s = Empty()
	return nil
}

// Day holds the three slots of one calendar day. Date is derived from
// the plan's ISO week on load and never persisted.
type Day struct {
	Date  time.Time
	Slots map[string]Slot
}

// WeekPlan is the aggregate for one (year, ISO week) pair.
type WeekPlan struct {
	Year int
	Week int
	Days map[string]*Day
}

// Key formats the plan store key, e.g. "2025-W39".
func Key(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekStart returns the Monday of the given ISO week.
func WeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return monday.AddDate(0, 0, (week-1)*7)
}

// New builds an all-empty plan for the week with derived day dates.
func New(year, week int) *WeekPlan {
	p := &WeekPlan{Year: year, Week: week, Days: make(map[string]*Day, len(DayNames))}
	monday := WeekStart(year, week)
	for i, name := range DayNames {
		slots := make(map[string]Slot, len(SlotNames))
		for _, s := range SlotNames {
			slots[s] = Empty()
		}
		p.Days[name] = &Day{Date: monday.AddDate(0, 0, i), Slots: slots}
	}
	return p
}

// Normalize fills in any missing days or slots and recomputes the
// derived dates. Loaded documents may predate schema additions.
func (p *WeekPlan) Normalize() {
	if p.Days == nil {
		p.Days = make(map[string]*Day, len(DayNames))
	}
	monday := WeekStart(p.Year, p.Week)
	for i, name := range DayNames {
		d, ok := p.Days[name]
		if !ok || d == nil {
			d = &Day{}
			p.Days[name] = d
		}
		d.Date = monday.AddDate(0, 0, i)
		if d.Slots == nil {
			d.Slots = make(map[string]Slot, len(SlotNames))
		}
		for _, s := range SlotNames {
			if _, ok := d.Slots[s]; !ok {
				d.Slots[s] = Empty()
			}
		}
	}
}

// Slot returns the value at (day, slot).
func (p *WeekPlan) Slot(day, slot string) (Slot, error) {
	if !ValidDay(day) {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	if !ValidSlot(slot) {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return p.Days[day].Slots[slot], nil
}

// SetSlot assigns a recipe reference to (day, slot). Cooked slots are
// terminal and refuse the write. A deduplication pass runs afterwards
// so the day never holds the same non-cooked recipe twice.
func (p *WeekPlan) SetSlot(day, slot string, value Slot) error {
	cur, err := p.Slot(day, slot)
	if err != nil {
		return err
	}
	if cur.IsCooked() && !value.IsCooked() {
		return ErrSlotCooked
	}
	p.Days[day].Slots[slot] = value
	if value.IsAssigned() {
		p.dedupDay(day, slot, nil)
	}
	return nil
}

// dedupDay blanks later duplicates of non-cooked assigned names,
// keeping the first occurrence in slot order. Cooked names count as
// taken. keep forces one slot to win ties regardless of order (used by
// SetSlot so a fresh assignment displaces an older duplicate).
// When modified is non-nil, each slot listed in it that gets blanked
// increments its counter.
func (p *WeekPlan) dedupDay(day, keep string, counted map[string]*int) {
	seen := map[string]bool{}
	d := p.Days[day]
	if keep != "" {
		if v := d.Slots[keep]; v.IsAssigned() {
			seen[v.Recipe] = true
		}
	}
	for _, slot := range SlotNames {
		v := d.Slots[slot]
		if v.IsCooked() {
			if v.Recipe != "" {
				seen[v.Recipe] = true
			}
			continue
		}
		if !v.IsAssigned() {
			continue
		}
		if slot == keep {
			continue
		}
		if seen[v.Recipe] {
			d.Slots[slot] = Empty()
			if counted != nil {
				if n, ok := counted[slot]; ok {
					*n++
				}
			}
			continue
		}
		seen[v.Recipe] = true
	}
}

// MarshalJSON persists the day grid without the derived dates.
func (p *WeekPlan) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]Slot, len(DayNames))
	for name, d := range p.Days {
		slots := make(map[string]Slot, len(SlotNames))
		for s, v := range d.Slots {
			slots[s] = v
		}
		out[name] = slots
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the day grid; Year and Week must be set by the
// caller (they live in the store key), followed by Normalize.
func (p *WeekPlan) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]Slot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Days = make(map[string]*Day, len(raw))
	for name, slots := range raw {
		if !ValidDay(name) {
			continue // unknown keys in legacy documents are dropped
		}
		p.Days[name] = &Day{Slots: slots}
	}
	return nil
}
