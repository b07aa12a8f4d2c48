package plan

import (
	"math/rand"
	"time"
)

func sameOrAfter(d, today time.Time) bool {
	return !d.Before(today)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Reset blanks every non-cooked slot on days whose calendar date is
// today or later. Past days are never touched, cooked slots survive.
func (p *WeekPlan) Reset(today time.Time) {
	today = dayOf(today)
	for _, name := range DayNames {
		d := p.Days[name]
		if d.Date.Before(today) {
			continue
		}
		for _, slot := range SlotNames {
			if d.Slots[slot].IsCooked() {
				continue
			}
			d.Slots[slot] = Empty()
		}
	}
}

func pick(candidates []string, used map[string]bool) (string, bool) {
	var available []string
	for _, c := range candidates {
		if !used[c] {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return "", false
	}
	return available[rand.Intn(len(available))], true
}

// RandomizeWeek fills the plan with random recipes while keeping the
// per-day uniqueness invariant. Past days and cooked slots are never
// modified. When the entire week lies strictly in the future, every
// non-cooked slot is re-rolled; otherwise only empty slots are filled.
// Slots that cannot receive a unique recipe become empty.
func (p *WeekPlan) RandomizeWeek(candidates []string, today time.Time) {
	today = dayOf(today)

	entireWeekInFuture := true
	for _, name := range DayNames {
		if !p.Days[name].Date.After(today) {
			entireWeekInFuture = false
			break
		}
	}
	fillOnlyEmpty := !entireWeekInFuture

	for _, name := range DayNames {
		d := p.Days[name]
		if d.Date.Before(today) {
			continue
		}

		p.dedupDay(name, "", nil)

		used := map[string]bool{}
		for _, slot := range SlotNames {
			v := d.Slots[slot]
			if v.IsCooked() && v.Recipe != "" {
				used[v.Recipe] = true
			}
			if fillOnlyEmpty && v.IsAssigned() {
				used[v.Recipe] = true
			}
		}

		for _, slot := range SlotNames {
			v := d.Slots[slot]
			if v.IsCooked() {
				continue
			}
			if fillOnlyEmpty && !v.IsEmpty() {
				continue
			}
			choice, ok := pick(candidates, used)
			if !ok {
				d.Slots[slot] = Empty()
				continue
			}
			d.Slots[slot] = Assigned(choice)
			used[choice] = true
		}
	}
}

// CustomOptions scopes a RandomizeCustom call.
type CustomOptions struct {
	// Days limits the operation to the named days; nil or empty means
	// the whole week. Unknown names are ignored.
	Days []string
	// ReplaceExisting makes every non-cooked slot a fill target instead
	// of only empty ones.
	ReplaceExisting bool
}

// RandomizeCustom randomizes an explicit day subset and returns the
// number of slots whose value actually changed. Duplicate blanking
// counts toward the total only when the blanked slot was itself a fill
// target. Past days and cooked slots are never modified.
func (p *WeekPlan) RandomizeCustom(candidates []string, opts CustomOptions, today time.Time) int {
	today = dayOf(today)

	target := map[string]bool{}
	if len(opts.Days) == 0 {
		for _, d := range DayNames {
			target[d] = true
		}
	} else {
		for _, d := range opts.Days {
			if ValidDay(d) {
				target[d] = true
			}
		}
	}

	modified := 0
	for _, name := range DayNames {
		if !target[name] {
			continue
		}
		d := p.Days[name]
		if d.Date.Before(today) {
			continue
		}

		candidateSlots := map[string]bool{}
		for _, slot := range SlotNames {
			v := d.Slots[slot]
			if v.IsCooked() {
				continue
			}
			if opts.ReplaceExisting || v.IsEmpty() {
				candidateSlots[slot] = true
			}
		}
		if len(candidateSlots) == 0 {
			continue
		}

		counted := map[string]*int{}
		for slot := range candidateSlots {
			counted[slot] = &modified
		}
		p.dedupDay(name, "", counted)

		used := map[string]bool{}
		for _, slot := range SlotNames {
			v := d.Slots[slot]
			if v.IsCooked() && v.Recipe != "" {
				used[v.Recipe] = true
			}
			if !candidateSlots[slot] && v.IsAssigned() {
				used[v.Recipe] = true
			}
		}

		for _, slot := range SlotNames {
			if !candidateSlots[slot] {
				continue
			}
			cur := d.Slots[slot]
			choice, ok := pick(candidates, used)
			if !ok {
				if !cur.IsEmpty() {
					d.Slots[slot] = Empty()
					modified++
				}
				continue
			}
			if !cur.IsAssigned() || cur.Recipe != choice {
				d.Slots[slot] = Assigned(choice)
				modified++
			}
			used[choice] = true
		}
	}
	return modified
}
