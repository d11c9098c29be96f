package service

import (
	"sort"

	"maintenance-tracker-backend/internal/calendar"

	"github.com/google/uuid"
)

// CalendarProjection is an in-memory calendar of assignments keyed by day. It is
// kept consistent across create, edit and delete without re-reading storage.
// Not safe for concurrent use.
type CalendarProjection struct {
	byID  map[uuid.UUID]MaintenanceResponse
	byDay map[calendar.Date][]uuid.UUID
}

// NewCalendarProjection builds a projection holding items
func NewCalendarProjection(items []MaintenanceResponse) *CalendarProjection {
	p := &CalendarProjection{
		byID:  make(map[uuid.UUID]MaintenanceResponse, len(items)),
		byDay: make(map[calendar.Date][]uuid.UUID),
	}
	for _, item := range items {
		p.Upsert(item)
	}
	return p
}

// Upsert adds item or replaces the stored copy with the same id. When the date
// changed the item moves to its new day.
func (p *CalendarProjection) Upsert(item MaintenanceResponse) {
	day := item.ScheduledDate
	if previous, ok := p.byID[item.ID]; ok {
		if previous.ScheduledDate.Equal(day) {
			p.byID[item.ID] = item
			return
		}
		p.unlink(previous.ScheduledDate, item.ID)
	}
	p.byID[item.ID] = item
	p.byDay[day] = append(p.byDay[day], item.ID)
}

// Remove drops the item with id and reports whether it was present
func (p *CalendarProjection) Remove(id uuid.UUID) bool {
	previous, ok := p.byID[id]
	if !ok {
		return false
	}
	delete(p.byID, id)
	p.unlink(previous.ScheduledDate, id)
	return true
}

// ForDate returns the assignments on day in insertion order
func (p *CalendarProjection) ForDate(day calendar.Date) []MaintenanceResponse {
	ids := p.byDay[day]
	out := make([]MaintenanceResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.byID[id])
	}
	return out
}

// Days returns every day holding at least one assignment, earliest first
func (p *CalendarProjection) Days() []calendar.Date {
	days := make([]calendar.Date, 0, len(p.byDay))
	for day := range p.byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Len returns the number of assignments held
func (p *CalendarProjection) Len() int {
	return len(p.byID)
}

func (p *CalendarProjection) unlink(day calendar.Date, id uuid.UUID) {
	ids := p.byDay[day]
	for i, existing := range ids {
		if existing == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(p.byDay, day)
		return
	}
	p.byDay[day] = ids
}
