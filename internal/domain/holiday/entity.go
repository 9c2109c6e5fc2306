package holiday

import "time"

type HolidayType string

const (
	TypeNational HolidayType = "national"
	TypeRegional HolidayType = "regional"
	TypeLocal    HolidayType = "local"
)

var TypeValues = []string{
	string(TypeNational),
	string(TypeRegional),
	string(TypeLocal),
}

// Holiday is a public holiday supplied by the calendar; read-only for the
// planning computations.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Type      HolidayType
	CreatedAt time.Time
}

// DateSet indexes holidays by calendar day for O(1) membership checks during
// month iteration.
type DateSet map[string]Holiday

const dateKeyLayout = "2006-01-02"

func NewDateSet(holidays []Holiday) DateSet {
	set := make(DateSet, len(holidays))
	for _, h := range holidays {
		set[h.Date.Format(dateKeyLayout)] = h
	}
	return set
}

func (s DateSet) Contains(day time.Time) bool {
	_, ok := s[day.Format(dateKeyLayout)]
	return ok
}
