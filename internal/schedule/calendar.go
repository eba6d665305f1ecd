package schedule

import "time"

// CellStatus tags a day cell with exactly one rendering state.
type CellStatus string

const (
	CellPast      CellStatus = "past"
	CellWeekend   CellStatus = "weekend"
	CellToday     CellStatus = "today"
	CellSelected  CellStatus = "selected"
	CellAvailable CellStatus = "available"
)

// DayCell is one selectable (or disabled) day in the month grid.
type DayCell struct {
	Day        int        `json:"day"`
	Status     CellStatus `json:"status"`
	IsToday    bool       `json:"isToday"`
	Selectable bool       `json:"selectable"`
}

// MonthGrid is the rendered month: Leading blank cells pad the first week so
// day 1 lands under its weekday column (Sunday-first), then one cell per day.
type MonthGrid struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Leading int        `json:"leading"`
	Cells   []DayCell  `json:"cells"`
}

// Selectable reports whether d can be booked: Monday through Friday and not
// strictly before today. Both arguments are compared date-only.
func Selectable(d, today time.Time) bool {
	wd := d.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !dateOnly(d).Before(dateOnly(today))
}

// Grid builds the month grid for year/month. today drives past/today tagging
// and selected (optional) marks the currently picked day. The same inputs
// always produce the same grid.
func Grid(year int, month time.Month, today time.Time, selected *time.Time) MonthGrid {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	g := MonthGrid{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Cells:   make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cell := DayCell{
			Day:        day,
			IsToday:    sameDay(d, today),
			Selectable: Selectable(d, today),
		}
		cell.Status = cellStatus(d, today, selected, cell)
		g.Cells = append(g.Cells, cell)
	}
	return g
}

// cellStatus picks the single status tag. Selected wins over today; the
// IsToday flag keeps the second fact around for rendering.
func cellStatus(d, today time.Time, selected *time.Time, cell DayCell) CellStatus {
	if selected != nil && sameDay(d, *selected) {
		return CellSelected
	}
	if cell.IsToday {
		return CellToday
	}
	if !cell.Selectable {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			return CellWeekend
		}
		return CellPast
	}
	return CellAvailable
}
