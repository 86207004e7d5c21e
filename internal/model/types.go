// Package model defines shared data structures.
package model

// Store keys used by the study ledger.
const (
	GoalKey      = "studyGoal"
	DailyTimeKey = "dailyStudyTime"
)

// WeekKey identifies one calendar week, formatted as "<year>-W<week>".
type WeekKey string

// DayKey is one of the seven weekday names.
type DayKey string

// Weekday names, indexed by time.Weekday (Sunday first).
const (
	Domingo DayKey = "domingo"
	Segunda DayKey = "segunda"
	Terca   DayKey = "terça"
	Quarta  DayKey = "quarta"
	Quinta  DayKey = "quinta"
	Sexta   DayKey = "sexta"
	Sabado  DayKey = "sábado"
)

// WeekdayKeys maps time.Weekday indexes to day keys.
var WeekdayKeys = [7]DayKey{Domingo, Segunda, Terca, Quarta, Quinta, Sexta, Sabado}

// DisplayDays is the order days are shown in the weekly breakdown.
var DisplayDays = [7]DayKey{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo}

// Label returns the three-rune short label for the day.
func (d DayKey) Label() string {
	runes := []rune(string(d))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

// WeekRecord holds committed seconds per day for one week.
type WeekRecord map[DayKey]int

// DailyStudyRecord is the persisted blob: week -> day -> seconds.
type DailyStudyRecord map[WeekKey]WeekRecord

// DayTotal is one cell of the weekly breakdown.
type DayTotal struct {
	Day     DayKey
	Seconds int
	Today   bool
}

// StoreConfig selects and configures the key-value backend.
type StoreConfig struct {
	Backend       string
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}
