package nav

// Level indicates the severity/type of a navigation event.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event is a developer-facing progress or diagnostic message emitted
// by the navigation layer. Nothing in this package surfaces errors to
// the user directly; failures degrade to "stay where you are" and are
// reported only through events.
type Event struct {
	Message string
	Level   Level
}

// EventFunc receives events. A nil EventFunc silently drops them.
type EventFunc func(Event)

func (fn EventFunc) emit(e Event) {
	if fn != nil {
		fn(e)
	}
}
