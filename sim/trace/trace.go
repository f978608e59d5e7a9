package trace

// Level controls the verbosity of order tracing.
type Level string

const (
	// LevelNone disables tracing.
	LevelNone Level = "none"
	// LevelOrders captures every order lifecycle transition.
	LevelOrders Level = "orders"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelOrders: true,
	"":          true, // empty defaults to none
}

// IsValidLevel returns true if the given string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// LineTrace collects order lifecycle records during a day run.
// A nil *LineTrace is valid and records nothing.
type LineTrace struct {
	Config Config
	Orders []OrderRecord
}

// NewLineTrace creates a LineTrace ready for recording.
func NewLineTrace(config Config) *LineTrace {
	return &LineTrace{
		Config: config,
		Orders: make([]OrderRecord, 0),
	}
}

// Enabled reports whether records are being collected.
func (lt *LineTrace) Enabled() bool {
	return lt != nil && lt.Config.Level == LevelOrders
}

// Record appends an order lifecycle record. No-op when disabled.
func (lt *LineTrace) Record(record OrderRecord) {
	if !lt.Enabled() {
		return
	}
	lt.Orders = append(lt.Orders, record)
}
