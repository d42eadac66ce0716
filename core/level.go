package core

import "strings"

// Level represents the severity level of a log record
type Level int8

const (
	// DebugLevel for diagnosing issues and troubleshooting
	DebugLevel Level = iota
	// InfoLevel for purely informative indications (default)
	InfoLevel
	// WarningLevel for unexpected situations the program survives
	WarningLevel
	// ErrorLevel for issues preventing a functionality from working
	ErrorLevel
	// OffLevel disables every record when used as threshold
	OffLevel
)

// TokenLen is the width of a rendered level token.
const TokenLen = 4

// level tokens as they appear in the record, e.g. "| DBG |"
var tokens = [...][TokenLen]byte{
	DebugLevel:   {' ', 'D', 'B', 'G'},
	InfoLevel:    {' ', 'I', 'N', 'F'},
	WarningLevel: {' ', 'W', 'R', 'N'},
	ErrorLevel:   {' ', 'E', 'R', 'R'},
	OffLevel:     {' ', 'O', 'F', 'F'},
}

// Token returns the fixed-width token written into records.
func (l Level) Token() [TokenLen]byte {
	if l < DebugLevel || l > OffLevel {
		return [TokenLen]byte{' ', '?', '?', '?'}
	}
	return tokens[l]
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether a record at level l passes the threshold min.
func (l Level) Enabled(min Level) bool {
	return l >= min && l < OffLevel
}

// ParseLevel converts a string to a Level. Unknown names map to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG", "DBG":
		return DebugLevel
	case "INFO", "INFORMATION", "INF":
		return InfoLevel
	case "WARN", "WARNING", "WRN":
		return WarningLevel
	case "ERROR", "ERR":
		return ErrorLevel
	case "OFF", "NONE":
		return OffLevel
	default:
		return InfoLevel
	}
}
