package rclone

import (
	"encoding/json"
	"time"
)

// Log levels used by the daemon's JSON log output.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
	LevelDebug   = "debug"
)

// LogMessage is one structured log line from the daemon. The daemon emits
// one JSON object per line on stdout and stderr.
type LogMessage struct {
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Source string `json:"source"`
	Time   string `json:"time"`
}

// parseLogLine decodes a raw log line. A line that is not valid JSON is
// wrapped into a synthetic error-level message carrying the raw text, so no
// line is ever dropped and a malformed line never aborts the stream.
func parseLogLine(line string) LogMessage {
	var msg LogMessage
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		return LogMessage{
			Level: LevelError,
			Msg:   line,
			Time:  time.Now().Format(time.RFC3339),
		}
	}
	return msg
}
