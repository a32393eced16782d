package ffmpeg

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// forwardLogs routes av_log output to logger and sets FFmpeg's level to match
// logger's, so FFmpeg skips formatting lines the logger would drop.
func forwardLogs(logger *logrus.Logger) {
	ffi.SetLogLevel(avLogLevel(logger.GetLevel()))
	entry := logger.WithField("component", "ffmpeg")
	ffi.SetLogCallback(func(level int, line string) {
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return
		}
		entry.Log(logrusLevel(level), line)
	})
}

// StopForwardingLogs restores FFmpeg's default stderr logging.
func StopForwardingLogs() {
	ffi.SetLogCallback(nil)
}

// logrusLevel maps an AV_LOG_* level to a logrus level. FFmpeg's panic and
// fatal levels describe a failed operation, not a dying process, so they map
// to Error.
func logrusLevel(level int) logrus.Level {
	switch {
	case level <= ffi.LogError:
		return logrus.ErrorLevel
	case level <= ffi.LogWarning:
		return logrus.WarnLevel
	case level <= ffi.LogInfo:
		return logrus.InfoLevel
	case level <= ffi.LogDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func avLogLevel(level logrus.Level) int {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return ffi.LogError
	case logrus.WarnLevel:
		return ffi.LogWarning
	case logrus.InfoLevel:
		return ffi.LogInfo
	case logrus.DebugLevel:
		return ffi.LogDebug
	default:
		return ffi.LogTrace
	}
}
