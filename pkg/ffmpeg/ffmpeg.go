// Package ffmpeg is a safe Go API over the FFmpeg libraries, built on the
// moonfire_ffmpeg shim so that no Go code depends on FFmpeg struct layouts.
//
// Call Init (or MustInit) once before anything else. Objects returned by this
// package wrap FFmpeg-owned memory; they are not safe for concurrent use and
// must be released with their Free method.
package ffmpeg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/moonfire-nvr/moonfire-ffmpeg/internal/ffi"
)

// Options configures Init.
type Options struct {
	// Logger receives the init summary and, with ForwardLogs, FFmpeg's own
	// log output. Nil means logrus.StandardLogger().
	Logger *logrus.Logger

	// ForwardLogs routes av_log output through Logger. FFmpeg's log level is
	// derived from Logger's level.
	ForwardLogs bool

	// NetworkInit calls avformat_network_init.
	NetworkInit bool
}

// DefaultOptions returns options that log to the standard logger and forward
// FFmpeg's output to it.
func DefaultOptions() *Options {
	return &Options{
		Logger:      logrus.StandardLogger(),
		ForwardLogs: true,
	}
}

var (
	initOnce sync.Once
	initErr  error
)

// Init checks that the running FFmpeg libraries are ABI-compatible with the
// headers the shim was compiled against, then initializes FFmpeg. Only the
// first call does any work; later calls return the first call's result and
// ignore opts.
func Init(opts *Options) error {
	initOnce.Do(func() {
		initErr = doInit(opts)
	})
	return initErr
}

// MustInit is like Init but panics on error.
func MustInit(opts *Options) {
	if err := Init(opts); err != nil {
		panic(err)
	}
}

func doInit(opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	libs := Libraries()
	if err := checkCompatible(libs); err != nil {
		logger.WithFields(logrus.Fields{
			"function": "Init",
			"error":    err.Error(),
		}).Error("FFmpeg libraries are not ABI-compatible")
		return err
	}

	ffi.Init()
	ffi.RegisterAll()

	if opts.NetworkInit {
		if ret := ffi.NetworkInit(); ret < 0 {
			return fmt.Errorf("avformat_network_init: %w", Error(ret))
		}
	}

	if opts.ForwardLogs {
		forwardLogs(logger)
	}

	fields := logrus.Fields{
		"lock_manager":     ffi.UsesLockManager(),
		"codec_parameters": ffi.HasCodecParameters(),
	}
	for _, l := range libs {
		fields[l.Name] = fmt.Sprintf("running=%s compiled=%s", l.Running, l.Compiled)
	}
	logger.WithFields(fields).Info("Initialized ffmpeg")
	return nil
}

// checkCompatible returns ErrIncompatibleVersion listing every library, with
// the offending ones marked, if any library is incompatible.
func checkCompatible(libs []Library) error {
	var msg strings.Builder
	compatible := true
	for _, l := range libs {
		msg.WriteString("\n")
		msg.WriteString(l.String())
		if !l.IsCompatible() {
			compatible = false
			msg.WriteString(" <- not ABI-compatible!")
		}
	}
	if !compatible {
		return fmt.Errorf("%w:%s", ErrIncompatibleVersion, msg.String())
	}
	return nil
}
