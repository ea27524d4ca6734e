package logger

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the Logger package", t, func() {
		Convey("New function", func() {
			Convey("When creating a console-only logger", func() {
				logger, err := New("info", "")

				Convey("It should create a logger successfully", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)
					So(func() { logger.Infof("test %s", "log") }, ShouldNotPanic)
				})
			})

			Convey("When creating a logger with a log file", func() {
				tempDir, err := os.MkdirTemp("", "logger_test")
				So(err, ShouldBeNil)
				defer os.RemoveAll(tempDir)

				logFile := filepath.Join(tempDir, "arkeep.log")
				logger, err := New("debug", logFile)

				Convey("It should write to the file", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)

					logger.Debugf("test debug log")
					logger.Close()

					_, err := os.Stat(logFile)
					So(err, ShouldBeNil)
				})
			})

			Convey("When the log level is unknown", func() {
				logger, err := New("verbose-ish", "")

				Convey("It should fall back to info", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)
					So(func() { logger.Infof("still works") }, ShouldNotPanic)
				})
			})

			Convey("When the log directory cannot be created", func() {
				logger, err := New("info", "/proc/nope/arkeep.log")

				Convey("It should return an error", func() {
					So(err, ShouldNotBeNil)
					So(logger, ShouldBeNil)
				})
			})
		})

		Convey("Nop function", func() {
			logger := Nop()

			Convey("It should discard everything without panicking", func() {
				So(func() {
					logger.Infof("dropped")
					logger.Errorf("dropped too")
					logger.Close()
				}, ShouldNotPanic)
			})
		})
	})
}
