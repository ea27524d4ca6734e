package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfig(t *testing.T) {
	Convey("Given the config package", t, func() {
		tempDir, err := os.MkdirTemp("", "config_test")
		So(err, ShouldBeNil)
		defer os.RemoveAll(tempDir)

		Convey("Default function", func() {
			cfg := Default()

			Convey("It should describe a one-shot tarsnap prune", func() {
				So(cfg.App.Name, ShouldEqual, "arkeep")
				So(cfg.App.LogLevel, ShouldEqual, "info")
				So(cfg.Store.Type, ShouldEqual, "tarsnap")
				So(cfg.Store.Binary, ShouldEqual, "tarsnap")
				So(cfg.Prune.Schedule, ShouldBeEmpty)
				So(cfg.Validate(), ShouldBeNil)
			})
		})

		Convey("Load function", func() {
			Convey("When loading a complete config", func() {
				path := writeConfig(t, tempDir, `
app:
  name: test-pruner
  log_level: debug
prune:
  keep: 7d,5w,12mon
  dry_run: true
  schedule: "0 0 3 * * *"
store:
  type: s3
  region: ap-southeast-1
  bucket: backups
  prefix: nightly/
notifications:
  - type: telegram
    enabled: true
    bot_token: token
    chat_id: "42"
`)
				cfg, err := Load(path)

				Convey("It should populate every section", func() {
					So(err, ShouldBeNil)
					So(cfg.App.Name, ShouldEqual, "test-pruner")
					So(cfg.App.LogLevel, ShouldEqual, "debug")
					So(cfg.Prune.Keep, ShouldEqual, "7d,5w,12mon")
					So(cfg.Prune.DryRun, ShouldBeTrue)
					So(cfg.Prune.Schedule, ShouldEqual, "0 0 3 * * *")
					So(cfg.Store.Type, ShouldEqual, "s3")
					So(cfg.Store.Bucket, ShouldEqual, "backups")
					So(cfg.Notifications, ShouldHaveLength, 1)
				})
			})

			Convey("When the config omits optional settings", func() {
				path := writeConfig(t, tempDir, `
prune:
  keep: 2d
`)
				cfg, err := Load(path)

				Convey("It should apply the defaults", func() {
					So(err, ShouldBeNil)
					So(cfg.App.Name, ShouldEqual, "arkeep")
					So(cfg.App.LogLevel, ShouldEqual, "info")
					So(cfg.Store.Type, ShouldEqual, "tarsnap")
					So(cfg.Store.Binary, ShouldEqual, "tarsnap")
				})
			})

			Convey("When the config file does not exist", func() {
				_, err := Load(filepath.Join(tempDir, "missing.yaml"))

				Convey("It should fail", func() {
					So(err, ShouldNotBeNil)
				})
			})

			Convey("When the store type is unknown", func() {
				path := writeConfig(t, tempDir, `
store:
  type: ftp
`)
				_, err := Load(path)

				Convey("It should fail validation", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "unknown type")
				})
			})

			Convey("When s3 settings are incomplete", func() {
				path := writeConfig(t, tempDir, `
store:
  type: s3
  region: ap-southeast-1
`)
				_, err := Load(path)

				Convey("It should require a bucket", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "bucket is required")
				})
			})

			Convey("When an enabled telegram notification lacks credentials", func() {
				path := writeConfig(t, tempDir, `
notifications:
  - type: telegram
    enabled: true
`)
				_, err := Load(path)

				Convey("It should fail validation", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "bot_token")
				})
			})
		})

		Convey("GetEnabledNotifications method", func() {
			cfg := &Config{
				Notifications: []NotificationConfig{
					{Type: "telegram", Enabled: true, BotToken: "t", ChatID: "1"},
					{Type: "telegram", Enabled: false, BotToken: "t", ChatID: "2"},
				},
			}

			Convey("It should filter out disabled entries", func() {
				enabled := cfg.GetEnabledNotifications()
				So(enabled, ShouldHaveLength, 1)
				So(enabled[0].ChatID, ShouldEqual, "1")
			})
		})
	})
}
