package main

import (
	"log/slog"
	"strings"
	"sync"

	"folio/internal/archive"
	"folio/internal/config"
	"folio/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	logger  *slog.Logger
	tracker *logging.SeverityTracker
	logErr  error

	archiveOnce sync.Once
	archive     *archive.Archive
	archiveErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger once, tapped by a severity tracker
// so commands can reflect logged warnings and errors in their exit status.
func (c *commandContext) ensureLogger() (*slog.Logger, *logging.SeverityTracker, error) {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		logCfg := *cfg
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				logCfg.Logging.Level = level
			}
		}
		c.tracker = logging.NewSeverityTracker()
		logger, err := logging.NewFromConfig(&logCfg, c.tracker)
		if err != nil {
			c.logErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.tracker, c.logErr
}

// ensureArchive loads the archive once per invocation; every command that
// reads volumes or papers goes through here.
func (c *commandContext) ensureArchive() (*archive.Archive, error) {
	c.archiveOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.archiveErr = err
			return
		}
		logger, _, err := c.ensureLogger()
		if err != nil {
			c.archiveErr = err
			return
		}
		arc, err := archive.Load(cfg, logger)
		if err != nil {
			c.archiveErr = err
			return
		}
		c.archive = arc
	})
	return c.archive, c.archiveErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}
