package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-tools/engine"
	"github.com/spaghettifunk/anima-tools/engine/config"
	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

type commandContext struct {
	configFlag *string
	assetsFlag *string
	levelFlag  *string
	watchFlag  *bool

	config     *config.Config
	configPath string
	configErr  error
	loaded     bool
}

func newCommandContext(configFlag, assetsFlag, levelFlag *string, watchFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		assetsFlag: assetsFlag,
		levelFlag:  levelFlag,
		watchFlag:  watchFlag,
	}
}

func (c *commandContext) bindLogOutput(cmd *cobra.Command) {
	core.SetLogOutput(cmd.ErrOrStderr())
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.loaded {
		return c.config, c.configErr
	}
	c.loaded = true

	cfg, path, _, err := config.Load(strings.TrimSpace(*c.configFlag))
	if err != nil {
		c.configErr = err
		return nil, err
	}
	if assets := strings.TrimSpace(*c.assetsFlag); assets != "" {
		if cfg.Paths.AssetsDir, err = config.ExpandPath(assets); err != nil {
			c.configErr = fmt.Errorf("resolve --assets: %w", err)
			return nil, c.configErr
		}
	}
	if *c.watchFlag {
		cfg.Paths.WatchAssets = true
	}
	if level := strings.TrimSpace(*c.levelFlag); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return nil, err
		}
	}
	core.SetLogLevel(cfg.LogLevel())
	c.config = cfg
	c.configPath = path
	return cfg, nil
}

// withScene boots an engine on the configured project, opens the scene
// document at scenePath and hands both to fn. Documents fn changed are
// saved before the engine shuts down.
func (c *commandContext) withScene(cmd *cobra.Command, scenePath string, fn func(*engine.Engine, *scene.Scene) error) error {
	if strings.TrimSpace(scenePath) == "" {
		return fmt.Errorf("--scene is required")
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	e, err := engine.New(engine.NewApplicationConfig(appName, cfg))
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogWarn("shutdown: %s", err)
		}
	}()

	s, err := e.OpenScene(scenePath)
	if err != nil {
		return err
	}
	runErr := fn(e, s)

	// earlier mutations stay applied after a fault, so they are saved too
	saved, err := e.SaveScenes()
	out := cmd.OutOrStdout()
	for _, p := range saved {
		fmt.Fprintf(out, "Saved %s\n", p)
	}
	if runErr != nil {
		return runErr
	}
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
