package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milk9111/shapedrop/config"
	"github.com/milk9111/shapedrop/logger"
)

var (
	configFile      string
	debug           bool
	width           int
	height          int
	logLevel        string
	logFile         string
	gravity         float64
	impactThreshold float64
	volume          float64
	muted           bool
	startupScript   string
	seed            uint64
	ticks           int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "shapedrop",
		Short:        "drop spheres and boxes onto a lit ground plane",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.IntVar(&width, "width", 0, "window width")
	flags.IntVar(&height, "height", 0, "window height")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "also write logs to this file")
	flags.Float64Var(&gravity, "gravity", 0, "gravity along -y in m/s^2")
	flags.Float64Var(&impactThreshold, "impact-threshold", 0, "minimum impact speed that plays a sound")
	flags.Float64Var(&volume, "volume", 0, "impact sound volume, 0 to 1")
	flags.BoolVar(&muted, "muted", false, "mute impact sounds")
	flags.StringVar(&startupScript, "script", "", "scene script to run at startup")
	flags.Uint64Var(&seed, "seed", 0, "random seed for spawns")

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "run the simulation without a window and plot the first entity",
		RunE:  runHeadlessCmd,
	}
	headlessCmd.Flags().IntVar(&ticks, "ticks", 600, "frames to simulate")

	rootCmd.AddCommand(headlessCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file and any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	o := config.Overrides{Debug: debug}
	changed := cmd.Flags().Changed
	if changed("width") {
		o.Width = &width
	}
	if changed("height") {
		o.Height = &height
	}
	if changed("log-level") {
		o.LogLevel = &logLevel
	}
	if changed("log-file") {
		o.LogFile = &logFile
	}
	if changed("gravity") {
		o.Gravity = &gravity
	}
	if changed("impact-threshold") {
		o.ImpactThreshold = &impactThreshold
	}
	if changed("volume") {
		o.Volume = &volume
	}
	if changed("muted") {
		o.Muted = &muted
	}
	if changed("script") {
		o.StartupScript = &startupScript
	}
	if changed("seed") {
		o.Seed = &seed
	}

	cfg, err := config.Load(configFile, o)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	a, err := newApp(cfg, false)
	if err != nil {
		return err
	}
	game, err := NewGame(a)
	if err != nil {
		return err
	}
	defer game.Close()

	logger.Info("shapedrop: starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("entities", a.sim.Count()),
	)
	return ebiten.RunGame(game)
}

func runHeadlessCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	res, err := runHeadless(cfg, ticks)
	if err != nil {
		return err
	}
	res.Print(cmd.OutOrStdout())
	return nil
}
