// eerium is an isometric tile grid: a generated map, an actor that walks to
// clicked tiles and a camera that keeps it in view.
//
// Usage:
//
//	eerium                      - Open the game window
//	eerium placeholders <dir>   - Write the generated textures as PNG files
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.eerium, ./configs)
//	--seed <value>      - RNG seed for map generation (0 = random based on time)
//	--assets <dir>      - Texture directory, overrides the config
//	--log-level <lvl>   - debug, info, warn or error
//	--fps-overlay       - Show the FPS counter on start
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eerium/eerium/internal/assets"
	"github.com/eerium/eerium/internal/config"
	"github.com/eerium/eerium/internal/game"
	ebitenrender "github.com/eerium/eerium/internal/render/ebiten"
	"github.com/eerium/eerium/internal/scene"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagAssets     string
	flagLogLevel   string
	flagFPSOverlay bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eerium",
	Short: "Eerium - an isometric tile grid",
	Long: `Eerium opens a window with a generated isometric map and an actor.

Controls:
  Arrow keys    step the actor one tile
  Left click    walk to the clicked tile
  Mouse wheel   zoom in and out
  W A S D       pan the view
  R             regenerate the map
  F3            toggle the FPS counter
  Escape        back to the menu, or quit from the menu`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Texture directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagFPSOverlay, "fps-overlay", false, "Show the FPS counter on start")

	rootCmd.AddCommand(placeholdersCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	log.SetPrefix("eerium")
	log.SetReportTimestamp(true)
	return nil
}

// loadConfig reads the config and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagAssets != "" {
		cfg.Assets.TextureDir = flagAssets
	}
	if flagFPSOverlay {
		cfg.Window.FPSOverlay = true
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed, "map", fmt.Sprintf("%dx%d", cfg.Grid.MapWidth, cfg.Grid.MapHeight))

	// Initialize the renderer backend (ebiten)
	fonts, err := ebitenrender.LoadFonts(cfg.Assets.Font)
	if err != nil {
		log.Warn("font unavailable, text disabled", "path", cfg.Assets.Font, "error", err)
		fonts = nil
	}
	loader := ebitenrender.NewResourceLoader()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine(fonts)

	registry := assets.NewRegistry(loader, log.Default())
	registry.Populate(assets.Options{
		TextureDir:   cfg.Assets.TextureDir,
		Atlas:        cfg.Assets.Atlas,
		Placeholders: cfg.Assets.Placeholders,
	}, assets.TextureNames())
	log.Info("textures ready", "names", registry.Names())

	sc, err := scene.New(cfg, registry, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	gameManager := game.NewManager(cfg, inputMgr, sc, nil)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	// Update runs every frame; the manager's clock decides how many
	// fixed ticks are due.
	engine.SetTickRate(0)

	if err := engine.RunGame(gameManager); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Info("bye")
	return nil
}
