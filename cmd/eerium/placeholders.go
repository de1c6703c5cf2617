package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eerium/eerium/internal/assets"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders [dir]",
	Short: "Write the generated placeholder textures as PNG files",
	Long: `Write one PNG per texture name (grass, dirt, stone, water, tree, rock)
into dir, which defaults to the configured texture directory. The files can
be edited and are then picked up instead of the generated images.

Examples:
  eerium placeholders
  eerium placeholders ./resources/textures`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlaceholders,
}

func runPlaceholders(cmd *cobra.Command, args []string) error {
	dir := flagAssets
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir = cfg.Assets.TextureDir
	}

	for _, name := range assets.TextureNames() {
		img, ok := assets.PlaceholderImage(name)
		if !ok {
			continue
		}
		if err := assets.WritePNG(dir, name, img); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Info("wrote placeholder", "name", name, "dir", dir)
	}
	return nil
}
