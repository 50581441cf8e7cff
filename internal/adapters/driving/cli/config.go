package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change persistent settings.

Keys:
  links.radius    radius written on every link (default 0.006251)
  links.palette   palette override CSV used when --palette is not given
  track.colormap  colormap used when --cmap is not given (default viridis)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:     "set KEY VALUE",
	Short:   "Set a setting",
	Example: "  chromcmm config set track.colormap magma",
	Args:    cobra.ExactArgs(2),
	RunE:    runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, key := range settingsService.Keys() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-15s = %s\n", key, settingValue(settings, key))
	}
	return nil
}

func settingValue(s *domain.Settings, key string) string {
	switch key {
	case "links.radius":
		return strconv.FormatFloat(s.Links.Radius, 'f', -1, 64)
	case "links.palette":
		if s.Links.PalettePath == "" {
			return "(built-in)"
		}
		return s.Links.PalettePath
	case "track.colormap":
		return s.Track.Colormap
	default:
		return ""
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s set to %s\n", args[0], args[1])
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	if err := settingsService.Unset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}
	cmd.Printf("%s restored to default\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), settingsService.Path())
	return nil
}
