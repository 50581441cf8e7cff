// Package cli provides the cobra command tree for chromcmm.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chromcmm/internal/core/ports/driving"
	"github.com/custodia-labs/chromcmm/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected before the command tree runs.
var (
	annotateService   driving.AnnotateService
	colorTableService driving.ColorTableService
	settingsService   driving.SettingsService
	writeFile         func(path string, data []byte) error
)

// Services groups the driving ports and output sink the commands need.
type Services struct {
	Annotate    driving.AnnotateService
	ColorTables driving.ColorTableService
	Settings    driving.SettingsService

	// WriteFile replaces a file atomically.
	WriteFile func(path string, data []byte) error
}

// ServiceFactory builds services once global flags are known.
type ServiceFactory func(configDir string) (*Services, error)

var serviceFactory ServiceFactory

// Global flags.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "chromcmm",
	Short: "Colour and link Chimera marker files",
	Long: `chromcmm rewrites the colours of markers in a Chimera .cmm file and
chains the bins of each chromosome together with link elements.

Colours come from a direct r,g,b table, from group membership, or from a
numeric track passed through a colormap.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.chromcmm)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the factory used to build services.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices injects services directly.
func SetServices(s *Services) {
	annotateService = s.Annotate
	colorTableService = s.ColorTables
	settingsService = s.Settings
	writeFile = s.WriteFile
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}
	services, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	return nil
}

func requireAnnotate() error {
	if annotateService == nil {
		return errors.New("annotate service not configured")
	}
	return nil
}

func requireColorTables() error {
	if colorTableService == nil {
		return errors.New("color table service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}
