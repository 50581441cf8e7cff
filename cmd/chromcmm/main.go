package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/chromcmm/internal/adapters/driven/chromosome"
	"github.com/custodia-labs/chromcmm/internal/adapters/driven/cmm"
	"github.com/custodia-labs/chromcmm/internal/adapters/driven/colormap"
	"github.com/custodia-labs/chromcmm/internal/adapters/driven/colorsource"
	"github.com/custodia-labs/chromcmm/internal/adapters/driven/config/file"
	"github.com/custodia-labs/chromcmm/internal/adapters/driven/storage/fs"
	"github.com/custodia-labs/chromcmm/internal/adapters/driving/cli"
	"github.com/custodia-labs/chromcmm/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires the adapters once the config directory is known.
func newServices(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}

	files := fs.NewFileStore()
	registry := colormap.NewRegistry()
	csv := colorsource.NewCSV()
	reader := chromosome.NewReader()

	settingsService := services.NewSettingsService(configStore, registry)
	colorTableService := services.NewColorTableService(
		files, csv, csv, colorsource.NewTrack(), registry, settingsService,
	)
	annotateService := services.NewAnnotateService(
		files, cmm.NewCodec(), reader, reader, colorTableService, settingsService,
	)

	return &cli.Services{
		Annotate:    annotateService,
		ColorTables: colorTableService,
		Settings:    settingsService,
		WriteFile:   files.WriteFile,
	}, nil
}
