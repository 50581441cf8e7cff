package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chromcmm/internal/core/ports/driving"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Build an r,g,b table from group membership",
	Long: `Build an r,g,b table from a group membership CSV and a group colour CSV.

The membership CSV has one column of bin indices per group. The colour CSV
has the same column names and three rows: red, green, blue. Bins in no
group are white; a bin in several groups takes the last group's colour.`,
	Example: "  chromcmm groups --groups ab.csv --colors ab_colors.csv --out rgb.csv",
	RunE:    runGroups,
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Build an r,g,b table from a numeric track",
	Long: `Normalise a numeric track to [0, 1] and map it through a colormap.

Values may be comma or newline separated. The track is read from stdin
when --in is not given. NaN values are coloured black.`,
	Example: "  chromcmm track --in gc.txt --cmap viridis > rgb.csv",
	RunE:    runTrack,
}

var compartmentsCmd = &cobra.Command{
	Use:   "compartments",
	Short: "Split an eigenvector track into A and B compartments",
	Long: `Write a group membership CSV with column A holding the bins whose
eigenvector value is positive and column B those whose value is negative.

The output feeds straight into "chromcmm groups".`,
	Example: "  chromcmm compartments --eig eig.txt --out ab.csv",
	RunE:    runCompartments,
}

var colormapsCmd = &cobra.Command{
	Use:   "colormaps",
	Short: "List available colormaps",
	Long:  `List the colormap names accepted by --cmap. Append _r to reverse any of them.`,
	RunE:  runColormaps,
}

var (
	tableOut      string
	tableGroups   string
	tableColors   string
	tableTrack    string
	tableColormap string
)

func init() {
	groupsCmd.Flags().StringVarP(&tableGroups, "groups", "g", "", "Group membership CSV")
	groupsCmd.Flags().StringVarP(&tableColors, "colors", "c", "", "Group colour CSV")
	groupsCmd.Flags().StringVarP(&tableOut, "out", "o", "", "Output file (default stdout)")
	_ = groupsCmd.MarkFlagRequired("groups")
	_ = groupsCmd.MarkFlagRequired("colors")

	trackCmd.Flags().StringVarP(&tableTrack, "in", "i", "", "Numeric track (default stdin)")
	trackCmd.Flags().StringVar(&tableColormap, "cmap", "", "Colormap name (default from config)")
	trackCmd.Flags().StringVarP(&tableOut, "out", "o", "", "Output file (default stdout)")

	compartmentsCmd.Flags().StringVarP(&tableTrack, "eig", "e", "", "Eigenvector track (default stdin)")
	compartmentsCmd.Flags().StringVarP(&tableOut, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(compartmentsCmd)
	rootCmd.AddCommand(colormapsCmd)
}

func runGroups(cmd *cobra.Command, _ []string) error {
	return buildTable(cmd, driving.ColorSource{
		Kind:       driving.ColorSourceGroups,
		GroupsPath: tableGroups,
		ColorsPath: tableColors,
	})
}

func runTrack(cmd *cobra.Command, _ []string) error {
	src := driving.ColorSource{
		Kind:      driving.ColorSourceTrack,
		TrackPath: tableTrack,
		Colormap:  tableColormap,
	}
	if src.TrackPath == "" {
		src.TrackInput = cmd.InOrStdin()
	}
	return buildTable(cmd, src)
}

func buildTable(cmd *cobra.Command, src driving.ColorSource) error {
	if err := requireColorTables(); err != nil {
		return err
	}

	table, err := colorTableService.Build(cmd.Context(), src)
	if err != nil {
		return err
	}
	return emit(cmd, tableOut, func(w io.Writer) error {
		return colorTableService.WriteTable(w, table)
	})
}

func runCompartments(cmd *cobra.Command, _ []string) error {
	if err := requireColorTables(); err != nil {
		return err
	}

	var in io.Reader
	if tableTrack == "" {
		in = cmd.InOrStdin()
	}
	groups, err := colorTableService.Compartments(cmd.Context(), tableTrack, in)
	if err != nil {
		return fmt.Errorf("failed to split compartments: %w", err)
	}
	return emit(cmd, tableOut, func(w io.Writer) error {
		return colorTableService.WriteGroups(w, groups)
	})
}

func runColormaps(cmd *cobra.Command, _ []string) error {
	if err := requireColorTables(); err != nil {
		return err
	}
	for _, name := range colorTableService.Colormaps() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
