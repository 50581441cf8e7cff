package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chromcmm/internal/core/ports/driving"
)

var colorizeCmd = &cobra.Command{
	Use:   "colorize",
	Short: "Recolour markers from an r,g,b table",
	Long: `Rewrite the r, g and b attributes of every marker from an r,g,b CSV.

Row i of the table colours the marker with id i. The run fails without
writing anything if a marker id has no row.`,
	Example: "  chromcmm colorize --in model.cmm --rgb colors.csv --out colored.cmm",
	RunE:    runColorize,
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Chain each chromosome's bins with links",
	Long: `Add a link between consecutive bins of every chromosome.

The label file holds one byte per bin naming its chromosome. Links take
the chromosome's palette colour and are written before </marker_set>.`,
	Example: "  chromcmm link --in model.cmm --labels labels.bin --out linked.cmm",
	RunE:    runLink,
}

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Recolour markers and add chromosome links in one pass",
	Long: `Apply one colour source and, optionally, chromosome links.

Colour sources:
  --rgb TABLE                direct r,g,b table
  --groups G --colors C      group membership and group colours
  --track T [--cmap NAME]    numeric track through a colormap`,
	Example: "  chromcmm annotate --in model.cmm --track gc.txt --cmap magma --labels labels.bin",
	RunE:    runAnnotate,
}

// Flags shared by the document commands. Each command binds its own subset.
var (
	docIn          string
	docOut         string
	docRGB         string
	docGroups      string
	docColors      string
	docTrack       string
	docColormap    string
	docLabels      string
	docPalette     string
	docMarkersOnly bool
)

func init() {
	colorizeCmd.Flags().StringVarP(&docIn, "in", "i", "", "Input marker file")
	colorizeCmd.Flags().StringVarP(&docOut, "out", "o", "", "Output file (default stdout)")
	colorizeCmd.Flags().StringVar(&docRGB, "rgb", "", "r,g,b colour table")
	_ = colorizeCmd.MarkFlagRequired("in")
	_ = colorizeCmd.MarkFlagRequired("rgb")

	linkCmd.Flags().StringVarP(&docIn, "in", "i", "", "Input marker file")
	linkCmd.Flags().StringVarP(&docOut, "out", "o", "", "Output file (default stdout)")
	linkCmd.Flags().StringVarP(&docLabels, "labels", "l", "", "Chromosome label vector (one byte per bin)")
	linkCmd.Flags().StringVarP(&docPalette, "palette", "p", "", "Palette override CSV (one r,g,b row per chromosome)")
	linkCmd.Flags().BoolVar(&docMarkersOnly, "markers-only", false, "Drop every line that is not a marker, header or closing tag")
	_ = linkCmd.MarkFlagRequired("in")
	_ = linkCmd.MarkFlagRequired("labels")

	annotateCmd.Flags().StringVarP(&docIn, "in", "i", "", "Input marker file")
	annotateCmd.Flags().StringVarP(&docOut, "out", "o", "", "Output file (default stdout)")
	annotateCmd.Flags().StringVar(&docRGB, "rgb", "", "r,g,b colour table")
	annotateCmd.Flags().StringVar(&docGroups, "groups", "", "Group membership CSV")
	annotateCmd.Flags().StringVar(&docColors, "colors", "", "Group colour CSV")
	annotateCmd.Flags().StringVar(&docTrack, "track", "", "Numeric track")
	annotateCmd.Flags().StringVar(&docColormap, "cmap", "", "Colormap for --track (default from config)")
	annotateCmd.Flags().StringVarP(&docLabels, "labels", "l", "", "Chromosome label vector")
	annotateCmd.Flags().StringVarP(&docPalette, "palette", "p", "", "Palette override CSV")
	annotateCmd.Flags().BoolVar(&docMarkersOnly, "markers-only", false, "Drop every line that is not a marker, header or closing tag")
	_ = annotateCmd.MarkFlagRequired("in")
	annotateCmd.MarkFlagsMutuallyExclusive("rgb", "groups", "track")
	annotateCmd.MarkFlagsMutuallyExclusive("rgb", "colors", "track")
	annotateCmd.MarkFlagsRequiredTogether("groups", "colors")

	rootCmd.AddCommand(colorizeCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(annotateCmd)
}

func runColorize(cmd *cobra.Command, _ []string) error {
	return runPipeline(cmd, driving.AnnotateRequest{
		InputPath: docIn,
		Colors:    &driving.ColorSource{Kind: driving.ColorSourceDirect, TablePath: docRGB},
	})
}

func runLink(cmd *cobra.Command, _ []string) error {
	return runPipeline(cmd, driving.AnnotateRequest{
		InputPath:   docIn,
		LabelsPath:  docLabels,
		PalettePath: docPalette,
		MarkersOnly: docMarkersOnly,
	})
}

func runAnnotate(cmd *cobra.Command, _ []string) error {
	if docColormap != "" && docTrack == "" {
		return errors.New("--cmap only applies to --track")
	}

	req := driving.AnnotateRequest{
		InputPath:   docIn,
		LabelsPath:  docLabels,
		PalettePath: docPalette,
		MarkersOnly: docMarkersOnly,
	}

	switch {
	case docRGB != "":
		req.Colors = &driving.ColorSource{Kind: driving.ColorSourceDirect, TablePath: docRGB}
	case docGroups != "":
		req.Colors = &driving.ColorSource{
			Kind:       driving.ColorSourceGroups,
			GroupsPath: docGroups,
			ColorsPath: docColors,
		}
	case docTrack != "":
		req.Colors = &driving.ColorSource{
			Kind:      driving.ColorSourceTrack,
			TrackPath: docTrack,
			Colormap:  docColormap,
		}
	}

	if req.Colors == nil && !req.WantsLinks() {
		return errors.New("nothing to do: pass a colour source, --labels, or both")
	}
	return runPipeline(cmd, req)
}

func runPipeline(cmd *cobra.Command, req driving.AnnotateRequest) error {
	if err := requireAnnotate(); err != nil {
		return err
	}

	req.OutputPath = docOut
	if req.OutputPath == "" {
		req.Stdout = cmd.OutOrStdout()
	}

	result, err := annotateService.Annotate(cmd.Context(), req)
	if err != nil {
		return err
	}
	printWarnings(cmd, result.Warnings)
	return nil
}
