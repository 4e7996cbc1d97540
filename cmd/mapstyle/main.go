// Command mapstyle inspects Mapsforge render themes: it loads a theme the
// same way a map renderer would and reports what got loaded, or evaluates
// which instructions apply to a feature at a zoom level.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/mapstyle"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	verbose   bool
	layer     string
	resources string
	ratio     float64
	locale    string
}

func run() error {
	var opts options

	root := &cobra.Command{
		Use:           "mapstyle",
		Short:         "Inspect Mapsforge render themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := log.New(os.Stderr)
			if opts.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			mapstyle.SetLogger(slog.New(logger))
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.layer, "layer", "", "style-menu layer to activate (default: theme default)")
	root.PersistentFlags().StringVar(&opts.resources, "resources", "", "directory for symbol and fill bitmaps (default: theme directory)")
	root.PersistentFlags().Float64Var(&opts.ratio, "ratio", 1.0, "display scale ratio for pixel sizes")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "", "preferred language for localized captions")

	root.AddCommand(infoCommand(&opts))
	root.AddCommand(matchCommand(&opts))

	return root.Execute()
}

// loadTheme loads the theme file with the shared CLI options applied.
func loadTheme(path string, opts *options) (*mapstyle.Style, *mapstyle.KeyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	resources := opts.resources
	if resources == "" {
		resources = dirOf(path)
	}

	loadOpts := []mapstyle.LoadOption{
		mapstyle.WithResources(os.DirFS(resources)),
	}
	if opts.layer != "" {
		loadOpts = append(loadOpts, mapstyle.WithLayer(opts.layer))
	}
	if opts.locale != "" {
		loadOpts = append(loadOpts, mapstyle.WithLocale(opts.locale))
	}

	keys := mapstyle.NewKeyTable()
	style := &mapstyle.Style{}
	if err := style.Load(f, keys, opts.ratio, loadOpts...); err != nil {
		return nil, nil, err
	}
	return style, keys, nil
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		return path[:i]
	}
	return "."
}

func infoCommand(opts *options) *cobra.Command {
	var zoom int

	cmd := &cobra.Command{
		Use:   "info <theme.xml>",
		Short: "Summarize a theme: background, menu layers, instruction counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, _, err := loadTheme(args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bg := style.Background().Color()
			fmt.Fprintf(out, "background: %v\n", bg)

			if menu := style.Menu(); menu != nil {
				fmt.Fprintf(out, "default layer: %s\n", menu.DefaultLayer())
				for _, l := range menu.Layers() {
					fmt.Fprintf(out, "layer %-20s enabled=%-5v cats=%s\n",
						l.ID(), l.Enabled(), strings.Join(l.Cats(), ","))
				}
			}

			fmt.Fprintf(out, "path labels at z%d:   %d\n", zoom, len(style.PathLabels(zoom)))
			fmt.Fprintf(out, "point labels at z%d:  %d\n", zoom, len(style.PointLabels(zoom)))
			fmt.Fprintf(out, "area labels at z%d:   %d\n", zoom, len(style.AreaLabels(zoom)))
			fmt.Fprintf(out, "point symbols at z%d: %d\n", zoom, len(style.PointSymbols(zoom)))
			fmt.Fprintf(out, "area symbols at z%d:  %d\n", zoom, len(style.AreaSymbols(zoom)))
			return nil
		},
	}
	cmd.Flags().IntVar(&zoom, "zoom", 15, "zoom level for candidate counts")
	return cmd
}

func matchCommand(opts *options) *cobra.Command {
	var (
		zoom   int
		node   bool
		closed bool
		tagkvs []string
	)

	cmd := &cobra.Command{
		Use:   "match <theme.xml>",
		Short: "Show the instructions selected for a feature",
		Long: `Evaluates a feature against the loaded theme and prints the selected
instructions. The feature is a way unless --node is given; tags are
repeatable --tag key=value flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, keys, err := loadTheme(args[0], opts)
			if err != nil {
				return err
			}

			tags, err := parseTags(tagkvs, keys)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if node {
				for _, c := range style.Circles(zoom, tags) {
					fmt.Fprintf(out, "circle  z=%-3d r=%.1f\n", c.ZOrder(), c.Radius(zoom))
				}
				printLabels(out, style.PointLabels(zoom), tags, keys, "caption")
				for _, s := range style.PointSymbols(zoom) {
					if s.Rule().Match(tags) {
						fmt.Fprintf(out, "symbol  prio=%-3d src=%s\n", s.Priority(), s.Source())
					}
				}
				return nil
			}

			for _, p := range style.Paths(zoom, closed, tags) {
				pen := p.Pen(zoom)
				kind := "line"
				if p.Area() {
					kind = "area"
				}
				fmt.Fprintf(out, "%-7s z=%-3d width=%.1f color=%v\n",
					kind, p.ZOrder(), pen.Width, pen.Color.Color())
			}
			printLabels(out, style.PathLabels(zoom), tags, keys, "pathText")
			printLabels(out, style.AreaLabels(zoom), tags, keys, "caption")
			for _, s := range style.AreaSymbols(zoom) {
				if s.Rule().Match(tags) {
					fmt.Fprintf(out, "symbol  prio=%-3d src=%s\n", s.Priority(), s.Source())
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&zoom, "zoom", 15, "zoom level")
	cmd.Flags().BoolVar(&node, "node", false, "evaluate a node feature instead of a way")
	cmd.Flags().BoolVar(&closed, "closed", false, "the way is closed (polygon)")
	cmd.Flags().StringArrayVar(&tagkvs, "tag", nil, "feature tag as key=value (repeatable)")
	return cmd
}

// printLabels applies the second half of the label contract: the style
// returns zoom-eligible candidates and the caller re-tests each rule
// against the feature's tags.
func printLabels(out io.Writer, labels []*mapstyle.TextRender, tags []mapstyle.Tag, keys *mapstyle.KeyTable, kind string) {
	for _, l := range labels {
		if l.Rule().Match(tags) {
			fmt.Fprintf(out, "%-7s prio=%-3d key=%s size=%.1f\n",
				kind, l.Priority(), keys.Name(l.Key()), l.Font().Size)
		}
	}
}

func parseTags(kvs []string, keys *mapstyle.KeyTable) ([]mapstyle.Tag, error) {
	tags := make([]mapstyle.Tag, 0, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid tag %q, want key=value", kv)
		}
		tags = append(tags, mapstyle.Tag{Key: keys.Intern(k), Value: v})
	}
	return tags, nil
}
