package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/repos"
)

var (
	reposJSON   bool
	reposStatic bool
)

var reposCmd = &cobra.Command{
	Use:   "repos [persona]",
	Short: "Print a persona's project list",
	Long: `Loads the Projects section the way the page does: one fetch of the
persona's public repositories, normalized into display items. A failed fetch
prints an empty list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if reposStatic {
			cfg.GitHub.Mode = config.ProjectsStatic
		}
		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		p, err := pickPersona(lib, name)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		provider := repos.NewProvider(newCatalogs(cfg)(p), logger)
		defer provider.Close()
		items := provider.Load(ctx)

		if reposJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tLANGUAGE\tSTARS\tFORKS\tTAGS\tLINK")
		for _, it := range items {
			lang := "-"
			if it.Language != nil {
				lang = *it.Language
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", it.Title, lang, it.Stars, it.Forks, strings.Join(it.Tags, ","), it.Link)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%d projects (%s)\n", len(items), provider.State())
		return nil
	},
}

func init() {
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "Print the display items as JSON")
	reposCmd.Flags().BoolVar(&reposStatic, "static", false, "Use the curated list instead of GitHub")
	rootCmd.AddCommand(reposCmd)
}
