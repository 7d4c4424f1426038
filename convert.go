package main

import (
	"fmt"

	"astro-blog/pkg/config"
	"astro-blog/pkg/services"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var (
		dir    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite legacy frontmatter in the blog content directory",
		Long:  "Rewrite the Hexo-style frontmatter of every .md and .mdx file in the content directory into the Astro content schema. Files already in the Astro schema, and files without frontmatter, are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.ContentDir
			}

			summary, err := services.NewConverter(dir, dryRun, cmd.OutOrStdout()).Run()
			if err != nil {
				return err
			}
			if n := summary.Failed(); n > 0 {
				return fmt.Errorf("%d of %d files could not be converted", n, len(summary.Reports))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Content directory (overrides CONTENT_DIR)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing files")
	return cmd
}
