package main

import (
	"astro-blog/pkg/config"
	"astro-blog/pkg/handlers"
	"astro-blog/pkg/logging"
	"astro-blog/pkg/services"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search index, sitemap and admin API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			root, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			log := root.GetLogger("content-api")

			posts := services.NewPostStore(cfg.ContentDir, cfg.CacheTTL, root.GetLogger("posts"))
			router := handlers.NewRouter(handlers.NewAPI(cfg, posts, log))

			log.Info("serving content api", "addr", addr, "content_dir", cfg.ContentDir, "admin", cfg.AdminEnabled())
			return router.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides SERVER_BIND and SERVER_PORT)")
	return cmd
}
