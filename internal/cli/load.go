package cli

import (
	"context"

	"github.com/spf13/cobra"

	"insightboard/internal/bootstrap"
	"insightboard/internal/insight/loader"
	"insightboard/internal/platform/config"
)

func newLoadCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [source]",
		Short: "Replace the stored records with a JSON array",
		Long: `Load reads a JSON array of insight documents from a local file or an
s3://bucket/key object and replaces the record store contents with it.
Cached views are cleared when a view cache is configured.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			location := a.cfg.Loader.Source
			if len(args) == 1 {
				location = args[0]
			}

			st, closeStore, err := bootstrap.OpenStore(ctx, a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore(context.WithoutCancel(ctx)) }()

			opts := []loader.Option{loader.WithLogger(a.logger)}
			if a.cfg.Cache.Driver == config.CacheMemory {
				// The memory cache lives inside the server process.
				a.logger.WarnContext(ctx, "memory view cache cannot be cleared from insightctl; server views refresh after cache.ttl",
					"cache_ttl", a.cfg.Cache.TTL.String(),
				)
			} else {
				c, closeCache, err := bootstrap.OpenCache(ctx, a.cfg)
				if err != nil {
					return err
				}
				defer func() { _ = closeCache(context.WithoutCancel(ctx)) }()
				if c != nil {
					opts = append(opts, loader.WithCache(c))
				}
			}

			src, err := loader.OpenSource(ctx, location, a.cfg.S3)
			if err != nil {
				return err
			}
			_, err = loader.New(st, opts...).Load(ctx, src)
			return err
		},
	}
	cmd.Flags().String("source", "", "path or s3://bucket/key of the JSON array (default from loader.source)")
	cmd.Flags().String("store", "", "record store driver (memory, mongo, postgres)")
	return cmd
}
