package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-planner/internal/domain/destination"
	"github.com/yanqian/travel-planner/internal/domain/export"
	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/internal/infra/config"
	infraexport "github.com/yanqian/travel-planner/internal/infra/export"
	"github.com/yanqian/travel-planner/internal/infra/knowledge"
	"github.com/yanqian/travel-planner/internal/infra/trending"
	httpiface "github.com/yanqian/travel-planner/internal/interface/http"
)

func provideLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func providePlannerConfig(cfg *config.Config, loc *time.Location) planner.Config {
	limit := cfg.Trending.TopN
	if limit <= 0 {
		limit = 5
	}
	return planner.Config{
		Location:         loc,
		SimulatedLatency: cfg.Planner.SimulatedLatency,
		TrendingLimit:    limit,
	}
}

// provideKnowledge loads the knowledge base from postgres, a YAML file or the
// embedded catalog, in that order. A failing source falls back to the embedded copy.
func provideKnowledge(cfg *config.Config, logger *slog.Logger) (knowledge.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if dsn := strings.TrimSpace(cfg.Planner.Postgres.DSN); dsn != "" {
		doc, err := loadPostgresKnowledge(ctx, cfg.Planner.Postgres, logger)
		if err == nil {
			logger.Info("knowledge loaded from postgres")
			return doc, nil
		}
		logger.Error("postgres knowledge unavailable, using fallback", "error", err)
	}
	if path := strings.TrimSpace(cfg.Planner.KnowledgePath); path != "" {
		doc, err := knowledge.FileSource{Path: path}.Load(ctx)
		if err == nil {
			logger.Info("knowledge loaded from file", "path", path)
			return doc, nil
		}
		logger.Error("knowledge file unavailable, using embedded catalog", "path", path, "error", err)
	}
	return knowledge.EmbeddedSource{}.Load(ctx)
}

func loadPostgresKnowledge(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (knowledge.Document, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return knowledge.Document{}, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return knowledge.Document{}, err
	}
	// the knowledge base is read once at startup
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return knowledge.Document{}, err
	}
	logger.Debug("postgres knowledge source connected")
	return knowledge.NewPostgresSource(pool).Load(ctx)
}

func provideCatalog(doc knowledge.Document) (*planner.Catalog, error) {
	return planner.NewCatalog(doc.CatalogData)
}

func provideGenerator(catalog *planner.Catalog) *planner.Generator {
	return planner.NewGenerator(catalog, nil)
}

func provideDestinationService(doc knowledge.Document, logger *slog.Logger) (destination.Service, error) {
	return destination.NewService(doc.Destinations, doc.Featured, logger)
}

func provideTrendingStore(cfg *config.Config, logger *slog.Logger) (planner.TrendingStore, func()) {
	if !cfg.Trending.Enabled {
		logger.Info("trending destinations disabled")
		return nil, func() {}
	}
	if cfg.Trending.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return trending.NewMemoryStore(), func() {}
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return trending.NewMemoryStore(), func() {}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("trending valkey store enabled", "addr", cfg.Trending.Redis.Addr)
			return trending.NewValkeyStore(client, cfg.Trending.Redis.Prefix), client.Close
		}
	}
	return trending.NewMemoryStore(), func() {}
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Trending.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Trending.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Trending.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideExportConfig(cfg *config.Config) export.Config {
	return export.Config{PresignTTL: cfg.Export.Storage.PresignTTL}
}

func provideQREncoder() *infraexport.QREncoder {
	return infraexport.NewQREncoder(256)
}

func providePDFRenderer(cfg *config.Config, qr *infraexport.QREncoder) *infraexport.PDFRenderer {
	return infraexport.NewPDFRenderer(cfg.Planner.CurrencySymbol, qr)
}

// provideObjectStorage returns nil when uploads are disabled; exports are then
// served inline.
func provideObjectStorage(cfg *config.Config, logger *slog.Logger) export.ObjectStorage {
	s := cfg.Export.Storage
	if !s.Enabled {
		return nil
	}
	storage, err := infraexport.NewR2Storage(s.Endpoint, s.AccessKey, s.SecretKey, s.Bucket, s.Region, logger)
	if err != nil {
		logger.Error("export storage unavailable, serving pdfs inline", "error", err)
		return nil
	}
	logger.Info("export storage enabled", "bucket", s.Bucket)
	return storage
}

func providePageOptions(cfg *config.Config, loc *time.Location) httpiface.PageOptions {
	return httpiface.PageOptions{
		CurrencySymbol: cfg.Planner.CurrencySymbol,
		PublicBaseURL:  cfg.HTTP.PublicBaseURL,
		Location:       loc,
	}
}
