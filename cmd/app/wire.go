//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/travel-planner/internal/bootstrap"
	"github.com/yanqian/travel-planner/internal/domain/export"
	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/internal/infra/config"
	infraexport "github.com/yanqian/travel-planner/internal/infra/export"
	httpiface "github.com/yanqian/travel-planner/internal/interface/http"
	"github.com/yanqian/travel-planner/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideLocation,
		providePlannerConfig,
		provideKnowledge,
		provideCatalog,
		provideGenerator,
		provideDestinationService,
		provideTrendingStore,
		provideExportConfig,
		provideQREncoder,
		providePDFRenderer,
		provideObjectStorage,
		providePageOptions,
		planner.NewService,
		export.NewService,
		wire.Bind(new(export.PDFRenderer), new(*infraexport.PDFRenderer)),
		wire.Bind(new(export.QREncoder), new(*infraexport.QREncoder)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
