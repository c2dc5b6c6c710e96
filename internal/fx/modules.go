package fx

import (
	"courtside/internal/api"
	"courtside/internal/config"
	"courtside/internal/database"
	"courtside/internal/logger"
	"courtside/internal/repository"
	"courtside/internal/server"
	"courtside/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ProvideCatalog picks the fixture catalog unless a remote catalog API is
// configured.
func ProvideCatalog(cfg *config.Config, log zerolog.Logger) service.Catalog {
	if cfg.CatalogAPIURL != "" {
		log.Info().Str("url", cfg.CatalogAPIURL).Msg("using remote catalog API")
		return api.NewCatalogClient(cfg)
	}
	log.Info().Msg("using fixture catalog")
	return service.NewCatalogService(log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewStateRepository),
	// stores
	fx.Provide(service.NewSessionService),
	fx.Provide(service.NewFavoritesService),
	fx.Provide(ProvideCatalog),
	// server
	fx.Provide(server.New),
)
