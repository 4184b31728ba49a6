package marketplace

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/indexer"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/internal/postgres"
	"github.com/gaze-network/marketplace-indexer/internal/redis"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/api/httphandler"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/decoder"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/memory"
	marketplacepostgres "github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/postgres"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/usecase"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (indexer.IndexerWorker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	moduleConf := conf.Modules.Marketplace

	if !common.IsHexAddress(moduleConf.ContractAddress) {
		return nil, errors.Wrapf(errs.InvalidArgument, "%q is not a valid marketplace contract address", moduleConf.ContractAddress)
	}
	contract := common.HexToAddress(moduleConf.ContractAddress)

	policy, err := projector.ParseMarketRecreatePolicy(moduleConf.MarketRecreatePolicy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid market recreate policy")
	}

	var (
		marketplaceDg datagateway.MarketplaceDataGateway
		indexerInfoDg datagateway.IndexerInfoDataGateway
	)
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(moduleConf.Database) {
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, moduleConf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for indexer")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		marketplaceRepo := marketplacepostgres.NewRepository(pg)
		marketplaceDg = marketplaceRepo
		indexerInfoDg = marketplaceRepo
	case "memory":
		logger.WarnContext(ctx, "Using in-memory database, indexed data will be lost on shutdown")
		marketplaceRepo := memory.NewRepository()
		marketplaceDg = marketplaceRepo
		indexerInfoDg = marketplaceRepo
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for indexer is not supported", moduleConf.Database)
	}

	var (
		marketplaceDatasource datasources.Datasource[*types.Block]
		chainID               int64
	)
	switch strings.ToLower(moduleConf.Datasource) {
	case "ethereum-node":
		ethClient := do.MustInvoke[*ethclient.Client](injector)
		ethereumNodeDatasource := datasources.NewEthereumNode(ethClient, datasources.EthereumNodeConfig{
			Contracts:     []common.Address{contract},
			Confirmations: moduleConf.Confirmations,
			BatchSize:     moduleConf.BatchSize,
		})
		id, err := ethereumNodeDatasource.ChainID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "can't get chain id from datasource")
		}
		chainID = id.Int64()
		marketplaceDatasource = ethereumNodeDatasource
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q datasource is not supported", moduleConf.Datasource)
	}

	eventDecoder, err := decoder.New()
	if err != nil {
		return nil, errors.Wrap(err, "can't create event decoder")
	}

	processor := NewProcessor(
		marketplaceDg,
		indexerInfoDg,
		marketplaceDatasource,
		eventDecoder,
		projector.New(projector.Options{MarketRecreatePolicy: policy}),
		ProcessorConfig{
			ChainID:    chainID,
			Contract:   contract,
			StartBlock: moduleConf.StartBlock,
		},
		cleanupFuncs,
	)
	if err := processor.VerifyStates(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	// Mount API
	apiHandlers := lo.Uniq(moduleConf.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			marketplaceUsecase := usecase.New(marketplaceDg)
			if moduleConf.Redis.Enabled {
				redisClient, err := redis.NewClient(ctx, moduleConf.Redis)
				if err != nil {
					return nil, errors.Wrap(err, "can't create Redis client")
				}
				processor.cleanupFuncs = append(processor.cleanupFuncs, func(context.Context) error {
					return errors.WithStack(redisClient.Close())
				})
				marketplaceUsecase.WithEntityReader(usecase.NewCachedEntityReader(marketplaceDg, redisClient, moduleConf.Redis.CacheTTL()))
				logger.InfoContext(ctx, "Enabled Redis entity cache", slogx.Duration("ttl", moduleConf.Redis.CacheTTL()))
			}
			httpServer := do.MustInvoke[*fiber.App](injector)
			marketplaceHTTPHandler := httphandler.New(marketplaceUsecase)
			if err := marketplaceHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount Marketplace API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	indexer := indexer.New[*types.Block](processor, marketplaceDatasource)
	return indexer, nil
}
