package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	bValidator "github.com/metaversus/goapi/base/validator"
	"github.com/metaversus/goapi/domain"
	mmiddleware "github.com/metaversus/goapi/middleware"
	"github.com/metaversus/goapi/service/query"
	account_delivery "github.com/metaversus/goapi/stores/account/delivery/http"
	account_repository "github.com/metaversus/goapi/stores/account/repository"
	account_usecase "github.com/metaversus/goapi/stores/account/usecase"
	admin_delivery "github.com/metaversus/goapi/stores/admin/delivery/http"
	admin_repository "github.com/metaversus/goapi/stores/admin/repository"
	admin_usecase "github.com/metaversus/goapi/stores/admin/usecase"
	auction_delivery "github.com/metaversus/goapi/stores/auction/delivery/http"
	auction_repository "github.com/metaversus/goapi/stores/auction/repository"
	auction_usecase "github.com/metaversus/goapi/stores/auction/usecase"
	auth_delivery "github.com/metaversus/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/metaversus/goapi/stores/auth/usecase"
	collection_delivery "github.com/metaversus/goapi/stores/collection/delivery/http"
	collection_repository "github.com/metaversus/goapi/stores/collection/repository"
	collection_usecase "github.com/metaversus/goapi/stores/collection/usecase"
	event_delivery "github.com/metaversus/goapi/stores/event/delivery/http"
	event_repository "github.com/metaversus/goapi/stores/event/repository"
	fungible_delivery "github.com/metaversus/goapi/stores/fungible/delivery/http"
	fungible_repository "github.com/metaversus/goapi/stores/fungible/repository"
	fungible_usecase "github.com/metaversus/goapi/stores/fungible/usecase"
	marketplace_delivery "github.com/metaversus/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/metaversus/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/metaversus/goapi/stores/marketplace/usecase"
	nft_delivery "github.com/metaversus/goapi/stores/nft/delivery/http"
	nft_repository "github.com/metaversus/goapi/stores/nft/repository"
	nft_usecase "github.com/metaversus/goapi/stores/nft/usecase"
	staking_delivery "github.com/metaversus/goapi/stores/staking/delivery/http"
	staking_repository "github.com/metaversus/goapi/stores/staking/repository"
	staking_usecase "github.com/metaversus/goapi/stores/staking/usecase"
	treasury_usecase "github.com/metaversus/goapi/stores/treasury/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	mmiddleware.SetupCache()

	// construct repository, usecase and delivery
	registryRepo := admin_repository.NewRegistryRepo(q)
	fungibleTokenRepo := fungible_repository.NewTokenRepo(q)
	fungibleBalanceRepo := fungible_repository.NewBalanceRepo(q)
	nftTokenRepo := nft_repository.NewTokenRepo(q)
	nftHoldingRepo := nft_repository.NewHoldingRepo(q)
	collectionRepo := collection_repository.New(q)
	marketItemRepo := marketplace_repository.NewMarketItemRepo(q)
	orderRepo := marketplace_repository.NewOrderRepo(q)
	auctionRepo := auction_repository.New(q)
	poolRepo := staking_repository.NewPoolRepo(q)
	positionRepo := staking_repository.NewPositionRepo(q)
	eventRepo := event_repository.New(q)
	accountRepo := account_repository.New(q)

	adminUC := admin_usecase.New(&admin_usecase.AdminUseCaseCfg{
		RegistryRepo: registryRepo,
	})
	fungibleUC := fungible_usecase.New(&fungible_usecase.FungibleUseCaseCfg{
		TokenRepo:   fungibleTokenRepo,
		BalanceRepo: fungibleBalanceRepo,
		AdminUC:     adminUC,
	})
	treasuryUC := treasury_usecase.New(&treasury_usecase.TreasuryUseCaseCfg{
		AdminUC:    adminUC,
		FungibleUC: fungibleUC,
		EventRepo:  eventRepo,
	})
	nftUC := nft_usecase.New(&nft_usecase.NftUseCaseCfg{
		TokenRepo:       nftTokenRepo,
		HoldingRepo:     nftHoldingRepo,
		AdminUC:         adminUC,
		EventRepo:       eventRepo,
		Erc721Contract:  domain.Address(viper.GetString("contracts.erc721")),
		Erc1155Contract: domain.Address(viper.GetString("contracts.erc1155")),
	})
	collectionUC := collection_usecase.New(&collection_usecase.CollectionUseCaseCfg{
		CollectionRepo: collectionRepo,
		AdminUC:        adminUC,
	})
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		MarketItemRepo: marketItemRepo,
		OrderRepo:      orderRepo,
		AdminUC:        adminUC,
		FungibleUC:     fungibleUC,
		NftUC:          nftUC,
		EventRepo:      eventRepo,
		EscrowAccount:  domain.Address(viper.GetString("contracts.marketplaceEscrow")),
	})
	auctionFactoryUC := auction_usecase.NewFactory(&auction_usecase.FactoryUseCaseCfg{
		AuctionRepo: auctionRepo,
		AdminUC:     adminUC,
		NftUC:       nftUC,
	})
	englishUC := auction_usecase.NewEnglish(&auction_usecase.EnglishUseCaseCfg{
		AuctionRepo: auctionRepo,
		FungibleUC:  fungibleUC,
		NftUC:       nftUC,
		EventRepo:   eventRepo,
	})
	dutchUC := auction_usecase.NewDutch(&auction_usecase.DutchUseCaseCfg{
		AuctionRepo: auctionRepo,
		FungibleUC:  fungibleUC,
		NftUC:       nftUC,
		EventRepo:   eventRepo,
	})
	stakingUC := staking_usecase.New(&staking_usecase.StakingUseCaseCfg{
		PoolRepo:     poolRepo,
		PositionRepo: positionRepo,
		AdminUC:      adminUC,
		FungibleUC:   fungibleUC,
		EventRepo:    eventRepo,
	})
	accountUC := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		AccountRepo: accountRepo,
	})
	authUC := auth_usecase.New(viper.GetString("auth.jwtSecret"), accountUC)

	authMiddleware := auth_middleware.New(authUC, adminUC)

	auth_delivery.New(e, authUC, accountUC, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, accountUC)
	admin_delivery.New(e, authMiddleware, adminUC, treasuryUC)
	fungible_delivery.New(e, authMiddleware, fungibleUC)
	nft_delivery.New(e, authMiddleware, nftUC)
	collection_delivery.New(e, authMiddleware, collectionUC)
	marketplace_delivery.New(e, authMiddleware, marketplaceUC)
	auction_delivery.New(e, authMiddleware, auctionFactoryUC, englishUC, dutchUC)
	staking_delivery.New(e, authMiddleware, stakingUC)
	event_delivery.New(e, eventRepo)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
