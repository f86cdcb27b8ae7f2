package main

import (
	"time"

	"github.com/spf13/viper"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/auction"
	"github.com/metaversus/goapi/service/query"
	admin_repository "github.com/metaversus/goapi/stores/admin/repository"
	admin_usecase "github.com/metaversus/goapi/stores/admin/usecase"
	auction_repository "github.com/metaversus/goapi/stores/auction/repository"
	auction_usecase "github.com/metaversus/goapi/stores/auction/usecase"
	event_repository "github.com/metaversus/goapi/stores/event/repository"
	fungible_repository "github.com/metaversus/goapi/stores/fungible/repository"
	fungible_usecase "github.com/metaversus/goapi/stores/fungible/usecase"
	nft_repository "github.com/metaversus/goapi/stores/nft/repository"
	nft_usecase "github.com/metaversus/goapi/stores/nft/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/settler/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// The settler periodically ends english auctions whose window elapsed, on
// behalf of their owners.
func main() {
	ctx := bCtx.Background()

	ctx.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	registryRepo := admin_repository.NewRegistryRepo(q)
	adminUC := admin_usecase.New(&admin_usecase.AdminUseCaseCfg{
		RegistryRepo: registryRepo,
	})
	fungibleUC := fungible_usecase.New(&fungible_usecase.FungibleUseCaseCfg{
		TokenRepo:   fungible_repository.NewTokenRepo(q),
		BalanceRepo: fungible_repository.NewBalanceRepo(q),
		AdminUC:     adminUC,
	})
	nftUC := nft_usecase.New(&nft_usecase.NftUseCaseCfg{
		TokenRepo:       nft_repository.NewTokenRepo(q),
		HoldingRepo:     nft_repository.NewHoldingRepo(q),
		AdminUC:         adminUC,
		EventRepo:       event_repository.New(q),
		Erc721Contract:  domain.Address(viper.GetString("contracts.erc721")),
		Erc1155Contract: domain.Address(viper.GetString("contracts.erc1155")),
	})
	auctionRepo := auction_repository.New(q)
	englishUC := auction_usecase.NewEnglish(&auction_usecase.EnglishUseCaseCfg{
		AuctionRepo: auctionRepo,
		FungibleUC:  fungibleUC,
		NftUC:       nftUC,
		EventRepo:   event_repository.New(q),
	})

	interval := viper.GetDuration("settler.interval")
	if interval <= 0 {
		interval = time.Minute
	}
	workers := viper.GetInt("settler.workers")
	if workers <= 0 {
		workers = 4
	}
	pool := goroutines.NewPool(workers)
	defer pool.Release()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		sweep(ctx, auctionRepo, englishUC, pool)
	}
}

func sweep(ctx bCtx.Ctx, auctionRepo auction.Repo, englishUC auction.EnglishUsecase, pool *goroutines.Pool) {
	expired, err := auctionRepo.FindAll(ctx,
		auction.WithKind(auction.KindEnglish),
		auction.WithEnded(false),
		auction.WithEndTimeLT(time.Now()),
	)
	if err != nil {
		ctx.WithField("err", err).Error("auctionRepo.FindAll failed")
		return
	}
	for _, a := range expired {
		a := a
		pool.Schedule(func() {
			if err := englishUC.Settle(ctx, a.Address); err != nil {
				ctx.WithFields(log.Fields{
					"err":     err,
					"address": a.Address,
				}).Error("englishUC.Settle failed")
			}
		})
	}
}
