package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/auction"
	"github.com/metaversus/goapi/domain/nft"
)

// timeNow is swapped out by tests to pin the clock.
var timeNow = time.Now

type FactoryUseCaseCfg struct {
	AuctionRepo auction.Repo
	AdminUC     admin.Usecase
	NftUC       nft.Usecase
}

type factoryImpl struct {
	auctionRepo auction.Repo
	adminUC     admin.Usecase
	nftUC       nft.Usecase
}

func NewFactory(cfg *FactoryUseCaseCfg) auction.FactoryUsecase {
	return &factoryImpl{
		auctionRepo: cfg.AuctionRepo,
		adminUC:     cfg.AdminUC,
		nftUC:       cfg.NftUC,
	}
}

func (im *factoryImpl) CreateEnglishAuction(c ctx.Ctx, owner domain.Address, nftAddr domain.Address, tokenId domain.TokenId, paymentToken domain.Address, startingBid string, startTime, endTime time.Time) (*auction.Auction, error) {
	reserve, ok := domain.ParseAmount(startingBid)
	if !ok || reserve.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	a := &auction.Auction{
		Kind:       auction.KindEnglish,
		HighestBid: reserve.String(),
		Bids:       map[string]string{},
	}
	if err := im.create(c, a, owner, nftAddr, tokenId, paymentToken, startTime, endTime); err != nil {
		return nil, err
	}
	return a, nil
}

func (im *factoryImpl) CreateDutchAuction(c ctx.Ctx, owner domain.Address, nftAddr domain.Address, tokenId domain.TokenId, paymentToken domain.Address, startingPrice string, startTime, endTime time.Time, decrementStep int64) (*auction.Auction, error) {
	start, ok := domain.ParseAmount(startingPrice)
	if !ok || !start.IsPositive() || decrementStep <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	duration := int64(endTime.Sub(startTime).Seconds())
	// the descent must not cross zero inside the window
	maxDiscount := decimal.NewFromInt(duration).Mul(decimal.NewFromInt(decrementStep))
	if start.LessThan(maxDiscount) {
		return nil, domain.ErrInvalidAmount
	}
	a := &auction.Auction{
		Kind:          auction.KindDutch,
		StartingPrice: start.String(),
		DecrementStep: decrementStep,
	}
	if err := im.create(c, a, owner, nftAddr, tokenId, paymentToken, startTime, endTime); err != nil {
		return nil, err
	}
	return a, nil
}

func (im *factoryImpl) Get(c ctx.Ctx, address domain.Address) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("auctionRepo.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (im *factoryImpl) create(c ctx.Ctx, a *auction.Auction, owner domain.Address, nftAddr domain.Address, tokenId domain.TokenId, paymentToken domain.Address, startTime, endTime time.Time) error {
	if owner.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if permitted, err := im.adminUC.IsPermittedNFT(c, nftAddr); err != nil {
		return err
	} else if !permitted {
		return domain.ErrInvalidNftAddress
	}
	if permitted, err := im.adminUC.IsPermittedPaymentToken(c, paymentToken); err != nil {
		return err
	} else if !permitted {
		return domain.ErrPaymentTokenIsNotSupported
	}
	if !endTime.After(startTime) || !endTime.After(timeNow()) {
		return domain.ErrInvalidEndTime
	}
	a.Address = domain.DeriveAddress(fmt.Sprintf("auction:%s", uuid.NewString()))
	a.Owner = owner.ToLower()
	a.NftReward = nftAddr.ToLower()
	a.NftId = tokenId
	a.PaymentToken = paymentToken.ToLower()
	a.StartTime = startTime
	a.EndTime = endTime
	if err := im.nftUC.Transfer(c, nftAddr, tokenId, owner, a.Address, 1); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"nft":     nftAddr,
			"tokenId": tokenId,
		}).Error("nftUC.Transfer to auction escrow failed")
		return err
	}
	if err := im.auctionRepo.Insert(c, a); err != nil {
		c.WithField("err", err).Error("auctionRepo.Insert failed")
		return err
	}
	return nil
}
