package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/auction"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/domain/nft"
)

type DutchUseCaseCfg struct {
	AuctionRepo auction.Repo
	FungibleUC  fungible.Usecase
	NftUC       nft.Usecase
	EventRepo   event.Repo
}

type dutchImpl struct {
	auctionRepo auction.Repo
	fungibleUC  fungible.Usecase
	nftUC       nft.Usecase
	eventRepo   event.Repo
}

func NewDutch(cfg *DutchUseCaseCfg) auction.DutchUsecase {
	return &dutchImpl{
		auctionRepo: cfg.AuctionRepo,
		fungibleUC:  cfg.FungibleUC,
		nftUC:       cfg.NftUC,
		eventRepo:   cfg.EventRepo,
	}
}

func (im *dutchImpl) GetPrice(c ctx.Ctx, address domain.Address, at time.Time) (decimal.Decimal, error) {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Price(at), nil
}

func (im *dutchImpl) Buy(c ctx.Ctx, address domain.Address, buyer domain.Address, offer string) error {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		return err
	}
	now := timeNow()
	if now.Before(a.StartTime) {
		return domain.ErrAuctionNotStarted
	}
	if a.Ended || !now.Before(a.EndTime) {
		return domain.ErrAuctionEnded
	}
	value, ok := domain.ParseAmount(offer)
	if !ok {
		return domain.ErrInvalidAmount
	}
	price := a.Price(now)
	if value.LessThan(price) {
		return domain.ErrValueBelowPrice
	}
	// the buyer is charged the current price, not the offer
	if err := im.fungibleUC.Transfer(c, a.PaymentToken, buyer, a.Address, price); err != nil {
		return err
	}
	if err := im.fungibleUC.Transfer(c, a.PaymentToken, a.Address, a.Owner, price); err != nil {
		return err
	}
	if err := im.nftUC.Transfer(c, a.NftReward, a.NftId, a.Address, buyer, 1); err != nil {
		return err
	}
	a.Ended = true
	if err := im.auctionRepo.Update(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": a.Address,
		}).Error("auctionRepo.Update failed")
		return err
	}
	im.emit(c, event.New(event.TypeBought, a.Address, buyer, a.PaymentToken, price.String()))
	return nil
}

func (im *dutchImpl) Withdraw(c ctx.Ctx, address domain.Address, caller domain.Address) error {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		return err
	}
	if !caller.Equals(a.Owner) {
		return domain.ErrCallerIsNotOwner
	}
	if a.Ended {
		return nil
	}
	if err := im.nftUC.Transfer(c, a.NftReward, a.NftId, a.Address, a.Owner, 1); err != nil {
		return err
	}
	a.Ended = true
	if err := im.auctionRepo.Update(c, a); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeWithdrawn, a.Address, caller, a.PaymentToken, "0"))
	return nil
}

func (im *dutchImpl) emit(c ctx.Ctx, ev *event.Event) {
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
}
