package usecase

import (
	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/auction"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/domain/nft"
)

type EnglishUseCaseCfg struct {
	AuctionRepo auction.Repo
	FungibleUC  fungible.Usecase
	NftUC       nft.Usecase
	EventRepo   event.Repo
}

type englishImpl struct {
	auctionRepo auction.Repo
	fungibleUC  fungible.Usecase
	nftUC       nft.Usecase
	eventRepo   event.Repo
}

func NewEnglish(cfg *EnglishUseCaseCfg) auction.EnglishUsecase {
	return &englishImpl{
		auctionRepo: cfg.AuctionRepo,
		fungibleUC:  cfg.FungibleUC,
		nftUC:       cfg.NftUC,
		eventRepo:   cfg.EventRepo,
	}
}

func (im *englishImpl) Bid(c ctx.Ctx, address domain.Address, bidder domain.Address, amount string) error {
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
	bid, ok := domain.ParseAmount(amount)
	if !ok || !bid.IsPositive() {
		return domain.ErrInvalidAmount
	}
	highest, ok := domain.ParseAmount(a.HighestBid)
	if !ok {
		return domain.ErrInvalidAmount
	}
	if !bid.GreaterThan(highest) {
		return domain.ErrAmountBelowHighest
	}
	if err := im.fungibleUC.Transfer(c, a.PaymentToken, bidder, a.Address, bid); err != nil {
		return err
	}
	// the outbid amount becomes withdrawable, never auto-refunded
	if a.HighestBidder != nil {
		if a.Bids == nil {
			a.Bids = map[string]string{}
		}
		prev := a.HighestBidder.ToLowerStr()
		a.Bids[prev] = a.RefundableBid(*a.HighestBidder).Add(highest).String()
	}
	a.HighestBid = bid.String()
	a.HighestBidder = bidder.ToLowerPtr()
	if err := im.auctionRepo.Update(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": a.Address,
		}).Error("auctionRepo.Update failed")
		return err
	}
	im.emit(c, event.New(event.TypeBid, a.Address, bidder, a.PaymentToken, a.HighestBid))
	return nil
}

func (im *englishImpl) Withdraw(c ctx.Ctx, address domain.Address, bidder domain.Address) error {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		return err
	}
	if a.HighestBidder != nil && bidder.Equals(*a.HighestBidder) {
		return domain.ErrHighestBidderNoWithdraw
	}
	refund := a.RefundableBid(bidder)
	if !refund.IsPositive() {
		return nil
	}
	if err := im.fungibleUC.Transfer(c, a.PaymentToken, a.Address, bidder, refund); err != nil {
		return err
	}
	delete(a.Bids, bidder.ToLowerStr())
	if err := im.auctionRepo.Update(c, a); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeWithdrawn, a.Address, bidder, a.PaymentToken, refund.String()))
	return nil
}

func (im *englishImpl) End(c ctx.Ctx, address domain.Address, caller domain.Address) error {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		return err
	}
	if !caller.Equals(a.Owner) {
		return domain.ErrCallerIsNotOwner
	}
	now := timeNow()
	if now.Before(a.StartTime) {
		return domain.ErrAuctionNotStarted
	}
	if a.Ended || !now.Before(a.EndTime) {
		return domain.ErrAuctionEnded
	}
	return im.finalize(c, a)
}

// Settle finalizes an auction whose window elapsed without the owner calling
// End. Housekeeping for the background sweeper; idempotent on ended auctions.
func (im *englishImpl) Settle(c ctx.Ctx, address domain.Address) error {
	a, err := im.auctionRepo.FindOne(c, address)
	if err != nil {
		return err
	}
	if a.Ended {
		return nil
	}
	if timeNow().Before(a.EndTime) {
		return domain.ErrAuctionNotEnded
	}
	return im.finalize(c, a)
}

func (im *englishImpl) finalize(c ctx.Ctx, a *auction.Auction) error {
	a.Ended = true
	winner := a.Owner
	amount := "0"
	if a.HighestBidder != nil {
		winner = *a.HighestBidder
		amount = a.HighestBid
		highest, ok := domain.ParseAmount(a.HighestBid)
		if !ok {
			return domain.ErrInvalidAmount
		}
		if err := im.nftUC.Transfer(c, a.NftReward, a.NftId, a.Address, winner, 1); err != nil {
			return err
		}
		if err := im.fungibleUC.Transfer(c, a.PaymentToken, a.Address, a.Owner, highest); err != nil {
			return err
		}
	} else {
		// no bids: the asset goes back to the owner
		if err := im.nftUC.Transfer(c, a.NftReward, a.NftId, a.Address, a.Owner, 1); err != nil {
			return err
		}
	}
	if err := im.auctionRepo.Update(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": a.Address,
		}).Error("auctionRepo.Update failed")
		return err
	}
	im.emit(c, event.New(event.TypeEnd, a.Address, winner, a.PaymentToken, amount))
	return nil
}

func (im *englishImpl) emit(c ctx.Ctx, ev *event.Event) {
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
}
