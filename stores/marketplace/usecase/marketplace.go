package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/domain/marketplace"
	"github.com/metaversus/goapi/domain/nft"
)

// timeNow is swapped out by tests to pin the clock.
var timeNow = time.Now

type MarketplaceUseCaseCfg struct {
	MarketItemRepo marketplace.MarketItemRepo
	OrderRepo      marketplace.OrderRepo
	AdminUC        admin.Usecase
	FungibleUC     fungible.Usecase
	NftUC          nft.Usecase
	EventRepo      event.Repo
	// EscrowAccount holds listed assets and escrowed bids between the
	// opening transition and settlement.
	EscrowAccount domain.Address
}

type impl struct {
	marketItemRepo marketplace.MarketItemRepo
	orderRepo      marketplace.OrderRepo
	adminUC        admin.Usecase
	fungibleUC     fungible.Usecase
	nftUC          nft.Usecase
	eventRepo      event.Repo
	escrowAccount  domain.Address
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.Usecase {
	return &impl{
		marketItemRepo: cfg.MarketItemRepo,
		orderRepo:      cfg.OrderRepo,
		adminUC:        cfg.AdminUC,
		fungibleUC:     cfg.FungibleUC,
		nftUC:          cfg.NftUC,
		eventRepo:      cfg.EventRepo,
		escrowAccount:  cfg.EscrowAccount.ToLower(),
	}
}

func (im *impl) Sell(c ctx.Ctx, seller domain.Address, nftAddr domain.Address, tokenId domain.TokenId, amount int64, price string, startTime, endTime time.Time, paymentToken domain.Address, whitelistRoot string) (*marketplace.MarketItem, error) {
	if permitted, err := im.adminUC.IsPermittedNFT(c, nftAddr); err != nil {
		return nil, err
	} else if !permitted {
		return nil, domain.ErrInvalidNftAddress
	}
	if _, err := im.nftUC.URI(c, nftAddr, tokenId); err == domain.ErrNotFound {
		return nil, domain.ErrTokenIsNotExisted
	} else if err != nil {
		return nil, err
	}
	priceDec, ok := domain.ParseAmount(price)
	if !ok || !priceDec.IsPositive() || amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	now := timeNow()
	if !endTime.After(now) || !endTime.After(startTime) {
		return nil, domain.ErrInvalidEndTime
	}
	if err := im.requirePaymentToken(c, paymentToken); err != nil {
		return nil, err
	}
	held, err := im.nftUC.BalanceOf(c, nftAddr, tokenId, seller)
	if err != nil {
		return nil, err
	}
	if held < amount {
		return nil, domain.ErrExceedAmount
	}
	if err := im.nftUC.Transfer(c, nftAddr, tokenId, seller, im.escrowAccount, amount); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"nft":     nftAddr,
			"tokenId": tokenId,
		}).Error("nftUC.Transfer to escrow failed")
		return nil, err
	}
	id, err := im.marketItemRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	item := &marketplace.MarketItem{
		Id:            id,
		Nft:           nftAddr.ToLower(),
		TokenId:       tokenId,
		Amount:        amount,
		Seller:        seller.ToLower(),
		Price:         priceDec.String(),
		PaymentToken:  paymentToken.ToLower(),
		StartTime:     startTime,
		EndTime:       endTime,
		Status:        marketplace.MarketItemStatusListing,
		WhitelistRoot: whitelistRoot,
	}
	if err := im.marketItemRepo.Insert(c, item); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("marketItemRepo.Insert failed")
		return nil, err
	}
	im.emit(c, event.New(event.TypeListed, nftAddr, seller, paymentToken, item.Price).
		WithField("marketItemId", id).
		WithField("tokenId", tokenId.String()))
	return item, nil
}

func (im *impl) Buy(c ctx.Ctx, buyer domain.Address, marketItemId int64, proof []string) error {
	item, err := im.getMarketItem(c, marketItemId)
	if err != nil {
		return err
	}
	if item.Status != marketplace.MarketItemStatusListing {
		return domain.ErrMarketItemIsNotAvailable
	}
	if !item.InWindow(timeNow()) {
		return domain.ErrMarketItemIsNotSelling
	}
	if buyer.Equals(item.Seller) {
		return domain.ErrCanNotBuyYourNFT
	}
	if item.IsPrivate() && !marketplace.VerifyWhitelist(item.WhitelistRoot, proof, buyer) {
		return domain.ErrNotInWhitelist
	}
	price, ok := domain.ParseAmount(item.Price)
	if !ok {
		return domain.ErrInvalidAmount
	}
	plan, err := im.planSettlement(c, item.Nft, item.TokenId, price)
	if err != nil {
		return err
	}
	if err := im.fungibleUC.Transfer(c, item.PaymentToken, buyer, im.escrowAccount, price); err != nil {
		return err
	}
	if err := im.nftUC.Transfer(c, item.Nft, item.TokenId, im.escrowAccount, buyer, item.Amount); err != nil {
		im.refundEscrow(c, item.PaymentToken, buyer, price)
		return err
	}
	if err := im.paySettlement(c, item.PaymentToken, item.Seller, plan); err != nil {
		// put the asset back under the listing and return the buyer's funds
		if rbErr := im.nftUC.Transfer(c, item.Nft, item.TokenId, buyer, im.escrowAccount, item.Amount); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  item.Id,
			}).Error("nftUC.Transfer back to escrow failed")
		}
		im.refundEscrow(c, item.PaymentToken, buyer, price)
		return err
	}
	status := marketplace.MarketItemStatusSold
	patch := marketplace.MarketItemPatchable{Buyer: buyer.ToLowerPtr(), Status: &status}
	if err := im.marketItemRepo.Patch(c, item.Id, patch); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  item.Id,
		}).Error("marketItemRepo.Patch failed")
		return err
	}
	im.emit(c, event.New(event.TypeBought, item.Nft, buyer, item.PaymentToken, item.Price).
		WithField("marketItemId", item.Id).
		WithField("seller", item.Seller.ToLowerStr()))
	return nil
}

func (im *impl) CancelSell(c ctx.Ctx, caller domain.Address, marketItemId int64) error {
	item, err := im.getMarketItem(c, marketItemId)
	if err != nil {
		return err
	}
	if !caller.Equals(item.Seller) {
		return domain.ErrNotTheSeller
	}
	if item.Status != marketplace.MarketItemStatusListing {
		return domain.ErrMarketItemIsNotAvailable
	}
	if err := im.nftUC.Transfer(c, item.Nft, item.TokenId, im.escrowAccount, item.Seller, item.Amount); err != nil {
		return err
	}
	status := marketplace.MarketItemStatusCanceled
	if err := im.marketItemRepo.Patch(c, item.Id, marketplace.MarketItemPatchable{Status: &status}); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeCancelSell, item.Nft, caller, item.PaymentToken, item.Price).
		WithField("marketItemId", item.Id))
	return nil
}

func (im *impl) SellAvailableInMarketplace(c ctx.Ctx, caller domain.Address, marketItemId int64, price string, startTime, endTime time.Time) error {
	item, err := im.getMarketItem(c, marketItemId)
	if err != nil {
		return err
	}
	if !caller.Equals(item.Seller) {
		return domain.ErrNotTheSeller
	}
	if item.Status != marketplace.MarketItemStatusListing {
		return domain.ErrMarketItemIsNotAvailable
	}
	now := timeNow()
	// re-listing is only allowed once the prior window elapsed
	if now.Before(item.EndTime) {
		return domain.ErrOrderIsExpired
	}
	priceDec, ok := domain.ParseAmount(price)
	if !ok || !priceDec.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if !endTime.After(now) || !endTime.After(startTime) {
		return domain.ErrInvalidEndTime
	}
	newPrice := priceDec.String()
	patch := marketplace.MarketItemPatchable{
		Price:     &newPrice,
		StartTime: &startTime,
		EndTime:   &endTime,
	}
	if err := im.marketItemRepo.Patch(c, item.Id, patch); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeListed, item.Nft, caller, item.PaymentToken, newPrice).
		WithField("marketItemId", item.Id).
		WithField("relisted", true))
	return nil
}

func (im *impl) MakeWalletOrder(c ctx.Ctx, bidder domain.Address, paymentToken domain.Address, bidPrice string, to domain.Address, nftAddr domain.Address, tokenId domain.TokenId, amount int64, expiredTime time.Time) (*marketplace.Order, error) {
	if err := im.requirePaymentToken(c, paymentToken); err != nil {
		return nil, err
	}
	bid, ok := domain.ParseAmount(bidPrice)
	if !ok || !bid.IsPositive() || amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if to.IsEmpty() || to.Equals(nftAddr) {
		return nil, domain.ErrInvalidWallet
	}
	if !expiredTime.After(timeNow()) {
		return nil, domain.ErrInvalidOrderTime
	}
	if bidder.Equals(to) {
		return nil, domain.ErrUserCanNotOffer
	}
	existing, err := im.orderRepo.FindPendingWalletOrder(c, bidder, nftAddr, tokenId)
	if err == nil {
		return im.reviseOrder(c, existing, paymentToken, bid, expiredTime)
	} else if err != domain.ErrNotFound {
		return nil, err
	}
	if err := im.fungibleUC.Transfer(c, paymentToken, bidder, im.escrowAccount, bid); err != nil {
		return nil, err
	}
	id, err := im.orderRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	order := &marketplace.Order{
		Id:           id,
		Kind:         marketplace.OrderKindWallet,
		Owner:        bidder.ToLower(),
		PaymentToken: paymentToken.ToLower(),
		BidPrice:     bid.String(),
		Status:       marketplace.OrderStatusPending,
		ExpiredTime:  expiredTime,
		To:           to.ToLower(),
		Nft:          nftAddr.ToLower(),
		TokenId:      tokenId,
		Amount:       amount,
	}
	if err := im.orderRepo.Insert(c, order); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("orderRepo.Insert failed")
		return nil, err
	}
	im.emit(c, event.New(event.TypeOfferMade, nftAddr, bidder, paymentToken, order.BidPrice).
		WithField("orderId", id))
	return order, nil
}

func (im *impl) MakeMarketItemOrder(c ctx.Ctx, bidder domain.Address, marketItemId int64, bidPrice string, expiredTime time.Time, proof []string) (*marketplace.Order, error) {
	item, err := im.getMarketItem(c, marketItemId)
	if err != nil {
		return nil, err
	}
	if item.Status != marketplace.MarketItemStatusListing {
		return nil, domain.ErrMarketItemIsNotAvailable
	}
	now := timeNow()
	if !item.InWindow(now) {
		return nil, domain.ErrNotInTheOrderTime
	}
	if bidder.Equals(item.Seller) {
		return nil, domain.ErrUserCanNotOffer
	}
	if item.IsPrivate() && !marketplace.VerifyWhitelist(item.WhitelistRoot, proof, bidder) {
		return nil, domain.ErrNotInWhitelist
	}
	bid, ok := domain.ParseAmount(bidPrice)
	if !ok || !bid.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !expiredTime.After(now) {
		return nil, domain.ErrInvalidOrderTime
	}
	existing, err := im.orderRepo.FindPendingMarketItemOrder(c, bidder, marketItemId)
	if err == nil {
		return im.reviseOrder(c, existing, item.PaymentToken, bid, expiredTime)
	} else if err != domain.ErrNotFound {
		return nil, err
	}
	if err := im.fungibleUC.Transfer(c, item.PaymentToken, bidder, im.escrowAccount, bid); err != nil {
		return nil, err
	}
	id, err := im.orderRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	order := &marketplace.Order{
		Id:           id,
		Kind:         marketplace.OrderKindMarketItem,
		Owner:        bidder.ToLower(),
		PaymentToken: item.PaymentToken,
		BidPrice:     bid.String(),
		Status:       marketplace.OrderStatusPending,
		ExpiredTime:  expiredTime,
		MarketItemId: marketItemId,
	}
	if err := im.orderRepo.Insert(c, order); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("orderRepo.Insert failed")
		return nil, err
	}
	im.emit(c, event.New(event.TypeOfferMade, item.Nft, bidder, item.PaymentToken, order.BidPrice).
		WithField("orderId", id).
		WithField("marketItemId", marketItemId))
	return order, nil
}

func (im *impl) AcceptOrder(c ctx.Ctx, caller domain.Address, orderId int64, acceptPrice string) error {
	order, err := im.getOrder(c, orderId)
	if err != nil {
		return err
	}
	if order.Status != marketplace.OrderStatusPending {
		return domain.ErrOrderIsNotAvailable
	}
	if order.Expired(timeNow()) {
		return domain.ErrOrderIsExpired
	}
	bid, ok := domain.ParseAmount(order.BidPrice)
	if !ok {
		return domain.ErrInvalidAmount
	}
	accept, ok := domain.ParseAmount(acceptPrice)
	if !ok || !accept.Equal(bid) {
		return domain.ErrNotEqualPrice
	}

	var nftAddr domain.Address
	var tokenId domain.TokenId
	var amount int64
	var item *marketplace.MarketItem
	switch order.Kind {
	case marketplace.OrderKindWallet:
		if !caller.Equals(order.To) {
			return domain.ErrNotTheSeller
		}
		nftAddr, tokenId, amount = order.Nft, order.TokenId, order.Amount
		held, err := im.nftUC.BalanceOf(c, nftAddr, tokenId, caller)
		if err != nil {
			return err
		}
		if held < amount {
			return domain.ErrExceedAmount
		}
	case marketplace.OrderKindMarketItem:
		item, err = im.getMarketItem(c, order.MarketItemId)
		if err != nil {
			return err
		}
		if !caller.Equals(item.Seller) {
			return domain.ErrNotTheSeller
		}
		if item.Status != marketplace.MarketItemStatusListing {
			return domain.ErrMarketItemIsNotAvailable
		}
		nftAddr, tokenId, amount = item.Nft, item.TokenId, item.Amount
	default:
		return domain.ErrBadParamInput
	}

	// the bid is already escrowed, settlement splits it
	plan, err := im.planSettlement(c, nftAddr, tokenId, bid)
	if err != nil {
		return err
	}
	assetSource := caller
	if order.Kind == marketplace.OrderKindMarketItem {
		assetSource = im.escrowAccount
	}
	if err := im.nftUC.Transfer(c, nftAddr, tokenId, assetSource, order.Owner, amount); err != nil {
		return err
	}
	if err := im.paySettlement(c, order.PaymentToken, caller, plan); err != nil {
		// the bid stays escrowed; hand the asset back to where it came from
		if rbErr := im.nftUC.Transfer(c, nftAddr, tokenId, order.Owner, assetSource, amount); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  order.Id,
			}).Error("nftUC.Transfer back after settlement failure failed")
		}
		return err
	}
	status := marketplace.OrderStatusAccepted
	if err := im.orderRepo.Patch(c, order.Id, marketplace.OrderPatchable{Status: &status}); err != nil {
		return err
	}
	if item != nil {
		sold := marketplace.MarketItemStatusSold
		patch := marketplace.MarketItemPatchable{Buyer: order.Owner.ToLowerPtr(), Status: &sold}
		if err := im.marketItemRepo.Patch(c, item.Id, patch); err != nil {
			return err
		}
	}
	im.emit(c, event.New(event.TypeOfferAccepted, nftAddr, order.Owner, order.PaymentToken, order.BidPrice).
		WithField("orderId", order.Id).
		WithField("seller", caller.ToLowerStr()))
	return nil
}

func (im *impl) CancelOrder(c ctx.Ctx, caller domain.Address, orderId int64) error {
	order, err := im.getOrder(c, orderId)
	if err != nil {
		return err
	}
	if !caller.Equals(order.Owner) {
		return domain.ErrNotTheOwnerOfOrder
	}
	if order.Status != marketplace.OrderStatusPending {
		return domain.ErrOrderIsNotAvailable
	}
	bid, ok := domain.ParseAmount(order.BidPrice)
	if !ok {
		return domain.ErrInvalidAmount
	}
	if err := im.fungibleUC.Transfer(c, order.PaymentToken, im.escrowAccount, order.Owner, bid); err != nil {
		return err
	}
	status := marketplace.OrderStatusCanceled
	if err := im.orderRepo.Patch(c, order.Id, marketplace.OrderPatchable{Status: &status}); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeOfferCanceled, order.Nft, caller, order.PaymentToken, order.BidPrice).
		WithField("orderId", order.Id))
	return nil
}

func (im *impl) GetMarketItem(c ctx.Ctx, marketItemId int64) (*marketplace.MarketItem, error) {
	return im.getMarketItem(c, marketItemId)
}

func (im *impl) GetOrder(c ctx.Ctx, orderId int64) (*marketplace.Order, error) {
	return im.getOrder(c, orderId)
}

func (im *impl) WasBuyer(c ctx.Ctx, account domain.Address) (bool, error) {
	items, err := im.marketItemRepo.FindAll(c,
		marketplace.WithBuyer(account),
		marketplace.WithStatus(marketplace.MarketItemStatusSold),
	)
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

func (im *impl) getMarketItem(c ctx.Ctx, id int64) (*marketplace.MarketItem, error) {
	item, err := im.marketItemRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidMarketItemId
	} else if err != nil {
		c.WithField("err", err).Error("marketItemRepo.FindOne failed")
		return nil, err
	}
	return item, nil
}

func (im *impl) getOrder(c ctx.Ctx, id int64) (*marketplace.Order, error) {
	order, err := im.orderRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidOrderId
	} else if err != nil {
		c.WithField("err", err).Error("orderRepo.FindOne failed")
		return nil, err
	}
	return order, nil
}

// requirePaymentToken consults the registry for every token, the native
// zero address included; natives trade only when an admin permitted them.
func (im *impl) requirePaymentToken(c ctx.Ctx, token domain.Address) error {
	permitted, err := im.adminUC.IsPermittedPaymentToken(c, token)
	if err != nil {
		return err
	}
	if !permitted {
		return domain.ErrPaymentTokenIsNotSupported
	}
	return nil
}

// reviseOrder adjusts a live order in place: upward revisions pull the
// difference into escrow, downward ones refund it.
func (im *impl) reviseOrder(c ctx.Ctx, order *marketplace.Order, paymentToken domain.Address, bid decimal.Decimal, expiredTime time.Time) (*marketplace.Order, error) {
	if !order.PaymentToken.Equals(paymentToken) {
		return nil, domain.ErrCanNotUpdatePaymentToken
	}
	prev, ok := domain.ParseAmount(order.BidPrice)
	if !ok {
		return nil, domain.ErrInvalidAmount
	}
	switch {
	case bid.GreaterThan(prev):
		if err := im.fungibleUC.Transfer(c, paymentToken, order.Owner, im.escrowAccount, bid.Sub(prev)); err != nil {
			return nil, err
		}
	case bid.LessThan(prev):
		if err := im.fungibleUC.Transfer(c, paymentToken, im.escrowAccount, order.Owner, prev.Sub(bid)); err != nil {
			return nil, err
		}
	}
	newBid := bid.String()
	patch := marketplace.OrderPatchable{BidPrice: &newBid, ExpiredTime: &expiredTime}
	if err := im.orderRepo.Patch(c, order.Id, patch); err != nil {
		return nil, err
	}
	order.BidPrice = newBid
	order.ExpiredTime = expiredTime
	im.emit(c, event.New(event.TypeOfferMade, order.Nft, order.Owner, paymentToken, newBid).
		WithField("orderId", order.Id).
		WithField("revised", true))
	return order, nil
}

// settlement is the precomputed split of a sale price: the listing fee and
// any royalty go to the treasury, the remainder to the seller. The two parts
// sum to the price.
type settlement struct {
	net      decimal.Decimal
	platform decimal.Decimal
	treasury domain.Address
}

// planSettlement does the read-only lookups of a settlement up front, before
// any funds move, so a lookup failure can never strand escrowed value.
func (im *impl) planSettlement(c ctx.Ctx, nftAddr domain.Address, tokenId domain.TokenId, price decimal.Decimal) (settlement, error) {
	fee := marketplace.ListingFee(price)
	_, royalty, err := im.nftUC.RoyaltyInfo(c, nftAddr, tokenId, price.Sub(fee))
	if err != nil {
		return settlement{}, err
	}
	treasury, err := im.adminUC.Treasury(c)
	if err != nil {
		return settlement{}, err
	}
	return settlement{
		net:      price.Sub(fee).Sub(royalty),
		platform: fee.Add(royalty),
		treasury: treasury,
	}, nil
}

// paySettlement moves a planned settlement out of escrow. If the platform leg
// fails after the seller leg succeeded, the seller leg is pulled back so the
// caller sees escrow holding the full price again.
func (im *impl) paySettlement(c ctx.Ctx, paymentToken domain.Address, seller domain.Address, plan settlement) error {
	if plan.net.IsPositive() {
		if err := im.fungibleUC.Transfer(c, paymentToken, im.escrowAccount, seller, plan.net); err != nil {
			return err
		}
	}
	if plan.platform.IsPositive() {
		if err := im.fungibleUC.Transfer(c, paymentToken, im.escrowAccount, plan.treasury, plan.platform); err != nil {
			if plan.net.IsPositive() {
				if rbErr := im.fungibleUC.Transfer(c, paymentToken, seller, im.escrowAccount, plan.net); rbErr != nil {
					c.WithFields(log.Fields{
						"err":    rbErr,
						"seller": seller,
						"amount": plan.net.String(),
					}).Error("settlement rollback to escrow failed")
				}
			}
			return err
		}
	}
	return nil
}

func (im *impl) refundEscrow(c ctx.Ctx, paymentToken domain.Address, to domain.Address, amount decimal.Decimal) {
	if err := im.fungibleUC.Transfer(c, paymentToken, im.escrowAccount, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount.String(),
		}).Error("escrow refund failed")
	}
}

func (im *impl) emit(c ctx.Ctx, ev *event.Event) {
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
}
