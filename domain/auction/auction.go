package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

type Kind int

const (
	KindEnglish Kind = iota
	KindDutch
)

// Auction is one cloned auction instance. The instance address is generated
// by the factory and doubles as the escrow account for bids and the asset.
//
// English: HighestBid starts at the reserve; Bids holds the pull-pattern
// refundable balance per outbid bidder. Dutch: the price descends from
// StartingPrice by DecrementStep base units per second until EndTime and
// stays at that floor afterwards. The factory rejects parameters whose floor
// would go below zero inside the window.
type Auction struct {
	Address      domain.Address `json:"address" bson:"address"`
	Kind         Kind           `json:"kind" bson:"kind"`
	Owner        domain.Address `json:"owner" bson:"owner"`
	NftReward    domain.Address `json:"nftReward" bson:"nftReward"`
	NftId        domain.TokenId `json:"nftId" bson:"nftId"`
	PaymentToken domain.Address `json:"paymentToken" bson:"paymentToken"`
	StartTime    time.Time      `json:"startTime" bson:"startTime"`
	EndTime      time.Time      `json:"endTime" bson:"endTime"`
	Ended        bool           `json:"ended" bson:"ended"`

	// english
	HighestBid    string            `json:"highestBid" bson:"highestBid"`
	HighestBidder *domain.Address   `json:"highestBidder" bson:"highestBidder,omitempty"`
	Bids          map[string]string `json:"bids" bson:"bids"`

	// dutch
	StartingPrice string `json:"startingPrice" bson:"startingPrice"`
	DecrementStep int64  `json:"decrementStep" bson:"decrementStep"`
}

// Price returns the dutch price at t: a strictly decreasing linear descent
// from StartingPrice inside the window, constant at the floor afterwards.
func (a *Auction) Price(t time.Time) decimal.Decimal {
	start, _ := decimal.NewFromString(a.StartingPrice)
	if !t.After(a.StartTime) {
		return start
	}
	elapsed := int64(t.Sub(a.StartTime).Seconds())
	duration := int64(a.EndTime.Sub(a.StartTime).Seconds())
	if elapsed > duration {
		elapsed = duration
	}
	discount := decimal.NewFromInt(a.DecrementStep).Mul(decimal.NewFromInt(elapsed))
	price := start.Sub(discount)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// RefundableBid returns the bidder's withdrawable outbid balance.
func (a *Auction) RefundableBid(bidder domain.Address) decimal.Decimal {
	if a.Bids == nil {
		return decimal.Zero
	}
	amt, ok := a.Bids[bidder.ToLowerStr()]
	if !ok {
		return decimal.Zero
	}
	d, _ := decimal.NewFromString(amt)
	return d
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Auction, error)
	Insert(c ctx.Ctx, auction *Auction) error
	// Update replaces the whole document; auction transitions touch several
	// fields at once.
	Update(c ctx.Ctx, auction *Auction) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
}

type findAllOptions struct {
	Kind      *Kind
	Ended     *bool
	EndTimeLT *time.Time
	Owner     *domain.Address
}

type FindAllOptionsFunc func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithKind(kind Kind) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Kind = &kind
		return nil
	}
}

func WithEnded(ended bool) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Ended = &ended
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.EndTimeLT = &t
		return nil
	}
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Owner = owner.ToLowerPtr()
		return nil
	}
}

// FactoryUsecase clones auction instances from the registered templates.
type FactoryUsecase interface {
	CreateEnglishAuction(c ctx.Ctx, owner domain.Address, nft domain.Address, tokenId domain.TokenId, paymentToken domain.Address, startingBid string, startTime, endTime time.Time) (*Auction, error)
	CreateDutchAuction(c ctx.Ctx, owner domain.Address, nft domain.Address, tokenId domain.TokenId, paymentToken domain.Address, startingPrice string, startTime, endTime time.Time, decrementStep int64) (*Auction, error)
	Get(c ctx.Ctx, address domain.Address) (*Auction, error)
}

// EnglishUsecase runs the Created -> Active -> Ended machine of an english
// auction instance.
type EnglishUsecase interface {
	Bid(c ctx.Ctx, auction domain.Address, bidder domain.Address, amount string) error
	Withdraw(c ctx.Ctx, auction domain.Address, bidder domain.Address) error
	End(c ctx.Ctx, auction domain.Address, caller domain.Address) error
	// Settle finalizes an expired auction the owner never ended. Off-chain
	// housekeeping, driven by the sweeper rather than a caller.
	Settle(c ctx.Ctx, auction domain.Address) error
}

type DutchUsecase interface {
	GetPrice(c ctx.Ctx, auction domain.Address, at time.Time) (decimal.Decimal, error)
	Buy(c ctx.Ctx, auction domain.Address, buyer domain.Address, offer string) error
	Withdraw(c ctx.Ctx, auction domain.Address, caller domain.Address) error
}
