package marketplace

import (
	"time"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

type OrderKind int

const (
	OrderKindWallet OrderKind = iota
	OrderKindMarketItem
)

type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusAccepted
	OrderStatusCanceled
)

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusAccepted || s == OrderStatusCanceled
}

// Order is an escrowed offer. The bid amount is pulled into marketplace
// escrow at creation and released on accept, cancel, or downward revision.
// Wallet orders target an off-market asset held by To; market item orders
// target a live listing.
type Order struct {
	Id           int64          `json:"id" bson:"id"`
	Kind         OrderKind      `json:"kind" bson:"kind"`
	Owner        domain.Address `json:"owner" bson:"owner"`
	PaymentToken domain.Address `json:"paymentToken" bson:"paymentToken"`
	BidPrice     string         `json:"bidPrice" bson:"bidPrice"`
	Status       OrderStatus    `json:"status" bson:"status"`
	ExpiredTime  time.Time      `json:"expiredTime" bson:"expiredTime"`

	// wallet order fields
	To      domain.Address `json:"to" bson:"to"`
	Nft     domain.Address `json:"nft" bson:"nft"`
	TokenId domain.TokenId `json:"tokenId" bson:"tokenId"`
	Amount  int64          `json:"amount" bson:"amount"`

	// market item order field
	MarketItemId int64 `json:"marketItemId" bson:"marketItemId"`
}

func (o *Order) Expired(now time.Time) bool {
	return now.After(o.ExpiredTime)
}

type OrderPatchable struct {
	BidPrice    *string      `bson:"bidPrice,omitempty"`
	Status      *OrderStatus `bson:"status,omitempty"`
	ExpiredTime *time.Time   `bson:"expiredTime,omitempty"`
}

type OrderRepo interface {
	FindOne(c ctx.Ctx, id int64) (*Order, error)
	// FindPending returns the bidder's live order for the same target, used
	// by the revision path of make*Order.
	FindPendingWalletOrder(c ctx.Ctx, bidder, nft domain.Address, tokenId domain.TokenId) (*Order, error)
	FindPendingMarketItemOrder(c ctx.Ctx, bidder domain.Address, marketItemId int64) (*Order, error)
	Insert(c ctx.Ctx, order *Order) error
	Patch(c ctx.Ctx, id int64, patchable OrderPatchable) error
	NextId(c ctx.Ctx) (int64, error)
}
