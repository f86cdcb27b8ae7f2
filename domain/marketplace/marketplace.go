package marketplace

import (
	"time"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

type MarketItemStatus int

const (
	MarketItemStatusListing MarketItemStatus = iota
	MarketItemStatusSold
	MarketItemStatusCanceled
)

// Terminal reports whether no further transition may touch the item.
func (s MarketItemStatus) Terminal() bool {
	return s == MarketItemStatusSold || s == MarketItemStatusCanceled
}

// MarketItem is one listing. The asset sits in marketplace escrow from Sell
// until the terminal transition hands it to the buyer or back to the seller.
type MarketItem struct {
	Id            int64            `json:"id" bson:"id"`
	Nft           domain.Address   `json:"nft" bson:"nft"`
	TokenId       domain.TokenId   `json:"tokenId" bson:"tokenId"`
	Amount        int64            `json:"amount" bson:"amount"`
	Seller        domain.Address   `json:"seller" bson:"seller"`
	Buyer         *domain.Address  `json:"buyer" bson:"buyer,omitempty"`
	Price         string           `json:"price" bson:"price"`
	PaymentToken  domain.Address   `json:"paymentToken" bson:"paymentToken"`
	StartTime     time.Time        `json:"startTime" bson:"startTime"`
	EndTime       time.Time        `json:"endTime" bson:"endTime"`
	Status        MarketItemStatus `json:"status" bson:"status"`
	WhitelistRoot string           `json:"whitelistRoot" bson:"whitelistRoot"`
}

// Private listings carry a non-empty whitelist root and require a membership
// proof on Buy.
func (m *MarketItem) IsPrivate() bool {
	return m.WhitelistRoot != ""
}

func (m *MarketItem) InWindow(now time.Time) bool {
	return !now.Before(m.StartTime) && now.Before(m.EndTime)
}

type MarketItemPatchable struct {
	Buyer     *domain.Address   `bson:"buyer,omitempty"`
	Price     *string           `bson:"price,omitempty"`
	StartTime *time.Time        `bson:"startTime,omitempty"`
	EndTime   *time.Time        `bson:"endTime,omitempty"`
	Status    *MarketItemStatus `bson:"status,omitempty"`
}

type MarketItemRepo interface {
	FindOne(c ctx.Ctx, id int64) (*MarketItem, error)
	Insert(c ctx.Ctx, item *MarketItem) error
	Patch(c ctx.Ctx, id int64, patchable MarketItemPatchable) error
	NextId(c ctx.Ctx) (int64, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*MarketItem, error)
}

type findAllOptions struct {
	Seller *domain.Address
	Buyer  *domain.Address
	Status *MarketItemStatus
	Nft    *domain.Address
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

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithBuyer(buyer domain.Address) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Buyer = buyer.ToLowerPtr()
		return nil
	}
}

func WithStatus(status MarketItemStatus) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Status = &status
		return nil
	}
}

func WithNft(nft domain.Address) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Nft = nft.ToLowerPtr()
		return nil
	}
}

// Usecase is the listing/buy/offer state machine.
type Usecase interface {
	Sell(c ctx.Ctx, seller domain.Address, nft domain.Address, tokenId domain.TokenId, amount int64, price string, startTime, endTime time.Time, paymentToken domain.Address, whitelistRoot string) (*MarketItem, error)
	Buy(c ctx.Ctx, buyer domain.Address, marketItemId int64, proof []string) error
	CancelSell(c ctx.Ctx, caller domain.Address, marketItemId int64) error
	SellAvailableInMarketplace(c ctx.Ctx, caller domain.Address, marketItemId int64, price string, startTime, endTime time.Time) error
	MakeWalletOrder(c ctx.Ctx, bidder domain.Address, paymentToken domain.Address, bidPrice string, to domain.Address, nft domain.Address, tokenId domain.TokenId, amount int64, expiredTime time.Time) (*Order, error)
	MakeMarketItemOrder(c ctx.Ctx, bidder domain.Address, marketItemId int64, bidPrice string, expiredTime time.Time, proof []string) (*Order, error)
	AcceptOrder(c ctx.Ctx, caller domain.Address, orderId int64, acceptPrice string) error
	CancelOrder(c ctx.Ctx, caller domain.Address, orderId int64) error
	GetMarketItem(c ctx.Ctx, marketItemId int64) (*MarketItem, error)
	GetOrder(c ctx.Ctx, orderId int64) (*Order, error)
	WasBuyer(c ctx.Ctx, account domain.Address) (bool, error)
}
