package nft

import (
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// Token is one minted token of either shared contract. For 721 tokens the
// holding balance is 0 or 1; 1155 tokens are semi-fungible.
type Token struct {
	Contract        domain.Address   `json:"contract" bson:"contract"`
	TokenId         domain.TokenId   `json:"tokenId" bson:"tokenId"`
	Type            domain.TokenType `json:"type" bson:"type"`
	Uri             string           `json:"uri" bson:"uri"`
	Creator         domain.Address   `json:"creator" bson:"creator"`
	RoyaltyReceiver domain.Address   `json:"royaltyReceiver" bson:"royaltyReceiver"`
	RoyaltyBps      int64            `json:"royaltyBps" bson:"royaltyBps"`
	TotalSupply     int64            `json:"totalSupply" bson:"totalSupply"`
}

type TokenIdentifier struct {
	Contract domain.Address `bson:"contract"`
	TokenId  domain.TokenId `bson:"tokenId"`
}

func (t *Token) ToId() *TokenIdentifier {
	return &TokenIdentifier{Contract: t.Contract, TokenId: t.TokenId}
}

type TokenPatchable struct {
	Uri             *string         `bson:"uri,omitempty"`
	RoyaltyReceiver *domain.Address `bson:"royaltyReceiver,omitempty"`
	RoyaltyBps      *int64          `bson:"royaltyBps,omitempty"`
}

// Holding is a (contract, tokenId, owner) balance row.
type Holding struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Balance  int64          `json:"balance" bson:"balance"`
}

type HoldingId struct {
	Contract domain.Address `bson:"contract"`
	TokenId  domain.TokenId `bson:"tokenId"`
	Owner    domain.Address `bson:"owner"`
}

func (h *Holding) ToId() *HoldingId {
	return &HoldingId{Contract: h.Contract, TokenId: h.TokenId, Owner: h.Owner}
}

type TokenRepo interface {
	FindOne(c ctx.Ctx, id TokenIdentifier) (*Token, error)
	FindByContract(c ctx.Ctx, contract domain.Address) ([]*Token, error)
	Insert(c ctx.Ctx, token *Token) error
	Patch(c ctx.Ctx, id TokenIdentifier, patchable TokenPatchable) error
	// NextTokenId reserves and returns the next id of the running per
	// contract counter.
	NextTokenId(c ctx.Ctx, contract domain.Address) (int64, error)
}

type HoldingRepo interface {
	FindOne(c ctx.Ctx, id HoldingId) (*Holding, error)
	Upsert(c ctx.Ctx, holding *Holding) error
}

// Usecase is the NFT manager: it centralizes minting against the two fixed
// shared token contracts and moves holdings for escrow flows.
type Usecase interface {
	CreateNFT(c ctx.Ctx, caller domain.Address, typ domain.TokenType, to domain.Address, amount int64, uri string) (*Token, error)
	CreateBatchNFT(c ctx.Ctx, caller domain.Address, typ domain.TokenType, to domain.Address, amounts []int64, uris []string) ([]*Token, error)
	CreateBatchNFTWithRoyalties(c ctx.Ctx, caller domain.Address, typ domain.TokenType, to domain.Address, amounts []int64, uris []string, royaltyReceiver domain.Address, royaltyBps int64) ([]*Token, error)
	SetURI(c ctx.Ctx, caller domain.Address, contract domain.Address, tokenId domain.TokenId, uri string) error
	URI(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (string, error)
	BalanceOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error)
	// Transfer moves `amount` units of a holding. 721 tokens always move as
	// a single unit.
	Transfer(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address, amount int64) error
	RoyaltyInfo(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, salePrice decimal.Decimal) (domain.Address, decimal.Decimal, error)
	IsRoyalty(c ctx.Ctx, contract domain.Address) (bool, error)
}
