package fungible

import (
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// Token is a registered fungible payment asset. The native currency is
// represented by the zero-address token and needs no registration.
type Token struct {
	Address     domain.Address `json:"address" bson:"address"`
	Name        string         `json:"name" bson:"name"`
	Symbol      string         `json:"symbol" bson:"symbol"`
	TotalSupply string         `json:"totalSupply" bson:"totalSupply"`
}

// Balance is one (token, account) ledger entry. Amount is a base-unit
// integer carried as a decimal string.
type Balance struct {
	Token   domain.Address `json:"token" bson:"token"`
	Account domain.Address `json:"account" bson:"account"`
	Amount  string         `json:"amount" bson:"amount"`
}

type BalanceId struct {
	Token   domain.Address `bson:"token"`
	Account domain.Address `bson:"account"`
}

func (b *Balance) ToId() *BalanceId {
	return &BalanceId{Token: b.Token, Account: b.Account}
}

type TokenRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Token, error)
	Insert(c ctx.Ctx, token *Token) error
}

type BalanceRepo interface {
	FindOne(c ctx.Ctx, id BalanceId) (*Balance, error)
	Upsert(c ctx.Ctx, balance *Balance) error
}

// Usecase is the fungible balance ledger. Every marketplace settlement,
// auction escrow, and treasury distribution moves value through it.
type Usecase interface {
	// RegisterToken creates the token and mints its total supply to the
	// treasury sink.
	RegisterToken(c ctx.Ctx, token Token, treasury domain.Address) error
	BalanceOf(c ctx.Ctx, token, account domain.Address) (decimal.Decimal, error)
	// Transfer moves amount between accounts, failing without partial
	// effect when the source balance is insufficient.
	Transfer(c ctx.Ctx, token, from, to domain.Address, amount decimal.Decimal) error
	Mint(c ctx.Ctx, caller, token, to domain.Address, amount decimal.Decimal) error
	Burn(c ctx.Ctx, caller, token, from domain.Address, amount decimal.Decimal) error
	// Deposit credits an account out of thin air. It models external funding
	// (native value sent in from outside the mirrored system).
	Deposit(c ctx.Ctx, token, to domain.Address, amount decimal.Decimal) error
}
