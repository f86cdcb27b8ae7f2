package admin

import (
	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// RegistryId is the selector of the singleton registry document.
const RegistryId = "access-registry"

// Registry mirrors the on-chain access registry: a single owner, an admin
// flag set, and the two permission sets every privileged call is checked
// against. The owner is always treated as admin.
type Registry struct {
	Id                     string          `json:"id" bson:"id"`
	Owner                  domain.Address  `json:"owner" bson:"owner"`
	Admins                 map[string]bool `json:"admins" bson:"admins"`
	PermittedPaymentTokens map[string]bool `json:"permittedPaymentTokens" bson:"permittedPaymentTokens"`
	PermittedNFTs          map[string]bool `json:"permittedNFTs" bson:"permittedNFTs"`
	Treasury               domain.Address  `json:"treasury" bson:"treasury"`
}

func (r *Registry) IsAdmin(addr domain.Address) bool {
	if r.Owner.Equals(addr) {
		return true
	}
	return r.Admins[addr.ToLowerStr()]
}

func (r *Registry) IsPermittedPaymentToken(token domain.Address) bool {
	return r.PermittedPaymentTokens[token.ToLowerStr()]
}

func (r *Registry) IsPermittedNFT(nft domain.Address) bool {
	return r.PermittedNFTs[nft.ToLowerStr()]
}

type Repo interface {
	Get(ctx.Ctx) (*Registry, error)
	Upsert(ctx.Ctx, *Registry) error
}

type Usecase interface {
	Init(c ctx.Ctx, owner domain.Address) error
	SetAdmin(c ctx.Ctx, caller, addr domain.Address, enable bool) error
	SetPermittedPaymentToken(c ctx.Ctx, caller, token domain.Address, enable bool) error
	SetPermittedNFT(c ctx.Ctx, caller, nft domain.Address, enable bool) error
	SetTreasury(c ctx.Ctx, caller, treasury domain.Address) error
	IsAdmin(c ctx.Ctx, addr domain.Address) (bool, error)
	IsPermittedPaymentToken(c ctx.Ctx, token domain.Address) (bool, error)
	IsPermittedNFT(c ctx.Ctx, nft domain.Address) (bool, error)
	Treasury(c ctx.Ctx) (domain.Address, error)
	Get(c ctx.Ctx) (*Registry, error)
}
