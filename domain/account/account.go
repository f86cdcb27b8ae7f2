package account

import (
	"time"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// Account is a wallet known to the mirror. Nonce is the random challenge the
// wallet signs to log in.
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Nonce     string         `json:"nonce" bson:"nonce"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Patchable struct {
	Nonce *string `bson:"nonce,omitempty"`
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Account, error)
	Insert(c ctx.Ctx, account *Account) error
	Patch(c ctx.Ctx, address domain.Address, patchable Patchable) error
}

type Usecase interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Create(c ctx.Ctx, address domain.Address) (*Account, error)
	// RotateNonce issues a fresh login challenge.
	RotateNonce(c ctx.Ctx, address domain.Address) (string, error)
}
