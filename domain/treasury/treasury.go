package treasury

import (
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// Usecase pays funds out of the treasury account.
type Usecase interface {
	// Distribute moves amount of token from the treasury to the
	// receiver. Caller must be the registry owner or an admin and the
	// token must be a permitted payment token.
	Distribute(c ctx.Ctx, caller, token, to domain.Address, amount decimal.Decimal) error
}
