package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/fungible"
)

type FungibleUseCaseCfg struct {
	TokenRepo   fungible.TokenRepo
	BalanceRepo fungible.BalanceRepo
	AdminUC     admin.Usecase
}

type impl struct {
	tokenRepo   fungible.TokenRepo
	balanceRepo fungible.BalanceRepo
	adminUC     admin.Usecase
}

func New(cfg *FungibleUseCaseCfg) fungible.Usecase {
	return &impl{
		tokenRepo:   cfg.TokenRepo,
		balanceRepo: cfg.BalanceRepo,
		adminUC:     cfg.AdminUC,
	}
}

func (im *impl) RegisterToken(c ctx.Ctx, token fungible.Token, treasury domain.Address) error {
	if treasury.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	supply, ok := domain.ParseAmount(token.TotalSupply)
	if !ok || !supply.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if err := im.tokenRepo.Insert(c, &token); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token.Address,
		}).Error("tokenRepo.Insert failed")
		return err
	}
	// whole supply starts at the treasury sink
	return im.credit(c, token.Address, treasury, supply)
}

func (im *impl) BalanceOf(c ctx.Ctx, token, account domain.Address) (decimal.Decimal, error) {
	balance, err := im.balanceRepo.FindOne(c, fungible.BalanceId{Token: token, Account: account})
	if err == domain.ErrNotFound {
		return decimal.Zero, nil
	} else if err != nil {
		c.WithField("err", err).Error("balanceRepo.FindOne failed")
		return decimal.Zero, err
	}
	amount, ok := domain.ParseAmount(balance.Amount)
	if !ok {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

func (im *impl) Transfer(c ctx.Ctx, token, from, to domain.Address, amount decimal.Decimal) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if err := im.debit(c, token, from, amount); err != nil {
		return err
	}
	if err := im.credit(c, token, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
			"to":    to,
		}).Error("credit failed, rolling back debit")
		// restore the source so the transfer stays all-or-nothing
		if rbErr := im.credit(c, token, from, amount); rbErr != nil {
			c.WithField("err", rbErr).Error("rollback credit failed")
		}
		return err
	}
	return nil
}

func (im *impl) Mint(c ctx.Ctx, caller, token, to domain.Address, amount decimal.Decimal) error {
	if isAdmin, err := im.adminUC.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return im.credit(c, token, to, amount)
}

func (im *impl) Burn(c ctx.Ctx, caller, token, from domain.Address, amount decimal.Decimal) error {
	if isAdmin, err := im.adminUC.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return im.debit(c, token, from, amount)
}

func (im *impl) Deposit(c ctx.Ctx, token, to domain.Address, amount decimal.Decimal) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return im.credit(c, token, to, amount)
}

func (im *impl) credit(c ctx.Ctx, token, account domain.Address, amount decimal.Decimal) error {
	current, err := im.BalanceOf(c, token, account)
	if err != nil {
		return err
	}
	balance := &fungible.Balance{
		Token:   token,
		Account: account,
		Amount:  current.Add(amount).String(),
	}
	if err := im.balanceRepo.Upsert(c, balance); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"token":   token,
			"account": account,
		}).Error("balanceRepo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) debit(c ctx.Ctx, token, account domain.Address, amount decimal.Decimal) error {
	current, err := im.BalanceOf(c, token, account)
	if err != nil {
		return err
	}
	if current.LessThan(amount) {
		if token.IsNative() {
			return domain.ErrTransferNativeFail
		}
		return domain.ErrInsufficientBalance
	}
	balance := &fungible.Balance{
		Token:   token,
		Account: account,
		Amount:  current.Sub(amount).String(),
	}
	if err := im.balanceRepo.Upsert(c, balance); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"token":   token,
			"account": account,
		}).Error("balanceRepo.Upsert failed")
		return err
	}
	return nil
}
