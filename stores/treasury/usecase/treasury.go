package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/domain/treasury"
)

type TreasuryUseCaseCfg struct {
	AdminUC    admin.Usecase
	FungibleUC fungible.Usecase
	EventRepo  event.Repo
}

type impl struct {
	adminUC    admin.Usecase
	fungibleUC fungible.Usecase
	eventRepo  event.Repo
}

func New(cfg *TreasuryUseCaseCfg) treasury.Usecase {
	return &impl{
		adminUC:    cfg.AdminUC,
		fungibleUC: cfg.FungibleUC,
		eventRepo:  cfg.EventRepo,
	}
}

func (im *impl) Distribute(c ctx.Ctx, caller, token, to domain.Address, amount decimal.Decimal) error {
	if isAdmin, err := im.adminUC.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	if permitted, err := im.adminUC.IsPermittedPaymentToken(c, token); err != nil {
		return err
	} else if !permitted {
		return domain.ErrPaymentTokenIsNotSupported
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	source, err := im.adminUC.Treasury(c)
	if err != nil {
		return err
	}
	if err := im.fungibleUC.Transfer(c, token, source, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"to":     to,
			"amount": amount,
		}).Error("fungibleUC.Transfer failed")
		return err
	}
	ev := event.New(event.TypeDistributed, source, to, token, amount.String())
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
	return nil
}
