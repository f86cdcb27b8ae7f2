package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/account"
)

type AccountUseCaseCfg struct {
	AccountRepo account.Repo
}

type impl struct {
	accountRepo account.Repo
}

func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		accountRepo: cfg.AccountRepo,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	acc, err := im.accountRepo.FindOne(c, address)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (im *impl) Create(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	if address.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	acc := &account.Account{
		Address:   address.ToLower(),
		Nonce:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := im.accountRepo.Insert(c, acc); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("accountRepo.Insert failed")
		return nil, err
	}
	return acc, nil
}

func (im *impl) RotateNonce(c ctx.Ctx, address domain.Address) (string, error) {
	if _, err := im.accountRepo.FindOne(c, address); err == domain.ErrNotFound {
		acc, err := im.Create(c, address)
		if err != nil {
			return "", err
		}
		return acc.Nonce, nil
	} else if err != nil {
		return "", err
	}
	nonce := uuid.NewString()
	if err := im.accountRepo.Patch(c, address, account.Patchable{Nonce: &nonce}); err != nil {
		c.WithField("err", err).Error("accountRepo.Patch failed")
		return "", err
	}
	return nonce, nil
}
