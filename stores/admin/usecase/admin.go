package usecase

import (
	"golang.org/x/xerrors"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
)

type AdminUseCaseCfg struct {
	RegistryRepo admin.Repo
}

type impl struct {
	registryRepo admin.Repo
}

func New(cfg *AdminUseCaseCfg) admin.Usecase {
	return &impl{
		registryRepo: cfg.RegistryRepo,
	}
}

func (im *impl) Init(c ctx.Ctx, owner domain.Address) error {
	if owner.IsEmpty() {
		return xerrors.Errorf("owner %s: %w", owner, domain.ErrInvalidWallet)
	}
	registry := &admin.Registry{
		Owner:                  owner.ToLower(),
		Admins:                 map[string]bool{},
		PermittedPaymentTokens: map[string]bool{},
		PermittedNFTs:          map[string]bool{},
	}
	if err := im.registryRepo.Upsert(c, registry); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("registryRepo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) SetAdmin(c ctx.Ctx, caller, addr domain.Address, enable bool) error {
	registry, err := im.get(c)
	if err != nil {
		return err
	}
	if !registry.Owner.Equals(caller) {
		return domain.ErrCallerIsNotOwner
	}
	if addr.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if enable {
		registry.Admins[addr.ToLowerStr()] = true
	} else {
		delete(registry.Admins, addr.ToLowerStr())
	}
	return im.upsert(c, registry)
}

func (im *impl) SetPermittedPaymentToken(c ctx.Ctx, caller, token domain.Address, enable bool) error {
	registry, err := im.get(c)
	if err != nil {
		return err
	}
	if !registry.IsAdmin(caller) {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	if enable {
		registry.PermittedPaymentTokens[token.ToLowerStr()] = true
	} else {
		delete(registry.PermittedPaymentTokens, token.ToLowerStr())
	}
	return im.upsert(c, registry)
}

func (im *impl) SetPermittedNFT(c ctx.Ctx, caller, nft domain.Address, enable bool) error {
	registry, err := im.get(c)
	if err != nil {
		return err
	}
	if !registry.IsAdmin(caller) {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	if enable {
		registry.PermittedNFTs[nft.ToLowerStr()] = true
	} else {
		delete(registry.PermittedNFTs, nft.ToLowerStr())
	}
	return im.upsert(c, registry)
}

func (im *impl) SetTreasury(c ctx.Ctx, caller, treasury domain.Address) error {
	registry, err := im.get(c)
	if err != nil {
		return err
	}
	if !registry.Owner.Equals(caller) {
		return domain.ErrCallerIsNotOwner
	}
	registry.Treasury = treasury.ToLower()
	return im.upsert(c, registry)
}

func (im *impl) IsAdmin(c ctx.Ctx, addr domain.Address) (bool, error) {
	registry, err := im.get(c)
	if err != nil {
		return false, err
	}
	return registry.IsAdmin(addr), nil
}

func (im *impl) IsPermittedPaymentToken(c ctx.Ctx, token domain.Address) (bool, error) {
	registry, err := im.get(c)
	if err != nil {
		return false, err
	}
	return registry.IsPermittedPaymentToken(token), nil
}

func (im *impl) IsPermittedNFT(c ctx.Ctx, nft domain.Address) (bool, error) {
	registry, err := im.get(c)
	if err != nil {
		return false, err
	}
	return registry.IsPermittedNFT(nft), nil
}

func (im *impl) Treasury(c ctx.Ctx) (domain.Address, error) {
	registry, err := im.get(c)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return registry.Treasury, nil
}

func (im *impl) Get(c ctx.Ctx) (*admin.Registry, error) {
	return im.get(c)
}

func (im *impl) get(c ctx.Ctx) (*admin.Registry, error) {
	registry, err := im.registryRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("registryRepo.Get failed")
		return nil, err
	}
	return registry, nil
}

func (im *impl) upsert(c ctx.Ctx, registry *admin.Registry) error {
	if err := im.registryRepo.Upsert(c, registry); err != nil {
		c.WithField("err", err).Error("registryRepo.Upsert failed")
		return err
	}
	return nil
}
