package usecase

import (
	"fmt"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/collection"
)

type CollectionUseCaseCfg struct {
	CollectionRepo collection.Repo
	AdminUC        admin.Usecase
}

type impl struct {
	collectionRepo collection.Repo
	adminUC        admin.Usecase
}

func New(cfg *CollectionUseCaseCfg) collection.Usecase {
	return &impl{
		collectionRepo: cfg.CollectionRepo,
		adminUC:        cfg.AdminUC,
	}
}

func (im *impl) Create(c ctx.Ctx, caller domain.Address, typ domain.TokenType, name, symbol string, royaltyReceiver domain.Address, royaltyBps int64) (*collection.CollectionInfo, error) {
	if !typ.Valid() {
		return nil, domain.ErrBadParamInput
	}
	if caller.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	state, err := im.getState(c)
	if err != nil {
		return nil, err
	}
	total, err := im.collectionRepo.Count(c)
	if err != nil {
		return nil, err
	}
	if int64(total) >= state.MaxCollection {
		return nil, domain.ErrExceedMaxCollection
	}
	owned, err := im.collectionRepo.CountByOwner(c, caller)
	if err != nil {
		return nil, err
	}
	if int64(owned) >= state.UserCap(caller) {
		return nil, domain.ErrExceedMaxCollection
	}
	id, err := im.collectionRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	template := state.TemplateERC721
	if typ == domain.TokenType1155 {
		template = state.TemplateERC1155
	}
	info := &collection.CollectionInfo{
		Id:                id,
		Type:              typ,
		CollectionAddress: domain.DeriveAddress(fmt.Sprintf("collection:%s:%d", template.ToLowerStr(), id)),
		Owner:             caller.ToLower(),
		Name:              name,
		Symbol:            symbol,
		RoyaltyReceiver:   royaltyReceiver.ToLower(),
		RoyaltyBps:        royaltyBps,
	}
	if err := im.collectionRepo.Insert(c, info); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("collectionRepo.Insert failed")
		return nil, err
	}
	return info, nil
}

func (im *impl) SetMaxCollection(c ctx.Ctx, caller domain.Address, max int64) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if max <= 0 {
		return domain.ErrInvalidMaxCollection
	}
	state, err := im.getState(c)
	if err != nil {
		return err
	}
	state.MaxCollection = max
	return im.upsertState(c, state)
}

func (im *impl) SetMaxTotalSupply(c ctx.Ctx, caller domain.Address, max int64) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if max <= 0 {
		return domain.ErrInvalidMaxCollection
	}
	state, err := im.getState(c)
	if err != nil {
		return err
	}
	state.MaxTotalSupply = max
	return im.upsertState(c, state)
}

func (im *impl) SetMaxCollectionOfUser(c ctx.Ctx, caller, user domain.Address, max int64) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if user.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if max <= 0 {
		return domain.ErrInvalidMaxCollection
	}
	state, err := im.getState(c)
	if err != nil {
		return err
	}
	if state.MaxCollectionOfUser == nil {
		state.MaxCollectionOfUser = map[string]int64{}
	}
	state.MaxCollectionOfUser[user.ToLowerStr()] = max
	return im.upsertState(c, state)
}

func (im *impl) SetTemplateAddress(c ctx.Ctx, caller, template721, template1155 domain.Address) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if template721.IsEmpty() || template1155.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	state, err := im.getState(c)
	if err != nil {
		return err
	}
	state.TemplateERC721 = template721.ToLower()
	state.TemplateERC1155 = template1155.ToLower()
	return im.upsertState(c, state)
}

func (im *impl) Get(c ctx.Ctx, id int64) (*collection.CollectionInfo, error) {
	return im.collectionRepo.FindOne(c, id)
}

func (im *impl) GetByUser(c ctx.Ctx, user domain.Address) ([]*collection.CollectionInfo, error) {
	return im.collectionRepo.FindByOwner(c, user)
}

func (im *impl) TotalCollection(c ctx.Ctx) (int, error) {
	return im.collectionRepo.Count(c)
}

func (im *impl) requireAdmin(c ctx.Ctx, caller domain.Address) error {
	isAdmin, err := im.adminUC.IsAdmin(c, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.ErrCallerIsNotOwnerOrAdmin
	}
	return nil
}

// getState lazily seeds the factory defaults the first time it is read.
func (im *impl) getState(c ctx.Ctx) (*collection.FactoryState, error) {
	state, err := im.collectionRepo.GetState(c)
	if err == domain.ErrNotFound {
		state = &collection.FactoryState{
			Id:                  collection.FactoryStateId,
			MaxCollection:       collection.DefaultMaxCollection,
			MaxTotalSupply:      collection.DefaultMaxTotalSupply,
			MaxCollectionOfUser: map[string]int64{},
		}
		if err := im.collectionRepo.UpsertState(c, state); err != nil {
			return nil, err
		}
		return state, nil
	} else if err != nil {
		c.WithField("err", err).Error("collectionRepo.GetState failed")
		return nil, err
	}
	return state, nil
}

func (im *impl) upsertState(c ctx.Ctx, state *collection.FactoryState) error {
	if err := im.collectionRepo.UpsertState(c, state); err != nil {
		c.WithField("err", err).Error("collectionRepo.UpsertState failed")
		return err
	}
	return nil
}
