package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/account"
	"github.com/metaversus/goapi/service/query"
)

type accountMongoRepo struct {
	q query.Mongo
}

func New(q query.Mongo) account.Repo {
	return &accountMongoRepo{q: q}
}

func (r *accountMongoRepo) FindOne(c bCtx.Ctx, address domain.Address) (*account.Account, error) {
	acc := &account.Account{}
	if err := r.q.FindOne(c, domain.TableAccounts, bson.M{"address": address.ToLower()}, acc); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return acc, nil
}

func (r *accountMongoRepo) Insert(c bCtx.Ctx, acc *account.Account) error {
	acc.Address = acc.Address.ToLower()
	if err := r.q.Insert(c, domain.TableAccounts, acc); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *accountMongoRepo) Patch(c bCtx.Ctx, address domain.Address, patchable account.Patchable) error {
	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableAccounts, bson.M{"address": address.ToLower()}, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
