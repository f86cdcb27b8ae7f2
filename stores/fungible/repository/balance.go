package repository

import (
	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/service/query"
)

type balanceMongoRepo struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) fungible.BalanceRepo {
	return &balanceMongoRepo{q: q}
}

func (r *balanceMongoRepo) FindOne(c bCtx.Ctx, id fungible.BalanceId) (*fungible.Balance, error) {
	id.Token = id.Token.ToLower()
	id.Account = id.Account.ToLower()
	balance := &fungible.Balance{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(c, domain.TableFungibleBalances, qry, balance); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return balance, nil
}

func (r *balanceMongoRepo) Upsert(c bCtx.Ctx, balance *fungible.Balance) error {
	balance.Token = balance.Token.ToLower()
	balance.Account = balance.Account.ToLower()
	selector, err := mongoclient.MakeBsonM(balance.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(c, domain.TableFungibleBalances, selector, balance); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  balance.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
