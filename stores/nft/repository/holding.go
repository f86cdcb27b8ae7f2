package repository

import (
	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/nft"
	"github.com/metaversus/goapi/service/query"
)

type holdingMongoRepo struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) nft.HoldingRepo {
	return &holdingMongoRepo{q: q}
}

func (r *holdingMongoRepo) FindOne(c bCtx.Ctx, id nft.HoldingId) (*nft.Holding, error) {
	id.Contract = id.Contract.ToLower()
	id.Owner = id.Owner.ToLower()
	holding := &nft.Holding{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(c, domain.TableNftHoldings, qry, holding); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return holding, nil
}

func (r *holdingMongoRepo) Upsert(c bCtx.Ctx, holding *nft.Holding) error {
	holding.Contract = holding.Contract.ToLower()
	holding.Owner = holding.Owner.ToLower()
	selector, err := mongoclient.MakeBsonM(holding.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(c, domain.TableNftHoldings, selector, holding); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  holding.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
