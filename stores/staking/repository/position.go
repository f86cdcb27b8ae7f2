package repository

import (
	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/staking"
	"github.com/metaversus/goapi/service/query"
)

type positionMongoRepo struct {
	q query.Mongo
}

func NewPositionRepo(q query.Mongo) staking.PositionRepo {
	return &positionMongoRepo{q: q}
}

func (r *positionMongoRepo) FindOne(c bCtx.Ctx, id staking.PositionId) (*staking.Position, error) {
	id.Pool = id.Pool.ToLower()
	id.Owner = id.Owner.ToLower()
	position := &staking.Position{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(c, domain.TableStakingPositions, qry, position); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return position, nil
}

func (r *positionMongoRepo) Upsert(c bCtx.Ctx, position *staking.Position) error {
	position.Pool = position.Pool.ToLower()
	position.Owner = position.Owner.ToLower()
	selector, err := mongoclient.MakeBsonM(position.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(c, domain.TableStakingPositions, selector, position); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  position.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
