package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/staking"
	"github.com/metaversus/goapi/service/query"
)

type poolMongoRepo struct {
	q query.Mongo
}

func NewPoolRepo(q query.Mongo) staking.PoolRepo {
	return &poolMongoRepo{q: q}
}

func (r *poolMongoRepo) FindOne(c bCtx.Ctx, address domain.Address) (*staking.Pool, error) {
	pool := &staking.Pool{}
	if err := r.q.FindOne(c, domain.TableStakingPools, bson.M{"address": address.ToLower()}, pool); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return pool, nil
}

func (r *poolMongoRepo) Insert(c bCtx.Ctx, pool *staking.Pool) error {
	r.normalize(pool)
	if err := r.q.Insert(c, domain.TableStakingPools, pool); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *poolMongoRepo) Update(c bCtx.Ctx, pool *staking.Pool) error {
	r.normalize(pool)
	if err := r.q.Upsert(c, domain.TableStakingPools, bson.M{"address": pool.Address}, pool); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": pool.Address,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *poolMongoRepo) normalize(pool *staking.Pool) {
	pool.Address = pool.Address.ToLower()
	pool.Owner = pool.Owner.ToLower()
	pool.StakeToken = pool.StakeToken.ToLower()
	pool.RewardToken = pool.RewardToken.ToLower()
}
