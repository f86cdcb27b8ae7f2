package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/collection"
	"github.com/metaversus/goapi/service/query"
)

type collectionMongoRepo struct {
	q query.Mongo
}

func New(q query.Mongo) collection.Repo {
	return &collectionMongoRepo{q: q}
}

func (r *collectionMongoRepo) FindOne(c bCtx.Ctx, id int64) (*collection.CollectionInfo, error) {
	info := &collection.CollectionInfo{}
	if err := r.q.FindOne(c, domain.TableCollections, bson.M{"id": id}, info); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return info, nil
}

func (r *collectionMongoRepo) FindByOwner(c bCtx.Ctx, owner domain.Address) ([]*collection.CollectionInfo, error) {
	infos := []*collection.CollectionInfo{}
	qry := bson.M{"owner": owner.ToLower()}
	if err := r.q.Search(c, domain.TableCollections, 0, 0, "id", qry, &infos); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("q.Search failed")
		return nil, err
	}
	return infos, nil
}

func (r *collectionMongoRepo) Insert(c bCtx.Ctx, info *collection.CollectionInfo) error {
	info.CollectionAddress = info.CollectionAddress.ToLower()
	info.Owner = info.Owner.ToLower()
	info.RoyaltyReceiver = info.RoyaltyReceiver.ToLower()
	if err := r.q.Insert(c, domain.TableCollections, info); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *collectionMongoRepo) Count(c bCtx.Ctx) (int, error) {
	n, err := r.q.Count(c, domain.TableCollections, bson.M{})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (r *collectionMongoRepo) CountByOwner(c bCtx.Ctx, owner domain.Address) (int, error) {
	n, err := r.q.Count(c, domain.TableCollections, bson.M{"owner": owner.ToLower()})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

type idCounter struct {
	Key  string `bson:"key"`
	Next int64  `bson:"next"`
}

func (r *collectionMongoRepo) NextId(c bCtx.Ctx) (int64, error) {
	counter := &idCounter{}
	selector := bson.M{"key": "collectionId"}
	if err := r.q.Increment(c, domain.TableCounters, selector, counter, "next", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return counter.Next, nil
}

func (r *collectionMongoRepo) GetState(c bCtx.Ctx) (*collection.FactoryState, error) {
	state := &collection.FactoryState{}
	qry := bson.M{"id": collection.FactoryStateId}
	if err := r.q.FindOne(c, domain.TableCollectionState, qry, state); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return state, nil
}

func (r *collectionMongoRepo) UpsertState(c bCtx.Ctx, state *collection.FactoryState) error {
	state.Id = collection.FactoryStateId
	selector := bson.M{"id": collection.FactoryStateId}
	if err := r.q.Upsert(c, domain.TableCollectionState, selector, state); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
