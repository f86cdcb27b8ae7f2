package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/marketplace"
	"github.com/metaversus/goapi/service/query"
)

type marketItemMongoRepo struct {
	q query.Mongo
}

func NewMarketItemRepo(q query.Mongo) marketplace.MarketItemRepo {
	return &marketItemMongoRepo{q: q}
}

func (r *marketItemMongoRepo) FindOne(c bCtx.Ctx, id int64) (*marketplace.MarketItem, error) {
	item := &marketplace.MarketItem{}
	if err := r.q.FindOne(c, domain.TableMarketItems, bson.M{"id": id}, item); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return item, nil
}

func (r *marketItemMongoRepo) Insert(c bCtx.Ctx, item *marketplace.MarketItem) error {
	item.Nft = item.Nft.ToLower()
	item.Seller = item.Seller.ToLower()
	item.PaymentToken = item.PaymentToken.ToLower()
	if err := r.q.Insert(c, domain.TableMarketItems, item); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *marketItemMongoRepo) Patch(c bCtx.Ctx, id int64, patchable marketplace.MarketItemPatchable) error {
	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableMarketItems, bson.M{"id": id}, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

type idCounter struct {
	Key  string `bson:"key"`
	Next int64  `bson:"next"`
}

func (r *marketItemMongoRepo) NextId(c bCtx.Ctx) (int64, error) {
	counter := &idCounter{}
	selector := bson.M{"key": "marketItemId"}
	if err := r.q.Increment(c, domain.TableCounters, selector, counter, "next", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return counter.Next, nil
}

func (r *marketItemMongoRepo) FindAll(c bCtx.Ctx, optFns ...marketplace.FindAllOptionsFunc) ([]*marketplace.MarketItem, error) {
	opts, err := marketplace.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	if opts.Buyer != nil {
		qry["buyer"] = *opts.Buyer
	}
	if opts.Status != nil {
		qry["status"] = *opts.Status
	}
	if opts.Nft != nil {
		qry["nft"] = *opts.Nft
	}
	items := []*marketplace.MarketItem{}
	if err := r.q.Search(c, domain.TableMarketItems, 0, 0, "id", qry, &items); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return items, nil
}
