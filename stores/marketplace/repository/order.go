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

type orderMongoRepo struct {
	q query.Mongo
}

func NewOrderRepo(q query.Mongo) marketplace.OrderRepo {
	return &orderMongoRepo{q: q}
}

func (r *orderMongoRepo) FindOne(c bCtx.Ctx, id int64) (*marketplace.Order, error) {
	order := &marketplace.Order{}
	if err := r.q.FindOne(c, domain.TableOrders, bson.M{"id": id}, order); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return order, nil
}

func (r *orderMongoRepo) FindPendingWalletOrder(c bCtx.Ctx, bidder, nft domain.Address, tokenId domain.TokenId) (*marketplace.Order, error) {
	order := &marketplace.Order{}
	qry := bson.M{
		"kind":    marketplace.OrderKindWallet,
		"owner":   bidder.ToLower(),
		"nft":     nft.ToLower(),
		"tokenId": tokenId,
		"status":  marketplace.OrderStatusPending,
	}
	if err := r.q.FindOne(c, domain.TableOrders, qry, order); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return order, nil
}

func (r *orderMongoRepo) FindPendingMarketItemOrder(c bCtx.Ctx, bidder domain.Address, marketItemId int64) (*marketplace.Order, error) {
	order := &marketplace.Order{}
	qry := bson.M{
		"kind":         marketplace.OrderKindMarketItem,
		"owner":        bidder.ToLower(),
		"marketItemId": marketItemId,
		"status":       marketplace.OrderStatusPending,
	}
	if err := r.q.FindOne(c, domain.TableOrders, qry, order); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return order, nil
}

func (r *orderMongoRepo) Insert(c bCtx.Ctx, order *marketplace.Order) error {
	order.Owner = order.Owner.ToLower()
	order.PaymentToken = order.PaymentToken.ToLower()
	order.To = order.To.ToLower()
	order.Nft = order.Nft.ToLower()
	if err := r.q.Insert(c, domain.TableOrders, order); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *orderMongoRepo) Patch(c bCtx.Ctx, id int64, patchable marketplace.OrderPatchable) error {
	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableOrders, bson.M{"id": id}, updater); err == query.ErrNotFound {
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

func (r *orderMongoRepo) NextId(c bCtx.Ctx) (int64, error) {
	counter := &idCounter{}
	selector := bson.M{"key": "orderId"}
	if err := r.q.Increment(c, domain.TableCounters, selector, counter, "next", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return counter.Next, nil
}
