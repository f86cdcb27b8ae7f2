package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/auction"
	"github.com/metaversus/goapi/service/query"
)

type auctionMongoRepo struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &auctionMongoRepo{q: q}
}

func (r *auctionMongoRepo) FindOne(c bCtx.Ctx, address domain.Address) (*auction.Auction, error) {
	a := &auction.Auction{}
	if err := r.q.FindOne(c, domain.TableAuctions, bson.M{"address": address.ToLower()}, a); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (r *auctionMongoRepo) Insert(c bCtx.Ctx, a *auction.Auction) error {
	r.normalize(a)
	if err := r.q.Insert(c, domain.TableAuctions, a); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) Update(c bCtx.Ctx, a *auction.Auction) error {
	r.normalize(a)
	if err := r.q.Upsert(c, domain.TableAuctions, bson.M{"address": a.Address}, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": a.Address,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) FindAll(c bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}
	if opts.Kind != nil {
		qry["kind"] = *opts.Kind
	}
	if opts.Ended != nil {
		qry["ended"] = *opts.Ended
	}
	if opts.EndTimeLT != nil {
		qry["endTime"] = bson.M{"$lt": *opts.EndTimeLT}
	}
	if opts.Owner != nil {
		qry["owner"] = *opts.Owner
	}
	auctions := []*auction.Auction{}
	if err := r.q.Search(c, domain.TableAuctions, 0, 0, "startTime", qry, &auctions); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return auctions, nil
}

func (r *auctionMongoRepo) normalize(a *auction.Auction) {
	a.Address = a.Address.ToLower()
	a.Owner = a.Owner.ToLower()
	a.NftReward = a.NftReward.ToLower()
	a.PaymentToken = a.PaymentToken.ToLower()
	if a.HighestBidder != nil {
		a.HighestBidder = a.HighestBidder.ToLowerPtr()
	}
}
