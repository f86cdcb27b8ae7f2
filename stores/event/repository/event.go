package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &eventMongoRepo{q: q}
}

func (r *eventMongoRepo) Insert(c bCtx.Ctx, ev *event.Event) error {
	if err := r.q.Insert(c, domain.TableEvents, ev); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventMongoRepo) FindAll(c bCtx.Ctx, optFns ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}
	if opts.Type != nil {
		qry["type"] = *opts.Type
	}
	if opts.Account != nil {
		qry["account"] = *opts.Account
	}
	if opts.Source != nil {
		qry["source"] = *opts.Source
	}
	events := []*event.Event{}
	if err := r.q.Search(c, domain.TableEvents, 0, opts.Limit, "-timestamp", qry, &events); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return events, nil
}
