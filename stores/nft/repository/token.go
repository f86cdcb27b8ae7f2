package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/database/mongoclient"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/nft"
	"github.com/metaversus/goapi/service/query"
)

type tokenMongoRepo struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) nft.TokenRepo {
	return &tokenMongoRepo{q: q}
}

func (r *tokenMongoRepo) FindOne(c bCtx.Ctx, id nft.TokenIdentifier) (*nft.Token, error) {
	id.Contract = id.Contract.ToLower()
	token := &nft.Token{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(c, domain.TableNftTokens, qry, token); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return token, nil
}

func (r *tokenMongoRepo) FindByContract(c bCtx.Ctx, contract domain.Address) ([]*nft.Token, error) {
	tokens := []*nft.Token{}
	qry := bson.M{"contract": contract.ToLower()}
	if err := r.q.Search(c, domain.TableNftTokens, 0, 0, "tokenId", qry, &tokens); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("q.Search failed")
		return nil, err
	}
	return tokens, nil
}

func (r *tokenMongoRepo) Insert(c bCtx.Ctx, token *nft.Token) error {
	token.Contract = token.Contract.ToLower()
	token.Creator = token.Creator.ToLower()
	token.RoyaltyReceiver = token.RoyaltyReceiver.ToLower()
	if err := r.q.Insert(c, domain.TableNftTokens, token); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *tokenMongoRepo) Patch(c bCtx.Ctx, id nft.TokenIdentifier, patchable nft.TokenPatchable) error {
	id.Contract = id.Contract.ToLower()
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableNftTokens, selector, updater); err == query.ErrNotFound {
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

type tokenIdCounter struct {
	Key  string `bson:"key"`
	Next int64  `bson:"next"`
}

func (r *tokenMongoRepo) NextTokenId(c bCtx.Ctx, contract domain.Address) (int64, error) {
	counter := &tokenIdCounter{}
	selector := bson.M{"key": "tokenId:" + contract.ToLowerStr()}
	if err := r.q.Increment(c, domain.TableCounters, selector, counter, "next", int64(1)); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("q.Increment failed")
		return 0, err
	}
	return counter.Next, nil
}
