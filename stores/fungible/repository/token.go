package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/service/query"
)

type tokenMongoRepo struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) fungible.TokenRepo {
	return &tokenMongoRepo{q: q}
}

func (r *tokenMongoRepo) FindOne(c bCtx.Ctx, address domain.Address) (*fungible.Token, error) {
	token := &fungible.Token{}
	if err := r.q.FindOne(c, domain.TableFungibleTokens, bson.M{"address": address.ToLower()}, token); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return token, nil
}

func (r *tokenMongoRepo) Insert(c bCtx.Ctx, token *fungible.Token) error {
	token.Address = token.Address.ToLower()
	if err := r.q.Insert(c, domain.TableFungibleTokens, token); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}
