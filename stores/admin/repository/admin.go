package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/service/query"
)

type registryMongoRepo struct {
	q query.Mongo
}

func NewRegistryRepo(q query.Mongo) admin.Repo {
	return &registryMongoRepo{q: q}
}

func (r *registryMongoRepo) Get(c bCtx.Ctx) (*admin.Registry, error) {
	registry := &admin.Registry{}
	if err := r.q.FindOne(c, domain.TableAccessRegistry, bson.M{"id": admin.RegistryId}, registry); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return registry, nil
}

func (r *registryMongoRepo) Upsert(c bCtx.Ctx, registry *admin.Registry) error {
	registry.Id = admin.RegistryId
	if err := r.q.Upsert(c, domain.TableAccessRegistry, bson.M{"id": admin.RegistryId}, registry); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
