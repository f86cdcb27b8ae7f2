package collection

import (
	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// FactoryStateId selects the singleton factory state document.
const FactoryStateId = "collection-factory"

const (
	DefaultMaxCollection       = int64(5)
	DefaultMaxCollectionOfUser = int64(5)
	DefaultMaxTotalSupply      = int64(100)
)

// CollectionInfo records one collection instantiated from a registered
// template.
type CollectionInfo struct {
	Id                int64            `json:"id" bson:"id"`
	Type              domain.TokenType `json:"type" bson:"type"`
	CollectionAddress domain.Address   `json:"collectionAddress" bson:"collectionAddress"`
	Owner             domain.Address   `json:"owner" bson:"owner"`
	Name              string           `json:"name" bson:"name"`
	Symbol            string           `json:"symbol" bson:"symbol"`
	RoyaltyReceiver   domain.Address   `json:"royaltyReceiver" bson:"royaltyReceiver"`
	RoyaltyBps        int64            `json:"royaltyBps" bson:"royaltyBps"`
}

// FactoryState carries the caps the create path is checked against.
type FactoryState struct {
	Id                  string           `json:"id" bson:"id"`
	TemplateERC721      domain.Address   `json:"templateERC721" bson:"templateERC721"`
	TemplateERC1155     domain.Address   `json:"templateERC1155" bson:"templateERC1155"`
	MaxCollection       int64            `json:"maxCollection" bson:"maxCollection"`
	MaxTotalSupply      int64            `json:"maxTotalSupply" bson:"maxTotalSupply"`
	MaxCollectionOfUser map[string]int64 `json:"maxCollectionOfUser" bson:"maxCollectionOfUser"`
}

// UserCap returns the per-user collection cap, falling back to the default
// when no override was set.
func (s *FactoryState) UserCap(user domain.Address) int64 {
	if cap, ok := s.MaxCollectionOfUser[user.ToLowerStr()]; ok {
		return cap
	}
	return DefaultMaxCollectionOfUser
}

type Repo interface {
	FindOne(c ctx.Ctx, id int64) (*CollectionInfo, error)
	FindByOwner(c ctx.Ctx, owner domain.Address) ([]*CollectionInfo, error)
	Insert(c ctx.Ctx, info *CollectionInfo) error
	Count(c ctx.Ctx) (int, error)
	CountByOwner(c ctx.Ctx, owner domain.Address) (int, error)
	NextId(c ctx.Ctx) (int64, error)
	GetState(c ctx.Ctx) (*FactoryState, error)
	UpsertState(c ctx.Ctx, state *FactoryState) error
}

type Usecase interface {
	Create(c ctx.Ctx, caller domain.Address, typ domain.TokenType, name, symbol string, royaltyReceiver domain.Address, royaltyBps int64) (*CollectionInfo, error)
	SetMaxCollection(c ctx.Ctx, caller domain.Address, max int64) error
	SetMaxTotalSupply(c ctx.Ctx, caller domain.Address, max int64) error
	SetMaxCollectionOfUser(c ctx.Ctx, caller, user domain.Address, max int64) error
	SetTemplateAddress(c ctx.Ctx, caller, template721, template1155 domain.Address) error
	Get(c ctx.Ctx, id int64) (*CollectionInfo, error)
	GetByUser(c ctx.Ctx, user domain.Address) ([]*CollectionInfo, error)
	TotalCollection(c ctx.Ctx) (int, error)
}
