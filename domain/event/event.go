package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

type Type string

const (
	TypeDistributed   Type = "Distributed"
	TypeCreated       Type = "Created"
	TypeBatchCreated  Type = "BatchCreated"
	TypeListed        Type = "Listed"
	TypeBought        Type = "Bought"
	TypeCancelSell    Type = "CancelSell"
	TypeOfferMade     Type = "OfferMade"
	TypeOfferAccepted Type = "OfferAccepted"
	TypeOfferCanceled Type = "OfferCanceled"
	TypeBid           Type = "Bid"
	TypeEnd           Type = "End"
	TypeStaked        Type = "Staked"
	TypeWithdrawn     Type = "Withdrawn"
)

// Event is one append-only activity record emitted by a state transition.
type Event struct {
	Id        domain.EventId         `json:"id" bson:"id"`
	Type      Type                   `json:"type" bson:"type"`
	Source    domain.Address         `json:"source" bson:"source"`
	Account   domain.Address         `json:"account" bson:"account"`
	Token     domain.Address         `json:"token" bson:"token"`
	Amount    string                 `json:"amount" bson:"amount"`
	Fields    map[string]interface{} `json:"fields" bson:"fields,omitempty"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
}

// New builds an event with a fresh id and the current timestamp.
func New(t Type, source, account, token domain.Address, amount string) *Event {
	return &Event{
		Id:        domain.EventId(uuid.NewString()),
		Type:      t,
		Source:    source.ToLower(),
		Account:   account.ToLower(),
		Token:     token.ToLower(),
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
}

func (e *Event) WithField(key string, value interface{}) *Event {
	if e.Fields == nil {
		e.Fields = map[string]interface{}{}
	}
	e.Fields[key] = value
	return e
}

type Repo interface {
	Insert(c ctx.Ctx, ev *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}

type findAllOptions struct {
	Type    *Type
	Account *domain.Address
	Source  *domain.Address
	Limit   int
}

type FindAllOptionsFunc func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithType(t Type) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Type = &t
		return nil
	}
}

func WithAccount(account domain.Address) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Account = account.ToLowerPtr()
		return nil
	}
}

func WithSource(source domain.Address) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Source = source.ToLowerPtr()
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(o *findAllOptions) error {
		o.Limit = limit
		return nil
	}
}
