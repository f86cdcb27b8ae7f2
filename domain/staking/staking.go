package staking

import (
	"time"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
)

// Pool is one staking pool cloned from the template. Rewards accrue linearly:
// pending = staked * rewardRate * elapsed / duration, with rewardRate in
// basis points of the staked amount over the full pool duration.
type Pool struct {
	Address     domain.Address `json:"address" bson:"address"`
	Owner       domain.Address `json:"owner" bson:"owner"`
	StakeToken  domain.Address `json:"stakeToken" bson:"stakeToken"`
	RewardToken domain.Address `json:"rewardToken" bson:"rewardToken"`
	RewardRate  int64          `json:"rewardRate" bson:"rewardRate"`
	StartTime   time.Time      `json:"startTime" bson:"startTime"`
	Duration    time.Duration  `json:"duration" bson:"duration"`
	Closed      bool           `json:"closed" bson:"closed"`
}

func (p *Pool) EndTime() time.Time {
	return p.StartTime.Add(p.Duration)
}

// Position is one staker's stake in one pool.
type Position struct {
	Pool   domain.Address `json:"pool" bson:"pool"`
	Owner  domain.Address `json:"owner" bson:"owner"`
	Staked string         `json:"staked" bson:"staked"`
	// LastUpdate is the accrual checkpoint; Accrued carries rewards already
	// earned before it.
	LastUpdate time.Time `json:"lastUpdate" bson:"lastUpdate"`
	Accrued    string    `json:"accrued" bson:"accrued"`
}

type PositionId struct {
	Pool  domain.Address `bson:"pool"`
	Owner domain.Address `bson:"owner"`
}

func (p *Position) ToId() *PositionId {
	return &PositionId{Pool: p.Pool, Owner: p.Owner}
}

type PoolRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Pool, error)
	Insert(c ctx.Ctx, pool *Pool) error
	Update(c ctx.Ctx, pool *Pool) error
}

type PositionRepo interface {
	FindOne(c ctx.Ctx, id PositionId) (*Position, error)
	Upsert(c ctx.Ctx, position *Position) error
}

type Usecase interface {
	CreatePool(c ctx.Ctx, owner domain.Address, stakeToken, rewardToken domain.Address, rewardRate int64, duration time.Duration) (*Pool, error)
	Stake(c ctx.Ctx, pool domain.Address, staker domain.Address, amount string) error
	Unstake(c ctx.Ctx, pool domain.Address, staker domain.Address, amount string) error
	// PendingReward returns rewards accrued up to now.
	PendingReward(c ctx.Ctx, pool domain.Address, staker domain.Address) (string, error)
	Claim(c ctx.Ctx, pool domain.Address, staker domain.Address) error
	ClosePool(c ctx.Ctx, pool domain.Address, caller domain.Address) error
}
