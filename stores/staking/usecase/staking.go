package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/log"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/domain/staking"
)

// timeNow is swapped out by tests to pin the clock.
var timeNow = time.Now

type StakingUseCaseCfg struct {
	PoolRepo     staking.PoolRepo
	PositionRepo staking.PositionRepo
	AdminUC      admin.Usecase
	FungibleUC   fungible.Usecase
	EventRepo    event.Repo
}

type impl struct {
	poolRepo     staking.PoolRepo
	positionRepo staking.PositionRepo
	adminUC      admin.Usecase
	fungibleUC   fungible.Usecase
	eventRepo    event.Repo
}

func New(cfg *StakingUseCaseCfg) staking.Usecase {
	return &impl{
		poolRepo:     cfg.PoolRepo,
		positionRepo: cfg.PositionRepo,
		adminUC:      cfg.AdminUC,
		fungibleUC:   cfg.FungibleUC,
		eventRepo:    cfg.EventRepo,
	}
}

func (im *impl) CreatePool(c ctx.Ctx, owner domain.Address, stakeToken, rewardToken domain.Address, rewardRate int64, duration time.Duration) (*staking.Pool, error) {
	if owner.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	for _, token := range []domain.Address{stakeToken, rewardToken} {
		if permitted, err := im.adminUC.IsPermittedPaymentToken(c, token); err != nil {
			return nil, err
		} else if !permitted {
			return nil, domain.ErrPaymentTokenIsNotSupported
		}
	}
	if rewardRate <= 0 || duration <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	pool := &staking.Pool{
		Address:     domain.DeriveAddress(fmt.Sprintf("staking:%s", uuid.NewString())),
		Owner:       owner.ToLower(),
		StakeToken:  stakeToken.ToLower(),
		RewardToken: rewardToken.ToLower(),
		RewardRate:  rewardRate,
		StartTime:   timeNow(),
		Duration:    duration,
	}
	if err := im.poolRepo.Insert(c, pool); err != nil {
		c.WithField("err", err).Error("poolRepo.Insert failed")
		return nil, err
	}
	return pool, nil
}

func (im *impl) Stake(c ctx.Ctx, poolAddr domain.Address, staker domain.Address, amount string) error {
	pool, err := im.getOpenPool(c, poolAddr)
	if err != nil {
		return err
	}
	amt, ok := domain.ParseAmount(amount)
	if !ok || !amt.IsPositive() {
		return domain.ErrInvalidAmount
	}
	position, err := im.accrued(c, pool, staker)
	if err != nil {
		return err
	}
	if err := im.fungibleUC.Transfer(c, pool.StakeToken, staker, pool.Address, amt); err != nil {
		return err
	}
	staked, _ := decimal.NewFromString(position.Staked)
	position.Staked = staked.Add(amt).String()
	if err := im.positionRepo.Upsert(c, position); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeStaked, pool.Address, staker, pool.StakeToken, amt.String()))
	return nil
}

func (im *impl) Unstake(c ctx.Ctx, poolAddr domain.Address, staker domain.Address, amount string) error {
	pool, err := im.poolRepo.FindOne(c, poolAddr)
	if err != nil {
		return err
	}
	amt, ok := domain.ParseAmount(amount)
	if !ok || !amt.IsPositive() {
		return domain.ErrInvalidAmount
	}
	position, err := im.accrued(c, pool, staker)
	if err != nil {
		return err
	}
	staked, _ := decimal.NewFromString(position.Staked)
	if staked.LessThan(amt) {
		return domain.ErrInsufficientBalance
	}
	if err := im.fungibleUC.Transfer(c, pool.StakeToken, pool.Address, staker, amt); err != nil {
		return err
	}
	position.Staked = staked.Sub(amt).String()
	if err := im.positionRepo.Upsert(c, position); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeWithdrawn, pool.Address, staker, pool.StakeToken, amt.String()))
	return nil
}

func (im *impl) PendingReward(c ctx.Ctx, poolAddr domain.Address, staker domain.Address) (string, error) {
	pool, err := im.poolRepo.FindOne(c, poolAddr)
	if err != nil {
		return "", err
	}
	position, err := im.accrued(c, pool, staker)
	if err != nil {
		return "", err
	}
	return position.Accrued, nil
}

func (im *impl) Claim(c ctx.Ctx, poolAddr domain.Address, staker domain.Address) error {
	pool, err := im.poolRepo.FindOne(c, poolAddr)
	if err != nil {
		return err
	}
	position, err := im.accrued(c, pool, staker)
	if err != nil {
		return err
	}
	reward, _ := decimal.NewFromString(position.Accrued)
	if !reward.IsPositive() {
		return nil
	}
	// rewards are paid out of the treasury budget
	treasury, err := im.adminUC.Treasury(c)
	if err != nil {
		return err
	}
	if err := im.fungibleUC.Transfer(c, pool.RewardToken, treasury, staker, reward); err != nil {
		return err
	}
	position.Accrued = "0"
	if err := im.positionRepo.Upsert(c, position); err != nil {
		return err
	}
	im.emit(c, event.New(event.TypeWithdrawn, pool.Address, staker, pool.RewardToken, reward.String()))
	return nil
}

func (im *impl) ClosePool(c ctx.Ctx, poolAddr domain.Address, caller domain.Address) error {
	pool, err := im.poolRepo.FindOne(c, poolAddr)
	if err != nil {
		return err
	}
	if !caller.Equals(pool.Owner) {
		return domain.ErrCallerIsNotOwner
	}
	if timeNow().Before(pool.EndTime()) {
		return domain.ErrInvalidEndTime
	}
	if pool.Closed {
		return nil
	}
	pool.Closed = true
	if err := im.poolRepo.Update(c, pool); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": pool.Address,
		}).Error("poolRepo.Update failed")
		return err
	}
	return nil
}

func (im *impl) getOpenPool(c ctx.Ctx, address domain.Address) (*staking.Pool, error) {
	pool, err := im.poolRepo.FindOne(c, address)
	if err != nil {
		return nil, err
	}
	if pool.Closed || !timeNow().Before(pool.EndTime()) {
		return nil, domain.ErrOrderIsExpired
	}
	return pool, nil
}

// accrued rolls the position's reward accrual forward to now and persists the
// checkpoint. Accrual is linear: staked * rate / 10000 over the full pool
// duration, pro-rated by elapsed time and stopped at pool end.
func (im *impl) accrued(c ctx.Ctx, pool *staking.Pool, staker domain.Address) (*staking.Position, error) {
	now := timeNow()
	position, err := im.positionRepo.FindOne(c, staking.PositionId{Pool: pool.Address, Owner: staker})
	if err == domain.ErrNotFound {
		return &staking.Position{
			Pool:       pool.Address,
			Owner:      staker.ToLower(),
			Staked:     "0",
			LastUpdate: now,
			Accrued:    "0",
		}, nil
	} else if err != nil {
		return nil, err
	}
	from := position.LastUpdate
	to := now
	if end := pool.EndTime(); to.After(end) {
		to = end
	}
	if to.After(from) {
		staked, _ := decimal.NewFromString(position.Staked)
		elapsed := decimal.NewFromInt(int64(to.Sub(from).Seconds()))
		duration := decimal.NewFromInt(int64(pool.Duration.Seconds()))
		rate := decimal.NewFromInt(pool.RewardRate)
		earned := staked.Mul(rate).Mul(elapsed).Div(duration).Div(domain.FeeDenominator).Truncate(0)
		accrued, _ := decimal.NewFromString(position.Accrued)
		position.Accrued = accrued.Add(earned).String()
	}
	position.LastUpdate = now
	if err := im.positionRepo.Upsert(c, position); err != nil {
		return nil, err
	}
	return position, nil
}

func (im *impl) emit(c ctx.Ctx, ev *event.Event) {
	if err := im.eventRepo.Insert(c, ev); err != nil {
		c.WithField("err", err).Error("eventRepo.Insert failed")
	}
}
