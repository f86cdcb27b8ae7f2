package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
	mAdmin "github.com/metaversus/goapi/domain/admin/mocks"
	"github.com/metaversus/goapi/domain/event"
	mEvent "github.com/metaversus/goapi/domain/event/mocks"
	mFungible "github.com/metaversus/goapi/domain/fungible/mocks"
	"github.com/metaversus/goapi/domain/treasury"
)

type treasuryTestSuite struct {
	suite.Suite

	adminUC    *mAdmin.Usecase
	fungibleUC *mFungible.Usecase
	eventRepo  *mEvent.Repo
	im         treasury.Usecase
}

func TestTreasurySuite(t *testing.T) {
	suite.Run(t, new(treasuryTestSuite))
}

func (s *treasuryTestSuite) SetupTest() {
	s.adminUC = &mAdmin.Usecase{}
	s.fungibleUC = &mFungible.Usecase{}
	s.eventRepo = &mEvent.Repo{}
	s.im = New(&TreasuryUseCaseCfg{
		AdminUC:    s.adminUC,
		FungibleUC: s.fungibleUC,
		EventRepo:  s.eventRepo,
	})
}

func (s *treasuryTestSuite) TearDownTest() {
	s.adminUC.AssertExpectations(s.T())
	s.fungibleUC.AssertExpectations(s.T())
	s.eventRepo.AssertExpectations(s.T())
}

func (s *treasuryTestSuite) TestDistribute() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	token := domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	to := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	sink := domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	amount := decimal.NewFromInt(5000)

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, token).Return(true, nil).Once()
	s.adminUC.On("Treasury", mock.Anything).Return(sink, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, token, sink, to, amount).Return(nil).Once()
	s.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeDistributed && ev.Account == to && ev.Amount == "5000"
	})).Return(nil).Once()

	s.NoError(s.im.Distribute(c, caller, token, to, amount))
}

func (s *treasuryTestSuite) TestDistributeRequiresAdmin() {
	caller := domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")
	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(false, nil).Once()

	err := s.im.Distribute(bCtx.Background(), caller, "0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6", "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", decimal.NewFromInt(1))
	s.Equal(domain.ErrCallerIsNotOwnerOrAdmin, err)
}

func (s *treasuryTestSuite) TestDistributeRequiresPermittedToken() {
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	token := domain.Address("0x54a769173d97432a48371b022709117c090298e3")
	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, token).Return(false, nil).Once()

	err := s.im.Distribute(bCtx.Background(), caller, token, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", decimal.NewFromInt(1))
	s.Equal(domain.ErrPaymentTokenIsNotSupported, err)
}

func (s *treasuryTestSuite) TestDistributeValidation() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	token := domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Twice()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, token).Return(true, nil).Twice()

	err := s.im.Distribute(c, caller, token, domain.EmptyAddress, decimal.NewFromInt(1))
	s.Equal(domain.ErrInvalidAddress, err)

	err = s.im.Distribute(c, caller, token, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", decimal.Zero)
	s.Equal(domain.ErrInvalidAmount, err)
}
