package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
	mAdmin "github.com/metaversus/goapi/domain/admin/mocks"
	"github.com/metaversus/goapi/domain/collection"
	mCollection "github.com/metaversus/goapi/domain/collection/mocks"
)

type collectionTestSuite struct {
	suite.Suite

	collectionRepo *mCollection.Repo
	adminUC        *mAdmin.Usecase
	im             collection.Usecase
}

func TestCollectionSuite(t *testing.T) {
	suite.Run(t, new(collectionTestSuite))
}

func (s *collectionTestSuite) SetupTest() {
	s.collectionRepo = &mCollection.Repo{}
	s.adminUC = &mAdmin.Usecase{}
	s.im = New(&CollectionUseCaseCfg{
		CollectionRepo: s.collectionRepo,
		AdminUC:        s.adminUC,
	})
}

func (s *collectionTestSuite) TearDownTest() {
	s.collectionRepo.AssertExpectations(s.T())
	s.adminUC.AssertExpectations(s.T())
}

func (s *collectionTestSuite) state() *collection.FactoryState {
	return &collection.FactoryState{
		Id:                  collection.FactoryStateId,
		TemplateERC721:      "0xdcf0de6b17785a143d006e1515a6afd123cde8ba",
		TemplateERC1155:     "0x23c0221b2b66071afdcce502a103f18ec2666a12",
		MaxCollection:       collection.DefaultMaxCollection,
		MaxTotalSupply:      collection.DefaultMaxTotalSupply,
		MaxCollectionOfUser: map[string]int64{},
	}
}

func (s *collectionTestSuite) TestCreate() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	state := s.state()

	s.collectionRepo.On("GetState", mock.Anything).Return(state, nil).Once()
	s.collectionRepo.On("Count", mock.Anything).Return(2, nil).Once()
	s.collectionRepo.On("CountByOwner", mock.Anything, caller).Return(1, nil).Once()
	s.collectionRepo.On("NextId", mock.Anything).Return(int64(3), nil).Once()
	s.collectionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(info *collection.CollectionInfo) bool {
		return info.Id == 3 && info.Owner == caller && !info.CollectionAddress.IsEmpty()
	})).Return(nil).Once()

	info, err := s.im.Create(c, caller, domain.TokenType721, "Apes", "APE", "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", 500)
	s.NoError(err)
	s.Equal(int64(3), info.Id)
	s.Equal(domain.TokenType721, info.Type)
	s.Equal(int64(500), info.RoyaltyBps)
	// the instance address derives deterministically from template and id
	s.Equal(domain.DeriveAddress("collection:"+state.TemplateERC721.ToLowerStr()+":3"), info.CollectionAddress)
}

func (s *collectionTestSuite) TestCreateSeedsDefaultState() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")

	s.collectionRepo.On("GetState", mock.Anything).Return(nil, domain.ErrNotFound).Once()
	s.collectionRepo.On("UpsertState", mock.Anything, mock.MatchedBy(func(state *collection.FactoryState) bool {
		return state.MaxCollection == collection.DefaultMaxCollection &&
			state.MaxTotalSupply == collection.DefaultMaxTotalSupply
	})).Return(nil).Once()
	s.collectionRepo.On("Count", mock.Anything).Return(0, nil).Once()
	s.collectionRepo.On("CountByOwner", mock.Anything, caller).Return(0, nil).Once()
	s.collectionRepo.On("NextId", mock.Anything).Return(int64(1), nil).Once()
	s.collectionRepo.On("Insert", mock.Anything, mock.AnythingOfType("*collection.CollectionInfo")).Return(nil).Once()

	_, err := s.im.Create(c, caller, domain.TokenType1155, "Serum", "SRM", domain.EmptyAddress, 0)
	s.NoError(err)
}

func (s *collectionTestSuite) TestCreateGlobalCap() {
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	state := s.state()

	s.collectionRepo.On("GetState", mock.Anything).Return(state, nil).Once()
	s.collectionRepo.On("Count", mock.Anything).Return(int(state.MaxCollection), nil).Once()

	_, err := s.im.Create(bCtx.Background(), caller, domain.TokenType721, "Apes", "APE", domain.EmptyAddress, 0)
	s.Equal(domain.ErrExceedMaxCollection, err)
}

func (s *collectionTestSuite) TestCreateUserCap() {
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	state := s.state()
	state.MaxCollection = 100
	state.MaxCollectionOfUser[caller.ToLowerStr()] = 1

	s.collectionRepo.On("GetState", mock.Anything).Return(state, nil).Once()
	s.collectionRepo.On("Count", mock.Anything).Return(10, nil).Once()
	s.collectionRepo.On("CountByOwner", mock.Anything, caller).Return(1, nil).Once()

	_, err := s.im.Create(bCtx.Background(), caller, domain.TokenType721, "Apes", "APE", domain.EmptyAddress, 0)
	s.Equal(domain.ErrExceedMaxCollection, err)
}

func (s *collectionTestSuite) TestCreateValidation() {
	c := bCtx.Background()

	_, err := s.im.Create(c, "0xce4468e7ce84aceb74363f4ea64e5a038176f369", domain.TokenType(20), "x", "X", domain.EmptyAddress, 0)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.Create(c, domain.EmptyAddress, domain.TokenType721, "x", "X", domain.EmptyAddress, 0)
	s.Equal(domain.ErrInvalidAddress, err)
}

func (s *collectionTestSuite) TestSetMaxCollection() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	state := s.state()

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Twice()
	s.collectionRepo.On("GetState", mock.Anything).Return(state, nil).Once()
	s.collectionRepo.On("UpsertState", mock.Anything, state).Return(nil).Once()

	s.NoError(s.im.SetMaxCollection(c, caller, 42))
	s.Equal(int64(42), state.MaxCollection)

	s.Equal(domain.ErrInvalidMaxCollection, s.im.SetMaxCollection(c, caller, 0))
}

func (s *collectionTestSuite) TestSetMaxCollectionRequiresAdmin() {
	caller := domain.Address("0x2e9e733cb0394aace1226e34313f12b0764be65a")
	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(false, nil).Once()

	err := s.im.SetMaxCollection(bCtx.Background(), caller, 10)
	s.Equal(domain.ErrCallerIsNotOwnerOrAdmin, err)
}

func (s *collectionTestSuite) TestSetMaxCollectionOfUser() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	user := domain.Address("0xDF8650b0ca1260f7a2f4fdff9082aede554f65ad")
	state := s.state()

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Once()
	s.collectionRepo.On("GetState", mock.Anything).Return(state, nil).Once()
	s.collectionRepo.On("UpsertState", mock.Anything, state).Return(nil).Once()

	s.NoError(s.im.SetMaxCollectionOfUser(c, caller, user, 9))
	s.Equal(int64(9), state.UserCap(user))
}

func (s *collectionTestSuite) TestSetTemplateAddress() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	state := s.state()

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Twice()
	s.collectionRepo.On("GetState", mock.Anything).Return(state, nil).Once()
	s.collectionRepo.On("UpsertState", mock.Anything, state).Return(nil).Once()

	s.NoError(s.im.SetTemplateAddress(c, caller, "0x54A769173d97432a48371B022709117C090298e3", "0x2e9e733cb0394aace1226e34313f12b0764be65a"))
	s.Equal(domain.Address("0x54a769173d97432a48371b022709117c090298e3"), state.TemplateERC721)

	s.Equal(domain.ErrInvalidAddress, s.im.SetTemplateAddress(c, caller, domain.EmptyAddress, "0x2e9e733cb0394aace1226e34313f12b0764be65a"))
}
