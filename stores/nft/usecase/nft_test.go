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
	"github.com/metaversus/goapi/domain/nft"
	mNft "github.com/metaversus/goapi/domain/nft/mocks"
)

const (
	erc721Contract  = domain.Address("0x0000000000000000000000000000000000000721")
	erc1155Contract = domain.Address("0x0000000000000000000000000000000000001155")
)

type nftTestSuite struct {
	suite.Suite

	tokenRepo   *mNft.TokenRepo
	holdingRepo *mNft.HoldingRepo
	adminUC     *mAdmin.Usecase
	eventRepo   *mEvent.Repo
	im          nft.Usecase
}

func TestNftSuite(t *testing.T) {
	suite.Run(t, new(nftTestSuite))
}

func (s *nftTestSuite) SetupTest() {
	s.tokenRepo = &mNft.TokenRepo{}
	s.holdingRepo = &mNft.HoldingRepo{}
	s.adminUC = &mAdmin.Usecase{}
	s.eventRepo = &mEvent.Repo{}
	s.im = New(&NftUseCaseCfg{
		TokenRepo:       s.tokenRepo,
		HoldingRepo:     s.holdingRepo,
		AdminUC:         s.adminUC,
		EventRepo:       s.eventRepo,
		Erc721Contract:  erc721Contract,
		Erc1155Contract: erc1155Contract,
	})
}

func (s *nftTestSuite) TearDownTest() {
	s.tokenRepo.AssertExpectations(s.T())
	s.holdingRepo.AssertExpectations(s.T())
	s.adminUC.AssertExpectations(s.T())
	s.eventRepo.AssertExpectations(s.T())
}

func (s *nftTestSuite) TestCreateNFT721ForcesSingleUnit() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	to := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Once()
	s.tokenRepo.On("NextTokenId", mock.Anything, erc721Contract).Return(int64(7), nil).Once()
	s.tokenRepo.On("Insert", mock.Anything, mock.MatchedBy(func(token *nft.Token) bool {
		return token.Contract == erc721Contract && token.TokenId == "7" && token.TotalSupply == 1
	})).Return(nil).Once()
	s.holdingRepo.On("Upsert", mock.Anything, &nft.Holding{
		Contract: erc721Contract, TokenId: "7", Owner: to, Balance: 1,
	}).Return(nil).Once()
	s.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeCreated && ev.Fields["tokenId"] == "7"
	})).Return(nil).Once()

	// amount 5 collapses to 1 for the 721 contract
	token, err := s.im.CreateNFT(c, caller, domain.TokenType721, to, 5, "ipfs://Qm1")
	s.NoError(err)
	s.Equal(int64(1), token.TotalSupply)
}

func (s *nftTestSuite) TestCreateNFTRequiresAdmin() {
	caller := domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")
	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(false, nil).Once()

	_, err := s.im.CreateNFT(bCtx.Background(), caller, domain.TokenType721, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", 1, "ipfs://Qm1")
	s.Equal(domain.ErrCallerIsNotOwnerOrAdmin, err)
}

func (s *nftTestSuite) TestCreateBatchNFTWithRoyalties() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	to := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	receiver := domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Once()
	s.tokenRepo.On("NextTokenId", mock.Anything, erc1155Contract).Return(int64(1), nil).Once()
	s.tokenRepo.On("NextTokenId", mock.Anything, erc1155Contract).Return(int64(2), nil).Once()
	s.tokenRepo.On("Insert", mock.Anything, mock.MatchedBy(func(token *nft.Token) bool {
		return token.RoyaltyReceiver == receiver && token.RoyaltyBps == 500
	})).Return(nil).Twice()
	s.holdingRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*nft.Holding")).Return(nil).Twice()
	s.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeBatchCreated
	})).Return(nil).Once()

	tokens, err := s.im.CreateBatchNFTWithRoyalties(c, caller, domain.TokenType1155, to, []int64{10, 20}, []string{"ipfs://Qm1", "ipfs://Qm2"}, receiver, 500)
	s.NoError(err)
	s.Len(tokens, 2)
	s.Equal(domain.TokenId("1"), tokens[0].TokenId)
	s.Equal(int64(20), tokens[1].TotalSupply)
}

func (s *nftTestSuite) TestCreateBatchNFTLengthMismatch() {
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Twice()

	_, err := s.im.CreateBatchNFT(bCtx.Background(), caller, domain.TokenType1155, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", []int64{1, 2}, []string{"ipfs://Qm1"})
	s.Equal(domain.ErrInvalidLength, err)

	_, err = s.im.CreateBatchNFT(bCtx.Background(), caller, domain.TokenType1155, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", nil, nil)
	s.Equal(domain.ErrInvalidLength, err)
}

func (s *nftTestSuite) TestTransfer1155() {
	c := bCtx.Background()
	from := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	to := domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	id := nft.TokenIdentifier{Contract: erc1155Contract, TokenId: "3"}

	s.tokenRepo.On("FindOne", mock.Anything, id).
		Return(&nft.Token{Contract: erc1155Contract, TokenId: "3", Type: domain.TokenType1155}, nil).Once()
	s.holdingRepo.On("FindOne", mock.Anything, nft.HoldingId{Contract: erc1155Contract, TokenId: "3", Owner: from}).
		Return(&nft.Holding{Contract: erc1155Contract, TokenId: "3", Owner: from, Balance: 10}, nil).Once()
	s.holdingRepo.On("FindOne", mock.Anything, nft.HoldingId{Contract: erc1155Contract, TokenId: "3", Owner: to}).
		Return(nil, domain.ErrNotFound).Once()
	s.holdingRepo.On("Upsert", mock.Anything, &nft.Holding{Contract: erc1155Contract, TokenId: "3", Owner: from, Balance: 6}).
		Return(nil).Once()
	s.holdingRepo.On("Upsert", mock.Anything, &nft.Holding{Contract: erc1155Contract, TokenId: "3", Owner: to, Balance: 4}).
		Return(nil).Once()

	s.NoError(s.im.Transfer(c, erc1155Contract, "3", from, to, 4))
}

func (s *nftTestSuite) TestTransferExceedsBalance() {
	from := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	id := nft.TokenIdentifier{Contract: erc1155Contract, TokenId: "3"}

	s.tokenRepo.On("FindOne", mock.Anything, id).
		Return(&nft.Token{Contract: erc1155Contract, TokenId: "3", Type: domain.TokenType1155}, nil).Once()
	s.holdingRepo.On("FindOne", mock.Anything, nft.HoldingId{Contract: erc1155Contract, TokenId: "3", Owner: from}).
		Return(&nft.Holding{Contract: erc1155Contract, TokenId: "3", Owner: from, Balance: 2}, nil).Once()

	err := s.im.Transfer(bCtx.Background(), erc1155Contract, "3", from, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", 4)
	s.Equal(domain.ErrExceedAmount, err)
}

func (s *nftTestSuite) TestSetURIAndReadBack() {
	c := bCtx.Background()
	caller := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	id := nft.TokenIdentifier{Contract: erc1155Contract, TokenId: "3"}

	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(true, nil).Once()
	s.tokenRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p nft.TokenPatchable) bool {
		return p.Uri != nil && *p.Uri == "ipfs://Qm3v2"
	})).Return(nil).Once()
	s.tokenRepo.On("FindOne", mock.Anything, id).
		Return(&nft.Token{Contract: erc1155Contract, TokenId: "3", Uri: "ipfs://Qm3v2"}, nil).Once()

	s.NoError(s.im.SetURI(c, caller, erc1155Contract, "3", "ipfs://Qm3v2"))

	uri, err := s.im.URI(c, erc1155Contract, "3")
	s.NoError(err)
	s.Equal("ipfs://Qm3v2", uri)
}

func (s *nftTestSuite) TestSetURIRequiresAdmin() {
	caller := domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")
	s.adminUC.On("IsAdmin", mock.Anything, caller).Return(false, nil).Once()

	err := s.im.SetURI(bCtx.Background(), caller, erc1155Contract, "3", "ipfs://Qm3v2")
	s.Equal(domain.ErrCallerIsNotOwnerOrAdmin, err)
}

func (s *nftTestSuite) TestRoyaltyInfo() {
	c := bCtx.Background()
	receiver := domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	id := nft.TokenIdentifier{Contract: erc721Contract, TokenId: "1"}

	s.tokenRepo.On("FindOne", mock.Anything, id).
		Return(&nft.Token{Contract: erc721Contract, TokenId: "1", RoyaltyReceiver: receiver, RoyaltyBps: 500}, nil).Once()

	got, amount, err := s.im.RoyaltyInfo(c, erc721Contract, "1", decimal.NewFromInt(100000))
	s.NoError(err)
	s.Equal(receiver, got)
	s.Equal("5000", amount.String())
}

func (s *nftTestSuite) TestRoyaltyInfoUnset() {
	id := nft.TokenIdentifier{Contract: erc721Contract, TokenId: "1"}
	s.tokenRepo.On("FindOne", mock.Anything, id).
		Return(&nft.Token{Contract: erc721Contract, TokenId: "1"}, nil).Once()

	receiver, amount, err := s.im.RoyaltyInfo(bCtx.Background(), erc721Contract, "1", decimal.NewFromInt(100000))
	s.NoError(err)
	s.Equal(domain.EmptyAddress, receiver)
	s.True(amount.IsZero())
}

func (s *nftTestSuite) TestIsRoyalty() {
	s.tokenRepo.On("FindByContract", mock.Anything, erc721Contract).Return([]*nft.Token{
		{TokenId: "1"},
		{TokenId: "2", RoyaltyBps: 250},
	}, nil).Once()

	ok, err := s.im.IsRoyalty(bCtx.Background(), erc721Contract)
	s.NoError(err)
	s.True(ok)
}
