package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/domain"
	mAdmin "github.com/metaversus/goapi/domain/admin/mocks"
	"github.com/metaversus/goapi/domain/auction"
	mAuction "github.com/metaversus/goapi/domain/auction/mocks"
	mEvent "github.com/metaversus/goapi/domain/event/mocks"
	mFungible "github.com/metaversus/goapi/domain/fungible/mocks"
	mNft "github.com/metaversus/goapi/domain/nft/mocks"
)

var (
	auctionAddr = domain.Address("0x54a769173d97432a48371b022709117c090298e3")
	owner       = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	alice       = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bob         = domain.Address("0x2e9e733cb0394aace1226e34313f12b0764be65a")
	nftAddr     = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	payToken    = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

type auctionTestSuite struct {
	suite.Suite

	auctionRepo *mAuction.Repo
	adminUC     *mAdmin.Usecase
	fungibleUC  *mFungible.Usecase
	nftUC       *mNft.Usecase
	eventRepo   *mEvent.Repo

	factory auction.FactoryUsecase
	english auction.EnglishUsecase
	dutch   auction.DutchUsecase

	now time.Time
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionTestSuite))
}

func (s *auctionTestSuite) SetupTest() {
	s.auctionRepo = &mAuction.Repo{}
	s.adminUC = &mAdmin.Usecase{}
	s.fungibleUC = &mFungible.Usecase{}
	s.nftUC = &mNft.Usecase{}
	s.eventRepo = &mEvent.Repo{}
	s.factory = NewFactory(&FactoryUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		AdminUC:     s.adminUC,
		NftUC:       s.nftUC,
	})
	s.english = NewEnglish(&EnglishUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		FungibleUC:  s.fungibleUC,
		NftUC:       s.nftUC,
		EventRepo:   s.eventRepo,
	})
	s.dutch = NewDutch(&DutchUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		FungibleUC:  s.fungibleUC,
		NftUC:       s.nftUC,
		EventRepo:   s.eventRepo,
	})
	s.eventRepo.On("Insert", mock.Anything, mock.AnythingOfType("*event.Event")).Return(nil).Maybe()

	s.now = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return s.now }
}

func (s *auctionTestSuite) TearDownTest() {
	timeNow = time.Now
	s.auctionRepo.AssertExpectations(s.T())
	s.adminUC.AssertExpectations(s.T())
	s.fungibleUC.AssertExpectations(s.T())
	s.nftUC.AssertExpectations(s.T())
}

func (s *auctionTestSuite) english1h(startingBid string) *auction.Auction {
	return &auction.Auction{
		Address:      auctionAddr,
		Kind:         auction.KindEnglish,
		Owner:        owner,
		NftReward:    nftAddr,
		NftId:        "9",
		PaymentToken: payToken,
		StartTime:    s.now.Add(-time.Hour),
		EndTime:      s.now.Add(time.Hour),
		HighestBid:   startingBid,
		Bids:         map[string]string{},
	}
}

func (s *auctionTestSuite) dutch1h() *auction.Auction {
	return &auction.Auction{
		Address:       auctionAddr,
		Kind:          auction.KindDutch,
		Owner:         owner,
		NftReward:     nftAddr,
		NftId:         "9",
		PaymentToken:  payToken,
		StartTime:     s.now.Add(-30 * time.Minute),
		EndTime:       s.now.Add(30 * time.Minute),
		StartingPrice: "3600000",
		DecrementStep: 1000,
	}
}

func (s *auctionTestSuite) TestCreateEnglishAuction() {
	c := bCtx.Background()

	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(true, nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), owner, mock.AnythingOfType("domain.Address"), int64(1)).
		Return(nil).Once()
	s.auctionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.Kind == auction.KindEnglish && a.HighestBid == "1000" && !a.Address.IsEmpty()
	})).Return(nil).Once()

	a, err := s.factory.CreateEnglishAuction(c, owner, nftAddr, "9", payToken, "1000", s.now, s.now.Add(time.Hour))
	s.NoError(err)
	s.Equal(owner, a.Owner)
	s.Nil(a.HighestBidder)
}

func (s *auctionTestSuite) TestCreateAuctionRejectsUnpermittedNFT() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(false, nil).Once()

	_, err := s.factory.CreateEnglishAuction(bCtx.Background(), owner, nftAddr, "9", payToken, "1000", s.now, s.now.Add(time.Hour))
	s.Equal(domain.ErrInvalidNftAddress, err)
}

func (s *auctionTestSuite) TestCreateAuctionRejectsUnpermittedPaymentToken() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(false, nil).Once()

	_, err := s.factory.CreateEnglishAuction(bCtx.Background(), owner, nftAddr, "9", payToken, "1000", s.now, s.now.Add(time.Hour))
	s.Equal(domain.ErrPaymentTokenIsNotSupported, err)
}

func (s *auctionTestSuite) TestCreateAuctionRejectsPastEndTime() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(true, nil).Once()

	_, err := s.factory.CreateEnglishAuction(bCtx.Background(), owner, nftAddr, "9", payToken, "1000", s.now.Add(-2*time.Hour), s.now.Add(-time.Hour))
	s.Equal(domain.ErrInvalidEndTime, err)
}

func (s *auctionTestSuite) TestCreateDutchAuctionPriceMustOutlastWindow() {
	// 3600s at step 1000 descends 3600000, more than the 100 start
	_, err := s.factory.CreateDutchAuction(bCtx.Background(), owner, nftAddr, "9", payToken, "100", s.now, s.now.Add(time.Hour), 1000)
	s.Equal(domain.ErrInvalidAmount, err)

	_, err = s.factory.CreateDutchAuction(bCtx.Background(), owner, nftAddr, "9", payToken, "3600000", s.now, s.now.Add(time.Hour), 0)
	s.Equal(domain.ErrInvalidAmount, err)
}

func (s *auctionTestSuite) TestCreateDutchAuction() {
	c := bCtx.Background()

	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(true, nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), owner, mock.AnythingOfType("domain.Address"), int64(1)).
		Return(nil).Once()
	s.auctionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.Kind == auction.KindDutch && a.StartingPrice == "3600000" && a.DecrementStep == 1000
	})).Return(nil).Once()

	a, err := s.factory.CreateDutchAuction(c, owner, nftAddr, "9", payToken, "3600000", s.now, s.now.Add(time.Hour), 1000)
	s.NoError(err)
	s.Equal(auction.KindDutch, a.Kind)
}

func (s *auctionTestSuite) TestBid() {
	c := bCtx.Background()
	a := s.english1h("1000")

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, alice, auctionAddr, decimal.NewFromInt(1500)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *auction.Auction) bool {
		return got.HighestBid == "1500" && got.HighestBidder != nil && got.HighestBidder.Equals(alice)
	})).Return(nil).Once()

	s.NoError(s.english.Bid(c, auctionAddr, alice, "1500"))
}

func (s *auctionTestSuite) TestBidBelowHighest() {
	a := s.english1h("1000")
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Twice()

	// matching the reserve is not enough, a bid must exceed it
	s.Equal(domain.ErrAmountBelowHighest, s.english.Bid(bCtx.Background(), auctionAddr, alice, "1000"))
	s.Equal(domain.ErrAmountBelowHighest, s.english.Bid(bCtx.Background(), auctionAddr, alice, "999"))
}

func (s *auctionTestSuite) TestBidOutsideWindow() {
	c := bCtx.Background()

	early := s.english1h("1000")
	early.StartTime = s.now.Add(time.Minute)
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(early, nil).Once()
	s.Equal(domain.ErrAuctionNotStarted, s.english.Bid(c, auctionAddr, alice, "1500"))

	late := s.english1h("1000")
	late.EndTime = s.now
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(late, nil).Once()
	s.Equal(domain.ErrAuctionEnded, s.english.Bid(c, auctionAddr, alice, "1500"))
}

func (s *auctionTestSuite) TestOutbidAccumulatesRefund() {
	c := bCtx.Background()
	a := s.english1h("1000")
	a.HighestBid = "1500"
	a.HighestBidder = alice.ToLowerPtr()

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, bob, auctionAddr, decimal.NewFromInt(2000)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *auction.Auction) bool {
		return got.HighestBidder.Equals(bob) && got.Bids[alice.ToLowerStr()] == "1500"
	})).Return(nil).Once()

	s.NoError(s.english.Bid(c, auctionAddr, bob, "2000"))
}

func (s *auctionTestSuite) TestWithdraw() {
	c := bCtx.Background()
	a := s.english1h("1000")
	a.HighestBid = "2000"
	a.HighestBidder = bob.ToLowerPtr()
	a.Bids[alice.ToLowerStr()] = "1500"

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, auctionAddr, alice, decimal.NewFromInt(1500)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *auction.Auction) bool {
		_, ok := got.Bids[alice.ToLowerStr()]
		return !ok
	})).Return(nil).Once()

	s.NoError(s.english.Withdraw(c, auctionAddr, alice))
}

func (s *auctionTestSuite) TestWithdrawHighestBidder() {
	a := s.english1h("1000")
	a.HighestBid = "2000"
	a.HighestBidder = bob.ToLowerPtr()

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	err := s.english.Withdraw(bCtx.Background(), auctionAddr, bob)
	s.Equal(domain.ErrHighestBidderNoWithdraw, err)
}

func (s *auctionTestSuite) TestWithdrawNothingEscrowed() {
	a := s.english1h("1000")
	a.HighestBidder = bob.ToLowerPtr()

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	// a zero refund is a silent no-op
	s.NoError(s.english.Withdraw(bCtx.Background(), auctionAddr, alice))
}

func (s *auctionTestSuite) TestEndPaysWinnerAndOwner() {
	c := bCtx.Background()
	a := s.english1h("1000")
	a.HighestBid = "2000"
	a.HighestBidder = bob.ToLowerPtr()

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), auctionAddr, bob, int64(1)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, auctionAddr, owner, decimal.NewFromInt(2000)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *auction.Auction) bool {
		return got.Ended
	})).Return(nil).Once()

	s.NoError(s.english.End(c, auctionAddr, owner))
}

func (s *auctionTestSuite) TestEndWithoutBidsReturnsAsset() {
	c := bCtx.Background()
	a := s.english1h("1000")

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), auctionAddr, owner, int64(1)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.AnythingOfType("*auction.Auction")).Return(nil).Once()

	s.NoError(s.english.End(c, auctionAddr, owner))
}

func (s *auctionTestSuite) TestEndOnlyOwner() {
	a := s.english1h("1000")
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	err := s.english.End(bCtx.Background(), auctionAddr, bob)
	s.Equal(domain.ErrCallerIsNotOwner, err)
}

func (s *auctionTestSuite) TestEndTwice() {
	a := s.english1h("1000")
	a.Ended = true
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	err := s.english.End(bCtx.Background(), auctionAddr, owner)
	s.Equal(domain.ErrAuctionEnded, err)
}

func (s *auctionTestSuite) TestEndAfterEndTime() {
	// once the window elapsed the owner can no longer end, only Settle may
	a := s.english1h("1000")
	a.EndTime = s.now.Add(-time.Hour)
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	err := s.english.End(bCtx.Background(), auctionAddr, owner)
	s.Equal(domain.ErrAuctionEnded, err)
}

func (s *auctionTestSuite) TestSettleExpiredAuction() {
	c := bCtx.Background()
	a := s.english1h("1000")
	a.EndTime = s.now.Add(-time.Minute)
	a.HighestBid = "2000"
	a.HighestBidder = bob.ToLowerPtr()

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), auctionAddr, bob, int64(1)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, auctionAddr, owner, decimal.NewFromInt(2000)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *auction.Auction) bool {
		return got.Ended
	})).Return(nil).Once()

	s.NoError(s.english.Settle(c, auctionAddr))
}

func (s *auctionTestSuite) TestSettleLiveAuction() {
	a := s.english1h("1000")
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	err := s.english.Settle(bCtx.Background(), auctionAddr)
	s.Equal(domain.ErrAuctionNotEnded, err)
}

func (s *auctionTestSuite) TestSettleEndedAuction() {
	a := s.english1h("1000")
	a.EndTime = s.now.Add(-time.Minute)
	a.Ended = true
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	// already ended is a no-op for the sweeper
	s.NoError(s.english.Settle(bCtx.Background(), auctionAddr))
}

func (s *auctionTestSuite) TestCreateAuctionNativeTokenNeedsPermit() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, domain.EmptyAddress).Return(false, nil).Once()

	_, err := s.factory.CreateEnglishAuction(bCtx.Background(), owner, nftAddr, "9", domain.EmptyAddress, "1000", s.now, s.now.Add(time.Hour))
	s.Equal(domain.ErrPaymentTokenIsNotSupported, err)
}

func (s *auctionTestSuite) TestDutchBuyChargesCurrentPrice() {
	c := bCtx.Background()
	a := s.dutch1h()
	// 1800s elapsed at step 1000 leaves 1800000
	price := decimal.NewFromInt(1800000)

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, alice, auctionAddr, price).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, auctionAddr, owner, price).Return(nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), auctionAddr, alice, int64(1)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *auction.Auction) bool {
		return got.Ended
	})).Return(nil).Once()

	// offering above the current price still settles at the current price
	s.NoError(s.dutch.Buy(c, auctionAddr, alice, "2500000"))
}

func (s *auctionTestSuite) TestDutchBuyBelowPrice() {
	a := s.dutch1h()
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	err := s.dutch.Buy(bCtx.Background(), auctionAddr, alice, "1799999")
	s.Equal(domain.ErrValueBelowPrice, err)
}

func (s *auctionTestSuite) TestDutchGetPrice() {
	a := s.dutch1h()
	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Once()

	price, err := s.dutch.GetPrice(bCtx.Background(), auctionAddr, s.now)
	s.NoError(err)
	s.Equal("1800000", price.String())
}

func (s *auctionTestSuite) TestDutchWithdraw() {
	c := bCtx.Background()
	a := s.dutch1h()

	s.auctionRepo.On("FindOne", mock.Anything, auctionAddr).Return(a, nil).Twice()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), auctionAddr, owner, int64(1)).Return(nil).Once()
	s.auctionRepo.On("Update", mock.Anything, mock.AnythingOfType("*auction.Auction")).Return(nil).Once()

	s.Equal(domain.ErrCallerIsNotOwner, s.dutch.Withdraw(c, auctionAddr, alice))
	s.NoError(s.dutch.Withdraw(c, auctionAddr, owner))
}
