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
	mEvent "github.com/metaversus/goapi/domain/event/mocks"
	mFungible "github.com/metaversus/goapi/domain/fungible/mocks"
	"github.com/metaversus/goapi/domain/marketplace"
	mMarketplace "github.com/metaversus/goapi/domain/marketplace/mocks"
	mNft "github.com/metaversus/goapi/domain/nft/mocks"
)

var (
	escrow   = domain.Address("0x000000000000000000000000000000000000e5c0")
	treasury = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	seller   = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	buyer    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	nftAddr  = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	payToken = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

type marketplaceTestSuite struct {
	suite.Suite

	marketItemRepo *mMarketplace.MarketItemRepo
	orderRepo      *mMarketplace.OrderRepo
	adminUC        *mAdmin.Usecase
	fungibleUC     *mFungible.Usecase
	nftUC          *mNft.Usecase
	eventRepo      *mEvent.Repo
	im             marketplace.Usecase

	now time.Time
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(marketplaceTestSuite))
}

func (s *marketplaceTestSuite) SetupTest() {
	s.marketItemRepo = &mMarketplace.MarketItemRepo{}
	s.orderRepo = &mMarketplace.OrderRepo{}
	s.adminUC = &mAdmin.Usecase{}
	s.fungibleUC = &mFungible.Usecase{}
	s.nftUC = &mNft.Usecase{}
	s.eventRepo = &mEvent.Repo{}
	s.im = New(&MarketplaceUseCaseCfg{
		MarketItemRepo: s.marketItemRepo,
		OrderRepo:      s.orderRepo,
		AdminUC:        s.adminUC,
		FungibleUC:     s.fungibleUC,
		NftUC:          s.nftUC,
		EventRepo:      s.eventRepo,
		EscrowAccount:  escrow,
	})
	// events are side channel, accept whatever is emitted
	s.eventRepo.On("Insert", mock.Anything, mock.AnythingOfType("*event.Event")).Return(nil).Maybe()

	s.now = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return s.now }
}

func (s *marketplaceTestSuite) TearDownTest() {
	timeNow = time.Now
	s.marketItemRepo.AssertExpectations(s.T())
	s.orderRepo.AssertExpectations(s.T())
	s.adminUC.AssertExpectations(s.T())
	s.fungibleUC.AssertExpectations(s.T())
	s.nftUC.AssertExpectations(s.T())
}

func (s *marketplaceTestSuite) listing() *marketplace.MarketItem {
	return &marketplace.MarketItem{
		Id:           1,
		Nft:          nftAddr,
		TokenId:      "9",
		Amount:       1,
		Seller:       seller,
		Price:        "100000",
		PaymentToken: payToken,
		StartTime:    s.now.Add(-time.Hour),
		EndTime:      s.now.Add(time.Hour),
		Status:       marketplace.MarketItemStatusListing,
	}
}

func (s *marketplaceTestSuite) TestSell() {
	c := bCtx.Background()

	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.nftUC.On("URI", mock.Anything, nftAddr, domain.TokenId("9")).Return("ipfs://Qm9", nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(true, nil).Once()
	s.nftUC.On("BalanceOf", mock.Anything, nftAddr, domain.TokenId("9"), seller).Return(int64(1), nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), seller, escrow, int64(1)).Return(nil).Once()
	s.marketItemRepo.On("NextId", mock.Anything).Return(int64(1), nil).Once()
	s.marketItemRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *marketplace.MarketItem) bool {
		return item.Id == 1 && item.Status == marketplace.MarketItemStatusListing && item.Price == "100000"
	})).Return(nil).Once()

	item, err := s.im.Sell(c, seller, nftAddr, "9", 1, "100000", s.now.Add(-time.Hour), s.now.Add(time.Hour), payToken, "")
	s.NoError(err)
	s.Equal(int64(1), item.Id)
}

func (s *marketplaceTestSuite) TestSellRejectsUnknownToken() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.nftUC.On("URI", mock.Anything, nftAddr, domain.TokenId("9")).Return("", domain.ErrNotFound).Once()

	_, err := s.im.Sell(bCtx.Background(), seller, nftAddr, "9", 1, "100000", s.now, s.now.Add(time.Hour), payToken, "")
	s.Equal(domain.ErrTokenIsNotExisted, err)
}

func (s *marketplaceTestSuite) TestSellRejectsUnpermittedNFT() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(false, nil).Once()

	_, err := s.im.Sell(bCtx.Background(), seller, nftAddr, "9", 1, "100000", s.now, s.now.Add(time.Hour), payToken, "")
	s.Equal(domain.ErrInvalidNftAddress, err)
}

func (s *marketplaceTestSuite) TestSellRejectsBadWindow() {
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.nftUC.On("URI", mock.Anything, nftAddr, domain.TokenId("9")).Return("ipfs://Qm9", nil).Once()

	_, err := s.im.Sell(bCtx.Background(), seller, nftAddr, "9", 1, "100000", s.now, s.now.Add(-time.Minute), payToken, "")
	s.Equal(domain.ErrInvalidEndTime, err)
}

func (s *marketplaceTestSuite) TestSellRejectsUnpermittedNativeToken() {
	// the zero address goes through the registry like any other token
	s.adminUC.On("IsPermittedNFT", mock.Anything, nftAddr).Return(true, nil).Once()
	s.nftUC.On("URI", mock.Anything, nftAddr, domain.TokenId("9")).Return("ipfs://Qm9", nil).Once()
	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, domain.EmptyAddress).Return(false, nil).Once()

	_, err := s.im.Sell(bCtx.Background(), seller, nftAddr, "9", 1, "100000", s.now, s.now.Add(time.Hour), domain.EmptyAddress, "")
	s.Equal(domain.ErrPaymentTokenIsNotSupported, err)
}

func (s *marketplaceTestSuite) TestBuySettlesFeeRoyaltyAndNet() {
	c := bCtx.Background()
	item := s.listing()
	royaltyReceiver := domain.Address("0x54a769173d97432a48371b022709117c090298e3")
	price := decimal.NewFromInt(100000)
	fee := decimal.NewFromInt(2500)
	royalty := decimal.NewFromInt(4875)
	net := decimal.NewFromInt(92625)

	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, buyer, escrow, price).Return(nil).Once()
	s.nftUC.On("RoyaltyInfo", mock.Anything, nftAddr, domain.TokenId("9"), price.Sub(fee)).
		Return(royaltyReceiver, royalty, nil).Once()
	s.adminUC.On("Treasury", mock.Anything).Return(treasury, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, seller, net).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, treasury, fee.Add(royalty)).Return(nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), escrow, buyer, int64(1)).Return(nil).Once()
	s.marketItemRepo.On("Patch", mock.Anything, int64(1), mock.MatchedBy(func(p marketplace.MarketItemPatchable) bool {
		return p.Status != nil && *p.Status == marketplace.MarketItemStatusSold && p.Buyer != nil && *p.Buyer == buyer
	})).Return(nil).Once()

	s.NoError(s.im.Buy(c, buyer, 1, nil))
}

func (s *marketplaceTestSuite) TestBuyRefundsBuyerWhenSettlementFails() {
	c := bCtx.Background()
	item := s.listing()
	price := decimal.NewFromInt(100000)
	net := decimal.NewFromInt(97500)

	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Once()
	s.nftUC.On("RoyaltyInfo", mock.Anything, nftAddr, domain.TokenId("9"), mock.Anything).
		Return(domain.EmptyAddress, decimal.Zero, nil).Once()
	s.adminUC.On("Treasury", mock.Anything).Return(treasury, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, buyer, escrow, price).Return(nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), escrow, buyer, int64(1)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, seller, net).
		Return(domain.ErrInsufficientBalance).Once()
	// the asset goes back under the listing and the buyer is made whole
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), buyer, escrow, int64(1)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, buyer, price).Return(nil).Once()

	err := s.im.Buy(c, buyer, 1, nil)
	s.Equal(domain.ErrInsufficientBalance, err)
	s.marketItemRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceTestSuite) TestBuyOwnListing() {
	item := s.listing()
	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Once()

	err := s.im.Buy(bCtx.Background(), seller, 1, nil)
	s.Equal(domain.ErrCanNotBuyYourNFT, err)
}

func (s *marketplaceTestSuite) TestBuyOutsideWindow() {
	item := s.listing()
	item.EndTime = s.now.Add(-time.Minute)
	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Once()

	err := s.im.Buy(bCtx.Background(), buyer, 1, nil)
	s.Equal(domain.ErrMarketItemIsNotSelling, err)
}

func (s *marketplaceTestSuite) TestBuyPrivateListing() {
	c := bCtx.Background()
	root, proofs := marketplace.BuildWhitelist([]domain.Address{buyer, "0x2e9e733cb0394aace1226e34313f12b0764be65a"})
	item := s.listing()
	item.WhitelistRoot = root
	price := decimal.NewFromInt(100000)

	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Twice()

	// outsider with no proof is rejected before any transfer
	err := s.im.Buy(c, "0x23c0221b2b66071afdcce502a103f18ec2666a12", 1, nil)
	s.Equal(domain.ErrNotInWhitelist, err)

	s.fungibleUC.On("Transfer", mock.Anything, payToken, buyer, escrow, price).Return(nil).Once()
	s.nftUC.On("RoyaltyInfo", mock.Anything, nftAddr, domain.TokenId("9"), mock.Anything).
		Return(domain.EmptyAddress, decimal.Zero, nil).Once()
	s.adminUC.On("Treasury", mock.Anything).Return(treasury, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, seller, decimal.NewFromInt(97500)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, treasury, decimal.NewFromInt(2500)).Return(nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), escrow, buyer, int64(1)).Return(nil).Once()
	s.marketItemRepo.On("Patch", mock.Anything, int64(1), mock.AnythingOfType("marketplace.MarketItemPatchable")).Return(nil).Once()

	s.NoError(s.im.Buy(c, buyer, 1, proofs[buyer]))
}

func (s *marketplaceTestSuite) TestCancelSell() {
	c := bCtx.Background()
	item := s.listing()

	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Twice()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), escrow, seller, int64(1)).Return(nil).Once()
	s.marketItemRepo.On("Patch", mock.Anything, int64(1), mock.MatchedBy(func(p marketplace.MarketItemPatchable) bool {
		return p.Status != nil && *p.Status == marketplace.MarketItemStatusCanceled
	})).Return(nil).Once()

	s.Equal(domain.ErrNotTheSeller, s.im.CancelSell(c, buyer, 1))
	s.NoError(s.im.CancelSell(c, seller, 1))
}

func (s *marketplaceTestSuite) TestRelistBeforeWindowElapsed() {
	item := s.listing()
	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Once()

	err := s.im.SellAvailableInMarketplace(bCtx.Background(), seller, 1, "50000", s.now, s.now.Add(time.Hour))
	s.Equal(domain.ErrOrderIsExpired, err)
}

func (s *marketplaceTestSuite) TestRelist() {
	c := bCtx.Background()
	item := s.listing()
	item.EndTime = s.now.Add(-time.Minute)

	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(item, nil).Once()
	s.marketItemRepo.On("Patch", mock.Anything, int64(1), mock.MatchedBy(func(p marketplace.MarketItemPatchable) bool {
		return p.Price != nil && *p.Price == "50000" && p.EndTime != nil
	})).Return(nil).Once()

	s.NoError(s.im.SellAvailableInMarketplace(c, seller, 1, "50000", s.now, s.now.Add(time.Hour)))
}

func (s *marketplaceTestSuite) TestTerminalListingRejectsTransitions() {
	c := bCtx.Background()
	sold := s.listing()
	sold.Status = marketplace.MarketItemStatusSold
	sold.Buyer = buyer.ToLowerPtr()
	canceled := s.listing()
	canceled.Id = 2
	canceled.Status = marketplace.MarketItemStatusCanceled

	s.marketItemRepo.On("FindOne", mock.Anything, int64(1)).Return(sold, nil).Twice()
	s.marketItemRepo.On("FindOne", mock.Anything, int64(2)).Return(canceled, nil).Once()

	s.Equal(domain.ErrMarketItemIsNotAvailable, s.im.Buy(c, buyer, 1, nil))
	s.Equal(domain.ErrMarketItemIsNotAvailable, s.im.SellAvailableInMarketplace(c, seller, 1, "50000", s.now, s.now.Add(time.Hour)))
	s.Equal(domain.ErrMarketItemIsNotAvailable, s.im.CancelSell(c, seller, 2))
}

func (s *marketplaceTestSuite) TestMakeWalletOrderEscrowsBid() {
	c := bCtx.Background()
	bid := decimal.NewFromInt(8000)
	expiry := s.now.Add(24 * time.Hour)

	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(true, nil).Once()
	s.orderRepo.On("FindPendingWalletOrder", mock.Anything, buyer, nftAddr, domain.TokenId("9")).
		Return(nil, domain.ErrNotFound).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, buyer, escrow, bid).Return(nil).Once()
	s.orderRepo.On("NextId", mock.Anything).Return(int64(11), nil).Once()
	s.orderRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *marketplace.Order) bool {
		return o.Id == 11 && o.Kind == marketplace.OrderKindWallet && o.BidPrice == "8000" && o.To == seller
	})).Return(nil).Once()

	order, err := s.im.MakeWalletOrder(c, buyer, payToken, "8000", seller, nftAddr, "9", 1, expiry)
	s.NoError(err)
	s.Equal(marketplace.OrderStatusPending, order.Status)
}

func (s *marketplaceTestSuite) TestMakeWalletOrderRevisesUpward() {
	c := bCtx.Background()
	expiry := s.now.Add(24 * time.Hour)
	existing := &marketplace.Order{
		Id:           11,
		Kind:         marketplace.OrderKindWallet,
		Owner:        buyer,
		PaymentToken: payToken,
		BidPrice:     "8000",
		Status:       marketplace.OrderStatusPending,
		ExpiredTime:  s.now.Add(time.Hour),
		To:           seller,
		Nft:          nftAddr,
		TokenId:      "9",
		Amount:       1,
	}

	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, payToken).Return(true, nil).Once()
	s.orderRepo.On("FindPendingWalletOrder", mock.Anything, buyer, nftAddr, domain.TokenId("9")).
		Return(existing, nil).Once()
	// only the difference is pulled into escrow
	s.fungibleUC.On("Transfer", mock.Anything, payToken, buyer, escrow, decimal.NewFromInt(2000)).Return(nil).Once()
	s.orderRepo.On("Patch", mock.Anything, int64(11), mock.MatchedBy(func(p marketplace.OrderPatchable) bool {
		return p.BidPrice != nil && *p.BidPrice == "10000"
	})).Return(nil).Once()

	order, err := s.im.MakeWalletOrder(c, buyer, payToken, "10000", seller, nftAddr, "9", 1, expiry)
	s.NoError(err)
	s.Equal("10000", order.BidPrice)
}

func (s *marketplaceTestSuite) TestMakeWalletOrderRevisionKeepsPaymentToken() {
	expiry := s.now.Add(24 * time.Hour)
	existing := &marketplace.Order{
		Id: 11, Kind: marketplace.OrderKindWallet, Owner: buyer,
		PaymentToken: payToken, BidPrice: "8000",
		Status: marketplace.OrderStatusPending, To: seller, Nft: nftAddr, TokenId: "9", Amount: 1,
	}
	other := domain.Address("0x2e9e733cb0394aace1226e34313f12b0764be65a")

	s.adminUC.On("IsPermittedPaymentToken", mock.Anything, other).Return(true, nil).Once()
	s.orderRepo.On("FindPendingWalletOrder", mock.Anything, buyer, nftAddr, domain.TokenId("9")).
		Return(existing, nil).Once()

	_, err := s.im.MakeWalletOrder(bCtx.Background(), buyer, other, "10000", seller, nftAddr, "9", 1, expiry)
	s.Equal(domain.ErrCanNotUpdatePaymentToken, err)
}

func (s *marketplaceTestSuite) TestAcceptWalletOrder() {
	c := bCtx.Background()
	order := &marketplace.Order{
		Id:           11,
		Kind:         marketplace.OrderKindWallet,
		Owner:        buyer,
		PaymentToken: payToken,
		BidPrice:     "8000",
		Status:       marketplace.OrderStatusPending,
		ExpiredTime:  s.now.Add(time.Hour),
		To:           seller,
		Nft:          nftAddr,
		TokenId:      "9",
		Amount:       1,
	}
	bid := decimal.NewFromInt(8000)
	fee := decimal.NewFromInt(200)

	s.orderRepo.On("FindOne", mock.Anything, int64(11)).Return(order, nil).Once()
	s.nftUC.On("BalanceOf", mock.Anything, nftAddr, domain.TokenId("9"), seller).Return(int64(1), nil).Once()
	s.nftUC.On("RoyaltyInfo", mock.Anything, nftAddr, domain.TokenId("9"), bid.Sub(fee)).
		Return(domain.EmptyAddress, decimal.Zero, nil).Once()
	s.adminUC.On("Treasury", mock.Anything).Return(treasury, nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, seller, decimal.NewFromInt(7800)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, treasury, fee).Return(nil).Once()
	// wallet order assets move straight from the accepting wallet
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), seller, buyer, int64(1)).Return(nil).Once()
	s.orderRepo.On("Patch", mock.Anything, int64(11), mock.MatchedBy(func(p marketplace.OrderPatchable) bool {
		return p.Status != nil && *p.Status == marketplace.OrderStatusAccepted
	})).Return(nil).Once()

	s.NoError(s.im.AcceptOrder(c, seller, 11, "8000"))
}

func (s *marketplaceTestSuite) TestAcceptOrderRestoresAssetWhenSettlementFails() {
	c := bCtx.Background()
	order := &marketplace.Order{
		Id: 11, Kind: marketplace.OrderKindWallet, Owner: buyer,
		PaymentToken: payToken, BidPrice: "8000",
		Status: marketplace.OrderStatusPending, ExpiredTime: s.now.Add(time.Hour),
		To: seller, Nft: nftAddr, TokenId: "9", Amount: 1,
	}

	s.orderRepo.On("FindOne", mock.Anything, int64(11)).Return(order, nil).Once()
	s.nftUC.On("BalanceOf", mock.Anything, nftAddr, domain.TokenId("9"), seller).Return(int64(1), nil).Once()
	s.nftUC.On("RoyaltyInfo", mock.Anything, nftAddr, domain.TokenId("9"), mock.Anything).
		Return(domain.EmptyAddress, decimal.Zero, nil).Once()
	s.adminUC.On("Treasury", mock.Anything).Return(treasury, nil).Once()
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), seller, buyer, int64(1)).Return(nil).Once()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, seller, decimal.NewFromInt(7800)).
		Return(domain.ErrInsufficientBalance).Once()
	// the asset returns to the seller; the bid stays escrowed for the order
	s.nftUC.On("Transfer", mock.Anything, nftAddr, domain.TokenId("9"), buyer, seller, int64(1)).Return(nil).Once()

	err := s.im.AcceptOrder(c, seller, 11, "8000")
	s.Equal(domain.ErrInsufficientBalance, err)
	s.orderRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketplaceTestSuite) TestAcceptOrderPriceMustMatch() {
	order := &marketplace.Order{
		Id: 11, Kind: marketplace.OrderKindWallet, Owner: buyer,
		PaymentToken: payToken, BidPrice: "8000",
		Status: marketplace.OrderStatusPending, ExpiredTime: s.now.Add(time.Hour),
		To: seller, Nft: nftAddr, TokenId: "9", Amount: 1,
	}
	s.orderRepo.On("FindOne", mock.Anything, int64(11)).Return(order, nil).Once()

	err := s.im.AcceptOrder(bCtx.Background(), seller, 11, "7999")
	s.Equal(domain.ErrNotEqualPrice, err)
}

func (s *marketplaceTestSuite) TestAcceptExpiredOrder() {
	order := &marketplace.Order{
		Id: 11, Kind: marketplace.OrderKindWallet, Owner: buyer,
		PaymentToken: payToken, BidPrice: "8000",
		Status: marketplace.OrderStatusPending, ExpiredTime: s.now.Add(-time.Minute),
		To: seller, Nft: nftAddr, TokenId: "9", Amount: 1,
	}
	s.orderRepo.On("FindOne", mock.Anything, int64(11)).Return(order, nil).Once()

	err := s.im.AcceptOrder(bCtx.Background(), seller, 11, "8000")
	s.Equal(domain.ErrOrderIsExpired, err)
}

func (s *marketplaceTestSuite) TestCancelOrderRefundsEscrow() {
	c := bCtx.Background()
	order := &marketplace.Order{
		Id: 11, Kind: marketplace.OrderKindWallet, Owner: buyer,
		PaymentToken: payToken, BidPrice: "8000",
		Status: marketplace.OrderStatusPending, ExpiredTime: s.now.Add(time.Hour),
		To: seller, Nft: nftAddr, TokenId: "9", Amount: 1,
	}

	s.orderRepo.On("FindOne", mock.Anything, int64(11)).Return(order, nil).Twice()
	s.fungibleUC.On("Transfer", mock.Anything, payToken, escrow, buyer, decimal.NewFromInt(8000)).Return(nil).Once()
	s.orderRepo.On("Patch", mock.Anything, int64(11), mock.MatchedBy(func(p marketplace.OrderPatchable) bool {
		return p.Status != nil && *p.Status == marketplace.OrderStatusCanceled
	})).Return(nil).Once()

	s.Equal(domain.ErrNotTheOwnerOfOrder, s.im.CancelOrder(c, seller, 11))
	s.NoError(s.im.CancelOrder(c, buyer, 11))
}

func (s *marketplaceTestSuite) TestWasBuyer() {
	s.marketItemRepo.On("FindAll", mock.Anything,
		mock.AnythingOfType("marketplace.FindAllOptionsFunc"),
		mock.AnythingOfType("marketplace.FindAllOptionsFunc")).
		Return([]*marketplace.MarketItem{{Id: 1}}, nil).Once()

	was, err := s.im.WasBuyer(bCtx.Background(), buyer)
	s.NoError(err)
	s.True(was)
}
