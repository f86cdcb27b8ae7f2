package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// authorization
	ErrCallerIsNotOwner        = errors.New("Ownable: caller is not the owner")
	ErrCallerIsNotOwnerOrAdmin = errors.New("CallerIsNotOwnerOrAdmin")
	ErrNotTheSeller            = errors.New("NotTheSeller")
	ErrNotTheOwnerOfOrder      = errors.New("NotTheOwnerOfOrder")

	// validation
	ErrInvalidAddress       = errors.New("InvalidAddress")
	ErrInvalidAmount        = errors.New("InvalidAmount")
	ErrInvalidWallet        = errors.New("InvalidWallet")
	ErrInvalidLength        = errors.New("InvalidLength")
	ErrInvalidMaxCollection = errors.New("InvalidMaxCollection")
	ErrInvalidEndTime       = errors.New("InvalidEndTime")
	ErrInvalidOrderTime     = errors.New("InvalidOrderTime")
	ErrInvalidMarketItemId  = errors.New("InvalidMarketItemId")
	ErrInvalidOrderId       = errors.New("InvalidOrderId")
	ErrInvalidNftAddress    = errors.New("InvalidNftAddress")
	ErrInvalidSignature     = errors.New("Invalid signature")
	ErrTokenIsNotExisted    = errors.New("TokenIsNotExisted")

	// state conflict
	ErrMarketItemIsNotAvailable   = errors.New("MarketItemIsNotAvailable")
	ErrMarketItemIsNotSelling     = errors.New("MarketItemIsNotSelling")
	ErrOrderIsNotAvailable        = errors.New("OrderIsNotAvailable")
	ErrOrderIsExpired             = errors.New("OrderIsExpired")
	ErrNotInTheOrderTime          = errors.New("NotInTheOrderTime")
	ErrExceedMaxCollection        = errors.New("ExceedMaxCollection")
	ErrExceedTotalSupply          = errors.New("ExceedTotalSupply")
	ErrExceedAmount               = errors.New("ExceedAmount")
	ErrCanNotBuyYourNFT           = errors.New("CanNotBuyYourNFT")
	ErrUserCanNotOffer            = errors.New("UserCanNotOffer")
	ErrNotEqualPrice              = errors.New("NotEqualPrice")
	ErrCanNotUpdatePaymentToken   = errors.New("CanNotUpdatePaymentToken")
	ErrPaymentTokenIsNotSupported = errors.New("PaymentTokenIsNotSupported")
	ErrInsufficientBalance        = errors.New("ERC20: transfer amount exceeds balance")
	ErrTransferNativeFail         = errors.New("transfer native fail")
	ErrNotInWhitelist             = errors.New("EitherNotInWhitelistOrNotOwnMetaCitizenNFT")

	// auction timing reasons keep the short string form the settlement layer uses
	ErrAuctionNotStarted       = errors.New("not started")
	ErrAuctionEnded            = errors.New("ended")
	ErrAuctionNotEnded         = errors.New("not ended")
	ErrValueBelowPrice         = errors.New("value < price")
	ErrAmountBelowHighest      = errors.New("amount < highest")
	ErrHighestBidderNoWithdraw = errors.New("highest bidder can not withdraw")
)
