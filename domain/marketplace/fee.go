package marketplace

import (
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/domain"
)

// ListingFeeBps is the platform-retained share of every sale, in basis
// points.
const ListingFeeBps = 250

// ListingFee returns price*ListingFeeBps/10000, truncated to base units.
func ListingFee(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(ListingFeeBps)).Div(domain.FeeDenominator).Truncate(0)
}

// RoyaltyAmount returns the royalty on the post-fee sale value, truncated to
// base units.
func RoyaltyAmount(netOfFee decimal.Decimal, royaltyBps int64) decimal.Decimal {
	return netOfFee.Mul(decimal.NewFromInt(royaltyBps)).Div(domain.FeeDenominator).Truncate(0)
}

// SplitSale decomposes a sale price into (netSaleValue, listingFee, royalty).
// The three parts always sum to price exactly.
func SplitSale(price decimal.Decimal, royaltyBps int64) (net, fee, royalty decimal.Decimal) {
	fee = ListingFee(price)
	royalty = RoyaltyAmount(price.Sub(fee), royaltyBps)
	net = price.Sub(fee).Sub(royalty)
	return net, fee, royalty
}
