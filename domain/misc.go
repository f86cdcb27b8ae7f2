package domain

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// TokenType distinguishes the two shared non-fungible token standards.
type TokenType int

const (
	TokenType721  TokenType = 721
	TokenType1155 TokenType = 1155
)

func (t TokenType) Valid() bool {
	return t == TokenType721 || t == TokenType1155
}

type Address string

// EmptyAddress is the zero address. It doubles as the sentinel for native
// currency wherever a payment token parameter is accepted.
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

// IsNative reports whether the address is the native currency sentinel.
func (a Address) IsNative() bool {
	return a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// DeriveAddress deterministically derives an instance address from a seed,
// mirroring contract-creation addressing: keccak of the seed, last 20 bytes.
func DeriveAddress(seed string) Address {
	sum := crypto.Keccak256([]byte(seed))
	return Address("0x" + hex.EncodeToString(sum[12:]))
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// FeeDenominator is the basis-point denominator shared by listing fee and
// royalty computations.
var FeeDenominator = decimal.NewFromInt(10000)

// ParseAmount parses a base-unit integer amount carried as a decimal string.
// Fractional or malformed values are rejected.
func ParseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if !d.Equal(d.Truncate(0)) {
		return decimal.Zero, false
	}
	return d, true
}

type TxHash string

type EventId string
