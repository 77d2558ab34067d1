package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// ChainId is a hex encoded EVM chain id, e.g. "0x72". Comparisons must be
// case-insensitive, so every lookup normalizes through ToLower first.
type ChainId string

func (c ChainId) ToLower() ChainId {
	return ChainId(strings.ToLower(string(c)))
}

func (c ChainId) String() string {
	return string(c)
}

func (c ChainId) Equals(o ChainId) bool {
	return c.ToLower() == o.ToLower()
}

// ChainIdFromBig renders a numeric chain id in the hex form wallets report
func ChainIdFromBig(n *big.Int) ChainId {
	return ChainId(fmt.Sprintf("0x%x", n))
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TxHash string

func (h TxHash) String() string {
	return string(h)
}

type BlockNumber uint64
