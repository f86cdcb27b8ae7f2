package marketplace

import (
	"bytes"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/metaversus/goapi/domain"
)

// Whitelists commit to a set of buyer addresses with a sorted-pair keccak256
// Merkle tree, the commitment scheme private listings verify proofs against.

// WhitelistLeaf hashes one address into its leaf.
func WhitelistLeaf(addr domain.Address) []byte {
	return crypto.Keccak256(common.HexToAddress(string(addr)).Bytes())
}

func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256(a, b)
}

// VerifyWhitelist checks a membership proof of addr against root. Proof
// nodes and root are 0x-prefixed hex.
func VerifyWhitelist(root string, proof []string, addr domain.Address) bool {
	node := WhitelistLeaf(addr)
	for _, p := range proof {
		sibling, err := hexutil.Decode(p)
		if err != nil {
			return false
		}
		node = hashPair(node, sibling)
	}
	want, err := hexutil.Decode(root)
	if err != nil {
		return false
	}
	return bytes.Equal(node, want)
}

// BuildWhitelist builds the tree over the address set, returning the root
// and a proof per address. Used by listing tooling and tests.
func BuildWhitelist(addrs []domain.Address) (string, map[domain.Address][]string) {
	if len(addrs) == 0 {
		return "", nil
	}

	leaves := make([][]byte, len(addrs))
	for i, a := range addrs {
		leaves[i] = WhitelistLeaf(a)
	}
	sort.Slice(leaves, func(i, j int) bool { return bytes.Compare(leaves[i], leaves[j]) < 0 })

	proofs := map[string][]string{}
	for _, l := range leaves {
		proofs[string(l)] = []string{}
	}

	level := leaves
	members := make([][][]byte, len(leaves))
	for i, l := range leaves {
		members[i] = [][]byte{l}
	}

	for len(level) > 1 {
		var nextLevel [][]byte
		var nextMembers [][][]byte
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// odd node is carried up unchanged
				nextLevel = append(nextLevel, level[i])
				nextMembers = append(nextMembers, members[i])
				continue
			}
			left, right := level[i], level[i+1]
			for _, m := range members[i] {
				proofs[string(m)] = append(proofs[string(m)], hexutil.Encode(right))
			}
			for _, m := range members[i+1] {
				proofs[string(m)] = append(proofs[string(m)], hexutil.Encode(left))
			}
			nextLevel = append(nextLevel, hashPair(left, right))
			nextMembers = append(nextMembers, append(append([][]byte{}, members[i]...), members[i+1]...))
		}
		level = nextLevel
		members = nextMembers
	}

	root := hexutil.Encode(level[0])
	res := map[domain.Address][]string{}
	for _, a := range addrs {
		res[a] = proofs[string(WhitelistLeaf(a))]
	}
	return root, res
}
