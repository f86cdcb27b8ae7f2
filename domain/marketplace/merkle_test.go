package marketplace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metaversus/goapi/domain"
)

func TestWhitelistRoundtrip(t *testing.T) {
	req := require.New(t)

	members := []domain.Address{
		"0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		"0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad",
		"0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6",
		"0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268",
		"0xdcf0de6b17785a143d006e1515a6afd123cde8ba",
	}

	root, proofs := BuildWhitelist(members)
	req.NotEmpty(root)
	req.Len(proofs, len(members))

	for _, m := range members {
		req.True(VerifyWhitelist(root, proofs[m], m), "member %s", m)
	}

	outsider := domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")
	for _, m := range members {
		req.False(VerifyWhitelist(root, proofs[m], outsider))
	}
}

func TestWhitelistSingleMember(t *testing.T) {
	req := require.New(t)

	member := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	root, proofs := BuildWhitelist([]domain.Address{member})
	// a single leaf is its own root, the proof is empty
	req.Empty(proofs[member])
	req.True(VerifyWhitelist(root, proofs[member], member))
}

func TestWhitelistChecksummedAddress(t *testing.T) {
	req := require.New(t)

	// leaf hashing is case-insensitive over the hex form
	lower := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mixed := domain.Address("0xCe4468E7cE84AceB74363f4EA64e5A038176F369")
	root, proofs := BuildWhitelist([]domain.Address{lower, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"})
	req.True(VerifyWhitelist(root, proofs[lower], mixed))
}

func TestWhitelistEmpty(t *testing.T) {
	req := require.New(t)

	root, proofs := BuildWhitelist(nil)
	req.Empty(root)
	req.Nil(proofs)
	req.False(VerifyWhitelist("", nil, "0xce4468e7ce84aceb74363f4ea64e5a038176f369"))
}
