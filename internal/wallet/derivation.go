package wallet

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// testnetAddressVersion is the version byte prepended during base58check
// encoding of hierarchically derived addresses. It mirrors the Bitcoin
// testnet P2PKH version so derived addresses look like real testnet ones.
const testnetAddressVersion byte = 0x6f

// addressDeriver produces the address for a given derivation index. A
// deriver must be pure: the same index always yields the same address, and
// distinct indices never collide.
type addressDeriver interface {
	// deriveAt returns the address for the given child index.
	deriveAt(index uint32) string
}

// hierarchicalDeriver derives child addresses deterministically from master
// extended-key material. The child hash is hash160 = RIPEMD160(SHA256(...))
// over the master key concatenated with the big-endian index, base58check
// encoded with a testnet version byte. This is a simulation of HD wallet
// derivation, not BIP-32: it keeps the determinism and non-collision
// properties without real key mathematics.
type hierarchicalDeriver struct {
	masterKey string
}

func (d hierarchicalDeriver) deriveAt(index uint32) string {
	material := make([]byte, 0, len(d.masterKey)+4)
	material = append(material, d.masterKey...)
	material = binary.BigEndian.AppendUint32(material, index)

	sha := sha256.Sum256(material)

	hasher := ripemd160.New()
	hasher.Write(sha[:])
	hash160 := hasher.Sum(nil)

	return base58.CheckEncode(hash160, testnetAddressVersion)
}

// sequentialDeriver is the fallback scheme used when no master key material
// is configured: addresses are plain "prefix + index" strings. Still unique
// per index, but with no pretense of looking like chain addresses.
type sequentialDeriver struct {
	prefix string
}

func (d sequentialDeriver) deriveAt(index uint32) string {
	return fmt.Sprintf("%s%d", d.prefix, index)
}
