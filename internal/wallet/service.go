// Package wallet provides deterministic address derivation and fee-aware
// fund movement on top of the simulated ledger. A wallet owns its derivation
// counter and the set of addresses it manages; ledger state stays with the
// ledger.
package wallet

import (
	"errors"
	"sync"

	"github.com/gabapcia/paysim/internal/ledger"
	"github.com/gabapcia/paysim/internal/pkg/types"
)

// ErrAddressNotManaged is returned by SendFunds when the sender address was
// not derived by (or adopted into) this wallet instance.
var ErrAddressNotManaged = errors.New("address not managed by this wallet")

// defaultAddressPrefix seeds the sequential fallback scheme when no prefix
// is configured.
const defaultAddressPrefix = "tb1sim"

// transferSizeBytes is the fixed simulated size of a wallet transfer, used
// for fee estimation. Real wallets would compute it from the serialized
// transaction.
const transferSizeBytes int64 = 250

// Service is the wallet's public surface. All operations are safe for
// concurrent use.
type Service interface {
	// DeriveAddress returns the next address for this wallet. With master
	// key material configured the address is derived deterministically from
	// (master key, index); otherwise a sequential prefix+counter scheme is
	// used. No two calls on the same instance return the same address.
	//
	// The derivation counter is in-memory state that resets on restart;
	// reproducing an address sequence across processes requires the same
	// master key and a fresh wallet. That is a test-fixture limitation,
	// not a custody guarantee.
	DeriveAddress() string

	// FundFromFaucet credits the address with free testnet funds and
	// confirms the transaction immediately, so the credit is spendable as
	// soon as the call returns. The address is adopted into the wallet's
	// managed set. Returns the faucet transaction id.
	FundFromFaucet(address string, amount int64) (string, error)

	// SendFunds moves amount from one managed address to any destination,
	// charging the network fee to the sender. It fails with
	// ledger.ErrInsufficientFunds when the sender's confirmed balance does
	// not cover amount plus fee, and with ErrAddressNotManaged when the
	// sender does not belong to this wallet. Failed sends mutate nothing.
	SendFunds(fromAddress, toAddress string, amount int64) (string, error)

	// TransferFee returns the fee charged for a single simulated transfer
	// at the wallet's fixed transfer size.
	TransferFee() int64
}

// service is the concrete wallet implementation.
type service struct {
	mu      sync.Mutex
	counter uint32            // next derivation index, post-incremented
	managed types.Set[string] // addresses derived by or adopted into this wallet

	deriver addressDeriver
	ledger  ledger.Service
}

var _ Service = (*service)(nil)

// Option configures the wallet at construction time.
type Option func(*service)

// WithMasterKey enables hierarchical derivation from the given master
// extended-key material. Without it the wallet falls back to the sequential
// scheme.
func WithMasterKey(masterKey string) Option {
	return func(s *service) {
		if masterKey != "" {
			s.deriver = hierarchicalDeriver{masterKey: masterKey}
		}
	}
}

// WithAddressPrefix overrides the prefix used by the sequential fallback
// scheme. It has no effect once a master key is configured.
func WithAddressPrefix(prefix string) Option {
	return func(s *service) {
		if _, ok := s.deriver.(sequentialDeriver); ok && prefix != "" {
			s.deriver = sequentialDeriver{prefix: prefix}
		}
	}
}

// New creates a wallet bound to the given ledger. The derivation strategy is
// selected once here: hierarchical when WithMasterKey supplies material,
// sequential otherwise.
func New(l ledger.Service, opts ...Option) *service {
	s := &service{
		managed: types.NewSet[string](),
		deriver: sequentialDeriver{prefix: defaultAddressPrefix},
		ledger:  l,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DeriveAddress implements Service.
func (s *service) DeriveAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	address := s.deriver.deriveAt(s.counter)
	s.counter++
	s.managed.Add(address)

	return address
}

// FundFromFaucet implements Service.
func (s *service) FundFromFaucet(address string, amount int64) (string, error) {
	txID, err := s.ledger.RecordTransaction([]ledger.Output{{Address: address, Amount: amount}}, 0)
	if err != nil {
		return "", err
	}

	// The faucet mines its credit right away, mirroring how a dev faucet
	// hands out immediately spendable coins.
	if err := s.ledger.Confirm(txID); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.managed.Add(address)
	s.mu.Unlock()

	return txID, nil
}

// SendFunds implements Service.
func (s *service) SendFunds(fromAddress, toAddress string, amount int64) (string, error) {
	s.mu.Lock()
	known := s.managed.Contains(fromAddress)
	s.mu.Unlock()

	if !known {
		return "", ErrAddressNotManaged
	}

	// The ledger re-checks the balance atomically with the debit; this is
	// where amount+fee is charged to the sender.
	return s.ledger.RecordTransaction(
		[]ledger.Output{{Address: toAddress, Amount: amount}},
		transferSizeBytes,
		ledger.WithSpender(fromAddress),
	)
}

// TransferFee implements Service.
func (s *service) TransferFee() int64 {
	return s.ledger.EstimateFee(transferSizeBytes)
}
