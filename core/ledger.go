package core

// ledger.go – the LedgerOps boundary: token transfer, mint, burn,
// balance and supply primitives the core treats as an external
// collaborator, plus an in-memory implementation used by tests and the
// CLI/server binaries' fixture mode.
//
// A single interface is the abstraction boundary between pool logic and
// storage, trimmed to only the operations this core actually calls.

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// errInsufficientBalance is the ledger's own low-level rejection. The
// pool operations in liquidity.go/swap.go check balances themselves
// before calling Transfer/Burn so that callers see the typed PoolError
// (OverProvide, TooMuchBuy, OverWithdraw) rather than this generic one;
// it only surfaces if a caller skips that check.
var errInsufficientBalance = errors.New("ledger: insufficient balance")

// Ledger is the abstract token-movement and account service the core
// depends on. Token transfer primitives, account creation, signature
// verification and request framing are the host's responsibility; the
// core only ever reaches the host through this interface.
//
// Transfer of amount 0 is defined to be a no-op: implementations MUST
// accept it without error and without emitting a movement record.
type Ledger interface {
	// Transfer moves amount of token tid from "from" to "to". The
	// caller is responsible for having already checked authority;
	// Transfer itself only checks balance sufficiency.
	Transfer(tid TokenID, from, to Address, amount uint64) error
	// Mint increases the supply of tid and credits "to".
	Mint(tid TokenID, to Address, amount uint64) error
	// Burn decreases the supply of tid and debits "from".
	Burn(tid TokenID, from Address, amount uint64) error
	// Balance returns the current balance of tid held by account.
	Balance(tid TokenID, account Address) uint64
	// Supply returns the current total supply of tid.
	Supply(tid TokenID) uint64
	State
}

// MemLedger is an in-memory Ledger + State implementation, held under a
// single mutex so every call observes a consistent snapshot. It is the
// concrete ledger used by every _test.go in this package and by the
// poolcli/poolserver binaries' fixture mode.
type MemLedger struct {
	mu       sync.Mutex
	balances map[TokenID]map[Address]uint64
	supply   map[TokenID]uint64
	records  map[Address]Record
	log      *logrus.Logger
}

// NewMemLedger returns an empty MemLedger. A nil logger defaults to
// logrus's standard logger.
func NewMemLedger(log *logrus.Logger) *MemLedger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MemLedger{
		balances: make(map[TokenID]map[Address]uint64),
		supply:   make(map[TokenID]uint64),
		records:  make(map[Address]Record),
		log:      log,
	}
}

// Credit directly sets up a starting balance for account, used by test
// and fixture setup to seed user wallets before exercising an operation.
func (l *MemLedger) Credit(tid TokenID, account Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.creditLocked(tid, account, amount)
}

func (l *MemLedger) creditLocked(tid TokenID, account Address, amount uint64) {
	bal := l.balances[tid]
	if bal == nil {
		bal = make(map[Address]uint64)
		l.balances[tid] = bal
	}
	bal[account] += amount
}

func (l *MemLedger) Transfer(tid TokenID, from, to Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balances[tid]
	if bal == nil || bal[from] < amount {
		return errInsufficientBalance
	}
	bal[from] -= amount
	l.creditLocked(tid, to, amount)
	l.log.WithFields(logrus.Fields{"token": tid, "from": from, "to": to, "amount": amount}).Debug("ledger transfer")
	return nil
}

func (l *MemLedger) Mint(tid TokenID, to Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.creditLocked(tid, to, amount)
	l.supply[tid] += amount
	return nil
}

func (l *MemLedger) Burn(tid TokenID, from Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balances[tid]
	if bal == nil || bal[from] < amount {
		return errInsufficientBalance
	}
	bal[from] -= amount
	l.supply[tid] -= amount
	return nil
}

func (l *MemLedger) Balance(tid TokenID, account Address) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[tid][account]
}

func (l *MemLedger) Supply(tid TokenID) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.supply[tid]
}

func (l *MemLedger) Load(addr Address) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[addr]
	return rec, ok
}

func (l *MemLedger) Save(addr Address, rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[addr] = rec
	return nil
}

func (l *MemLedger) Ensure(addr Address, def Record) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rec, ok := l.records[addr]; ok {
		return rec, nil
	}
	l.records[addr] = def
	return def, nil
}
