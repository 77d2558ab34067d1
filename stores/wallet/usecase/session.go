package usecase

import (
	"errors"
	"sync"

	"golang.org/x/xerrors"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/log"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/network"
	"github.com/pixelbay/goapi/domain/wallet"
)

type SessionCfg struct {
	Provider wallet.Provider
	Registry network.Registry
	// DefaultNetwork is shown before any chain has been observed.
	DefaultNetwork *network.Network
}

type session struct {
	provider wallet.Provider
	registry network.Registry

	mu      sync.Mutex
	address *domain.Address
	current *network.Network
}

func NewSession(cfg *SessionCfg) wallet.Session {
	return &session{
		provider: cfg.Provider,
		registry: cfg.Registry,
		current:  cfg.DefaultNetwork,
	}
}

func (s *session) snapshot() *wallet.State {
	return &wallet.State{
		Connected: s.address != nil,
		Address:   s.address,
		Network:   s.current,
	}
}

// resolve maps an observed chain id onto a registry descriptor, falling back
// to a synthetic one so an unknown chain never fails the session.
func (s *session) resolve(chainId domain.ChainId) *network.Network {
	if n, ok := s.registry.Lookup(chainId); ok {
		return n
	}
	return network.Synthetic(chainId)
}

func (s *session) Connect(c bCtx.Ctx) (*wallet.State, error) {
	accounts, err := s.provider.RequestAccounts(c)
	if err != nil {
		c.WithField("err", err).Warn("wallet connection failed")
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrWalletUnavailable
	}

	s.mu.Lock()
	addr := accounts[0].ToLower()
	s.address = &addr
	s.mu.Unlock()

	// chain detection is best effort; a connected wallet on an undetectable
	// chain keeps whatever network was selected before
	if chainId, err := s.provider.ChainId(c); err != nil {
		c.WithField("err", err).Warn("chain id query failed after connect")
	} else {
		s.mu.Lock()
		s.current = s.resolve(chainId)
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.WithField("address", addr).Info("wallet connected")
	return s.snapshot(), nil
}

func (s *session) Disconnect(c bCtx.Ctx) *wallet.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	// local only; the external capability has no revoke operation
	s.address = nil
	c.Info("wallet disconnected")
	return s.snapshot()
}

func (s *session) State(c bCtx.Ctx) *wallet.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *session) OnAccountsChanged(c bCtx.Ctx, accounts []domain.Address) *wallet.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(accounts) == 0 {
		s.address = nil
		c.Info("wallet disconnected by provider")
	} else {
		addr := accounts[0].ToLower()
		s.address = &addr
		c.WithField("address", addr).Info("active account changed")
	}
	return s.snapshot()
}

func (s *session) OnChainChanged(c bCtx.Ctx) *wallet.State {
	chainId, err := s.provider.ChainId(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		c.WithField("err", err).Warn("chain id query failed on chain change")
		return s.snapshot()
	}
	s.current = s.resolve(chainId)
	c.WithField("chainId", chainId).Info("network changed")
	return s.snapshot()
}

func (s *session) SwitchOrAddNetwork(c bCtx.Ctx, chainId domain.ChainId) (*wallet.State, error) {
	target, ok := s.registry.Lookup(chainId)
	if !ok {
		return nil, domain.ErrInvalidChainId
	}

	if err := s.provider.SwitchChain(c, target.ChainId); err != nil {
		if !errors.Is(err, domain.ErrChainUnrecognized) {
			c.WithFields(log.Fields{"err": err, "chainId": target.ChainId}).Warn("chain switch failed")
			return nil, xerrors.Errorf("switch to %s: %w", target.Name, domain.ErrChainSwitchFailed)
		}
		// wallet has never seen this chain; register it from the descriptor
		if err := s.provider.AddChain(c, target); err != nil {
			c.WithFields(log.Fields{"err": err, "chainId": target.ChainId}).Warn("chain add failed")
			return nil, xerrors.Errorf("add %s: %w", target.Name, domain.ErrChainAddFailed)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = target
	c.WithField("chainId", target.ChainId).Info("network switched")
	return s.snapshot(), nil
}
