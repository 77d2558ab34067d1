package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/network"
	"github.com/pixelbay/goapi/domain/wallet/mocks"
	networkUsecase "github.com/pixelbay/goapi/stores/network/usecase"
)

func newTestRegistry(t *testing.T) network.Registry {
	r, err := networkUsecase.NewRegistry(network.DefaultNetworks)
	require.NoError(t, err)
	return r
}

func TestConnectResolvesCurrentChain(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	provider := &mocks.Provider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{"0xCE4468e7ce84aceb74363f4ea64e5a038176f369"}, nil)
	provider.On("ChainId", mock.Anything).Return(domain.ChainId("0X72"), nil)

	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t)})
	state, err := s.Connect(c)
	req.NoError(err)
	req.True(state.Connected)
	req.Equal(domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369"), *state.Address)
	req.Equal("Flare Testnet Coston2", state.Network.Name)
}

func TestConnectUserRejected(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	provider := &mocks.Provider{}
	provider.On("RequestAccounts", mock.Anything).Return(nil, domain.ErrUserRejected)

	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t)})
	_, err := s.Connect(c)
	req.ErrorIs(err, domain.ErrUserRejected)
	req.False(s.State(c).Connected)
}

func TestOnAccountsChanged(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	provider := &mocks.Provider{}
	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t)})

	// callable before any connect
	state := s.OnAccountsChanged(c, []domain.Address{"0xABC0000000000000000000000000000000000001"})
	req.True(state.Connected)
	req.Equal(domain.Address("0xabc0000000000000000000000000000000000001"), *state.Address)

	// idempotent
	state = s.OnAccountsChanged(c, []domain.Address{"0xABC0000000000000000000000000000000000001"})
	req.True(state.Connected)

	state = s.OnAccountsChanged(c, nil)
	req.False(state.Connected)
	req.Nil(state.Address)
}

func TestOnChainChangedUnknownChainFallsBack(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	provider := &mocks.Provider{}
	provider.On("ChainId", mock.Anything).Return(domain.ChainId("0xdeadbeef"), nil)

	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t)})
	state := s.OnChainChanged(c)
	req.Equal("Network 0xdeadbeef", state.Network.Name)
	req.Equal("ETH", state.Network.Symbol)
}

func TestSwitchOrAddNetwork(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	provider := &mocks.Provider{}
	provider.On("SwitchChain", mock.Anything, domain.ChainId("0x89")).Return(nil)

	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t)})
	state, err := s.SwitchOrAddNetwork(c, "0x89")
	req.NoError(err)
	req.Equal("Polygon", state.Network.Name)
	provider.AssertNotCalled(t, "AddChain", mock.Anything, mock.Anything)
}

func TestSwitchUnrecognizedChainGetsAdded(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	provider := &mocks.Provider{}
	provider.On("SwitchChain", mock.Anything, domain.ChainId("0x72")).Return(domain.ErrChainUnrecognized)
	provider.On("AddChain", mock.Anything, mock.Anything).Return(nil)

	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t)})
	state, err := s.SwitchOrAddNetwork(c, "0x72")
	req.NoError(err)
	req.Equal(domain.ChainId("0x72"), state.Network.ChainId)
	provider.AssertCalled(t, "AddChain", mock.Anything, mock.Anything)
}

func TestSwitchFailureLeavesNetworkUnchanged(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	def, _ := newTestRegistry(t).Lookup("0x72")
	provider := &mocks.Provider{}
	provider.On("SwitchChain", mock.Anything, domain.ChainId("0x89")).Return(domain.ErrUserRejected)

	s := NewSession(&SessionCfg{Provider: provider, Registry: newTestRegistry(t), DefaultNetwork: def})
	_, err := s.SwitchOrAddNetwork(c, "0x89")
	req.ErrorIs(err, domain.ErrChainSwitchFailed)
	req.Equal(domain.ChainId("0x72"), s.State(c).Network.ChainId)
}

func TestSwitchUnknownRegistryChain(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	s := NewSession(&SessionCfg{Provider: &mocks.Provider{}, Registry: newTestRegistry(t)})
	_, err := s.SwitchOrAddNetwork(c, "0xdeadbeef")
	req.ErrorIs(err, domain.ErrInvalidChainId)
}
