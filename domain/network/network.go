package network

import (
	"fmt"

	"github.com/pixelbay/goapi/domain"
)

// Network describes an EVM compatible chain the marketplace can settle on.
// Immutable after startup.
type Network struct {
	ChainId           domain.ChainId `json:"chainId" mapstructure:"chainId"`
	Name              string         `json:"name" mapstructure:"name"`
	Symbol            string         `json:"symbol" mapstructure:"symbol"`
	RpcUrls           []string       `json:"rpcUrls" mapstructure:"rpcUrls"`
	BlockExplorerUrls []string       `json:"blockExplorerUrls" mapstructure:"blockExplorerUrls"`
}

// Synthetic builds a placeholder descriptor for a chain the registry does not
// know, so an unrecognized chain never breaks the session.
func Synthetic(chainId domain.ChainId) *Network {
	return &Network{
		ChainId: chainId.ToLower(),
		Name:    fmt.Sprintf("Network %s", chainId.ToLower()),
		Symbol:  "ETH",
	}
}

// Registry is a pure lookup table from chain id to descriptor. Lookup is
// case-insensitive on the hex chain id.
type Registry interface {
	Lookup(chainId domain.ChainId) (*Network, bool)
	All() []*Network
	ExplorerTxUrl(chainId domain.ChainId, hash domain.TxHash) string
}

// DefaultNetworks is the built-in descriptor set, used when the config does
// not provide one.
var DefaultNetworks = []*Network{
	{
		ChainId:           "0x1",
		Name:              "Ethereum",
		Symbol:            "ETH",
		RpcUrls:           []string{"https://mainnet.infura.io/v3/your-project-id"},
		BlockExplorerUrls: []string{"https://etherscan.io"},
	},
	{
		ChainId:           "0xaa36a7",
		Name:              "Sepolia",
		Symbol:            "ETH",
		RpcUrls:           []string{"https://sepolia.infura.io/v3/your-project-id"},
		BlockExplorerUrls: []string{"https://sepolia.etherscan.io"},
	},
	{
		ChainId:           "0x72",
		Name:              "Flare Testnet Coston2",
		Symbol:            "C2FLR",
		RpcUrls:           []string{"https://coston2-api.flare.network/ext/bc/C/rpc"},
		BlockExplorerUrls: []string{"https://coston2-explorer.flare.network"},
	},
	{
		ChainId:           "0x89",
		Name:              "Polygon",
		Symbol:            "MATIC",
		RpcUrls:           []string{"https://polygon-rpc.com"},
		BlockExplorerUrls: []string{"https://polygonscan.com"},
	},
	{
		ChainId:           "0x44d",
		Name:              "Polygon zkEVM",
		Symbol:            "ETH",
		RpcUrls:           []string{"https://zkevm-rpc.com"},
		BlockExplorerUrls: []string{"https://zkevm.polygonscan.com"},
	},
	{
		ChainId:           "0x13881",
		Name:              "Mumbai",
		Symbol:            "MATIC",
		RpcUrls:           []string{"https://rpc-mumbai.maticvigil.com"},
		BlockExplorerUrls: []string{"https://mumbai.polygonscan.com"},
	},
	{
		ChainId:           "0x38",
		Name:              "BNB Smart Chain",
		Symbol:            "BNB",
		RpcUrls:           []string{"https://bsc-dataseed.binance.org"},
		BlockExplorerUrls: []string{"https://bscscan.com"},
	},
	{
		ChainId:           "0xa86a",
		Name:              "Avalanche",
		Symbol:            "AVAX",
		RpcUrls:           []string{"https://api.avax.network/ext/bc/C/rpc"},
		BlockExplorerUrls: []string{"https://snowtrace.io"},
	},
	{
		ChainId:           "0xa",
		Name:              "Optimism",
		Symbol:            "ETH",
		RpcUrls:           []string{"https://mainnet.optimism.io"},
		BlockExplorerUrls: []string{"https://optimistic.etherscan.io"},
	},
	{
		ChainId:           "0xa4b1",
		Name:              "Arbitrum",
		Symbol:            "ETH",
		RpcUrls:           []string{"https://arb1.arbitrum.io/rpc"},
		BlockExplorerUrls: []string{"https://arbiscan.io"},
	},
}
