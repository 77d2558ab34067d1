package wallet

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/pixelbay/goapi/base/backoff"
	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/log"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/network"
	"github.com/pixelbay/goapi/domain/wallet"
)

// provider error codes defined by EIP-1193/EIP-3085
const (
	codeUserRejected      = 4001
	codeChainUnrecognized = 4902
)

type ProviderCfg struct {
	// Url reaches the wallet bridge, a JSON-RPC endpoint speaking both the
	// eth_* node methods and the wallet_* management methods.
	Url string
	// PollInterval paces receipt polling in WaitMined. Defaults to 2s.
	PollInterval time.Duration
}

type providerImpl struct {
	client       *rpc.Client
	pollInterval time.Duration
}

func NewProvider(ctx bCtx.Ctx, cfg *ProviderCfg) (wallet.Provider, error) {
	client, err := rpc.DialContext(ctx, cfg.Url)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": cfg.Url}).Warn("failed to dial wallet bridge")
		return nil, domain.ErrWalletUnavailable
	}
	interval := cfg.PollInterval
	if interval == 0 {
		interval = 2 * time.Second
	}
	return &providerImpl{client: client, pollInterval: interval}, nil
}

// translate maps provider error codes onto domain errors, passing everything
// else through untouched.
func translate(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case codeUserRejected:
			return domain.ErrUserRejected
		case codeChainUnrecognized:
			return domain.ErrChainUnrecognized
		}
	}
	return err
}

func (p *providerImpl) RequestAccounts(c bCtx.Ctx) ([]domain.Address, error) {
	var accounts []domain.Address
	if err := p.client.CallContext(c, &accounts, "eth_requestAccounts"); err != nil {
		c.WithField("err", err).Warn("eth_requestAccounts failed")
		return nil, translate(err)
	}
	return accounts, nil
}

func (p *providerImpl) ChainId(c bCtx.Ctx) (domain.ChainId, error) {
	var chainId domain.ChainId
	if err := p.client.CallContext(c, &chainId, "eth_chainId"); err != nil {
		c.WithField("err", err).Warn("eth_chainId failed")
		return "", translate(err)
	}
	return chainId.ToLower(), nil
}

type switchChainParam struct {
	ChainId domain.ChainId `json:"chainId"`
}

func (p *providerImpl) SwitchChain(c bCtx.Ctx, chainId domain.ChainId) error {
	err := p.client.CallContext(c, nil, "wallet_switchEthereumChain", switchChainParam{ChainId: chainId})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "chainId": chainId}).Warn("wallet_switchEthereumChain failed")
		return translate(err)
	}
	return nil
}

type nativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type addChainParam struct {
	ChainId           domain.ChainId `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    nativeCurrency `json:"nativeCurrency"`
	RpcUrls           []string       `json:"rpcUrls"`
	BlockExplorerUrls []string       `json:"blockExplorerUrls,omitempty"`
}

func (p *providerImpl) AddChain(c bCtx.Ctx, net *network.Network) error {
	param := addChainParam{
		ChainId:   net.ChainId,
		ChainName: net.Name,
		NativeCurrency: nativeCurrency{
			Name:     net.Symbol,
			Symbol:   net.Symbol,
			Decimals: 18,
		},
		RpcUrls:           net.RpcUrls,
		BlockExplorerUrls: net.BlockExplorerUrls,
	}
	if err := p.client.CallContext(c, nil, "wallet_addEthereumChain", param); err != nil {
		c.WithFields(log.Fields{"err": err, "chainId": net.ChainId}).Warn("wallet_addEthereumChain failed")
		return translate(err)
	}
	return nil
}

type sendTransactionParam struct {
	From  domain.Address `json:"from"`
	To    domain.Address `json:"to"`
	Value *hexutil.Big   `json:"value"`
	Gas   hexutil.Uint64 `json:"gas"`
}

func (p *providerImpl) SendTransfer(c bCtx.Ctx, req *wallet.TransferRequest) (domain.TxHash, error) {
	param := sendTransactionParam{
		From:  req.From,
		To:    req.To,
		Value: (*hexutil.Big)(req.Value),
		Gas:   hexutil.Uint64(req.GasLimit),
	}
	var hash domain.TxHash
	if err := p.client.CallContext(c, &hash, "eth_sendTransaction", param); err != nil {
		c.WithFields(log.Fields{"err": err, "to": req.To}).Warn("eth_sendTransaction failed")
		return "", translate(err)
	}
	return hash, nil
}

type receipt struct {
	TransactionHash domain.TxHash  `json:"transactionHash"`
	BlockNumber     hexutil.Uint64 `json:"blockNumber"`
	Status          hexutil.Uint64 `json:"status"`
}

func (p *providerImpl) WaitMined(c bCtx.Ctx, hash domain.TxHash) (*wallet.TransferReceipt, error) {
	b := backoff.NewLinear(p.pollInterval, 10*p.pollInterval)
	for {
		var r *receipt
		err := p.client.CallContext(c, &r, "eth_getTransactionReceipt", hash)
		if err == nil && r != nil {
			if r.Status == 0 {
				return nil, domain.ErrTransferFailed
			}
			return &wallet.TransferReceipt{
				TxHash:      r.TransactionHash,
				BlockNumber: domain.BlockNumber(r.BlockNumber),
			}, nil
		}
		if err != nil {
			c.WithFields(log.Fields{"err": err, "hash": hash}).Warn("eth_getTransactionReceipt failed")
		}
		if err := b.Backoff(c); err != nil {
			return nil, err
		}
	}
}
