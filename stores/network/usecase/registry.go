package usecase

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/network"
)

type registry struct {
	byId  map[domain.ChainId]*network.Network
	order []*network.Network
}

// NewRegistry builds the chain lookup table. Chain ids are normalized to
// lowercase; two descriptors claiming the same id is a configuration error,
// refused at startup instead of letting the later definition win.
func NewRegistry(networks []*network.Network) (network.Registry, error) {
	r := &registry{byId: map[domain.ChainId]*network.Network{}}
	for _, n := range networks {
		id := n.ChainId.ToLower()
		if prev, ok := r.byId[id]; ok {
			return nil, xerrors.Errorf("chain id %s claimed by both %q and %q: %w", id, prev.Name, n.Name, domain.ErrDuplicateChainId)
		}
		normalized := *n
		normalized.ChainId = id
		r.byId[id] = &normalized
		r.order = append(r.order, &normalized)
	}
	return r, nil
}

func (r *registry) Lookup(chainId domain.ChainId) (*network.Network, bool) {
	n, ok := r.byId[chainId.ToLower()]
	return n, ok
}

func (r *registry) All() []*network.Network {
	// hand out a copy so callers cannot reorder the registry under us
	out := make([]*network.Network, len(r.order))
	copy(out, r.order)
	return out
}

func (r *registry) ExplorerTxUrl(chainId domain.ChainId, hash domain.TxHash) string {
	base := "https://etherscan.io"
	if n, ok := r.Lookup(chainId); ok && len(n.BlockExplorerUrls) > 0 {
		base = n.BlockExplorerUrls[0]
	}
	return fmt.Sprintf("%s/tx/%s", base, hash)
}
