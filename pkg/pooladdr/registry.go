package pooladdr

import (
	"errors"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// ErrUnknownExchange is returned by Lookup for names with no deployment.
var ErrUnknownExchange = errors.New("invalid exchange name")

// Exchange names a factory deployment. Names are case-sensitive.
type Exchange string

// BNB Smart Chain deployments.
const (
	ExchangePancake   Exchange = "pancake"
	ExchangePancakeV2 Exchange = "pancake2"
	ExchangeBakery    Exchange = "bakery"
	ExchangeApe       Exchange = "ape"
	ExchangeJul       Exchange = "jul"
	ExchangeBi        Exchange = "bi"
	ExchangeMdex      Exchange = "mdex"
	ExchangeBaby      Exchange = "baby"
)

// Deployment is a factory contract and the hash of the pair creation code
// it deploys with CREATE2.
type Deployment struct {
	Factory      common.Address
	InitCodeHash common.Hash
}

// deployments is never written after package initialization.
var deployments = map[Exchange]Deployment{
	ExchangePancake: {
		Factory:      common.HexToAddress("0xBCfCcbde45cE874adCB698cC183deBcF17952812"),
		InitCodeHash: common.HexToHash("0xd0d4c4cd0848c93cb4fd1f498d7013ee6bfb25783ea21593d5834f5d250ece66"),
	},
	ExchangePancakeV2: {
		Factory:      common.HexToAddress("0xcA143Ce32Fe78f1f7019d7d551a6402fC5350c73"),
		InitCodeHash: common.HexToHash("0x00fb7f630766e6a796048ea87d01acd3068e8ff67d078148a3fa3f4a84f69bd5"),
	},
	ExchangeBakery: {
		Factory:      common.HexToAddress("0x01bF7C66c6BD861915CdaaE475042d3c4BaE16A7"),
		InitCodeHash: common.HexToHash("0xe2e87433120e32c4738a7d8f3271f3d872cbe16241d67537139158d90bac61d3"),
	},
	ExchangeApe: {
		Factory:      common.HexToAddress("0x0841BD0B734E4F5853f0dD8d7Ea041c241fb0Da6"),
		InitCodeHash: common.HexToHash("0xf4ccce374816856d11f00e4069e7cada164065686fbef53c6167a63ec2fd8c5b"),
	},
	ExchangeJul: {
		Factory:      common.HexToAddress("0x553990F2CBA90272390f62C5BDb1681fFc899675"),
		InitCodeHash: common.HexToHash("0xb1e98e21a5335633815a8cfb3b580071c2e4561c50afd57a8746def9ed890b18"),
	},
	ExchangeBi: {
		Factory:      common.HexToAddress("0x858E3312ed3A876947EA49d572A7C42DE08af7EE"),
		InitCodeHash: common.HexToHash("0xfea293c909d87cd4153593f077b76bb7e94340200f4ee84211ae8e4f9bd7ffdf"),
	},
	ExchangeMdex: {
		Factory:      common.HexToAddress("0x3CD1C46068dAEa5Ebb0d3f55F6915B10648062B8"),
		InitCodeHash: common.HexToHash("0x0d994d996174b05cfc7bed897dc1b20b4c458fc8d64fe98bc78b3c64a6b4d093"),
	},
	ExchangeBaby: {
		Factory:      common.HexToAddress("0x86407bEa2078ea5f5EB5A52B2caA963bC1F889Da"),
		InitCodeHash: common.HexToHash("0x48c8bec5512d397a5d512fbb7d83d515e7b6d91e9838730bd1aa1b16575da7f5"),
	},
}

// Lookup returns the deployment registered under name.
func Lookup(name string) (Deployment, error) {
	d, ok := deployments[Exchange(name)]
	if !ok {
		return Deployment{}, ErrUnknownExchange
	}
	return d, nil
}

// Exchanges returns all registered exchange names in sorted order.
func Exchanges() []Exchange {
	names := make([]Exchange, 0, len(deployments))
	for name := range deployments {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
