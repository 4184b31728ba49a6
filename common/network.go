package common

import "math/big"

type Network string

const (
	NetworkMainnet    Network = "mainnet"
	NetworkSepolia    Network = "sepolia"
	NetworkBSC        Network = "bsc"
	NetworkBSCTestnet Network = "bsc-testnet"
)

var chainIDs = map[Network]int64{
	NetworkMainnet:    1,
	NetworkSepolia:    11155111,
	NetworkBSC:        56,
	NetworkBSCTestnet: 97,
}

func (n Network) IsSupported() bool {
	_, ok := chainIDs[n]
	return ok
}

// ChainID returns the EIP-155 chain id of the network, or nil if the network is not supported.
func (n Network) ChainID() *big.Int {
	id, ok := chainIDs[n]
	if !ok {
		return nil
	}
	return big.NewInt(id)
}

func (n Network) String() string {
	return string(n)
}
