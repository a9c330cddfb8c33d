package network

import (
	"fmt"
)

// Recognized built-in NEAR network names
const (
	Testnet = "testnet"
	Mainnet = "mainnet"
)

// DefaultGas is the attached gas limit used by marketplace transactions on testnet
const DefaultGas = "300000000000000"

var networkMapping = map[string]Config{
	Testnet: newNearTestnetConfig(),
	Mainnet: newNearMainnetConfig(),
}

// GetConfig returns the flat bootstrap mapping for the given network name. An
// empty name means testnet. The base endpoints and contract identifiers are the
// same for every input; only testnet carries the gas parameters, so unknown
// names quietly produce the base mapping rather than an error. Each call
// returns a fresh map the caller may mutate.
func GetConfig(network string) map[string]string {
	if network == "" {
		network = Testnet
	}
	config := newNearTestnetConfig()
	if network != Testnet {
		config.Gas = ""
	}
	return config.Map()
}

// NewNearPreset returns a typed NEAR configuration for the given network name.
// Custom registrations take effect for names without a built-in preset; a name
// with neither yields an error.
func NewNearPreset(network string) (Config, error) {
	if config, ok := registered(network); ok {
		return config, nil
	}
	config, ok := networkMapping[network]
	if !ok {
		return unknownConfig(), fmt.Errorf("network %v did not have an available configuration", network)
	}
	return config, nil
}

func newNearTestnetConfig() Config {
	return Config{
		NetworkID:           Testnet,
		NodeURL:             "https://rpc.testnet.near.org",
		WalletURL:           "https://wallet.testnet.near.org",
		HelperURL:           "https://helper.testnet.near.org",
		ExplorerURL:         "https://explorer.testnet.near.org",
		MarketplaceContract: "marble-marketplace.testnet",
		NFTContract:         "marble-nft.testnet",
		OwnerAccount:        "marble-dao.testnet",
		Gas:                 DefaultGas,
	}
}

func newNearMainnetConfig() Config {
	return Config{
		NetworkID:           Mainnet,
		NodeURL:             "https://rpc.mainnet.near.org",
		WalletURL:           "https://wallet.mainnet.near.org",
		HelperURL:           "https://helper.mainnet.near.org",
		ExplorerURL:         "https://explorer.mainnet.near.org",
		MarketplaceContract: "marble-marketplace.near",
		NFTContract:         "marble-nft.near",
		OwnerAccount:        "marble-dao.near",
	}
}

func unknownConfig() Config {
	return Config{}
}
