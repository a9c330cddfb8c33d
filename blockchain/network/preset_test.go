package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigDefaultsToTestnet(t *testing.T) {
	assert.Equal(t, GetConfig(Testnet), GetConfig(""))
}

func TestGetConfigTestnet(t *testing.T) {
	conf := GetConfig(Testnet)

	assert.Len(t, conf, 10)
	assert.Equal(t, "testnet", conf["networkId"])
	assert.Equal(t, "https://rpc.testnet.near.org", conf["nodeUrl"])
	assert.Equal(t, "https://wallet.testnet.near.org", conf["walletUrl"])
	assert.Equal(t, "https://helper.testnet.near.org", conf["helperUrl"])
	assert.Equal(t, "https://explorer.testnet.near.org", conf["explorerUrl"])
	assert.Equal(t, "marble-marketplace.testnet", conf["marketplaceContractName"])
	assert.Equal(t, "marble-nft.testnet", conf["nftContractName"])
	assert.Equal(t, DefaultGas, conf["GAS"])
	assert.Equal(t, DefaultGas, conf["gas"])
	assert.Equal(t, DefaultGas, conf["gas_max"])
}

func TestGetConfigOtherNetworksSkipGasParameters(t *testing.T) {
	conf := GetConfig("mainnet")

	assert.Len(t, conf, 7)
	for _, key := range []string{"GAS", "gas", "gas_max"} {
		assert.NotContains(t, conf, key)
	}

	// base endpoints and identifiers do not vary with the requested name
	assert.Equal(t, conf, GetConfig("betanet"))
	assert.Equal(t, "https://rpc.testnet.near.org", conf["nodeUrl"])
}

func TestGetConfigReturnsIndependentCopies(t *testing.T) {
	first := GetConfig(Testnet)
	second := GetConfig(Testnet)

	assert.Equal(t, first, second)

	first["nodeUrl"] = "http://localhost:3030"
	assert.Equal(t, "https://rpc.testnet.near.org", second["nodeUrl"])
}

func TestNewNearPreset(t *testing.T) {
	conf, err := NewNearPreset(Mainnet)
	assert.NoError(t, err)
	assert.Equal(t, "https://rpc.mainnet.near.org", conf.NodeURL)
	assert.Equal(t, "marble-dao.near", conf.OwnerAccount)
	assert.Empty(t, conf.Gas)

	_, err = NewNearPreset("betanet")
	assert.Error(t, err)
}

func TestTestnetPresetMapMatchesGetConfig(t *testing.T) {
	conf, err := NewNearPreset(Testnet)
	assert.NoError(t, err)
	assert.Equal(t, GetConfig(Testnet), conf.Map())
}
