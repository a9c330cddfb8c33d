package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterCustomNetwork(t *testing.T) {
	localnet := Config{
		NetworkID:           "localnet",
		NodeURL:             "http://localhost:3030",
		WalletURL:           "http://localhost:4000/wallet",
		HelperURL:           "http://localhost:3000",
		ExplorerURL:         "http://localhost:9001",
		MarketplaceContract: "marketplace.test.near",
		NFTContract:         "nft.test.near",
		OwnerAccount:        "test.near",
	}
	assert.True(t, Register("localnet", localnet))

	conf, err := NewNearPreset("localnet")
	assert.NoError(t, err)
	assert.Equal(t, localnet, conf)

	// first registration wins
	assert.False(t, Register("localnet", Config{}))
	conf, err = NewNearPreset("localnet")
	assert.NoError(t, err)
	assert.Equal(t, localnet, conf)
}

func TestRegisterCannotShadowBuiltins(t *testing.T) {
	assert.False(t, Register(Testnet, Config{}))
	assert.False(t, Register(Mainnet, Config{}))

	conf, err := NewNearPreset(Testnet)
	assert.NoError(t, err)
	assert.Equal(t, DefaultGas, conf.Gas)
}

func TestRegisterDoesNotAffectFlatMapping(t *testing.T) {
	assert.True(t, Register("sandbox", Config{NetworkID: "sandbox", NodeURL: "http://localhost:3030"}))

	conf := GetConfig("sandbox")
	assert.Len(t, conf, 7)
	assert.Equal(t, "https://rpc.testnet.near.org", conf["nodeUrl"])
}
