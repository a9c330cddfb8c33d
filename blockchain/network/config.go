package network

// Config represents NEAR network configuration settings for bootstrapping a
// marketplace client (e.g. indicate Testnet, Mainnet)
type Config struct {
	NetworkID   string
	NodeURL     string
	WalletURL   string
	HelperURL   string
	ExplorerURL string

	MarketplaceContract string
	NFTContract         string
	OwnerAccount        string

	// Gas is a string-encoded attached gas limit; empty means no gas
	// parameters are configured for the network
	Gas string
}

// Map flattens the configuration into the key set marketplace clients consume.
// The gas limit is duplicated under all three historical spellings for caller
// compatibility. The owner account is not part of the client-facing mapping.
func (c Config) Map() map[string]string {
	conf := map[string]string{
		"networkId":               c.NetworkID,
		"nodeUrl":                 c.NodeURL,
		"walletUrl":               c.WalletURL,
		"helperUrl":               c.HelperURL,
		"explorerUrl":             c.ExplorerURL,
		"marketplaceContractName": c.MarketplaceContract,
		"nftContractName":         c.NFTContract,
	}
	if c.Gas != "" {
		conf["GAS"] = c.Gas
		conf["gas"] = c.Gas
		conf["gas_max"] = c.Gas
	}
	return conf
}
