package config

// MainnetEnv is configuration for an instance running against NEAR mainnet
var MainnetEnv = Env{
	Environment:  "mainnet",
	DataDir:      "datadir",
	OwnerAccount: "marble-dao.near",
}
