package config

// TestnetEnv is configuration for an instance running against NEAR testnet
var TestnetEnv = Env{
	Environment:  "testnet",
	DataDir:      "datadir",
	OwnerAccount: "marble-dao.testnet",
}
