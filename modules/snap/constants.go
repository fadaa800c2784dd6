package snap

import "github.com/ethereum/go-ethereum/common"

const (
	Version   = "v0.1.0"
	DBVersion = 1

	DatasourcePostgres = "postgres"
	DatasourceMemory   = "memory"

	defaultMintFeeFloor = "0.000001"
)

// defaultRegistryAddress is used when no registry address is configured.
var defaultRegistryAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
