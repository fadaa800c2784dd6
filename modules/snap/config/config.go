package config

import (
	"time"

	"github.com/gaze-network/nft-snap/internal/postgres"
	"github.com/gaze-network/nft-snap/modules/snap/webhook"
)

type Config struct {
	// Datasource is the storage backend, "postgres" (default) or "memory".
	Datasource string          `mapstructure:"datasource"`
	Postgres   postgres.Config `mapstructure:"postgres"`

	// RegistryAddress is the account all instance ids are derived from.
	RegistryAddress string `mapstructure:"registry_address"`
	// MintFeeFloor is the lowest accepted mint fee, in ether. E.g. "0.000001".
	MintFeeFloor     string        `mapstructure:"mint_fee_floor"`
	MintWindow       time.Duration `mapstructure:"mint_window"`
	VisibilityWindow time.Duration `mapstructure:"visibility_window"`
	WatchInterval    time.Duration `mapstructure:"watch_interval"`

	// Faucet enables the ledger credit endpoint. Never enable it in production.
	Faucet bool `mapstructure:"faucet"`

	// Webhook posts every committed event to an external endpoint when its url is set.
	Webhook webhook.Config `mapstructure:"webhook"`
}
