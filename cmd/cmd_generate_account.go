package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/spf13/cobra"
)

type generateAccountCmdOptions struct {
	Path string
}

func NewGenerateAccountCommand() *cobra.Command {
	opts := &generateAccountCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-account",
		Short: "Generate a new account key, e.g. for the registry address or a test wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateAccountHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Path, "path", "", `Path to save the private key file. If empty, the key is only printed`)

	return cmd
}

func generateAccountHandler(opts *generateAccountCmdOptions, _ *cobra.Command, _ []string) error {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return errors.Wrap(errs.SomethingWentWrong, "generate private key")
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	fmt.Printf("Address: %s\n", address.Hex())

	if opts.Path == "" {
		fmt.Printf("Private key: %x\n", crypto.FromECDSA(privateKey))
		return nil
	}

	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		return errors.Wrap(errs.SomethingWentWrong, "create directory")
	}
	privateKeyPath := path.Join(opts.Path, address.Hex()+".key")
	if err := crypto.SaveECDSA(privateKeyPath, privateKey); err != nil {
		return errors.Wrap(err, "write private key file")
	}
	fmt.Printf("Private key saved at %s\n", privateKeyPath)
	return nil
}
