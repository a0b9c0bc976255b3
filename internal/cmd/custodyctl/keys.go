package custodyctl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/louisbranch/custody/internal/services/custody/auth"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
)

type keyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 key pair for signing caller tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub, priv, err := auth.GenerateKey()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), keyPair{PublicKey: pub, PrivateKey: priv})
		},
	}
}

func tokenCmd(opts *options) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <caller>",
		Short: "Issue a bearer token that authenticates as caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := address.Parse(args[0])
			if err != nil {
				return fmt.Errorf("caller: %w", err)
			}
			if strings.TrimSpace(opts.PrivateKey) == "" {
				return errors.New("private key required (--key or CUSTODY_CALLER_PRIVATE_KEY)")
			}
			key, err := auth.DecodePrivateKey(opts.PrivateKey)
			if err != nil {
				return err
			}
			signer := auth.Signer{Issuer: opts.Issuer, Audience: opts.Audience, Key: key}
			token, err := signer.Issue(caller, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.PrivateKey, "key", opts.PrivateKey, "base64 Ed25519 private key")
	cmd.Flags().StringVar(&opts.Issuer, "issuer", opts.Issuer, "token issuer")
	cmd.Flags().StringVar(&opts.Audience, "audience", opts.Audience, "token audience")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "token lifetime")
	return cmd
}
