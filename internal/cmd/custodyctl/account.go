package custodyctl

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
)

func ownerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "owner",
		Short: "Show the account and its owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.GetOwner(ctx, &custodyv1.GetOwnerRequest{})
			})
		},
	}
}

func allowanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "allowance <delegate>",
		Short: "Show a delegate's remaining allowance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.GetAllowance(ctx, &custodyv1.GetAllowanceRequest{Delegate: args[0]})
			})
		},
	}
}

func balanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the balance of an address, or of the account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &custodyv1.GetBalanceRequest{}
			if len(args) == 1 {
				req.Address = args[0]
			}
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.GetBalance(ctx, req)
			})
		},
	}
}

func recoveryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "recovery",
		Short: "Show guardians and the open recovery proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.GetRecovery(ctx, &custodyv1.GetRecoveryRequest{})
			})
		},
	}
}

func setGuardianCmd(opts *options) *cobra.Command {
	var disable bool
	cmd := &cobra.Command{
		Use:   "set-guardian <guardian>",
		Short: "Enable a guardian, or disable it with --disable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.SetGuardian(ctx, &custodyv1.SetGuardianRequest{Guardian: args[0], Enabled: !disable})
			})
		},
	}
	cmd.Flags().BoolVar(&disable, "disable", false, "remove the guardian")
	return cmd
}

func proposeOwnerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "propose-owner <candidate>",
		Short: "Vote for a new owner as a guardian",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.ProposeNewOwner(ctx, &custodyv1.ProposeNewOwnerRequest{Candidate: args[0]})
			})
		},
	}
}

func setAllowanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-allowance <delegate> <amount>",
		Short: "Replace a delegate's allowance (amount in base units or with an eth suffix)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.SetAllowance(ctx, &custodyv1.SetAllowanceRequest{Delegate: args[0], Amount: args[1]})
			})
		},
	}
}

func executeCmd(opts *options) *cobra.Command {
	var data, dataText string
	cmd := &cobra.Command{
		Use:   "execute <target> <amount>",
		Short: "Send value and optional call data from the account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload account.CallData
			switch {
			case data != "":
				if err := payload.UnmarshalText([]byte(data)); err != nil {
					return fmt.Errorf("--data must be hex: %w", err)
				}
			case dataText != "":
				payload = account.CallData(dataText)
			}
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.Execute(ctx, &custodyv1.ExecuteRequest{Target: args[0], Amount: args[1], Data: payload})
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "hex-encoded call data")
	cmd.Flags().StringVar(&dataText, "data-text", "", "call data as text")
	cmd.MarkFlagsMutuallyExclusive("data", "data-text")
	return cmd
}

func transferCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <to> <amount>",
		Short: "Move value from the caller's own balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.Transfer(ctx, &custodyv1.TransferRequest{To: args[0], Amount: args[1]})
			})
		},
	}
}

func eventsCmd(opts *options) *cobra.Command {
	req := &custodyv1.ListEventsRequest{}
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List journal events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c custodyv1.AccountServiceClient) (proto.Message, error) {
				return c.ListEvents(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Filter, "filter", "", `AIP-160 filter, e.g. 'type = "account.executed"'`)
	cmd.Flags().Int32Var(&req.PageSize, "page-size", 0, "events per page")
	cmd.Flags().StringVar(&req.PageToken, "page-token", "", "token from a previous page")
	cmd.Flags().StringVar(&req.OrderBy, "order-by", "", "seq or seq desc")
	return cmd
}
