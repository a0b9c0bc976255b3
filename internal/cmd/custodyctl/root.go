// Package custodyctl implements the operator CLI for a custody account.
package custodyctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	entrypoint "github.com/louisbranch/custody/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/custody/internal/platform/grpc"
	"github.com/louisbranch/custody/internal/platform/timeouts"
)

// env holds the defaults flags start from.
type env struct {
	Addr       string `env:"CUSTODY_ADDR"               envDefault:"localhost:8090"`
	Token      string `env:"CUSTODY_CALLER_TOKEN"`
	PrivateKey string `env:"CUSTODY_CALLER_PRIVATE_KEY"`
	Issuer     string `env:"CUSTODY_CALLER_ISSUER"      envDefault:"custodyctl"`
	Audience   string `env:"CUSTODY_CALLER_AUDIENCE"    envDefault:"custody"`
}

type options struct {
	env
	timeout time.Duration
}

// NewRootCommand builds the custodyctl command tree.
func NewRootCommand() (*cobra.Command, error) {
	opts := &options{}
	if err := entrypoint.ParseConfig(&opts.env); err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:           entrypoint.ServiceCLI,
		Short:         "Operate a custody account",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.Addr, "addr", opts.Addr, "custody server address")
	root.PersistentFlags().StringVar(&opts.Token, "token", opts.Token, "caller bearer token")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", timeouts.GRPCRequest, "per-call timeout")

	root.AddCommand(
		keygenCmd(),
		tokenCmd(opts),
		ownerCmd(opts),
		allowanceCmd(opts),
		balanceCmd(opts),
		recoveryCmd(opts),
		setGuardianCmd(opts),
		proposeOwnerCmd(opts),
		setAllowanceCmd(opts),
		executeCmd(opts),
		transferCmd(opts),
		eventsCmd(opts),
	)
	return root, nil
}

// Execute runs the CLI with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root, err := NewRootCommand()
	if err != nil {
		return err
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// withClient dials the server, runs fn with a call timeout and closes the
// connection.
func (o *options) withClient(cmd *cobra.Command, fn func(context.Context, custodyv1.AccountServiceClient) (proto.Message, error)) error {
	conn, err := grpc.NewClient(o.Addr, platformgrpc.ClientDialOptions(o.Token)...)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", o.Addr, err)
	}
	defer conn.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	resp, err := fn(ctx, custodyv1.NewAccountServiceClient(conn))
	if err != nil {
		return err
	}
	return printMessage(cmd.OutOrStdout(), resp)
}

var messageJSON = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true, EmitUnpopulated: true}

func printMessage(w io.Writer, m proto.Message) error {
	raw, err := messageJSON.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
