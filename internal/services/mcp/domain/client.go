package domain

import (
	"context"

	"google.golang.org/grpc"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
)

// AccountClient is the subset of the account service the tools call.
type AccountClient interface {
	GetOwner(ctx context.Context, in *custodyv1.GetOwnerRequest, opts ...grpc.CallOption) (*custodyv1.GetOwnerResponse, error)
	GetAllowance(ctx context.Context, in *custodyv1.GetAllowanceRequest, opts ...grpc.CallOption) (*custodyv1.GetAllowanceResponse, error)
	GetBalance(ctx context.Context, in *custodyv1.GetBalanceRequest, opts ...grpc.CallOption) (*custodyv1.GetBalanceResponse, error)
	GetRecovery(ctx context.Context, in *custodyv1.GetRecoveryRequest, opts ...grpc.CallOption) (*custodyv1.GetRecoveryResponse, error)
	SetGuardian(ctx context.Context, in *custodyv1.SetGuardianRequest, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error)
	ProposeNewOwner(ctx context.Context, in *custodyv1.ProposeNewOwnerRequest, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error)
	SetAllowance(ctx context.Context, in *custodyv1.SetAllowanceRequest, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error)
	Execute(ctx context.Context, in *custodyv1.ExecuteRequest, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error)
	Transfer(ctx context.Context, in *custodyv1.TransferRequest, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error)
	ListEvents(ctx context.Context, in *custodyv1.ListEventsRequest, opts ...grpc.CallOption) (*custodyv1.ListEventsResponse, error)
}

var _ AccountClient = custodyv1.AccountServiceClient(nil)
