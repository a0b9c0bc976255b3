// Package custody serves custody.v1.AccountService over gRPC.
package custody

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/timestamppb"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/platform/grpc/pagination"
	grpcmeta "github.com/louisbranch/custody/internal/services/custody/api/grpc/metadata"
	"github.com/louisbranch/custody/internal/services/custody/authority"
	"github.com/louisbranch/custody/internal/services/custody/chain"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
	"github.com/louisbranch/custody/internal/services/custody/domain/amount"
	"github.com/louisbranch/custody/internal/services/custody/domain/event"
	"github.com/louisbranch/custody/internal/services/custody/storage"
)

var eventPageSize = pagination.PageSizeConfig{Default: 50, Max: 500}

// Deps are the collaborators of the account service.
type Deps struct {
	Authority *authority.Authority
	Env       *chain.Env
	Journal   storage.Journal
	Logger    zerolog.Logger
}

// Service implements custodyv1.AccountServiceServer.
type Service struct {
	custodyv1.UnimplementedAccountServiceServer

	authority *authority.Authority
	env       *chain.Env
	journal   storage.Journal
	logger    zerolog.Logger
}

var _ custodyv1.AccountServiceServer = (*Service)(nil)

// NewService builds the account service.
func NewService(deps Deps) (*Service, error) {
	if deps.Authority == nil {
		return nil, errors.New("authority is required")
	}
	if deps.Env == nil {
		return nil, errors.New("environment is required")
	}
	return &Service{
		authority: deps.Authority,
		env:       deps.Env,
		journal:   deps.Journal,
		logger:    deps.Logger,
	}, nil
}

func (s *Service) GetOwner(ctx context.Context, _ *custodyv1.GetOwnerRequest) (*custodyv1.GetOwnerResponse, error) {
	st := s.authority.State()
	if !st.Initialized {
		return nil, grpcmeta.ToStatus(ctx, account.ErrNotInitialized)
	}
	return &custodyv1.GetOwnerResponse{Account: st.Address.String(), Owner: st.Owner.String()}, nil
}

func (s *Service) GetAllowance(ctx context.Context, in *custodyv1.GetAllowanceRequest) (*custodyv1.GetAllowanceResponse, error) {
	delegate, err := parseAddress("delegate", in.GetDelegate())
	if err != nil {
		return nil, grpcmeta.ToStatus(ctx, err)
	}
	return &custodyv1.GetAllowanceResponse{
		Delegate:  delegate.String(),
		Allowance: s.authority.Allowance(delegate).String(),
	}, nil
}

func (s *Service) GetBalance(ctx context.Context, in *custodyv1.GetBalanceRequest) (*custodyv1.GetBalanceResponse, error) {
	target := s.authority.Address()
	if strings.TrimSpace(in.GetAddress()) != "" {
		parsed, err := parseAddress("address", in.GetAddress())
		if err != nil {
			return nil, grpcmeta.ToStatus(ctx, err)
		}
		target = parsed
	}
	return &custodyv1.GetBalanceResponse{Address: target.String(), Balance: s.env.Balance(target).String()}, nil
}

func (s *Service) GetRecovery(ctx context.Context, _ *custodyv1.GetRecoveryRequest) (*custodyv1.GetRecoveryResponse, error) {
	st := s.authority.State()
	if !st.Initialized {
		return nil, grpcmeta.ToStatus(ctx, account.ErrNotInitialized)
	}
	resp := &custodyv1.GetRecoveryResponse{
		Active:         st.Proposal.Active,
		ProposalId:     st.Proposal.ID,
		VoteCount:      uint32(st.Proposal.VoteCount),
		Threshold:      uint32(st.Threshold),
		LastProposalId: st.LastProposalID,
		Voters:         addressStrings(st.Proposal.VoterList()),
		Guardians:      addressStrings(st.GuardianList()),
	}
	if st.Proposal.Active {
		resp.Candidate = st.Proposal.Candidate.String()
	}
	return resp, nil
}

func (s *Service) SetGuardian(ctx context.Context, in *custodyv1.SetGuardianRequest) (*custodyv1.ReceiptResponse, error) {
	return s.mutate(ctx, func(caller address.Address) (chain.Receipt, error) {
		guardian, err := parseAddress("guardian", in.GetGuardian())
		if err != nil {
			return chain.Receipt{}, err
		}
		return s.authority.SetGuardian(ctx, caller, guardian, in.GetEnabled())
	})
}

func (s *Service) ProposeNewOwner(ctx context.Context, in *custodyv1.ProposeNewOwnerRequest) (*custodyv1.ReceiptResponse, error) {
	return s.mutate(ctx, func(caller address.Address) (chain.Receipt, error) {
		candidate, err := parseAddress("candidate", in.GetCandidate())
		if err != nil {
			return chain.Receipt{}, err
		}
		return s.authority.ProposeNewOwner(ctx, caller, candidate)
	})
}

func (s *Service) SetAllowance(ctx context.Context, in *custodyv1.SetAllowanceRequest) (*custodyv1.ReceiptResponse, error) {
	return s.mutate(ctx, func(caller address.Address) (chain.Receipt, error) {
		delegate, err := parseAddress("delegate", in.GetDelegate())
		if err != nil {
			return chain.Receipt{}, err
		}
		value, err := parseAmount(in.GetAmount())
		if err != nil {
			return chain.Receipt{}, err
		}
		return s.authority.SetAllowance(ctx, caller, delegate, value)
	})
}

func (s *Service) Execute(ctx context.Context, in *custodyv1.ExecuteRequest) (*custodyv1.ReceiptResponse, error) {
	return s.mutate(ctx, func(caller address.Address) (chain.Receipt, error) {
		target, err := parseAddress("target", in.GetTarget())
		if err != nil {
			return chain.Receipt{}, err
		}
		value, err := parseAmount(in.GetAmount())
		if err != nil {
			return chain.Receipt{}, err
		}
		return s.authority.Execute(ctx, caller, target, value, in.GetData())
	})
}

func (s *Service) Transfer(ctx context.Context, in *custodyv1.TransferRequest) (*custodyv1.ReceiptResponse, error) {
	return s.mutate(ctx, func(caller address.Address) (chain.Receipt, error) {
		to, err := parseAddress("to", in.GetTo())
		if err != nil {
			return chain.Receipt{}, err
		}
		value, err := parseAmount(in.GetAmount())
		if err != nil {
			return chain.Receipt{}, err
		}
		return s.authority.Transfer(ctx, caller, to, value)
	})
}

func (s *Service) ListEvents(ctx context.Context, in *custodyv1.ListEventsRequest) (*custodyv1.ListEventsResponse, error) {
	if s.journal == nil {
		return nil, grpcmeta.ToStatus(ctx, apperrors.New(apperrors.CodeNotFound, "event journal is not configured"))
	}
	order, err := pagination.ParseOrderBy(in.GetOrderBy(), "seq")
	if err != nil {
		return nil, grpcmeta.ToStatus(ctx, err)
	}
	page, err := s.journal.ListEvents(ctx, storage.EventQuery{
		AccountID:  s.authority.Address().Hex(),
		Filter:     in.GetFilter(),
		PageSize:   pagination.ClampPageSize(in.GetPageSize(), eventPageSize),
		PageToken:  in.GetPageToken(),
		Descending: order.Descending,
	})
	if errors.Is(err, storage.ErrInvalidPageToken) {
		err = apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid page token", err)
	}
	if err != nil {
		return nil, s.fail(ctx, "list events", err)
	}
	return &custodyv1.ListEventsResponse{Events: EventsToProto(page.Events), NextPageToken: page.NextPageToken}, nil
}

func (s *Service) mutate(ctx context.Context, fn func(caller address.Address) (chain.Receipt, error)) (*custodyv1.ReceiptResponse, error) {
	caller, err := grpcmeta.CallerFromContext(ctx)
	if err != nil {
		return nil, grpcmeta.ToStatus(ctx, err)
	}
	receipt, err := fn(caller)
	if err != nil {
		return nil, s.fail(ctx, "mutation", err)
	}
	return &custodyv1.ReceiptResponse{Events: EventsToProto(receipt.Events)}, nil
}

// fail logs errors that are not domain outcomes and converts err to a status.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	if apperrors.CodeOf(err) == apperrors.CodeUnknown {
		s.logger.Error().Err(err).Str("op", op).Msg("request failed")
	}
	return grpcmeta.ToStatus(ctx, err)
}

func parseAddress(field, raw string) (address.Address, error) {
	addr, err := address.Parse(raw)
	if err != nil {
		return address.Address{}, apperrors.New(apperrors.CodeInvalidAddress, field+": "+err.Error()).With("Address", raw)
	}
	return addr, nil
}

func parseAmount(raw string) (amount.Amount, error) {
	value, err := amount.Parse(raw)
	if err != nil {
		return amount.Amount{}, apperrors.New(apperrors.CodeInvalidAmount, err.Error()).With("Amount", raw)
	}
	return value, nil
}

func addressStrings(in []address.Address) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, a := range in {
		out[i] = a.String()
	}
	return out
}

// EventsToProto converts journal events to their wire form.
func EventsToProto(events []event.Event) []*custodyv1.Event {
	out := make([]*custodyv1.Event, 0, len(events))
	for _, evt := range events {
		out = append(out, EventToProto(evt))
	}
	return out
}

// EventToProto converts one journal event to its wire form.
func EventToProto(evt event.Event) *custodyv1.Event {
	return &custodyv1.Event{
		AccountId:   evt.AccountID,
		Seq:         evt.Seq,
		Hash:        evt.Hash,
		PrevHash:    evt.PrevHash,
		Type:        string(evt.Type),
		Ts:          timestamppb.New(evt.Timestamp),
		ActorId:     evt.ActorID,
		RequestId:   evt.RequestID,
		EntityType:  evt.EntityType,
		EntityId:    evt.EntityID,
		PayloadJson: string(evt.PayloadJSON),
	}
}
