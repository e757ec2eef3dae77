package calculator

import (
	"context"
	"io"
	"strings"

	"github.com/charithe/deskcalc/pkg/brain"
	"github.com/charithe/deskcalc/pkg/v1pb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/status"
)

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
	sessions *SessionStore
}

func NewService(sessions *SessionStore) *Service {
	return &Service{
		Server:   health.NewServer(),
		sessions: sessions,
	}
}

func (s *Service) EvaluateStream(stream v1pb.Calculator_EvaluateStreamServer) error {
	ctx := stream.Context()
	b := s.sessions.NewBrain()
	value, ok := b.Evaluate()

	for {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				// end of the client-side stream so report the final state
				if err := stream.SendAndClose(toPB(resultOf(b, value, ok))); err != nil {
					zap.S().Errorw("Failed to send response", "error", err)
					return err
				}

				return nil
			}

			zap.S().Warnw("Failed to receive request from stream", "error", err)
			return err
		}

		value, ok, err = pushToken(ctx, b, req.Token)
		if err != nil {
			return err
		}
	}
}

func (s *Service) EvaluateBatch(ctx context.Context, req *v1pb.EvaluateBatchRequest) (*v1pb.Result, error) {
	// if the context has already expired, we can avoid unnecessary work
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := s.sessions.NewBrain()
	for name, v := range req.Variables {
		b.Variables().Set(name, v)
	}

	value, ok := b.Evaluate()
	for _, t := range req.Tokens {
		var err error
		if value, ok, err = pushToken(ctx, b, t); err != nil {
			return nil, err
		}
	}

	return toPB(resultOf(b, value, ok)), nil
}

func (s *Service) CreateSession(ctx context.Context, req *v1pb.CreateSessionRequest) (*v1pb.CreateSessionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.CreateSessionResponse{SessionId: sess.ID()}, nil
}

func (s *Service) CloseSession(ctx context.Context, req *v1pb.CloseSessionRequest) (*v1pb.CloseSessionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.sessions.Close(ctx, req.SessionId); err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.CloseSessionResponse{}, nil
}

func (s *Service) Push(ctx context.Context, req *v1pb.PushRequest) (*v1pb.Result, error) {
	var pushErr error
	result, err := s.withSession(ctx, req.SessionId, func(b *brain.Brain) (float64, bool) {
		var value float64
		var ok bool
		value, ok, pushErr = pushToken(ctx, b, req.Token)
		return value, ok
	})
	if err != nil {
		return nil, err
	}
	if pushErr != nil {
		return nil, pushErr
	}

	return result, nil
}

func (s *Service) Clear(ctx context.Context, req *v1pb.ClearRequest) (*v1pb.Result, error) {
	return s.withSession(ctx, req.SessionId, func(b *brain.Brain) (float64, bool) {
		if req.Stack {
			b.ClearStack()
		}
		if req.Variables {
			b.ClearVariables()
		}
		return b.Evaluate()
	})
}

func (s *Service) SetVariable(ctx context.Context, req *v1pb.SetVariableRequest) (*v1pb.Result, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "variable name is required")
	}

	return s.withSession(ctx, req.SessionId, func(b *brain.Brain) (float64, bool) {
		b.Variables().Set(name, req.Value)
		return b.Evaluate()
	})
}

func (s *Service) GetProgram(ctx context.Context, req *v1pb.GetProgramRequest) (*v1pb.Result, error) {
	return s.withSession(ctx, req.SessionId, func(b *brain.Brain) (float64, bool) {
		return b.Evaluate()
	})
}

func (s *Service) SetProgram(ctx context.Context, req *v1pb.SetProgramRequest) (*v1pb.Result, error) {
	return s.withSession(ctx, req.SessionId, func(b *brain.Brain) (float64, bool) {
		b.SetProgram(req.Program)
		return b.Evaluate()
	})
}

func (s *Service) ListSymbols(ctx context.Context, req *v1pb.ListSymbolsRequest) (*v1pb.ListSymbolsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registry := s.sessions.NewBrain().Registry()
	return &v1pb.ListSymbolsResponse{
		Operators: registry.Operators(),
		Constants: registry.Constants(),
	}, nil
}

func (s *Service) withSession(ctx context.Context, id string, fn func(*brain.Brain) (float64, bool)) (*v1pb.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, toStatus(err)
	}

	return toPB(sess.Do(fn)), nil
}

func pushToken(ctx context.Context, b *brain.Brain, tok *v1pb.Token) (float64, bool, error) {
	if tok == nil {
		return 0, false, status.Error(codes.InvalidArgument, "token is required")
	}

	if tok.Kind != v1pb.OPERAND && strings.TrimSpace(tok.Symbol) == "" {
		return 0, false, status.Errorf(codes.InvalidArgument, "%s token requires a symbol", tok.Kind)
	}

	var value float64
	var ok bool
	switch tok.Kind {
	case v1pb.OPERAND:
		value, ok = b.PushOperand(tok.Value)
	case v1pb.SYMBOL:
		value, ok = b.PushSymbol(strings.TrimSpace(tok.Symbol))
	case v1pb.OPERATION:
		value, ok = b.PerformOperation(strings.TrimSpace(tok.Symbol))
	case v1pb.AUTO:
		value, ok = b.Push(tok.Symbol)
	default:
		return 0, false, status.Errorf(codes.InvalidArgument, "unknown token kind: %s", tok.Kind)
	}

	recordPush(ctx, tok.Kind.String(), ok)
	return value, ok, nil
}

func toStatus(err error) error {
	switch errors.Cause(err) {
	case ErrSessionNotFound:
		return status.Error(codes.NotFound, err.Error())
	case ErrTooManySessions:
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		zap.S().Errorw("Unexpected error", "error", err)
		return status.Error(codes.Internal, err.Error())
	}
}

func toPB(r Result) *v1pb.Result {
	return &v1pb.Result{
		Ok:      r.OK,
		Value:   r.Value,
		History: r.History,
		Program: r.Program,
	}
}
