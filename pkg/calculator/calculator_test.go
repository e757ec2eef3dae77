package calculator

import (
	"context"
	"math"
	"net"
	"testing"

	"github.com/charithe/deskcalc/pkg/v1pb"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCalculator(t *testing.T) {
	svc := NewService(NewSessionStore())
	addr, destroyFunc := startServer(t, svc)
	defer destroyFunc()

	client := createClient(t, addr)
	defer client.Close()

	testCases := []struct {
		name        string
		tokens      []string
		wantOK      bool
		wantResult  float64
		wantHistory string
		wantErr     bool
	}{
		{
			name:        "validTokens",
			tokens:      []string{"5", "8", " + ", " 3 ", "-", "2", "/", "5", "*"},
			wantOK:      true,
			wantResult:  25,
			wantHistory: "(5+8−3)÷2×5",
		},
		{
			name:        "unicodeOperators",
			tokens:      []string{"10", "2", "÷", "√"},
			wantOK:      true,
			wantResult:  math.Sqrt(5),
			wantHistory: "√(10÷2)",
		},
		{
			name:        "unboundVariable",
			tokens:      []string{"5", "a", "+"},
			wantHistory: "5+a",
		},
		{
			name:        "missingOperands",
			tokens:      []string{"+"},
			wantHistory: "?+?",
		},
		{
			name:        "leftoverOperands",
			tokens:      []string{"5", "5", "5", "+"},
			wantOK:      true,
			wantResult:  10,
			wantHistory: "5, 5+5",
		},
		{
			name:   "emptyTokens",
			tokens: []string{},
		},
		{
			name:    "blankToken",
			tokens:  []string{"5", "  "},
			wantErr: true,
		},
	}

	t.Run("stream", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tokChan := make(chan string, len(tc.tokens))
				for _, tok := range tc.tokens {
					tokChan <- tok
				}
				close(tokChan)

				have, err := client.EvaluateStream(tokChan)
				if tc.wantErr {
					require.Error(t, err)
					return
				}

				require.NoError(t, err)
				require.Equal(t, tc.wantOK, have.OK)
				require.Equal(t, tc.wantHistory, have.History)
				if tc.wantOK {
					require.InDelta(t, tc.wantResult, have.Value, 1e-12)
				}
			})
		}
	})

	t.Run("batch", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				have, err := client.EvaluateBatch(context.Background(), tc.tokens, nil)
				if tc.wantErr {
					require.Error(t, err)
					return
				}

				require.NoError(t, err)
				require.Equal(t, tc.wantOK, have.OK)
				require.Equal(t, tc.wantHistory, have.History)
				if tc.wantOK {
					require.InDelta(t, tc.wantResult, have.Value, 1e-12)
				}
			})
		}
	})

	t.Run("batchWithVariables", func(t *testing.T) {
		have, err := client.EvaluateBatch(context.Background(), []string{"r", "r", "*", "pi", "*"}, map[string]float64{"r": 2})
		require.NoError(t, err)
		require.True(t, have.OK)
		require.InDelta(t, 4*math.Pi, have.Value, 1e-12)
		require.Equal(t, "r×r×π", have.History)
		require.Equal(t, []string{"r", "r", "×", "π", "×"}, have.Program)
	})
}

func TestSessions(t *testing.T) {
	svc := NewService(NewSessionStore(WithMaxSessions(2)))
	addr, destroyFunc := startServer(t, svc)
	defer destroyFunc()

	client := createClient(t, addr)
	defer client.Close()

	ctx := context.Background()

	first, err := client.CreateSession(ctx)
	require.NoError(t, err)
	second, err := client.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	t.Run("limit", func(t *testing.T) {
		_, err := client.CreateSession(ctx)
		require.Equal(t, codes.ResourceExhausted, status.Code(err))
	})

	t.Run("push", func(t *testing.T) {
		var have Result
		for _, tok := range []string{"3", "4", "+"} {
			have, err = client.Push(ctx, first, tok)
			require.NoError(t, err)
		}

		require.True(t, have.OK)
		require.Equal(t, 7.0, have.Value)
		require.Equal(t, "3+4", have.History)
		require.Equal(t, []string{"3", "4", "+"}, have.Program)

		have, err = client.Push(ctx, first, "sqrt")
		require.NoError(t, err)
		require.InDelta(t, 2.6458, have.Value, 1e-4)
	})

	t.Run("isolation", func(t *testing.T) {
		have, err := client.Program(ctx, second)
		require.NoError(t, err)
		require.False(t, have.OK)
		require.Empty(t, have.Program)
	})

	t.Run("unknownOperation", func(t *testing.T) {
		before, err := client.Program(ctx, first)
		require.NoError(t, err)

		have, err := svc.Push(ctx, &v1pb.PushRequest{
			SessionId: first,
			Token:     &v1pb.Token{Kind: v1pb.OPERATION, Symbol: "?"},
		})
		require.NoError(t, err)
		require.Equal(t, before.Value, have.Value)
		require.Equal(t, before.Program, have.Program)
	})

	t.Run("invalidToken", func(t *testing.T) {
		_, err := svc.Push(ctx, &v1pb.PushRequest{SessionId: first})
		require.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = svc.Push(ctx, &v1pb.PushRequest{
			SessionId: first,
			Token:     &v1pb.Token{Kind: v1pb.SYMBOL},
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("variables", func(t *testing.T) {
		have, err := client.Push(ctx, second, "m")
		require.NoError(t, err)
		require.False(t, have.OK)

		have, err = client.SetVariable(ctx, second, "m", 6)
		require.NoError(t, err)
		require.True(t, have.OK)
		require.Equal(t, 6.0, have.Value)

		have, err = client.Clear(ctx, second, false, true)
		require.NoError(t, err)
		require.False(t, have.OK)
		require.Equal(t, []string{"m"}, have.Program)

		_, err = client.SetVariable(ctx, second, " ", 1)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("program", func(t *testing.T) {
		have, err := client.SetProgram(ctx, second, []string{"10", "2", "÷", "bogus"})
		require.NoError(t, err)
		require.True(t, have.OK)
		require.Equal(t, 5.0, have.Value)
		require.Equal(t, []string{"10", "2", "÷"}, have.Program)

		have, err = client.Clear(ctx, second, true, false)
		require.NoError(t, err)
		require.False(t, have.OK)
		require.Empty(t, have.Program)
	})

	t.Run("symbols", func(t *testing.T) {
		operators, constants, err := client.Symbols(ctx)
		require.NoError(t, err)
		require.Subset(t, operators, []string{"+", "−", "×", "÷", "√", "sin", "cos"})
		require.Equal(t, []string{"π"}, constants)
	})

	t.Run("close", func(t *testing.T) {
		require.NoError(t, client.CloseSession(ctx, first))

		_, err := client.Push(ctx, first, "1")
		require.Equal(t, codes.NotFound, status.Code(err))

		err = client.CloseSession(ctx, first)
		require.Equal(t, codes.NotFound, status.Code(err))

		_, err = client.CreateSession(ctx)
		require.NoError(t, err)
	})
}

func startServer(t *testing.T, service *Service) (string, func()) {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}

	addr := lis.Addr().String()
	srv := grpc.NewServer()
	v1pb.RegisterCalculatorServer(srv, service)

	go func() {
		if err := srv.Serve(lis); err != nil {
			panic(err)
		}
	}()

	destroyFunc := func() {
		srv.GracefulStop()
		lis.Close()
	}

	return addr, destroyFunc
}

func createClient(t *testing.T, addr string) *Client {
	t.Helper()

	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		t.Fatal(err)
	}

	return NewClient(conn)
}
