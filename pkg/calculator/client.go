package calculator

import (
	"context"
	"strconv"
	"strings"

	"github.com/charithe/deskcalc/pkg/v1pb"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// operatorAliases lets operators be typed on a plain keyboard.
var operatorAliases = map[string]string{
	"+":    "+",
	"-":    "−",
	"*":    "×",
	"/":    "÷",
	"sqrt": "√",
}

var constantAliases = map[string]string{
	"pi": "π",
}

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}
}

func (c *Client) EvaluateStream(tokens <-chan string) (Result, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := c.client.EvaluateStream(ctx)
	if err != nil {
		return Result{}, err
	}

	for tokenStr := range tokens {
		tok, err := parseToken(tokenStr)
		if err != nil {
			return Result{}, err
		}

		if err := stream.Send(&v1pb.EvaluateStreamRequest{Token: tok}); err != nil {
			return Result{}, err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return Result{}, err
	}

	return fromPB(resp), nil
}

func (c *Client) EvaluateBatch(ctx context.Context, tokenStrs []string, variables map[string]float64) (Result, error) {
	tokens, err := parseTokens(tokenStrs)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.client.EvaluateBatch(ctx, &v1pb.EvaluateBatchRequest{Tokens: tokens, Variables: variables})
	if err != nil {
		return Result{}, err
	}

	return fromPB(resp), nil
}

func (c *Client) CreateSession(ctx context.Context) (string, error) {
	resp, err := c.client.CreateSession(ctx, &v1pb.CreateSessionRequest{})
	if err != nil {
		return "", err
	}

	return resp.SessionId, nil
}

func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	_, err := c.client.CloseSession(ctx, &v1pb.CloseSessionRequest{SessionId: sessionID})
	return err
}

// Push sends one token, written the way a user would type it, to a session.
func (c *Client) Push(ctx context.Context, sessionID, tokenStr string) (Result, error) {
	tok, err := parseToken(tokenStr)
	if err != nil {
		return Result{}, err
	}

	return c.do(c.client.Push(ctx, &v1pb.PushRequest{SessionId: sessionID, Token: tok}))
}

func (c *Client) Clear(ctx context.Context, sessionID string, stack, variables bool) (Result, error) {
	return c.do(c.client.Clear(ctx, &v1pb.ClearRequest{SessionId: sessionID, Stack: stack, Variables: variables}))
}

func (c *Client) SetVariable(ctx context.Context, sessionID, name string, value float64) (Result, error) {
	return c.do(c.client.SetVariable(ctx, &v1pb.SetVariableRequest{SessionId: sessionID, Name: name, Value: value}))
}

func (c *Client) Program(ctx context.Context, sessionID string) (Result, error) {
	return c.do(c.client.GetProgram(ctx, &v1pb.GetProgramRequest{SessionId: sessionID}))
}

func (c *Client) SetProgram(ctx context.Context, sessionID string, program []string) (Result, error) {
	return c.do(c.client.SetProgram(ctx, &v1pb.SetProgramRequest{SessionId: sessionID, Program: program}))
}

// Symbols returns the operator and constant symbols known to the server.
func (c *Client) Symbols(ctx context.Context) ([]string, []string, error) {
	resp, err := c.client.ListSymbols(ctx, &v1pb.ListSymbolsRequest{})
	if err != nil {
		return nil, nil, err
	}

	return resp.Operators, resp.Constants, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) do(resp *v1pb.Result, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return fromPB(resp), nil
}

func parseTokens(tokenStrs []string) ([]*v1pb.Token, error) {
	tokens := make([]*v1pb.Token, len(tokenStrs))
	for i, tokStr := range tokenStrs {
		tok, err := parseToken(tokStr)
		if err != nil {
			return nil, err
		}

		tokens[i] = tok
	}

	return tokens, nil
}

func parseToken(tokenStr string) (*v1pb.Token, error) {
	tokStr := strings.TrimSpace(tokenStr)
	if tokStr == "" {
		return nil, errors.New("empty token")
	}

	if op, ok := operatorAliases[tokStr]; ok {
		return &v1pb.Token{Kind: v1pb.OPERATION, Symbol: op}, nil
	}

	if constant, ok := constantAliases[tokStr]; ok {
		return &v1pb.Token{Kind: v1pb.SYMBOL, Symbol: constant}, nil
	}

	if v, err := strconv.ParseFloat(tokStr, 64); err == nil {
		return &v1pb.Token{Kind: v1pb.OPERAND, Value: v}, nil
	}

	return &v1pb.Token{Kind: v1pb.AUTO, Symbol: tokStr}, nil
}

func fromPB(r *v1pb.Result) Result {
	return Result{
		OK:      r.GetOk(),
		Value:   r.GetValue(),
		History: r.GetHistory(),
		Program: r.GetProgram(),
	}
}
