package v1pb

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestWireEncoding(t *testing.T) {
	req := &EvaluateBatchRequest{
		Tokens: []*Token{
			{Kind: OPERAND, Value: 3},
			{Kind: SYMBOL, Symbol: "π"},
			{Kind: OPERATION, Symbol: "×"},
		},
		Variables: map[string]float64{"r": 2},
	}

	bs, err := proto.Marshal(req)
	require.NoError(t, err)

	have := &EvaluateBatchRequest{}
	require.NoError(t, proto.Unmarshal(bs, have))
	require.Equal(t, req, have)
}

func TestTokenKindString(t *testing.T) {
	require.Equal(t, "OPERATION", OPERATION.String())
	require.Equal(t, "7", TokenKind(7).String())
}
