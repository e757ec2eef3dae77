package calculator

import (
	"testing"

	"github.com/charithe/deskcalc/pkg/v1pb"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	testCases := []struct {
		input   string
		want    *v1pb.Token
		wantErr bool
	}{
		{input: " 2.5 ", want: &v1pb.Token{Kind: v1pb.OPERAND, Value: 2.5}},
		{input: "-3", want: &v1pb.Token{Kind: v1pb.OPERAND, Value: -3}},
		{input: "-", want: &v1pb.Token{Kind: v1pb.OPERATION, Symbol: "−"}},
		{input: "*", want: &v1pb.Token{Kind: v1pb.OPERATION, Symbol: "×"}},
		{input: "/", want: &v1pb.Token{Kind: v1pb.OPERATION, Symbol: "÷"}},
		{input: "sqrt", want: &v1pb.Token{Kind: v1pb.OPERATION, Symbol: "√"}},
		{input: "pi", want: &v1pb.Token{Kind: v1pb.SYMBOL, Symbol: "π"}},
		{input: "sin", want: &v1pb.Token{Kind: v1pb.AUTO, Symbol: "sin"}},
		{input: "x", want: &v1pb.Token{Kind: v1pb.AUTO, Symbol: "x"}},
		{input: "   ", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			have, err := parseToken(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, have)
		})
	}
}
