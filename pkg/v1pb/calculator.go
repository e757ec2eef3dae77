// Package v1pb holds the wire types of the calculator.v1 API described in
// calculator.proto. The structs carry protobuf field tags and are encoded by
// the reflection-based marshaller of the proto runtime.
package v1pb

import (
	"strconv"

	proto "github.com/gogo/protobuf/proto"
)

type TokenKind int32

const (
	AUTO      TokenKind = 0
	OPERAND   TokenKind = 1
	SYMBOL    TokenKind = 2
	OPERATION TokenKind = 3
)

var TokenKind_name = map[int32]string{
	0: "AUTO",
	1: "OPERAND",
	2: "SYMBOL",
	3: "OPERATION",
}

var TokenKind_value = map[string]int32{
	"AUTO":      0,
	"OPERAND":   1,
	"SYMBOL":    2,
	"OPERATION": 3,
}

func (x TokenKind) String() string {
	if name, ok := TokenKind_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

type Token struct {
	Kind   TokenKind `protobuf:"varint,1,opt,name=kind,proto3,enum=calculator.v1.TokenKind" json:"kind,omitempty"`
	Value  float64   `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	Symbol string    `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

func (m *Token) GetKind() TokenKind {
	if m != nil {
		return m.Kind
	}
	return AUTO
}

func (m *Token) GetValue() float64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *Token) GetSymbol() string {
	if m != nil {
		return m.Symbol
	}
	return ""
}

type Result struct {
	Ok      bool     `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Value   float64  `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	History string   `protobuf:"bytes,3,opt,name=history,proto3" json:"history,omitempty"`
	Program []string `protobuf:"bytes,4,rep,name=program,proto3" json:"program,omitempty"`
}

func (m *Result) Reset()         { *m = Result{} }
func (m *Result) String() string { return proto.CompactTextString(m) }
func (*Result) ProtoMessage()    {}

func (m *Result) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

func (m *Result) GetValue() float64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *Result) GetHistory() string {
	if m != nil {
		return m.History
	}
	return ""
}

func (m *Result) GetProgram() []string {
	if m != nil {
		return m.Program
	}
	return nil
}

type EvaluateStreamRequest struct {
	Token *Token `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *EvaluateStreamRequest) Reset()         { *m = EvaluateStreamRequest{} }
func (m *EvaluateStreamRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamRequest) ProtoMessage()    {}

func (m *EvaluateStreamRequest) GetToken() *Token {
	if m != nil {
		return m.Token
	}
	return nil
}

type EvaluateBatchRequest struct {
	Tokens    []*Token           `protobuf:"bytes,1,rep,name=tokens,proto3" json:"tokens,omitempty"`
	Variables map[string]float64 `protobuf:"bytes,2,rep,name=variables,proto3" json:"variables,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"fixed64,2,opt,name=value,proto3"`
}

func (m *EvaluateBatchRequest) Reset()         { *m = EvaluateBatchRequest{} }
func (m *EvaluateBatchRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchRequest) ProtoMessage()    {}

func (m *EvaluateBatchRequest) GetTokens() []*Token {
	if m != nil {
		return m.Tokens
	}
	return nil
}

func (m *EvaluateBatchRequest) GetVariables() map[string]float64 {
	if m != nil {
		return m.Variables
	}
	return nil
}

type CreateSessionRequest struct {
}

func (m *CreateSessionRequest) Reset()         { *m = CreateSessionRequest{} }
func (m *CreateSessionRequest) String() string { return proto.CompactTextString(m) }
func (*CreateSessionRequest) ProtoMessage()    {}

type CreateSessionResponse struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *CreateSessionResponse) Reset()         { *m = CreateSessionResponse{} }
func (m *CreateSessionResponse) String() string { return proto.CompactTextString(m) }
func (*CreateSessionResponse) ProtoMessage()    {}

func (m *CreateSessionResponse) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

type CloseSessionRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *CloseSessionRequest) Reset()         { *m = CloseSessionRequest{} }
func (m *CloseSessionRequest) String() string { return proto.CompactTextString(m) }
func (*CloseSessionRequest) ProtoMessage()    {}

func (m *CloseSessionRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

type CloseSessionResponse struct {
}

func (m *CloseSessionResponse) Reset()         { *m = CloseSessionResponse{} }
func (m *CloseSessionResponse) String() string { return proto.CompactTextString(m) }
func (*CloseSessionResponse) ProtoMessage()    {}

type PushRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Token     *Token `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *PushRequest) Reset()         { *m = PushRequest{} }
func (m *PushRequest) String() string { return proto.CompactTextString(m) }
func (*PushRequest) ProtoMessage()    {}

func (m *PushRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *PushRequest) GetToken() *Token {
	if m != nil {
		return m.Token
	}
	return nil
}

type ClearRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Stack     bool   `protobuf:"varint,2,opt,name=stack,proto3" json:"stack,omitempty"`
	Variables bool   `protobuf:"varint,3,opt,name=variables,proto3" json:"variables,omitempty"`
}

func (m *ClearRequest) Reset()         { *m = ClearRequest{} }
func (m *ClearRequest) String() string { return proto.CompactTextString(m) }
func (*ClearRequest) ProtoMessage()    {}

func (m *ClearRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *ClearRequest) GetStack() bool {
	if m != nil {
		return m.Stack
	}
	return false
}

func (m *ClearRequest) GetVariables() bool {
	if m != nil {
		return m.Variables
	}
	return false
}

type SetVariableRequest struct {
	SessionId string  `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Name      string  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Value     float64 `protobuf:"fixed64,3,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *SetVariableRequest) Reset()         { *m = SetVariableRequest{} }
func (m *SetVariableRequest) String() string { return proto.CompactTextString(m) }
func (*SetVariableRequest) ProtoMessage()    {}

func (m *SetVariableRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SetVariableRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *SetVariableRequest) GetValue() float64 {
	if m != nil {
		return m.Value
	}
	return 0
}

type GetProgramRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *GetProgramRequest) Reset()         { *m = GetProgramRequest{} }
func (m *GetProgramRequest) String() string { return proto.CompactTextString(m) }
func (*GetProgramRequest) ProtoMessage()    {}

func (m *GetProgramRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

type SetProgramRequest struct {
	SessionId string   `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Program   []string `protobuf:"bytes,2,rep,name=program,proto3" json:"program,omitempty"`
}

func (m *SetProgramRequest) Reset()         { *m = SetProgramRequest{} }
func (m *SetProgramRequest) String() string { return proto.CompactTextString(m) }
func (*SetProgramRequest) ProtoMessage()    {}

func (m *SetProgramRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SetProgramRequest) GetProgram() []string {
	if m != nil {
		return m.Program
	}
	return nil
}

type ListSymbolsRequest struct {
}

func (m *ListSymbolsRequest) Reset()         { *m = ListSymbolsRequest{} }
func (m *ListSymbolsRequest) String() string { return proto.CompactTextString(m) }
func (*ListSymbolsRequest) ProtoMessage()    {}

type ListSymbolsResponse struct {
	Operators []string `protobuf:"bytes,1,rep,name=operators,proto3" json:"operators,omitempty"`
	Constants []string `protobuf:"bytes,2,rep,name=constants,proto3" json:"constants,omitempty"`
}

func (m *ListSymbolsResponse) Reset()         { *m = ListSymbolsResponse{} }
func (m *ListSymbolsResponse) String() string { return proto.CompactTextString(m) }
func (*ListSymbolsResponse) ProtoMessage()    {}

func (m *ListSymbolsResponse) GetOperators() []string {
	if m != nil {
		return m.Operators
	}
	return nil
}

func (m *ListSymbolsResponse) GetConstants() []string {
	if m != nil {
		return m.Constants
	}
	return nil
}

func init() {
	proto.RegisterEnum("calculator.v1.TokenKind", TokenKind_name, TokenKind_value)
	proto.RegisterType((*Token)(nil), "calculator.v1.Token")
	proto.RegisterType((*Result)(nil), "calculator.v1.Result")
	proto.RegisterType((*EvaluateStreamRequest)(nil), "calculator.v1.EvaluateStreamRequest")
	proto.RegisterType((*EvaluateBatchRequest)(nil), "calculator.v1.EvaluateBatchRequest")
	proto.RegisterType((*CreateSessionRequest)(nil), "calculator.v1.CreateSessionRequest")
	proto.RegisterType((*CreateSessionResponse)(nil), "calculator.v1.CreateSessionResponse")
	proto.RegisterType((*CloseSessionRequest)(nil), "calculator.v1.CloseSessionRequest")
	proto.RegisterType((*CloseSessionResponse)(nil), "calculator.v1.CloseSessionResponse")
	proto.RegisterType((*PushRequest)(nil), "calculator.v1.PushRequest")
	proto.RegisterType((*ClearRequest)(nil), "calculator.v1.ClearRequest")
	proto.RegisterType((*SetVariableRequest)(nil), "calculator.v1.SetVariableRequest")
	proto.RegisterType((*GetProgramRequest)(nil), "calculator.v1.GetProgramRequest")
	proto.RegisterType((*SetProgramRequest)(nil), "calculator.v1.SetProgramRequest")
	proto.RegisterType((*ListSymbolsRequest)(nil), "calculator.v1.ListSymbolsRequest")
	proto.RegisterType((*ListSymbolsResponse)(nil), "calculator.v1.ListSymbolsResponse")
}
