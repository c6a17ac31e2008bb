package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/danielpatrickdp/wordle-solver/internal/filter"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region types

// Suggestion holds the response from a Suggest RPC call.
type Suggestion struct {
	Guess      word.Word
	Remaining  int
	Candidates []word.Word
	Solved     bool
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to a solver server.
type Client struct {
	conn   *grpc.ClientConn
	client SolverClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to a solver server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: NewSolverClient(conn)}, nil
}

// NewClientWithConn creates a Client over an existing connection. The caller owns cc.
func NewClientWithConn(cc grpc.ClientConnInterface) *Client {
	return &Client{client: NewSolverClient(cc)}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection if the client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region suggest

// Suggest asks the server for the next guess given the observations so far.
// An empty id selects the server's default strategy.
func (c *Client) Suggest(ctx context.Context, id strategy.ID, history []filter.Observation, maxCandidates int) (Suggestion, error) {
	entries := make([]any, len(history))
	for i, o := range history {
		entries[i] = map[string]any{"guess": string(o.Guess), "pattern": o.Pattern.String()}
	}
	req, err := structpb.NewStruct(map[string]any{
		"strategy":       string(id),
		"history":        entries,
		"max_candidates": maxCandidates,
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Suggest(ctx, req)
	if err != nil {
		return Suggestion{}, fmt.Errorf("suggest rpc: %w", err)
	}

	fields := resp.GetFields()
	out := Suggestion{
		Guess:     word.Word(fields["guess"].GetStringValue()),
		Remaining: int(fields["remaining"].GetNumberValue()),
		Solved:    fields["solved"].GetBoolValue(),
	}
	for _, v := range fields["candidates"].GetListValue().GetValues() {
		out.Candidates = append(out.Candidates, word.Word(v.GetStringValue()))
	}
	return out, nil
}

// #endregion suggest
