package rpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/danielpatrickdp/wordle-solver/internal/filter"
	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region helpers

var (
	craWords = []word.Word{"crane", "crate", "crave", "craze"}
	vocab    = word.NewVocabulary([]word.Word{
		"crane", "crate", "crave", "craze", "ntvzx", "xzvtn", "tares",
	})
)

func startServer(t *testing.T) *Client {
	t.Helper()
	strategies := map[strategy.ID]strategy.Strategy{}
	for _, id := range []strategy.ID{strategy.Entropy, strategy.Minimax} {
		s, err := strategy.New(id, vocab, "tares")
		require.NoError(t, err)
		strategies[id] = s
	}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterSolverServer(srv, NewServer(strategies, craWords, strategy.Entropy, nil))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewClientWithConn(conn)
}

func obs(t *testing.T, guess, p string) filter.Observation {
	t.Helper()
	parsed, err := pattern.Parse(p)
	require.NoError(t, err)
	return filter.Observation{Guess: word.Word(guess), Pattern: parsed}
}

// #endregion helpers

// #region suggest-tests

func TestSuggest_Opening(t *testing.T) {
	c := startServer(t)
	got, err := c.Suggest(context.Background(), "", nil, 10)
	require.NoError(t, err)
	assert.Equal(t, word.Word("tares"), got.Guess)
	assert.Equal(t, 4, got.Remaining)
	assert.Equal(t, craWords, got.Candidates)
	assert.False(t, got.Solved)
}

func TestSuggest_FollowsHistory(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	got, err := c.Suggest(ctx, strategy.Entropy, []filter.Observation{obs(t, "tares", "_YYY_")}, 10)
	require.NoError(t, err)
	assert.Equal(t, word.Word("ntvzx"), got.Guess)
	assert.Equal(t, 3, got.Remaining)

	got, err = c.Suggest(ctx, strategy.Entropy, []filter.Observation{
		obs(t, "tares", "_YYY_"),
		obs(t, "ntvzx", "Y____"),
	}, 10)
	require.NoError(t, err)
	assert.Equal(t, word.Word("crane"), got.Guess)
	assert.Equal(t, 1, got.Remaining)
}

func TestSuggest_CapsCandidates(t *testing.T) {
	c := startServer(t)
	got, err := c.Suggest(context.Background(), strategy.Minimax, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Remaining)
	assert.Len(t, got.Candidates, 2)
}

func TestSuggest_Solved(t *testing.T) {
	c := startServer(t)
	got, err := c.Suggest(context.Background(), "", []filter.Observation{obs(t, "crate", "GGGGG")}, 10)
	require.NoError(t, err)
	assert.True(t, got.Solved)
	assert.Equal(t, word.Word("crate"), got.Guess)
}

func TestSuggest_Errors(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	_, err := c.Suggest(ctx, "greedy", nil, 10)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Suggest(ctx, strategy.Hybrid, nil, 10)
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "strategy not served")

	// No cra_e word has an s.
	_, err = c.Suggest(ctx, "", []filter.Observation{obs(t, "tares", "____G")}, 10)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestSuggest_BadHistory(t *testing.T) {
	c := startServer(t)
	_, err := c.Suggest(context.Background(), "", []filter.Observation{{Guess: "toolong"}}, 10)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// #endregion suggest-tests

// #region constructor-tests

func TestNewClient(t *testing.T) {
	c, err := NewClient("localhost:0")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}

func TestNewClientWithConn_CloseIsNoop(t *testing.T) {
	c := NewClientWithConn(nil)
	assert.NoError(t, c.Close())
}

// #endregion constructor-tests
