package ledger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/transfer"
)

func testInstruction() *transfer.Instruction {
	return transfer.NewInstruction(transfer.KindReward, "bluxtoken", "stakepurple", "alice",
		domain.NewAsset(536, domain.NewSymbol("BLUX", 4)), "Rewards", time.Unix(0, 0))
}

func TestTransfer(t *testing.T) {
	req := require.New(t)
	ins := testInstruction()
	var got transferReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1/transfers", r.URL.Path)
		req.Equal(ins.Id, r.Header.Get(idempotencyKeyHeader))
		req.Equal("Bearer key", r.Header.Get(bearerKey))
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{Timeout: time.Second, Endpoint: srv.URL, Apikey: "key"})
	req.NoError(c.Transfer(bCtx.Background(), ins))
	req.Equal(transferReq{Contract: "bluxtoken", From: "stakepurple", To: "alice", Quantity: "0.0536 BLUX", Memo: "Rewards"}, got)
}

func TestTransferStatus(t *testing.T) {
	req := require.New(t)
	status := http.StatusConflict
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()
	c := NewClient(&ClientCfg{Timeout: time.Second, Endpoint: srv.URL})

	req.NoError(c.Transfer(bCtx.Background(), testInstruction()), "a replayed id is not an error")

	status = http.StatusServiceUnavailable
	req.ErrorIs(c.Transfer(bCtx.Background(), testInstruction()), ErrStatusCodeNotOk)
}
