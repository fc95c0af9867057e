package ledger

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status not 2xx")
)

const idempotencyKeyHeader = "Idempotency-Key"

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Endpoint is the base url of the token ledger
	Endpoint string
	Apikey   string
}

type transferReq struct {
	Contract string `json:"contract"`
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}
