package identity

import (
	"errors"
	"net/http"
	"time"

	"github.com/x-xyz/staking/service/cache/provider"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status not in (200, 404)")
	errAccountMissing  = errors.New("account missing")
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Endpoint is the base url of the account registry, e.g. https://chain.example/api
	Endpoint string
	// Cache keeps positive lookups for Ttl, accounts are never deleted
	Cache provider.Provider
	Ttl   time.Duration
}

type accountResp struct {
	AccountName string `json:"account_name"`
}
