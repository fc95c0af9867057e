package identity

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	bCtx "github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/keys"
	"github.com/x-xyz/staking/service/cache"
)

func NewClient(cfg *ClientCfg) domain.IdentityService {
	return &client{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.PfxIdentity,
			Cache: cfg.Cache,
		}),
	}
}

type client struct {
	client   http.Client
	timeout  time.Duration
	endpoint string
	cache    cache.Service
}

// IsRegisteredAccount reports false for names that can not exist, without asking the registry
func (c *client) IsRegisteredAccount(ctx bCtx.Ctx, name domain.Name) (bool, error) {
	if name.Validate() != nil {
		return false, nil
	}
	var exists bool
	if err := c.cache.GetByFunc(ctx, keys.RedisKey(name.String()), &exists, func() (interface{}, error) {
		found, err := c.lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		if !found {
			// misses are not cached, the account may be created later
			return nil, errAccountMissing
		}
		return &found, nil
	}); err == errAccountMissing {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return exists, nil
}

func (c *client) lookup(ctx bCtx.Ctx, name domain.Name) (bool, error) {
	u := fmt.Sprintf("%s/v1/accounts/%s", c.endpoint, url.PathEscape(name.String()))
	data, status, err := c.get(ctx, u)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	resp := accountResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return false, err
	}
	return resp.AccountName == name.String(), nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, int, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("unexpected status code")
		return nil, resp.StatusCode, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
