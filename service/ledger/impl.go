package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/domain/transfer"
)

const bearerKey = "Authorization"

func NewClient(cfg *ClientCfg) transfer.Ledger {
	return &client{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apikey:   cfg.Apikey,
	}
}

type client struct {
	client   http.Client
	timeout  time.Duration
	endpoint string
	apikey   string
}

// Transfer posts ins to the ledger. A 409 means the ledger already applied this id.
func (c *client) Transfer(ctx bCtx.Ctx, ins *transfer.Instruction) error {
	body, err := json.Marshal(transferReq{
		Contract: ins.Contract.String(),
		From:     ins.From.String(),
		To:       ins.To.String(),
		Quantity: ins.Quantity.String(),
		Memo:     ins.Memo,
	})
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}
	url := fmt.Sprintf("%s/v1/transfers", c.endpoint)
	if err := c.post(ctx, url, ins.Id, body); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"id":  ins.Id,
			"err": err,
		}).Error("c.post failed")
		return err
	}
	return nil
}

func (c *client) post(ctx bCtx.Ctx, url, id string, body []byte) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(idempotencyKeyHeader, id)
	if c.apikey != "" {
		req.Header.Set(bearerKey, "Bearer "+c.apikey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		ctx.WithField("id", id).Info("transfer already applied")
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := ioutil.ReadAll(resp.Body)
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
			"body":       string(msg),
		}).Error("unexpected status code")
		return xerrors.Errorf("status %d: %w", resp.StatusCode, ErrStatusCodeNotOk)
	}
	return nil
}
