// Package btcrpc is a minimal Bitcoin Core JSON-RPC client over HTTP POST.
//
// Every call performs exactly one HTTP request. Retrying is left to the caller.
package btcrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const DefaultTimeout = 30 * time.Second

// ErrEmptyResult is returned when the node answers without a result or an error.
var ErrEmptyResult = errors.New("rpc response has no result")

// Config describes the node endpoint. Credentials embedded in URL are used when
// User is empty.
type Config struct {
	URL      string
	User     string
	Password string
	Timeout  time.Duration
}

type Client struct {
	endpoint   string
	user       string
	password   string
	httpClient *http.Client
	idCounter  atomic.Uint64
}

func NewClient(cfg Config) (*Client, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	user, password := cfg.User, cfg.Password
	if user == "" && parsed.User != nil {
		user = parsed.User.Username()
		password, _ = parsed.User.Password()
	}
	parsed.User = nil

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint:   parsed.String(),
		user:       user,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Endpoint returns the request URL without credentials.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	var result string
	if err := c.call("getblockhash", btcjson.NewGetBlockHashCmd(blockHeight), &result); err != nil {
		return nil, err
	}
	return chainhash.NewHashFromStr(result)
}

// GetBlockVerboseTx calls getblock with verbosity 2.
func (c *Client) GetBlockVerboseTx(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error) {
	var result btcjson.GetBlockVerboseTxResult
	if err := c.call("getblock", btcjson.NewGetBlockCmd(blockHash.String(), btcjson.Int(2)), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error) {
	var result btcjson.TxRawResult
	if err := c.call("getrawtransaction", btcjson.NewGetRawTransactionCmd(txHash.String(), btcjson.Int(1)), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) call(method string, cmd any, result any) error {
	id := c.idCounter.Add(1)
	payload, err := btcjson.MarshalCmd(btcjson.RpcVersion1, id, cmd)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", method, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, err)
	}

	// bitcoind reports RPC errors with a non-200 status and a JSON body,
	// so the body is decoded before the status is looked at.
	var decoded btcjson.Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("%s: status %d: %s", method, resp.StatusCode, bytes.TrimSpace(body))
	}
	if decoded.Error != nil {
		return decoded.Error
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d", method, resp.StatusCode)
	}
	if len(decoded.Result) == 0 || string(decoded.Result) == "null" {
		return fmt.Errorf("%s: %w", method, ErrEmptyResult)
	}
	if err := json.Unmarshal(decoded.Result, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}
