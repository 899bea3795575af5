package main

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/pkg/btcrpc"
)

func newRPCClient(rawURL, user, password string, timeout time.Duration) (*btcrpc.Client, error) {
	return btcrpc.NewClient(btcrpc.Config{
		URL:      rawURL,
		User:     user,
		Password: password,
		Timeout:  timeout,
	})
}
