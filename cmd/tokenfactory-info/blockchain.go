package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	tokenfactoryrpc "github.com/nspcc-dev/tokenfactory-contract/rpc/tokenfactory"
)

// wrapper over rpcNeo providing Token Factory contract services needed for
// current command.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	factory *tokenfactoryrpc.ContractReader

	contract     util.Uint160
	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain
// serving the Token Factory contract with the given address. Connection and
// all requests are done within 15s timeout.
func newRemoteBlockChain(endpoint string, contract util.Uint160) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		factory:      tokenfactoryrpc.NewReader(invoker.New(c, nil), contract),
		contract:     contract,
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateContractStorage iterates over all storage items of the Token Factory
// contract at the penult block and passes them into f. Requires state service
// on the RPC server. iterateContractStorage breaks on any f's error and
// returns it.
func (x *remoteBlockchain) iterateContractStorage(f func(key, value []byte) error) error {
	stateRoot, err := x.rpc.GetStateRootByHeight(x.currentBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", x.currentBlock-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, x.contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
