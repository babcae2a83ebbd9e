package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	tokenfactoryrpc "github.com/nspcc-dev/tokenfactory-contract/rpc/tokenfactory"
)

// maxQueueItems limits the number of the queued initial balances printed.
const maxQueueItems = 1000

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := flag.String("contract", "", "Address or hash (LE) of the Token Factory contract")
	withStorage := flag.Bool("storage", false, "Print raw contract storage (requires state service)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddr == "":
		log.Fatal("missing contract address")
	}

	contract, err := parseContract(*contractAddr)
	if err != nil {
		log.Fatal(err)
	}

	b, err := newRemoteBlockChain(*neoRPCEndpoint, contract)
	if err != nil {
		log.Fatal(fmt.Errorf("init remote blockchain: %w", err))
	}

	err = printInfo(b)
	if err == nil && *withStorage {
		err = printStorage(b)
	}

	b.close()

	if err != nil {
		log.Fatal(err)
	}
}

func parseContract(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("invalid contract '%s': neither address nor hash", s)
	}

	return h, nil
}

func printInfo(b *remoteBlockchain) error {
	w := os.Stdout

	ver, err := b.factory.Version()
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	cfg, err := b.factory.Config()
	if err != nil {
		return fmt.Errorf("get config: %w", err)
	}

	info, err := b.factory.Info()
	if err != nil {
		return fmt.Errorf("get info: %w", err)
	}

	items, err := b.factory.InitialBalancesExpanded(maxQueueItems)
	if err != nil {
		return fmt.Errorf("get initial balances: %w", err)
	}

	fmt.Fprintf(w, "Block:    %d\n", b.currentBlock)
	fmt.Fprintf(w, "Contract: %s\n", address.Uint160ToString(b.contract))
	fmt.Fprintf(w, "Version:  %s\n", ver)
	fmt.Fprintf(w, "Manager:  %s\n", address.Uint160ToString(cfg.Manager))
	fmt.Fprintf(w, "Denom:    %s\n", info.Denom)
	fmt.Fprintf(w, "Minted:   %s\n", info.Minted)
	fmt.Fprintf(w, "Burned:   %s\n", info.Burned)

	if m := info.Metadata; m != nil {
		fmt.Fprintf(w, "Metadata: %s (%s) %q\n", m.Name, m.Symbol, m.Description)
		for _, u := range m.DenomUnits {
			fmt.Fprintf(w, "  unit %s: 10^%s\n", u.Denom, u.Exponent)
		}
	}

	fmt.Fprintf(w, "Queued initial balances: %d\n", len(items))
	for i := range items {
		var bal tokenfactoryrpc.TokenfactoryBalance

		err = bal.FromStackItem(items[i])
		if err != nil {
			return fmt.Errorf("decode initial balance #%d: %w", i, err)
		}

		fmt.Fprintf(w, "  %s: %s\n", address.Uint160ToString(bal.Recipient), bal.Amount)
	}

	return nil
}

func printStorage(b *remoteBlockchain) error {
	fmt.Fprintln(os.Stdout, "Storage:")
	return b.iterateContractStorage(func(key, value []byte) error {
		_, err := fmt.Fprintf(os.Stdout, "  %s: %s\n", hex.EncodeToString(key), hex.EncodeToString(value))
		return err
	})
}
