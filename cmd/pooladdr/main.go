// Command pooladdr prints the pair contract address for two tokens.
//
//	pooladdr -exchange pancake -token-a 0x0e09... -token-b 0xbb4c...
//	pooladdr -factory 0xbcfc... -init-code-hash 0xd0d4... -token-a ... -token-b ...
//	pooladdr -list
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gateway-fm/pooladdress/internal/config"
	"github.com/gateway-fm/pooladdress/pkg/formatter"
	"github.com/gateway-fm/pooladdress/pkg/pooladdr"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stderr)

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("derivation failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func run(cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	if cfg.List {
		for _, name := range pooladdr.Exchanges() {
			d, err := pooladdr.Lookup(string(name))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-10s %s %s\n", name, d.Factory.Hex(), d.InitCodeHash.Hex())
		}
		return nil
	}

	tokenA, err := formatter.HexToBytes(cfg.TokenA)
	if err != nil {
		return fmt.Errorf("token a: %w", err)
	}
	tokenB, err := formatter.HexToBytes(cfg.TokenB)
	if err != nil {
		return fmt.Errorf("token b: %w", err)
	}

	var addr common.Address
	if cfg.MultiChain() {
		factory, err := formatter.ToEthAddress(cfg.Factory)
		if err != nil {
			return fmt.Errorf("factory: %w", err)
		}
		initCodeHash, err := formatter.ToFactoryInitCode(cfg.InitCodeHash)
		if err != nil {
			return fmt.Errorf("init code hash: %w", err)
		}
		logger.Debug("deriving multi-chain pair",
			"factory", factory.Hex(),
			"init_code_hash", initCodeHash.Hex(),
		)
		addr, err = pooladdr.GetMultiChainPoolAddress(factory, initCodeHash, tokenA, tokenB)
		if err != nil {
			return err
		}
	} else {
		logger.Debug("deriving pair", "exchange", cfg.Exchange)
		addr, err = pooladdr.GetPoolAddress(cfg.Exchange, tokenA, tokenB)
		if err != nil {
			return err
		}
	}

	logger.Info("derived pair address",
		"token_a", cfg.TokenA,
		"token_b", cfg.TokenB,
		"pair", addr.Hex(),
	)
	fmt.Fprintln(out, addr.Hex())
	return nil
}
