// Package mcp provides MCP server tools for pool address derivation.
package mcp

import (
	"context"
	"fmt"

	"github.com/gateway-fm/pooladdress/pkg/formatter"
	"github.com/gateway-fm/pooladdress/pkg/pooladdr"
	gomcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all pool address tools on the MCP server.
func RegisterTools(s *server.MCPServer) {
	registerPoolAddress(s)
	registerMultiChainPoolAddress(s)
	registerListExchanges(s)
}

func registerPoolAddress(s *server.MCPServer) {
	tool := gomcp.NewTool("pool_address",
		gomcp.WithDescription("Derive the pair contract address for two tokens on a registered exchange. Offline, no RPC calls."),
		gomcp.WithString("exchange",
			gomcp.Required(),
			gomcp.Description("Registered exchange name (see list_exchanges), e.g. pancake"),
		),
		gomcp.WithString("token_a",
			gomcp.Required(),
			gomcp.Description("First token address, hex"),
		),
		gomcp.WithString("token_b",
			gomcp.Required(),
			gomcp.Description("Second token address, hex"),
		),
	)
	s.AddTool(tool, handlePoolAddress)
}

func handlePoolAddress(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	exchange, err := req.RequireString("exchange")
	if err != nil {
		return gomcp.NewToolResultError("exchange is required"), nil
	}
	tokenA, tokenB, errResult := requireTokens(req)
	if errResult != nil {
		return errResult, nil
	}

	addr, err := pooladdr.GetPoolAddress(exchange, tokenA, tokenB)
	if err != nil {
		return gomcp.NewToolResultError(fmt.Sprintf("Derivation failed: %v", err)), nil
	}

	d, err := pooladdr.Lookup(exchange)
	if err != nil {
		return gomcp.NewToolResultError(fmt.Sprintf("Derivation failed: %v", err)), nil
	}
	return gomcp.NewToolResultText(joinLines(
		section("Pool Address"),
		kv("Exchange", exchange),
		kv("Factory", d.Factory.Hex()),
		kv("Init Code Hash", d.InitCodeHash.Hex()),
		kv("Pair", addr.Hex()),
	)), nil
}

func registerMultiChainPoolAddress(s *server.MCPServer) {
	tool := gomcp.NewTool("multichain_pool_address",
		gomcp.WithDescription("Derive a pair contract address from an explicit factory address and pair creation code hash, for deployments not in the registry."),
		gomcp.WithString("factory",
			gomcp.Required(),
			gomcp.Description("Factory contract address, hex"),
		),
		gomcp.WithString("init_code_hash",
			gomcp.Required(),
			gomcp.Description("32 byte pair creation code hash, or the full init code to be hashed"),
		),
		gomcp.WithString("token_a",
			gomcp.Required(),
			gomcp.Description("First token address, hex"),
		),
		gomcp.WithString("token_b",
			gomcp.Required(),
			gomcp.Description("Second token address, hex"),
		),
	)
	s.AddTool(tool, handleMultiChainPoolAddress)
}

func handleMultiChainPoolAddress(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	factoryHex, err := req.RequireString("factory")
	if err != nil {
		return gomcp.NewToolResultError("factory is required"), nil
	}
	codeHex, err := req.RequireString("init_code_hash")
	if err != nil {
		return gomcp.NewToolResultError("init_code_hash is required"), nil
	}

	factory, err := formatter.ToEthAddress(factoryHex)
	if err != nil {
		return gomcp.NewToolResultError(fmt.Sprintf("Invalid factory: %v", err)), nil
	}
	initCodeHash, err := formatter.ToFactoryInitCode(codeHex)
	if err != nil {
		return gomcp.NewToolResultError(fmt.Sprintf("Invalid init code hash: %v", err)), nil
	}
	tokenA, tokenB, errResult := requireTokens(req)
	if errResult != nil {
		return errResult, nil
	}

	addr, err := pooladdr.GetMultiChainPoolAddress(factory, initCodeHash, tokenA, tokenB)
	if err != nil {
		return gomcp.NewToolResultError(fmt.Sprintf("Derivation failed: %v", err)), nil
	}

	return gomcp.NewToolResultText(joinLines(
		section("Pool Address"),
		kv("Factory", factory.Hex()),
		kv("Init Code Hash", initCodeHash.Hex()),
		kv("Pair", addr.Hex()),
	)), nil
}

func registerListExchanges(s *server.MCPServer) {
	tool := gomcp.NewTool("list_exchanges",
		gomcp.WithDescription("List registered exchanges with their factory address and pair creation code hash."),
	)
	s.AddTool(tool, handleListExchanges)
}

func handleListExchanges(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	return gomcp.NewToolResultText(formatExchanges()), nil
}

// requireTokens decodes token_a and token_b. Length and zero checks are
// left to pooladdr so its error messages reach the caller unchanged.
func requireTokens(req gomcp.CallToolRequest) ([]byte, []byte, *gomcp.CallToolResult) {
	hexA, err := req.RequireString("token_a")
	if err != nil {
		return nil, nil, gomcp.NewToolResultError("token_a is required")
	}
	hexB, err := req.RequireString("token_b")
	if err != nil {
		return nil, nil, gomcp.NewToolResultError("token_b is required")
	}

	tokenA, err := formatter.HexToBytes(hexA)
	if err != nil {
		return nil, nil, gomcp.NewToolResultError(fmt.Sprintf("Invalid token_a: %v", err))
	}
	tokenB, err := formatter.HexToBytes(hexB)
	if err != nil {
		return nil, nil, gomcp.NewToolResultError(fmt.Sprintf("Invalid token_b: %v", err))
	}
	return tokenA, tokenB, nil
}
