package mcp

import (
	"fmt"
	"strings"

	"github.com/gateway-fm/pooladdress/pkg/pooladdr"
)

// kv formats a key-value pair with aligned values (20 char key width).
func kv(key string, value any) string {
	return fmt.Sprintf("%-20s %v", key+":", value)
}

// section returns a markdown section header.
func section(title string) string {
	return "## " + title
}

// joinLines joins non-empty lines with newlines.
func joinLines(lines ...string) string {
	var result []string
	for _, l := range lines {
		if l != "" {
			result = append(result, l)
		}
	}
	return strings.Join(result, "\n")
}

// formatExchanges renders every registered deployment as a markdown block.
func formatExchanges() string {
	names := pooladdr.Exchanges()
	lines := []string{section(fmt.Sprintf("Exchanges (%d)", len(names)))}
	for _, name := range names {
		d, err := pooladdr.Lookup(string(name))
		if err != nil {
			continue
		}
		lines = append(lines, "", "### "+string(name),
			kv("Factory", d.Factory.Hex()),
			kv("Init Code Hash", d.InitCodeHash.Hex()),
		)
	}
	return strings.Join(lines, "\n")
}
