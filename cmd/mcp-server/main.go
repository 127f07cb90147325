package main

import (
	"context"
	"log"
	"os"

	"github.com/eshaffer321/roboat-go/pkg/roboat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// Get the .ROBLOSECURITY cookie from environment
	credential := os.Getenv("ROBLOSECURITY")
	if credential == "" {
		log.Fatal("ROBLOSECURITY environment variable is required")
	}

	client, err := roboat.NewClient(&roboat.ClientOptions{
		Credential: credential,
		SentryDSN:  os.Getenv("SENTRY_DSN"),
	})
	if err != nil {
		log.Fatalf("failed to initialize roboat client: %v", err)
	}
	defer client.Close()

	impl := &mcp.Implementation{
		Name:    "roboat",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	registerTools(server, client)

	// Run server over stdio transport
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func registerTools(server *mcp.Server, client *roboat.Client) {
	tools := &roboatTools{client: client}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_identity",
		Description: "Get the user id, username and display name of the authenticated Roblox account.",
	}, tools.GetIdentity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_robux",
		Description: "Get the current Robux balance of the authenticated account.",
	}, tools.GetRobux)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_resellers",
		Description: "List resale listings of a limited item, cheapest first. Returns the user asset id, price, seller and serial number of each listing plus a cursor for the next page.",
	}, tools.GetResellers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_sales",
		Description: "List sales made by the authenticated account, newest first, with the buyer, item and Robux received.",
	}, tools.GetUserSales)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_item_details",
		Description: "Get catalog details (name, creator, price, product id, restrictions) for assets and bundles.",
	}, tools.GetItemDetails)
}
