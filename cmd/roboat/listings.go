package main

import (
	"context"

	"github.com/eshaffer321/roboat-go/pkg/roboat"
	"github.com/urfave/cli"
)

const (
	itemFlag   = "item"
	limitFlag  = "limit"
	cursorFlag = "cursor"
	allFlag    = "all"
)

func ctx(c *cli.Context) context.Context {
	if v, ok := c.App.Metadata[ctxKey].(context.Context); ok {
		return v
	}
	return context.Background()
}

func registerPageFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.IntFlag{
			Name:  limitFlag,
			Usage: "page size (10, 25, 50 or 100)",
			Value: int(roboat.Limit10),
		},
		cli.StringFlag{
			Name:  cursorFlag,
			Usage: "cursor of the page to fetch",
		},
		cli.BoolFlag{
			Name:  allFlag,
			Usage: "fetch every page starting at --cursor",
		},
	)
}

// fetchPages returns one page, or every remaining page when --all is set
func fetchPages[T any](c *cli.Context, fetch roboat.PageFunc[T]) (interface{}, error) {
	cursor := c.String(cursorFlag)
	if !c.Bool(allFlag) {
		return fetch(ctx(c), cursor)
	}

	pager := roboat.NewPager(func(ctx context.Context, next string) (*roboat.Page[T], error) {
		if next == "" {
			next = cursor
		}
		return fetch(ctx, next)
	})
	items, err := pager.Collect(ctx(c))
	if err != nil {
		return nil, err
	}
	return items, nil
}

func makeResellersCMD() cli.Command {
	cmd := cli.Command{
		Name:   "resellers",
		Usage:  "Lists resale listings of a limited item",
		Action: resellers,
	}
	cmd.Flags = append(cmd.Flags,
		cli.Uint64Flag{
			Name:  itemFlag,
			Usage: "asset id of the limited item",
		},
	)
	cmd.Flags = registerPageFlags(cmd.Flags)
	return cmd
}

func resellers(c *cli.Context) error {
	itemID := c.Uint64(itemFlag)
	if itemID == 0 {
		return cli.NewExitError("--item is required", 2)
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	limit := roboat.Limit(c.Int(limitFlag))
	res, err := fetchPages(c, func(ctx context.Context, cursor string) (*roboat.Page[roboat.Listing], error) {
		return client.Economy.Resellers(ctx, itemID, limit, cursor)
	})
	if err != nil {
		return err
	}
	return output(c, res)
}

func makeSalesCMD() cli.Command {
	cmd := cli.Command{
		Name:   "sales",
		Usage:  "Lists sales made by the authenticated account",
		Action: sales,
	}
	cmd.Flags = registerPageFlags(cmd.Flags)
	return cmd
}

func sales(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	limit := roboat.Limit(c.Int(limitFlag))
	res, err := fetchPages(c, func(ctx context.Context, cursor string) (*roboat.Page[roboat.UserSale], error) {
		return client.Economy.UserSales(ctx, limit, cursor)
	})
	if err != nil {
		return err
	}
	return output(c, res)
}
