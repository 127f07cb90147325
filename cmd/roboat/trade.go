package main

import (
	"fmt"

	"github.com/eshaffer321/roboat-go/pkg/roboat"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	uaidFlag    = "uaid"
	priceFlag   = "price"
	productFlag = "product"
	sellerFlag  = "seller"
	assetFlag   = "asset"
	bundleFlag  = "bundle"
)

func requireFlags(c *cli.Context, names ...string) error {
	for _, name := range names {
		if c.Uint64(name) == 0 {
			return cli.NewExitError(fmt.Sprintf("--%s is required", name), 2)
		}
	}
	return nil
}

func makeSellCMD() cli.Command {
	return cli.Command{
		Name:   "sell",
		Usage:  "Puts a copy of a limited item on sale",
		Action: sell,
		Flags: []cli.Flag{
			cli.Uint64Flag{Name: itemFlag, Usage: "asset id of the limited item"},
			cli.Uint64Flag{Name: uaidFlag, Usage: "user asset id of the copy"},
			cli.Uint64Flag{Name: priceFlag, Usage: "price in robux"},
		},
	}
}

func sell(c *cli.Context) error {
	if err := requireFlags(c, itemFlag, uaidFlag, priceFlag); err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	itemID, uaid, price := c.Uint64(itemFlag), c.Uint64(uaidFlag), c.Uint64(priceFlag)
	if err := client.Economy.PutLimitedOnSale(ctx(c), itemID, uaid, price); err != nil {
		return err
	}
	log.WithFields(log.Fields{"item": itemID, "uaid": uaid, "price": price}).Info("put on sale")
	return output(c, map[string]interface{}{"item": itemID, "uaid": uaid, "price": price, "onSale": true})
}

func makeUnsellCMD() cli.Command {
	return cli.Command{
		Name:   "unsell",
		Usage:  "Takes a copy of a limited item off sale",
		Action: unsell,
		Flags: []cli.Flag{
			cli.Uint64Flag{Name: itemFlag, Usage: "asset id of the limited item"},
			cli.Uint64Flag{Name: uaidFlag, Usage: "user asset id of the copy"},
		},
	}
}

func unsell(c *cli.Context) error {
	if err := requireFlags(c, itemFlag, uaidFlag); err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	itemID, uaid := c.Uint64(itemFlag), c.Uint64(uaidFlag)
	if err := client.Economy.TakeLimitedOffSale(ctx(c), itemID, uaid); err != nil {
		return err
	}
	log.WithFields(log.Fields{"item": itemID, "uaid": uaid}).Info("taken off sale")
	return output(c, map[string]interface{}{"item": itemID, "uaid": uaid, "onSale": false})
}

func makeBuyCMD() cli.Command {
	return cli.Command{
		Name:   "buy",
		Usage:  "Purchases a resale listing",
		Action: buy,
		Flags: []cli.Flag{
			cli.Uint64Flag{Name: productFlag, Usage: "product id of the item (not the asset id)"},
			cli.Uint64Flag{Name: sellerFlag, Usage: "user id of the seller"},
			cli.Uint64Flag{Name: uaidFlag, Usage: "user asset id of the listed copy"},
			cli.Uint64Flag{Name: priceFlag, Usage: "expected price in robux"},
		},
	}
}

func buy(c *cli.Context) error {
	if err := requireFlags(c, productFlag, sellerFlag, uaidFlag, priceFlag); err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	productID, sellerID := c.Uint64(productFlag), c.Uint64(sellerFlag)
	uaid, price := c.Uint64(uaidFlag), c.Uint64(priceFlag)
	err = client.Economy.PurchaseLimited(ctx(c), productID, sellerID, uaid, price)
	if err != nil {
		var purchaseErr *roboat.PurchaseError
		if errors.As(err, &purchaseErr) {
			return cli.NewExitError(purchaseErr.Error(), 3)
		}
		return err
	}
	return output(c, map[string]interface{}{"product": productID, "uaid": uaid, "price": price, "purchased": true})
}

func makeItemsCMD() cli.Command {
	return cli.Command{
		Name:   "items",
		Usage:  "Prints catalog details of assets and bundles",
		Action: items,
		Flags: []cli.Flag{
			cli.Int64SliceFlag{Name: assetFlag, Usage: "asset id (repeatable)"},
			cli.Int64SliceFlag{Name: bundleFlag, Usage: "bundle id (repeatable)"},
		},
	}
}

func items(c *cli.Context) error {
	var args []roboat.ItemArgs
	for _, id := range c.Int64Slice(assetFlag) {
		args = append(args, roboat.ItemArgs{ItemType: roboat.ItemTypeAsset, ID: uint64(id)})
	}
	for _, id := range c.Int64Slice(bundleFlag) {
		args = append(args, roboat.ItemArgs{ItemType: roboat.ItemTypeBundle, ID: uint64(id)})
	}
	if len(args) == 0 {
		return cli.NewExitError("at least one --asset or --bundle is required", 2)
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	details, err := client.Catalog.ItemDetails(ctx(c), args)
	if err != nil {
		return err
	}
	return output(c, details)
}
