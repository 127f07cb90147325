package main

import (
	"github.com/urfave/cli"
)

func makeWhoamiCMD() cli.Command {
	return cli.Command{
		Name:   "whoami",
		Usage:  "Prints the authenticated account",
		Action: whoami,
	}
}

func whoami(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	identity, err := client.Users.Authenticated(ctx(c))
	if err != nil {
		return err
	}
	return output(c, identity)
}

func makeRobuxCMD() cli.Command {
	return cli.Command{
		Name:   "robux",
		Usage:  "Prints the robux balance",
		Action: robux,
	}
}

func robux(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	balance, err := client.Economy.Robux(ctx(c))
	if err != nil {
		return err
	}
	return output(c, map[string]uint64{"robux": balance})
}
