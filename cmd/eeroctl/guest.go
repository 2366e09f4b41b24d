package main

import (
	"context"
	"fmt"
	"os"
)

func guest(args []string) {
	ctx := context.Background()
	nw := mustNetwork()

	if len(args) == 0 {
		gn, err := client.GuestNetwork(ctx, nw)
		if err != nil {
			die("failed to fetch guest network: %v", err)
		}

		state := "off"
		if gn.Enabled {
			state = "on"
		}
		fmt.Printf("guest network %q %s\n", gn.Name, state)
		if gn.Password != "" {
			fmt.Printf("password %q\n", gn.Password)
		}
		return
	}

	var err error
	switch args[0] {
	case "on":
		err = client.EnableGuestNetwork(ctx, nw, true)
	case "off":
		err = client.EnableGuestNetwork(ctx, nw, false)
	case "password":
		if len(args) < 2 {
			die("usage: %s guest password <password>", os.Args[0])
		}
		err = client.SetGuestNetworkPassword(ctx, nw, args[1])
	default:
		die("usage: %s guest [on|off|password <password>]", os.Args[0])
	}

	if err != nil {
		die("couldn't update guest network: %v", err)
	}
}
