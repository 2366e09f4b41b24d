package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cast"

	"github.com/pmck/eeroctl/api"
)

func listForwards() {
	fwds, err := client.PortForwards(context.Background(), mustNetwork())
	if err != nil {
		die("failed to list port forwards: %v", err)
	}

	for _, f := range fwds {
		state := ""
		if !f.Enabled {
			state = " [disabled]"
		}
		fmt.Printf("forward %s %s %d -> %s:%d%s\n",
			api.ForwardID(f.URL), f.Protocol, f.GatewayPort, f.IP, f.ClientPort, state)
		if f.Description != "" {
			fmt.Printf("- %s\n", f.Description)
		}
	}
}

func forwardAdd(args []string) {
	if len(args) < 4 {
		die("usage: %s forward add <ip> <gateway port> <client port> <protocol> [description]", os.Args[0])
	}

	gatewayPort, err := cast.ToIntE(args[1])
	if err != nil {
		die("supply a valid numeric gateway port")
	}
	clientPort, err := cast.ToIntE(args[2])
	if err != nil {
		die("supply a valid numeric client port")
	}

	description := ""
	if len(args) > 4 {
		description = args[4]
	}

	err = client.CreatePortForward(context.Background(), mustNetwork(),
		args[0], gatewayPort, clientPort, args[3], description)
	if err != nil {
		die("couldn't add port forward: %v", err)
	}
}

func forward(args []string) {
	if len(args) == 0 {
		die(`usage: %s forward add <ip> <gateway port> <client port> <protocol> [description]
       %s forward {enable,disable,rm} <forward id>`, os.Args[0], os.Args[0])
	}

	ctx := context.Background()

	var err error
	switch args[0] {
	case "add":
		forwardAdd(args[1:])
		return
	case "enable":
		if len(args) < 2 {
			die("usage: %s forward enable <forward id>", os.Args[0])
		}
		err = client.UpdatePortForward(ctx, mustNetwork(), args[1], true)
	case "disable":
		if len(args) < 2 {
			die("usage: %s forward disable <forward id>", os.Args[0])
		}
		err = client.UpdatePortForward(ctx, mustNetwork(), args[1], false)
	case "rm", "del":
		if len(args) < 2 {
			die("usage: %s forward rm <forward id>", os.Args[0])
		}
		err = client.DeletePortForward(ctx, mustNetwork(), args[1])
	default:
		die("can add, enable, disable and rm port forwards")
	}

	if err != nil {
		die("couldn't %s port forward: %v", args[0], err)
	}
}
