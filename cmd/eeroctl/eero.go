package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pmck/eeroctl/api"
)

func listEeros() {
	eeros, err := client.Eeros(context.Background(), mustNetwork())
	if err != nil {
		die("failed to list eeros: %v", err)
	}

	for _, e := range eeros {
		role := "node"
		if e.Gateway {
			role = "gateway"
		}
		link := "wireless"
		if e.Wired {
			link = "wired"
		}
		fmt.Printf("eero %s location %q model %s %s %s state %s\n",
			api.EeroID(e.URL), e.Location, e.Model, role, link, e.State)
		fmt.Printf("- ip %s os %s bars %d/5 clients %d heartbeat %v\n",
			e.IP, e.OSVersion, e.Bars, e.ConnectedClients, e.HeartbeatOK)
	}
}

func eero(args []string) {
	if len(args) < 2 || args[0] != "reboot" {
		die("usage: %s eero reboot <eero id>", os.Args[0])
	}

	if err := client.RebootEero(context.Background(), args[1]); err != nil {
		die("couldn't reboot eero: %v", err)
	}
	fmt.Println("rebooting")
}

func rebootNetwork() {
	if err := client.RebootNetwork(context.Background(), mustNetwork()); err != nil {
		die("couldn't reboot network: %v", err)
	}
	fmt.Println("rebooting network")
}
