package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pmck/eeroctl/api"
)

func listReservations() {
	res, err := client.Reservations(context.Background(), mustNetwork())
	if err != nil {
		die("failed to list reservations: %v", err)
	}

	for _, r := range res {
		fmt.Printf("reservation %s ip %s mac %s %q\n",
			api.ReservationID(r.URL), r.IP, r.MAC, r.Description)
	}
}

func reservation(args []string) {
	if len(args) == 0 {
		die(`usage: %s reservation add <ip> <mac> <description>
       %s reservation rm <reservation id>`, os.Args[0], os.Args[0])
	}

	ctx := context.Background()
	nw := mustNetwork()

	var err error
	switch args[0] {
	case "add":
		if len(args) < 4 {
			die("usage: %s reservation add <ip> <mac> <description>", os.Args[0])
		}
		err = client.CreateReservation(ctx, nw, args[1], args[2], args[3])
	case "rm", "del":
		if len(args) < 2 {
			die("usage: %s reservation rm <reservation id>", os.Args[0])
		}
		err = client.DeleteReservation(ctx, nw, args[1])
	default:
		die("can add and rm reservations")
	}

	if err != nil {
		die("couldn't %s reservation: %v", args[0], err)
	}
}
