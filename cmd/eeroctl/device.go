package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pmck/eeroctl/api"
)

func deviceFlags(d api.Device) string {
	var flags []string
	if !d.Connected {
		flags = append(flags, "offline")
	}
	if d.Paused {
		flags = append(flags, "paused")
	}
	if d.Blocked {
		flags = append(flags, "blocked")
	}
	if d.IsGuest {
		flags = append(flags, "guest")
	}
	if d.IsPrivate {
		flags = append(flags, "private")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ",") + "]"
}

func listDevices() {
	devs, err := client.Devices(context.Background(), mustNetwork())
	if err != nil {
		die("failed to list devices: %v", err)
	}

	for _, d := range devs {
		fmt.Printf("device %s name %q ip %s mac %s%s\n",
			api.DeviceID(d.URL), d.DisplayName(), d.DisplayIP(), d.MAC, deviceFlags(d))
		if d.Profile != nil {
			fmt.Printf("- profile %s name %q\n", api.ProfileID(d.Profile.URL), d.Profile.Name)
		}
	}
}

func device(args []string) {
	if len(args) < 2 {
		die(`usage: %s device {pause,unpause,block,unblock} <device id>
       %s device rename <device id> <nickname>`, os.Args[0], os.Args[0])
	}

	ctx := context.Background()
	nw := mustNetwork()
	id := args[1]

	var err error
	switch args[0] {
	case "pause":
		err = client.PauseDevice(ctx, nw, id, true)
	case "unpause":
		err = client.PauseDevice(ctx, nw, id, false)
	case "block":
		err = client.BlockDevice(ctx, nw, id, true)
	case "unblock":
		err = client.BlockDevice(ctx, nw, id, false)
	case "rename":
		if len(args) < 3 {
			die("usage: %s device rename <device id> <nickname>", os.Args[0])
		}
		err = client.RenameDevice(ctx, nw, id, args[2])
	default:
		die("can pause, unpause, block, unblock and rename devices")
	}

	if err != nil {
		die("couldn't %s device: %v", args[0], err)
	}
}
