package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/pmck/eeroctl/api"
)

func listProfiles() {
	profiles, err := client.Profiles(context.Background(), mustNetwork())
	if err != nil {
		die("failed to list profiles: %v", err)
	}

	for _, p := range profiles {
		state := ""
		if p.Paused {
			state = " [paused]"
		}
		fmt.Printf("profile %s name %q%s\n", api.ProfileID(p.URL), p.Name, state)
	}
}

// showProfile renders one profile against the full device list so
// non-members show up too. The two reads are independent; they run
// concurrently and we wait for both.
func showProfile(id string) {
	nw := mustNetwork()

	var (
		details api.ProfileDetails
		devs    []api.Device
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		details, err = client.ProfileDetails(ctx, nw, id)
		return err
	})
	g.Go(func() error {
		var err error
		devs, err = client.Devices(ctx, nw)
		return err
	})
	if err := g.Wait(); err != nil {
		die("failed to fetch profile: %v", err)
	}

	member := make(map[string]bool, len(details.Devices))
	for _, d := range details.Devices {
		member[d.URL] = true
	}

	state := ""
	if details.Paused {
		state = " [paused]"
	}
	fmt.Printf("profile %s name %q%s\n", api.ProfileID(details.URL), details.Name, state)

	for _, d := range devs {
		mark := " "
		if member[d.URL] {
			mark = "*"
		}
		fmt.Printf("%s device %s name %q mac %s\n",
			mark, api.DeviceID(d.URL), d.DisplayName(), d.MAC)
	}
}

func profile(args []string) {
	if len(args) < 2 {
		die(`usage: %s profile {show,pause,unpause} <profile id>
       %s profile devices <profile id> <device url>...`, os.Args[0], os.Args[0])
	}

	ctx := context.Background()
	id := args[1]

	var err error
	switch args[0] {
	case "show":
		showProfile(id)
		return
	case "pause":
		err = client.PauseProfile(ctx, mustNetwork(), id, true)
	case "unpause":
		err = client.PauseProfile(ctx, mustNetwork(), id, false)
	case "devices":
		err = client.SetProfileDevices(ctx, mustNetwork(), id, args[2:])
	default:
		die("can show, pause, unpause and set devices on profiles")
	}

	if err != nil {
		die("couldn't %s profile: %v", args[0], err)
	}
}
