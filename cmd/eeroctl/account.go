package main

import (
	"context"
	"fmt"

	"github.com/pmck/eeroctl/api"
)

func showAccount() {
	acct, err := client.Account(context.Background())
	if err != nil {
		die("failed to fetch account: %v", err)
	}

	fmt.Printf("account %q\n", acct.Name)
	if acct.Email.Value != "" {
		fmt.Printf("email %s verified %v\n", acct.Email.Value, acct.Email.Verified)
	}
	if acct.Phone.Value != "" {
		fmt.Printf("phone %s verified %v\n", acct.Phone.Value, acct.Phone.Verified)
	}
	if acct.PremiumStatus != "" {
		fmt.Printf("premium %s\n", acct.PremiumStatus)
	}

	for _, nw := range acct.Networks.Data {
		fmt.Printf("- network id %s name %q created %s\n",
			api.NetworkID(nw.URL), nw.Name, nw.Created)
	}
}

func listNetworks() {
	acct, err := client.Account(context.Background())
	if err != nil {
		die("failed to list networks: %v", err)
	}

	for _, nw := range acct.Networks.Data {
		sel := " "
		if api.NetworkID(nw.URL) == networkID {
			sel = "*"
		}
		fmt.Printf("%s network id %s name %q\n", sel, api.NetworkID(nw.URL), nw.Name)
	}
}
