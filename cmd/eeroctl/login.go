package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pmck/eeroctl/api"
	"github.com/pmck/eeroctl/internal/config"
)

func login(args []string) {
	if len(args) == 0 {
		die("usage: %s login <email|phone>", os.Args[0])
	}

	ctx := context.Background()

	if client.Token != "" && client.ValidateToken(ctx) {
		fmt.Println("already logged in")
		return
	}

	userToken, err := client.Login(ctx, args[0])
	if err != nil {
		die("failed to start login: %v", err)
	}

	fmt.Printf("verification code sent to %s\ncode: ", args[0])
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		die("no code entered")
	}
	code := strings.TrimSpace(sc.Text())

	if err := client.LoginVerify(ctx, userToken, code); err != nil {
		die("failed to verify login: %v", err)
	}

	acct, err := client.Account(ctx)
	if err != nil {
		die("failed to fetch account: %v", err)
	}

	creds := config.Credentials{Token: client.Token}
	if len(acct.Networks.Data) > 0 {
		creds.NetworkID = api.NetworkID(acct.Networks.Data[0].URL)
	}
	if err := config.Write(creds); err != nil {
		die("failed to save credentials: %v", err)
	}

	fmt.Printf("logged in as %s\n", acct.Name)
}

func logout() {
	if err := config.Logout(); err != nil {
		die("failed to log out: %v", err)
	}
	fmt.Println("logged out")
}
