package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pmck/eeroctl/api"
	"github.com/pmck/eeroctl/internal/config"
)

var client *api.Client

// networkID is the network commands operate on: the stored one, unless
// -n overrides it.
var networkID string

func die(f string, d ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", d...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [-n <network id>] [-debug] <command>

commands:
  login <email|phone>          log in; prompts for the verification code
  logout                       forget the stored session
  account                      show account and networks
  networks                     list networks
  devices                      list devices
  device <action> <id> [...]   pause, unpause, block, unblock, rename
  profiles                     list profiles
  profile <action> <id> [...]  show, pause, unpause, devices
  eeros                        list nodes
  eero reboot <id>             reboot one node
  guest [on|off|password <pw>] show or change the guest network
  reservations                 list DHCP reservations
  reservation {add,rm} ...     manage DHCP reservations
  forwards                     list port forwarding rules
  forward {add,enable,disable,rm} ...
  reboot                       reboot the whole network
`, os.Args[0])
}

func mustNetwork() string {
	if networkID == "" {
		die("no network selected; log in first or pass -n <network id>")
	}
	return networkID
}

func setupLogging(debug bool, logFile string) {
	zapConfig := zap.NewDevelopmentConfig()
	if !debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	var logger *zap.Logger
	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotator),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				zapConfig.Level,
			),
		)
		logger = zap.New(core)
	} else {
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func main() {
	var (
		network  = flag.String("n", "", "network ID to operate on")
		debug    = flag.Bool("debug", false, "log every API call")
		logFile  = flag.String("log-file", "", "also write logs to this file, rotated")
		credFile = flag.String("c", "", "credentials file to use")
	)
	flag.Usage = usage
	flag.Parse()

	_ = godotenv.Load()

	setupLogging(*debug, *logFile)
	defer func() { _ = zap.L().Sync() }()

	if *credFile != "" {
		config.FileOverride = *credFile
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	server := api.DefaultServer
	if sa := os.Getenv("EERO_API_URL"); sa != "" {
		server = sa
	}

	creds := config.Read()

	client = &api.Client{
		Server: server,
		Token:  creds.Token,
		HTTP:   http.DefaultClient,
	}

	networkID = creds.NetworkID
	if *network != "" {
		networkID = *network
	}

	switch args[0] {
	case "login":
		login(args[1:])
	case "logout":
		logout()
	case "account":
		showAccount()
	case "networks", "nets":
		listNetworks()
	case "devices", "devs":
		listDevices()
	case "device", "dev":
		device(args[1:])
	case "profiles":
		listProfiles()
	case "profile":
		profile(args[1:])
	case "eeros":
		listEeros()
	case "eero":
		eero(args[1:])
	case "guest":
		guest(args[1:])
	case "reservations":
		listReservations()
	case "reservation", "res":
		reservation(args[1:])
	case "forwards":
		listForwards()
	case "forward", "fwd":
		forward(args[1:])
	case "reboot":
		rebootNetwork()
	default:
		usage()
		os.Exit(2)
	}
}
