package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s sync server address used by the client (host:port or URL)
//	-d database DSN
//	-c/-config json file path with configs
//	-namespace settings namespace
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-pairing-poll pairing status poll period
//	-push-debounce push quiescence window
//	-pull-interval pull poll period
//	-push-concurrency parallel per-record pushes
//	-clipboard-poll clipboard sampling period (0 disables)
//	-bcrypt-cost bcrypt cost for device secrets
//	-log-file client log file
func ParseFlags() (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	return parseFlags(fs, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var namespace string
	var requestTimeout time.Duration
	var pairingPoll, pushDebounce, pullInterval, clipboardPoll time.Duration
	var pushConcurrency int
	var bcryptCost int
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Sync server address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&namespace, "namespace", "", "Settings namespace")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pairingPoll, "pairing-poll", 0, "Pairing status poll period")
	fs.DurationVar(&pushDebounce, "push-debounce", 0, "Push quiescence window")
	fs.DurationVar(&pullInterval, "pull-interval", 0, "Pull poll period")
	fs.IntVar(&pushConcurrency, "push-concurrency", 0, "Parallel per-record pushes")
	fs.DurationVar(&clipboardPoll, "clipboard-poll", 0, "Clipboard sampling period")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost for device secrets")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Namespace: namespace,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			BcryptCost:     bcryptCost,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PairingPollInterval:   pairingPoll,
			PushDebounce:          pushDebounce,
			PullInterval:          pullInterval,
			PushConcurrency:       pushConcurrency,
			ClipboardPollInterval: clipboardPoll,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
