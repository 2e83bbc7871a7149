package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-ipfs ipfs RPC API address
//	-d keystore database DSN
//	-c/-config json file path with configs
//	-master-key master key sealing remembered passphrases
//	-tmp scratch directory for scoped workspaces
//	-pinning-url pinning service base URL
//	-pinning-key pinning service API key
//	-pinning-secret pinning service secret key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-probe-timeout import search timeout (e.g., "60s")
//	-pin-refresh-interval bulk pin refresh tick (e.g., "5s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("file-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var ipfsAddress string
	var databaseDSN string
	var jsonConfigPath string
	var masterKey string
	var tempDir string
	var pinningURL, pinningKey, pinningSecret string
	var requestTimeout time.Duration
	var probeTimeout time.Duration
	var pinRefreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&ipfsAddress, "ipfs", "", "IPFS RPC API address")
	fs.StringVar(&databaseDSN, "d", "", "Keystore database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterKey, "master-key", "", "Master key for remembered passphrases")
	fs.StringVar(&tempDir, "tmp", "", "Scratch directory")
	fs.StringVar(&pinningURL, "pinning-url", "", "Pinning service base URL")
	fs.StringVar(&pinningKey, "pinning-key", "", "Pinning service API key")
	fs.StringVar(&pinningSecret, "pinning-secret", "", "Pinning service secret key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Import search timeout (e.g., 60s)")
	fs.DurationVar(&pinRefreshInterval, "pin-refresh-interval", 0, "Pin refresh interval (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterKey: masterKey,
			TempDir:   tempDir,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			IPFS: IPFS{APIAddress: ipfsAddress},
			Pinning: Pinning{
				BaseURL:   pinningURL,
				APIKey:    pinningKey,
				SecretKey: pinningSecret,
			},
		},
		Workers: Workers{
			ImportProbeTimeout: probeTimeout,
			PinRefreshInterval: pinRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
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
	if port > 65535 {
		return errors.New("port number must not exceed 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
