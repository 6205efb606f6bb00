package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a hub listen address in format [host]:[port]
//	-d hub database DSN
//	-local-db tracker SQLite path
//	-hub-address hub base URL as seen from the tracker
//	-device-id stable device identifier
//	-device-secret device secret
//	-sync-interval periodic sync interval (e.g., "5m")
//	-sync-strategy conflict resolution strategy
//	-background-budget background execution window (e.g., "25s")
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var databaseDSN string
	var localDBPath string
	var hubAddress string
	var deviceID string
	var deviceSecret string
	var syncInterval time.Duration
	var syncStrategy string
	var backgroundBudget time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Hub database DSN")
	flag.StringVar(&localDBPath, "local-db", "", "Tracker SQLite path")
	flag.StringVar(&hubAddress, "hub-address", "", "Hub base URL")
	flag.StringVar(&deviceID, "device-id", "", "Device identifier")
	flag.StringVar(&deviceSecret, "device-secret", "", "Device secret")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.StringVar(&syncStrategy, "sync-strategy", "", "Conflict resolution strategy")
	flag.DurationVar(&backgroundBudget, "background-budget", 0, "Background execution window (e.g., 25s)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{Path: localDBPath},
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HubAddress:     hubAddress,
			RequestTimeout: requestTimeout,
		},
		Device: Device{
			ID:     deviceID,
			Secret: deviceSecret,
		},
		Sync: Sync{
			Interval: syncInterval,
			Strategy: syncStrategy,
		},
		Background: Background{
			Budget: backgroundBudget,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
