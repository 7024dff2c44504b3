// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
//	-a server listen address in format [host]:[port]
//	-remote remote product service address used by the client
//	-d server database DSN
//	-local-db client SQLite cache path
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-remote-timeout client request timeout (e.g., "10s")
//	-log-bodies log request and response bodies on the client
//	-sync-interval background refresh interval (e.g., "1m")
//	-log-file client log file path
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var remoteAddress string
	var databaseDSN string
	var clientDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var remoteTimeout time.Duration
	var logBodies bool
	var syncInterval time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&remoteAddress, "remote", "", "Remote product service address")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&clientDSN, "local-db", "", "Local SQLite cache path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote service request timeout (e.g., 10s)")
	flag.BoolVar(&logBodies, "log-bodies", false, "Log request and response bodies")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background refresh interval (e.g., 1m)")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:       databaseDSN,
				ClientDSN: clientDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
			LogBodies:      logBodies,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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
