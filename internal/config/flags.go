// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port
//	-c/-config config file path (JSON or YAML)
//	-root root directory
//	-env environment name
//	-token-secret token signing secret
//	-token-expire token lifetime (e.g., "24h", "720h")
//	-upload-dir upload directory name below <root>/temp
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var configPath string
	var root string
	var envName string
	var tokenSecret string
	var tokenExpire time.Duration
	var uploadDir string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&root, "root", "", "Root directory")
	fs.StringVar(&envName, "env", "", "Environment name")
	fs.StringVar(&tokenSecret, "token-secret", "", "Token signing secret")
	fs.DurationVar(&tokenExpire, "token-expire", 0, "Token lifetime (e.g., 24h, 720h)")
	fs.StringVar(&uploadDir, "upload-dir", "", "Upload directory name")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port == 0 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			Env:  envName,
			Root: root,
		},
		Server: Server{
			Host: serverAddress.Host,
			Port: port,
		},
		Token: Token{
			Secret:   tokenSecret,
			ExpireIn: tokenExpire,
		},
		Upload: Upload{
			Dir: uploadDir,
		},
		ConfigFile: configPath,
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
// The host part may be empty (all interfaces) or "localhost"; otherwise it
// must be an IP address.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
