package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/model"
)

var (
	_ model.SecurityLayer = (*TLSListener)(nil)
	_ model.SecurityLayer = (*PlainListener)(nil)
)

// NewSecurityLayer selects the listener the HTTP API is served on.
// HTTPS enabled in the config yields a TLSListener for the configured key pair,
// anything else yields a PlainListener.
//
// Parameters:
//   - cfg: HTTP section of the server configuration
//
// Returns the security layer to pass to the server's Start.
func NewSecurityLayer(cfg config.HTTP) model.SecurityLayer {
	if cfg.EnableHTTPS {
		return NewTLSListener(cfg.CertFileName, cfg.PrivateKeyFileName)
	}
	return NewPlainListener()
}

// TLSListener represents a TLS-terminating network listener.
// It serves the API over HTTPS using a certificate loaded from disk.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

// NewTLSListener creates a new TLSListener instance.
// The files are not read until Listen is called.
//
// Parameters:
//   - certFileName: Path to the PEM encoded certificate
//   - privateKeyFileName: Path to the PEM encoded private key
//
// Returns a pointer to the newly created TLSListener instance.
func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen loads the key pair and opens a TLS listener.
// Connections negotiating anything older than TLS 1.2 are refused.
//
// Parameters:
//   - protocol: The network protocol (typically "tcp")
//   - addr: The address to listen on, e.g. ":8443"
//
// Returns a TLS listener or an error if the key pair cannot be loaded or the address is unusable.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	return tls.Listen(protocol, addr, tlsConfig)
}

// PlainListener represents an unencrypted network listener.
// It is the default when HTTPS is disabled, e.g. behind a terminating proxy.
type PlainListener struct{}

// NewPlainListener creates a new PlainListener instance.
//
// Returns a pointer to the newly created PlainListener instance.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen opens an unencrypted listener.
//
// Parameters:
//   - protocol: The network protocol (typically "tcp")
//   - addr: The address to listen on, e.g. ":8080"
//
// Returns a plain network listener or an error if the address is unusable.
func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
