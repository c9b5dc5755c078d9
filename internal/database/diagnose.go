package database

import (
	"context"
	"errors"
	"net"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	DiagnosisRefused         = "connection refused: store server not reachable, check that the cluster is running"
	DiagnosisAuth            = "authentication failed: check username and password in the connection string"
	DiagnosisDNS             = "DNS resolution failed: check the cluster host in the connection string"
	DiagnosisServerSelection = "server selection timeout: check network connectivity and the IP allow list"
	DiagnosisNetwork         = "network error: check connectivity and firewall settings"
	DiagnosisUnknown         = "unknown"
)

// Diagnose maps a connection failure to a hint for the operator.
func Diagnose(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	var dnsErr *net.DNSError

	switch {
	case strings.Contains(msg, "connection refused"):
		return DiagnosisRefused
	case strings.Contains(msg, "Authentication failed"), strings.Contains(msg, "auth error"):
		return DiagnosisAuth
	case errors.As(err, &dnsErr), strings.Contains(msg, "no such host"):
		return DiagnosisDNS
	case strings.Contains(msg, "server selection"), errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return DiagnosisServerSelection
	case mongo.IsNetworkError(err):
		return DiagnosisNetwork
	}

	return DiagnosisUnknown
}
