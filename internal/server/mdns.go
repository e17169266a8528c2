package server

import (
	"fmt"
	"log/slog"

	"github.com/grandcat/zeroconf"

	"artcast/internal/logging"
)

// mdnsService is the service type advertised for terminal clients that
// discover animation servers on the local network.
const mdnsService = "_artcast._tcp"

// Announce registers the server with mDNS so local clients can discover it.
// The returned shutdown function deregisters the service.
func Announce(instance string, port int, logger *slog.Logger) (func(), error) {
	if instance == "" {
		instance = "artcast"
	}
	srv, err := zeroconf.Register(instance, mdnsService, "local.", port, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("register mdns service: %w", err)
	}
	logging.NewComponentLogger(logger, "mdns").Info("service announced",
		logging.String("instance", instance),
		logging.String("service", mdnsService),
		logging.Int("port", port))
	return srv.Shutdown, nil
}
