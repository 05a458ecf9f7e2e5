package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/musclebrain/internal/httpapi"
	"github.com/vovakirdan/musclebrain/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and the leaderboard API",
	Long: `Start an SSH server that lets players connect and train, plus an HTTP
server with the JSON leaderboard API.

Each SSH connection gets its own lobby. Players are identified by their
public key, or by user name when they connect without one. All players
share the same leaderboard.

Host key handling:
  - If --host-key or config host_key_path is set, uses that key file
  - Otherwise, auto-generates a key at ~/.musclebrain/host_key

Addresses default to config ssh_addr (:23234) and http_addr (:8080).
Pass an empty address to disable a server.

Examples:
  musclebrain serve                              # SSH on :23234, HTTP on :8080
  musclebrain serve --ssh :2222 --http ""        # SSH only
  musclebrain serve --redis redis://localhost:6379/0

Players can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default :23234 or config ssh_addr)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (default :8080 or config http_addr)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default config host_key_path, else auto-generated)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	a := setup(logToStderr)
	defer a.close()

	app := a.cfg.App
	if cmd.Flags().Changed("ssh") {
		app.SSHAddr = flagSSHAddr
	}
	if cmd.Flags().Changed("http") {
		app.HTTPAddr = flagHTTPAddr
	}
	if flagHostKey != "" {
		app.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		app.IdleMinutes = flagIdleTimeout
	}
	if app.SSHAddr == "" && app.HTTPAddr == "" {
		fail("nothing to serve: both --ssh and --http are empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := a.services(ctx)

	// The first server to fail stops the other one
	g, ctx := errgroup.WithContext(ctx)

	if app.SSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = app.SSHAddr
		sshCfg.HostKeyPath = app.HostKeyPath
		sshCfg.TickRate = app.TickRate
		if app.IdleMinutes > 0 {
			sshCfg.IdleTimeout = time.Duration(app.IdleMinutes) * time.Minute
		}

		server, err := tui.NewSSHServer(sshCfg, svc)
		if err != nil {
			fail("creating SSH server: %v", err)
		}
		fmt.Printf("Connect with: ssh localhost -p %s\n", port(sshCfg.Address))
		g.Go(func() error { return server.ListenAndServe(ctx) })
	}

	if app.HTTPAddr != "" {
		if svc.Store == nil {
			fail("the HTTP API needs the scores database")
		}
		var ranking httpapi.Ranking
		if a.board != nil {
			ranking = a.board
		}
		api := httpapi.NewServer(svc.Store, ranking, a.logger)
		g.Go(func() error { return api.ListenAndServe(ctx, app.HTTPAddr) })
	}

	fmt.Println("Press Ctrl+C to stop")
	if err := g.Wait(); err != nil {
		a.close()
		fail("server: %v", err)
	}
}

// port extracts the port of a listen address for the connect hint.
func port(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
