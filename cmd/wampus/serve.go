package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wampus-world/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Wampus World SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with its own random board. With
--seed every session gets the same board.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wampus/host_key

Examples:
  wampus serve                           # Listen on :23234 with auto-generated key
  wampus serve --ssh :2222               # Listen on port 2222
  wampus serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvCfg := tui.DefaultSSHServerConfig()
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.Runtime = cfg.RuntimeConfig(flagSeed)
	srvCfg.Glyphs = tui.GlyphsFrom(cfg.Terminal)
	srvCfg.Log = cmd.ErrOrStderr()

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Wampus World SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
