// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spacemonkeygo/prng/logger"
	"github.com/spacemonkeygo/prng/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd runs the RESP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve generators over the Redis protocol",
	Long: `Serve generators over the Redis protocol. Every connection owns its own
generator, starting unseeded with the configured variant. Commands:
  PING [msg], QUIT, USE variant, VARIANT, VARIANTS [pattern],
  SEED s, NEXT [count], BOUNDED lower upper, SKIP n, STATE
For example:
  prng serve --listen 127.0.0.1:6380 --variant parkmiller
  redis-cli -p 6380 NEXT 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.Listen(viper.GetString("listen"),
			viper.GetString("variant"))
		if err != nil {
			return err
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			s := <-sig
			logger.Info("signal", s.String(), "shutting down")
			srv.Close()
		}()

		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", "127.0.0.1:6380", "listen address")
	if err := viper.BindPFlag("listen", flags.Lookup("listen")); err != nil {
		panic(err)
	}
}
