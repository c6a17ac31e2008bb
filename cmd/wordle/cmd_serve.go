package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/danielpatrickdp/wordle-solver/internal/metrics"
	"github.com/danielpatrickdp/wordle-solver/internal/rpc"
)

// #region serve

func newServeCmd(opts *rootOptions) *cobra.Command {
	var grpcAddr, metricsAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve suggestions over gRPC and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if grpcAddr == "" {
				grpcAddr = a.cfg.Server.GRPCAddr
			}
			if metricsAddr == "" {
				metricsAddr = a.cfg.Server.MetricsAddr
			}

			strategies, err := a.strategies()
			if err != nil {
				return err
			}

			lis, err := net.Listen("tcp", grpcAddr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", grpcAddr, err)
			}
			srv := grpc.NewServer()
			rpc.RegisterSolverServer(srv, rpc.NewServer(strategies, a.solutions, a.cfg.StrategyID(), a.logger))

			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			httpSrv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				a.logger.Info("grpc listening", "addr", lis.Addr().String())
				return srv.Serve(lis)
			})
			g.Go(func() error {
				a.logger.Info("metrics listening", "addr", metricsAddr)
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				a.logger.Info("shutting down")
				srv.GracefulStop()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "metrics listen address (default from config)")
	return cmd
}

// #endregion serve
