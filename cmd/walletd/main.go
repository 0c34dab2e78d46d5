package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"supplychain/internal/crypto"
	"supplychain/internal/wallet"
)

const shutdownGrace = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		listen   string
		accounts []string
		reject   bool
	)
	cmd := &cobra.Command{
		Use:           "walletd",
		Short:         "Serve a development wallet over JSON-RPC",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range accounts {
				if _, err := crypto.ParseAddress(a); err != nil {
					return err
				}
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return serve(cmd.Context(), listen, wallet.NewDevWallet(accounts, reject), log)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8546", "listen address")
	cmd.Flags().StringSliceVar(&accounts, "account", nil, "account address to expose (repeatable)")
	cmd.Flags().BoolVar(&reject, "reject", false, "decline every access request")
	return cmd
}

func serve(ctx context.Context, addr string, svc *wallet.DevWallet, log *zap.Logger) error {
	srv := rpc.NewServer()
	if err := srv.RegisterName("eth", svc); err != nil {
		return err
	}
	defer srv.Stop()

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           accessLog(srv, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("walletd listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func accessLog(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}
