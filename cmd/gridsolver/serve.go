package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/gridsolver/internal/adapters/http"
	"svw.info/gridsolver/internal/infrastructure/storage"
	"svw.info/gridsolver/internal/ports"
	"svw.info/gridsolver/internal/solver"
	"svw.info/gridsolver/internal/usecase"
	"svw.info/gridsolver/internal/validator"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		storeKind string
		dataDir   string
		dbPath    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			var st ports.Storage
			switch storeKind {
			case "fs":
				st = storage.NewFS(dataDir)
			case "sqlite":
				db, err := storage.NewSQLite(dbPath)
				if err != nil {
					return err
				}
				defer db.Close()
				st = db
			default:
				return fmt.Errorf("unknown store %q: want fs or sqlite", storeKind)
			}

			uc := usecase.NewService(solver.NewBacktrackingSolver(), validator.New(), st)
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(slog.Default(), mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			slog.Info("listening", "addr", addr, "store", storeKind)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&storeKind, "store", "fs", "puzzle store: fs|sqlite")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "directory for the fs store")
	cmd.Flags().StringVar(&dbPath, "db", "./puzzles.db", "database file for the sqlite store")
	return cmd
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
