package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "github.com/wqueree/sudoku/internal/adapters/http"
	"github.com/wqueree/sudoku/internal/hint"
	"github.com/wqueree/sudoku/internal/infrastructure/storage"
	"github.com/wqueree/sudoku/internal/usecase"
	"github.com/wqueree/sudoku/internal/validator"
)

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
func requestLogger(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func serveCmd() *cobra.Command {
	var addr string
	var persist string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solving API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSolver()
			if err != nil {
				return err
			}
			uc := usecase.NewService(s, validator.New(), hint.NewSingles(), storage.NewFS(persist))
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(log, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.WithFields(logrus.Fields{"addr": addr, "persist": persist, "solver": solverKind}).Info("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data/puzzles", "save directory")
	return cmd
}
