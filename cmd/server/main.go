package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "embed"

	"golang.org/x/sync/errgroup"

	"nlp-qa/internal/app"
	"nlp-qa/internal/httputil"
	"nlp-qa/internal/normalize"
	"nlp-qa/internal/qa"
)

//go:embed index.html
var indexPage []byte

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

type askResponse struct {
	Question      string          `json:"question"`
	Answer        string          `json:"answer"`
	Preprocessing normalize.Trace `json:"preprocessing"`
	Status        string          `json:"status"`
}

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Get("/", indexHandler())
	r.Post("/api/ask", askHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr, "debug", deps.Config.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		deps.Log.Error("server error", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("server stopped")
}

func indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexPage)
	}
}

func askHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid request body", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.Fail(deps.Log, w, "Missing 'question' field in request body", err, http.StatusBadRequest)
			return
		}

		res := deps.QA.Answer(r.Context(), req.Question)
		if !res.OK() {
			httputil.WriteError(w, statusFor(res.Err), res.Message)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, askResponse{
			Question:      res.Question,
			Answer:        res.Answer,
			Preprocessing: res.Trace,
			Status:        "success",
		})
	}
}

// statusFor maps request outcomes onto the HTTP contract: 400 for caller
// mistakes, 503 while the gateway is unconfigured, 500 for provider and
// transport failures.
func statusFor(kind qa.ErrorKind) int {
	switch kind {
	case qa.ErrValidation:
		return http.StatusBadRequest
	case qa.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
