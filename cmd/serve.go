package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/muni-cli/internal/fees"
	"github.com/sells-group/muni-cli/internal/model"
	"github.com/sells-group/muni-cli/internal/standardize"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for resolution, standardization, and fee extraction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		r := chi.NewRouter()
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/resolve", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Value string `json:"value"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Value == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "value is required"})
				return
			}
			canonical, ok := e.Registry.ResolveName(body.Value)
			if !ok {
				resp := map[string]string{"error": "no match"}
				if hint := standardize.UnresolvedHint(body.Value); hint != "" {
					resp["hint"] = hint
				}
				writeJSON(w, http.StatusNotFound, resp)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"canonical": canonical})
		})

		r.Post("/standardize", func(w http.ResponseWriter, req *http.Request) {
			var raw model.RawFields
			if err := json.NewDecoder(req.Body).Decode(&raw); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			std, ok := standardize.New(e.Registry).Standardize(raw)
			if !ok {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "lead managers are required"})
				return
			}
			writeJSON(w, http.StatusOK, std)
		})

		r.Post("/fees", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Pages  []string `json:"pages"`
				Policy string   `json:"policy"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || len(body.Pages) == 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pages are required"})
				return
			}
			policy := body.Policy
			if policy == "" {
				policy = cfg.Fees.Policy
			}
			result, found := fees.NewExtractor(fees.Policy(policy)).Extract(body.Pages)
			if !found {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "no fee amount found"})
				return
			}
			writeJSON(w, http.StatusOK, result)
		})

		r.Get("/deals/{id}", func(w http.ResponseWriter, req *http.Request) {
			deal, err := e.Store.GetDeal(req.Context(), chi.URLParam(req, "id"))
			if err != nil {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "deal not found"})
				return
			}
			writeJSON(w, http.StatusOK, deal)
		})

		r.Post("/process", func(w http.ResponseWriter, _ *http.Request) {
			// Batch runs detached; progress lands in the logs.
			go func() {
				summary, runErr := e.Pipeline.Run(ctx)
				if runErr != nil {
					zap.L().Error("serve: batch run failed", zap.Error(runErr))
					return
				}
				zap.L().Info("serve: batch run complete",
					zap.Int("total", summary.Total),
					zap.Int("succeeded", summary.Succeeded),
					zap.Int("failed", summary.Failed),
				)
			}()
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
