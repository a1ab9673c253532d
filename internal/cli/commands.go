package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/tui"
	"github.com/idilsaglam/tasklist/internal/ui"
	"github.com/idilsaglam/tasklist/internal/view"
	"github.com/idilsaglam/tasklist/internal/web"
)

func newTUICmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal list (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a)
		},
	}
}

func runTUI(cmd *cobra.Command, a *App) error {
	log, closeLog, err := a.openLogger(cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer closeLog()

	h, err := a.newHost(log)
	if err != nil {
		return err
	}
	return withMounted(h, func() error {
		return tui.Run(h, log)
	})
}

func newServeCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the list to a browser",
		Long: strings.TrimSpace(`
Serve the task list over HTTP. The page receives list and count updates
as datastar patches over server-sent events.

Notes:
- One list per process; every open tab shows the same list.
- Nothing is saved when the server stops.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := a.openLogger(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer closeLog()

			h, err := a.newHost(log)
			if err != nil {
				return err
			}
			srv, err := web.NewServer(web.ServerConfig{Addr: strings.TrimSpace(a.Config.Addr)}, h, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withMounted(h, func() error {
				hs := srv.HTTPServer()
				ui.OK(cmd.OutOrStdout(), "serving on http://"+srv.Addr())
				errCh := make(chan error, 1)
				go func() {
					log.Info("serving", "addr", srv.Addr())
					if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						errCh <- err
					}
					close(errCh)
				}()

				select {
				case err := <-errCh:
					return err
				case <-ctx.Done():
				}
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := hs.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("graceful shutdown failed: %w", err)
				}
				log.Info("stopped")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&a.Config.Addr, "addr", a.Config.Addr, "listen address")
	return cmd
}

func newListCmd(a *App) *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the list once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := a.openLogger(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer closeLog()

			h, err := a.newHost(log)
			if err != nil {
				return err
			}
			return withMounted(h, func() error {
				out := cmd.OutOrStdout()
				if asHTML {
					s, err := view.HTMLString(h.List.Current(), view.HTMLOptions{})
					if err != nil {
						return err
					}
					fmt.Fprintln(out, s)
					fmt.Fprintln(out, h.Count.Text())
					return nil
				}
				fmt.Fprintln(out, listPanel(h))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the list as HTML")
	return cmd
}

func listPanel(h *app.Host) string {
	done, pending := h.Items.Stats()
	lines := []string{
		ui.Header(h.Count.Text(), done, pending),
		ui.Current().Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	lines = append(lines, ui.ListLines(h.List.Current(), -1)...)
	lines = append(lines, "", ui.Current().Muted.Render("Tip: run `todo` to edit interactively"))
	return ui.Panel(lines)
}
