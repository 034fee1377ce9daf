package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/franciscofloresen/cloudops-portfolio/internal/lookup"
	"github.com/franciscofloresen/cloudops-portfolio/internal/terminal"
	"github.com/franciscofloresen/cloudops-portfolio/internal/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Anything below error level would draw over the alt screen.
	log := logger.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel))

	changes := terminal.NewSignal()
	sess := terminal.NewSession(terminal.CloudProfile(),
		terminal.WithDelays(terminal.Jitter(cfg.Terminal.JitterMax)),
		terminal.WithTimings(cfg.Terminal.SettleDelay, cfg.Terminal.EnterDelay),
		terminal.WithResolver(lookup.NewIpify(cfg.Lookup.URL, cfg.Lookup.Timeout)),
		terminal.WithLogger(log),
		terminal.WithObserver(changes),
	)

	done := make(chan terminal.Phase, 1)
	go func() {
		defer changes.Close()
		done <- sess.Run(ctx)
	}()

	model := tui.New(sess, changes.C(), cancel, terminalTitle)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	cancel()
	phase := <-done
	logger.Debug("Terminal session finished", zap.Stringer("phase", phase))
	return err
}
