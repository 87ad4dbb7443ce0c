package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rook-computer/fwdisplay/internal/logging"
	"github.com/rook-computer/fwdisplay/internal/model"
	"github.com/rook-computer/fwdisplay/internal/state"
)

// DefaultFooter is shown under errors that do not carry their own.
const DefaultFooter = "Please contact support."

// App drives the display through the boot sequence and the fatal path. UI
// is the compiled-in hardware model; being a type parameter, calls on it
// are resolved at build time.
type App[F model.UIFeaturesCommon] struct {
	Store  *state.Store
	UI     F
	Logger logging.Logger

	// Halt is called after the fatal screen is shown. It must not return
	// control to normal operation; the default blocks forever.
	Halt func()
}

func New[F model.UIFeaturesCommon](store *state.Store, ui F) *App[F] {
	return &App[F]{Store: store, UI: ui, Logger: logging.Discard{}, Halt: blockForever}
}

func blockForever() { select {} }

// Boot lights the panel, shows the welcome screen and fades it in.
func (app *App[F]) Boot() error {
	app.UI.BacklightOn()
	app.UI.ScreenBootStage2()
	app.UI.Fadein()
	if err := app.Store.SetPhase(state.RUNNING); err != nil {
		return fmt.Errorf("boot: %w", err)
	}
	app.Logger.Infof("app", "boot complete, screen=%+v", app.UI.Screen())
	return nil
}

// Run boots and then runs work until it returns or ctx is done. An error
// from work other than the context's own is fatal.
func (app *App[F]) Run(ctx context.Context, work func(ctx context.Context) error) error {
	defer app.RecoverFatal()
	if err := app.Boot(); err != nil {
		return err
	}
	if work == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	err := work(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		app.Fatal("Error", err.Error(), DefaultFooter)
	}
	return err
}

// Fatal shows the error screen and halts. It ignores cancellation: once
// called, the firmware never resumes.
func (app *App[F]) Fatal(title, msg, footer string) {
	app.Store.SetFatal(state.FatalInfo{Title: title, Message: msg, Footer: footer})
	app.Logger.Errorf("app", "fatal: %s: %s", title, msg)
	app.UI.ScreenFatalError(title, msg, footer)
	halt := app.Halt
	if halt == nil {
		halt = blockForever
	}
	halt()
}

// RecoverFatal turns a panic into the fatal screen. Use it with defer.
func (app *App[F]) RecoverFatal() {
	if r := recover(); r != nil {
		app.Fatal("Internal error", fmt.Sprint(r), DefaultFooter)
	}
}
