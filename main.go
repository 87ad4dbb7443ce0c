package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/fwdisplay/internal/app"
	"github.com/rook-computer/fwdisplay/internal/display"
	"github.com/rook-computer/fwdisplay/internal/input"
	"github.com/rook-computer/fwdisplay/internal/logging"
	"github.com/rook-computer/fwdisplay/internal/model"
	"github.com/rook-computer/fwdisplay/internal/render"
	"github.com/rook-computer/fwdisplay/internal/state"
)

const (
	envStdioLog  = "FWDISPLAY_STDIO_LOG"
	debugLogPath = "./fwdisplay-debug.log"
)

func main() {
	fmt.Println("fwdisplay starting, model", model.Name)

	defaults, err := display.ConfigFromEnv(display.DefaultDevice)
	if err != nil {
		fmt.Println("display config error:", err)
		os.Exit(2)
	}

	debug := flag.Bool("debug", false, "write component logs to "+debugLogPath)
	stdioLog := flag.String("stdio-log", os.Getenv(envStdioLog), "append stdout and stderr, panics included, to this file; also configurable via "+envStdioLog)
	device := flag.String("fb", defaults.Device, "framebuffer device, empty to render off-screen; also configurable via "+display.EnvDevice)
	oledBus := flag.String("oled", defaults.OLEDBus, "drive an SSD1306 panel on this I2C bus instead of the framebuffer (\"-\" for the first bus); also configurable via "+display.EnvOLEDBus)
	backlightDir := flag.String("backlight", defaults.Backlight, "sysfs backlight directory; also configurable via "+display.EnvBacklight)
	fatal := flag.String("fatal", "", "show the fatal screen for \"title|message|footer\" and halt")
	flag.Parse()

	// Once the console is in graphics mode a panic trace is invisible.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio redirect:", err)
		}
	}

	var logger logging.Logger = logging.Discard{}
	if *debug {
		w, err := logging.OpenFile(debugLogPath)
		if err != nil {
			fmt.Println("debug log:", err)
		} else {
			defer w.Close()
			logger = w
			logger.Infof("main", "debug log at %s", debugLogPath)
		}
	}
	display.Logger = logger
	render.FontLogger = logger

	cfg := defaults
	cfg.Device = *device
	cfg.Backlight = *backlightDir
	cfg.OLEDBus = *oledBus
	if err := display.Open(cfg, model.Screen()); err != nil {
		fmt.Println("display open error:", err)
	}
	defer display.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *debug {
		// F4 leaves the app, including a halted fatal screen.
		input.WatchKey(ctx, logger, input.KeyF4, stop)
	}

	a := app.New(state.NewStore(), model.Current())
	a.Logger = logger

	if *fatal != "" {
		title, msg, footer := splitFatal(*fatal)
		// Halt until signalled so the screen stays up and the console is restored.
		a.Halt = func() { <-ctx.Done() }
		a.Fatal(title, msg, footer)
		return
	}

	if err := a.Run(ctx, nil); err != nil && ctx.Err() == nil {
		fmt.Println("app error:", err)
	}
}

func splitFatal(s string) (title, msg, footer string) {
	parts := strings.SplitN(s, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	if parts[2] == "" {
		parts[2] = app.DefaultFooter
	}
	return parts[0], parts[1], parts[2]
}
