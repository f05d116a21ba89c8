package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-invaders/audio"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
	"github.com/lixenwraith/ascii-invaders/game"
	"github.com/lixenwraith/ascii-invaders/systems"
	"golang.org/x/term"
)

const (
	logDir      = "logs"
	logFileName = "ascii-invaders.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)

// ErrNotTerminal is returned when stdout is redirected
var ErrNotTerminal = errors.New("stdout is not a terminal")

var (
	debugFlag         = flag.Bool("debug", false, "Write debug log to logs/"+logFileName)
	muteFlag          = flag.Bool("mute", false, "Start with sound muted (m toggles)")
	audioFlag         = flag.String("audio", "", "Audio output: auto, speaker, pipe, off (overrides "+audio.EnvAudioBackend+")")
	seedFlag          = flag.Uint64("seed", 0, "Enemy fire RNG seed, 0 for random")
	removeHitShotFlag = flag.Bool("remove-hit-shot", false, "Remove the enemy shot that hits the player")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		fmt.Fprintf(os.Stderr, "ascii-invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	audioCfg := audio.LoadAudioConfig()
	if *audioFlag != "" {
		out, err := audio.ParseOutput(*audioFlag)
		if err != nil {
			return err
		}
		audioCfg.Output = out
	}

	cfg := engine.DefaultConfig()
	cfg.Seed = *seedFlag
	cfg.RemoveHitShot = *removeHitShotFlag

	// Effects are synthesized once and shared by every session
	bank := audio.NewBank(audioCfg.SampleRate)
	slog.Debug("effects synthesized", "rate", bank.SampleRate(), "effects", bank)
	player, backend, err := audio.Open(audioCfg, bank)
	if err != nil {
		return fmt.Errorf("%w; run with -audio off to play without sound", err)
	}
	defer player.Close()

	if *muteFlag && !player.IsMuted() {
		player.ToggleMute()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)

	sim := engine.NewSimulation(cfg)
	systems.RegisterAll(sim)

	slog.Info("session started",
		"session", sim.Session().ID,
		"audio", backend,
		"muted", player.IsMuted(),
		"seed", cfg.Seed,
		"remove_hit_shot", cfg.RemoveHitShot,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := game.NewDriver(screen, sim, player, core.NewMonotonicTimeProvider(), slog.Default())

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	err = driver.Run(ctx)
	slog.Info("shutdown", shutdownAttrs(sim.Session(), player)...)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// shutdownAttrs describes the final session and, when available, audio counters
func shutdownAttrs(s *engine.Session, player audio.Player) []any {
	attrs := []any{"session", s.ID, "score", s.Score, "phase", s.Phase.String()}
	if sr, ok := player.(audio.StatsReporter); ok {
		played, dropped := sr.GetStats()
		attrs = append(attrs, "sounds_played", played, "sounds_dropped", dropped)
	}
	return attrs
}

// setupLogging routes slog and the log package to logs/ only in debug mode
// The terminal owns stdout/stderr while playing, so non-debug runs discard everything
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logs directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(logDir, fmt.Sprintf("ascii-invaders-%s.log", stamp))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	// slog.SetDefault redirects the log package, so set log output after it
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	return logFile
}
