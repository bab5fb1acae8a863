package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/domhost/pkg/config"
	"github.com/go-drift/domhost/pkg/dom"
	"github.com/go-drift/domhost/pkg/log"
	"github.com/go-drift/domhost/pkg/media"
	"github.com/go-drift/domhost/pkg/metrics"
	"github.com/go-drift/domhost/pkg/platform"
	"github.com/samber/lo"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Feed media events to a player and print its states",
		Long: `Drive a headless media player with a sequence of platform events and
print every playback state the player emits.

Events are the media element's callbacks: play, playing, pause, ended,
error, loadeddata and timeupdate. A timeupdate takes the new playback
position in seconds as timeupdate@SECONDS.

Flags:
  --src URL        Load URL before the first event
  --end SECONDS    Pause playback once the position reaches SECONDS

Example:
  domhost trace --end 2 loadeddata playing timeupdate@1 timeupdate@2.5`,
		Usage: "domhost trace [--src URL] [--end SECONDS] event[@SECONDS]...",
		Run:   runTrace,
	})
}

type traceOptions struct {
	src    string
	end    time.Duration
	hasEnd bool
	steps  []traceStep
}

type traceStep struct {
	event    platform.MediaEvent
	position time.Duration
}

func runTrace(args []string) error {
	opts, err := parseTraceArgs(args)
	if err != nil {
		return err
	}
	cfg, reg, m, err := setup()
	if err != nil {
		return err
	}
	if err := trace(cfg, m, opts); err != nil {
		return err
	}
	return printMetrics(reg)
}

func parseTraceArgs(args []string) (traceOptions, error) {
	var opts traceOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--src" || arg == "--end":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			if err := opts.setFlag(arg, args[i+1]); err != nil {
				return opts, err
			}
			i++
		case strings.HasPrefix(arg, "--src=") || strings.HasPrefix(arg, "--end="):
			name, value, _ := strings.Cut(arg, "=")
			if err := opts.setFlag(name, value); err != nil {
				return opts, err
			}
		default:
			step, err := parseTraceStep(arg)
			if err != nil {
				return opts, err
			}
			opts.steps = append(opts.steps, step)
		}
	}
	if len(opts.steps) == 0 {
		return opts, fmt.Errorf("at least one event is required\n\nUsage: domhost trace [--src URL] [--end SECONDS] event[@SECONDS]...")
	}
	return opts, nil
}

func (o *traceOptions) setFlag(name, value string) error {
	switch name {
	case "--src":
		o.src = value
	case "--end":
		end, err := parseSeconds(value)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		o.end, o.hasEnd = end, true
	}
	return nil
}

func parseTraceStep(arg string) (traceStep, error) {
	name, at, hasAt := strings.Cut(arg, "@")
	event := platform.MediaEvent(name)
	if !lo.Contains(platform.MediaEvents(), event) {
		return traceStep{}, fmt.Errorf("unknown media event %q", name)
	}
	if !hasAt {
		return traceStep{event: event}, nil
	}
	if event != platform.EventTimeUpdate {
		return traceStep{}, fmt.Errorf("only timeupdate takes a position (got %q)", arg)
	}
	pos, err := parseSeconds(at)
	if err != nil {
		return traceStep{}, fmt.Errorf("%s: %w", arg, err)
	}
	return traceStep{event: event, position: pos}, nil
}

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid number of seconds %q", s)
	}
	return time.Duration(f * float64(time.Second)), nil
}

// trace runs the steps against a headless player. Events are delivered on
// the calling goroutine, which acts as the UI thread.
func trace(cfg *config.Resolved, m *metrics.Metrics, opts traceOptions) error {
	platform.RegisterDispatch(func(cb func()) { cb() })
	defer platform.RegisterDispatch(nil)

	doc := dom.NewHeadlessDocument()
	el := platform.NewHeadlessMediaElement(doc)
	var emitted []media.PlaybackState
	player := media.NewPlayer(el,
		media.WithLogger(log.WithComponent("media")),
		media.WithMetrics(m),
		media.WithListener(func(s media.PlaybackState) { emitted = append(emitted, s) }),
	)
	defer player.Destroy()

	if err := player.Configure(doc.Body(), cfg.VideoFit); err != nil {
		return err
	}
	if err := player.SetVolume(cfg.Volume); err != nil {
		return err
	}
	if cfg.Muted {
		player.Mute()
	}
	if opts.hasEnd {
		player.SetEndTimeInSeconds(opts.end.Seconds())
	}
	if opts.src != "" {
		if err := player.Load("trace", opts.src); err != nil {
			return err
		}
	}

	for _, step := range opts.steps {
		emitted = emitted[:0]
		label := string(step.event)
		if step.event == platform.EventTimeUpdate {
			label = fmt.Sprintf("%s@%gs", step.event, step.position.Seconds())
			el.Advance(step.position)
		} else if step.event == platform.EventError {
			el.Fail(&platform.MediaError{Code: platform.ErrCodeSourceError, Message: "trace"})
		} else {
			el.Emit(step.event)
		}

		if len(emitted) == 0 {
			fmt.Fprintf(stdout, "%-20s (no change, %s)\n", label, player.MediaState())
			continue
		}
		for _, s := range emitted {
			fmt.Fprintf(stdout, "%-20s -> %s\n", label, s)
		}
	}
	return nil
}
