// This file is part of Rawframe.
//
// Rawframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rawframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rawframe.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/rawframe/frameloop"
	"github.com/jetsetilly/rawframe/game"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/modalflag"
	"github.com/jetsetilly/rawframe/performance"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/platform/headless"
	"github.com/jetsetilly/rawframe/platform/sdlgl"
	"github.com/jetsetilly/rawframe/platform/sdlpad"
	"github.com/jetsetilly/rawframe/platform/sdlplay"
	"github.com/jetsetilly/rawframe/platform/termplay"
	"github.com/jetsetilly/rawframe/prefs"
	"github.com/jetsetilly/rawframe/statsview"
	"github.com/jetsetilly/rawframe/version"
)

// the default size of the back buffer
const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// SDL requires that window creation and event handling happen on the main
// thread. the frame loop runs in the main goroutine so locking it to the
// main thread is sufficient
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "GL", "TERM", "HEADLESS", "PERFORMANCE")
	md.AdditionalHelp(fmt.Sprintf("%s version %s", version.ApplicationName, versionString()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "GL":
		err = gl(md)

	case "TERM":
		err = term(md)

	case "HEADLESS":
		err = runHeadless(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func versionString() string {
	v, rev, _ := version.Version()
	return fmt.Sprintf("%s [%s]", v, rev)
}

// flags shared by every mode
type common struct {
	width     *int
	height    *int
	fpsCap    *bool
	fps       *int
	cancel    *string
	log       *bool
	drift     *bool
	memviz    *string
	statsview *bool
	prefs     *string
	savePrefs *bool
}

func addCommon(md *modalflag.Modes) *common {
	c := &common{
		width:     md.AddInt("width", defaultWidth, "width of back buffer"),
		height:    md.AddInt("height", defaultHeight, "height of back buffer"),
		fpsCap:    md.AddBool("fpscap", true, "cap frame rate"),
		fps:       md.AddInt("fps", 60, "frame rate if fpscap is set"),
		cancel:    md.AddString("cancel", "", "controller button that stops the loop: A, B, X, Y, LB, RB"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		drift:     md.AddBool("drift", true, "gradient drifts horizontally"),
		memviz:    md.AddString("memviz", "", "write memviz graph of final input to file"),
		prefs:     md.AddString("prefs", "", "preferences for this session. key::value pairs separated by ;"),
		savePrefs: md.AddBool("saveprefs", false, "save preferences after applying command line"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, "run stats server")
	}
	return c
}

// setup applies the common flags. it should be called after md.Parse()
func (c *common) setup(md *modalflag.Modes) (*frameloop.Preferences, error) {
	if *c.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(os.Stdout, "")
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	pref, err := frameloop.NewPreferences()
	if err != nil {
		return nil, err
	}

	if *c.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}

	// command line flags override preferences but only if they have been
	// specified
	md.Visit(func(flag string) {
		var err error
		switch flag {
		case "fpscap":
			err = pref.FPSCap.Set(*c.fpsCap)
		case "fps":
			err = pref.FPS.Set(*c.fps)
		case "cancel":
			err = pref.Cancel.Set(*c.cancel)
		}
		if err != nil {
			logger.Logf(logger.Allow, "prefs", "-%s: %v", flag, err)
		}
	})

	if *c.savePrefs {
		if err := pref.Save(); err != nil {
			return nil, err
		}
	}

	return pref, nil
}

// bufferSize checks that the width and height are usable as a buffer size
func bufferSize(width int, height int) (int32, int32, error) {
	if width <= 0 || width > math.MaxInt32 || height <= 0 || height > math.MaxInt32 {
		return 0, 0, fmt.Errorf("illegal buffer size (%dx%d)", width, height)
	}
	return int32(width), int32(height), nil
}

// size returns the buffer size given by the -width and -height flags
func (c *common) size() (int32, int32, error) {
	return bufferSize(*c.width, *c.height)
}

// run the loop to completion and write the memviz graph if requested
func (c *common) run(l *frameloop.Loop) error {
	err := l.Run()
	if err != nil {
		return err
	}

	if *c.memviz != "" {
		f, err := os.Create(*c.memviz)
		if err != nil {
			return err
		}
		defer f.Close()

		inp := l.Input()
		memviz.Map(f, &inp)
	}

	return nil
}

// openPads returns nil if the controller subsystem is not available. the
// frame loop continues with every controller disconnected
func openPads() *sdlpad.Poller {
	pads, err := sdlpad.NewPoller()
	if err != nil {
		logger.Log(logger.Allow, "rawframe", err)
		return nil
	}
	return pads
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	scale := md.AddFloat64("scale", 1.0, "window scale")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := c.setup(md)
	if err != nil {
		return err
	}

	width, height, err := c.size()
	if err != nil {
		return err
	}

	buf, err := pixels.NewBuffer(width, height)
	if err != nil {
		return err
	}

	plt, err := sdlplay.NewPlatform(version.Title(), buf.Width(), buf.Height(), float32(*scale))
	if err != nil {
		return err
	}
	defer plt.Destroy()

	var poller input.Poller
	if pads := openPads(); pads != nil {
		defer pads.Destroy()
		plt.SetPoller(pads)
		poller = pads
	}

	opts, err := pref.Options()
	if err != nil {
		return err
	}

	l, err := frameloop.NewLoop(plt, poller, &game.Gradient{Drift: *c.drift}, buf, opts...)
	if err != nil {
		return err
	}

	return c.run(l)
}

func gl(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	scale := md.AddFloat64("scale", 1.0, "window scale")
	overlay := md.AddBool("overlay", true, "show frame statistics overlay")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := c.setup(md)
	if err != nil {
		return err
	}

	width, height, err := c.size()
	if err != nil {
		return err
	}

	buf, err := pixels.NewBuffer(width, height)
	if err != nil {
		return err
	}

	plt, err := sdlgl.NewPlatform(version.Title(), buf.Width(), buf.Height(), float32(*scale), *overlay)
	if err != nil {
		return err
	}
	defer plt.Destroy()

	var poller input.Poller
	if pads := openPads(); pads != nil {
		defer pads.Destroy()
		plt.SetPoller(pads)
		poller = pads
	}

	opts, err := pref.Options()
	if err != nil {
		return err
	}
	opts = append(opts, frameloop.WithReporter(plt.Observe))

	l, err := frameloop.NewLoop(plt, poller, &game.Gradient{Drift: *c.drift}, buf, opts...)
	if err != nil {
		return err
	}

	return c.run(l)
}

func term(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := c.setup(md)
	if err != nil {
		return err
	}

	plt, err := termplay.NewPlatform()
	if err != nil {
		return err
	}
	defer plt.Destroy()

	// the back buffer is the size of the terminal unless a size has been
	// specified on the command line
	width, height := plt.Extent()
	w, h, err := c.size()
	if err != nil {
		return err
	}
	md.Visit(func(flag string) {
		switch flag {
		case "width":
			width = w
		case "height":
			height = h
		}
	})

	buf, err := pixels.NewBuffer(width, height)
	if err != nil {
		return err
	}

	opts, err := pref.Options()
	if err != nil {
		return err
	}
	opts = append(opts, frameloop.WithReporter(plt.Observe))

	l, err := frameloop.NewLoop(plt, plt, &game.Gradient{Drift: *c.drift}, buf, opts...)
	if err != nil {
		return err
	}

	return c.run(l)
}

// interruptible stops the frame loop on an interrupt signal. the SDL and
// terminal platforms handle ctrl-c themselves
type interruptible struct {
	frameloop.Platform
	intChan chan os.Signal
}

func (plt *interruptible) Service() bool {
	select {
	case <-plt.intChan:
		return true
	default:
	}
	return plt.Platform.Service()
}

func runHeadless(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	frames := md.AddInt("frames", 0, "number of frames to run for. zero for no limit")
	duration := md.AddDuration("duration", 0, "length of time to run for. zero for no limit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := c.setup(md)
	if err != nil {
		return err
	}

	width, height, err := c.size()
	if err != nil {
		return err
	}

	buf, err := pixels.NewBuffer(width, height)
	if err != nil {
		return err
	}

	plt := headless.NewPlatform(buf.Width(), buf.Height())
	plt.SetFrameLimit(*frames)
	if *duration > 0 {
		plt.StopAfter(*duration)
	}

	intr := &interruptible{
		Platform: plt,
		intChan:  make(chan os.Signal, 1),
	}
	signal.Notify(intr.intChan, os.Interrupt)
	defer signal.Stop(intr.intChan)

	opts, err := pref.Options()
	if err != nil {
		return err
	}

	l, err := frameloop.NewLoop(intr, plt, &game.Gradient{Drift: *c.drift}, buf, opts...)
	if err != nil {
		return err
	}

	err = c.run(l)
	if err != nil {
		return err
	}

	fmt.Println(plt)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration (after a two second lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL, NONE (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := c.setup(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	width, height, err := c.size()
	if err != nil {
		return err
	}

	target := pref.FPS.Get().(int)
	fps := 0
	if pref.FPSCap.Get().(bool) {
		fps = target
	}

	return performance.Check(os.Stdout, prf, &game.Gradient{Drift: *c.drift},
		width, height, fps, target, *duration)
}
