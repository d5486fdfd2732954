// This file is part of Falconpanel.
//
// Falconpanel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Falconpanel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Falconpanel.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/candera/falconpanel/hardware/gamepad"
	"github.com/candera/falconpanel/hardware/pins"
	"github.com/candera/falconpanel/hardware/pins/sdljoy"
	"github.com/candera/falconpanel/layout"
	"github.com/candera/falconpanel/logger"
	"github.com/candera/falconpanel/midiwriter"
	"github.com/candera/falconpanel/modalflag"
	"github.com/candera/falconpanel/sim"
	"github.com/candera/falconpanel/statsview"
	"github.com/candera/falconpanel/version"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// DefaultTick is the default polling period. Quick enough that a switch flip
// never feels laggy, slow enough that switch bounce settles between ticks.
const DefaultTick = 150 * time.Millisecond

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "SIM", "VERSION")

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

	case "SIM":
		err = simulate(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// loadLayout reads and parses the layout file given as the mode's one
// remaining argument.
func loadLayout(md *modalflag.Modes) (*layout.Layout, error) {
	if len(md.RemainingArgs()) != 1 {
		return nil, fmt.Errorf("layout file required for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return layout.Load(f)
}

// hexWriter is an io.Writer that renders everything written to it as one
// hex-encoded line. Useful for eyeballing the report stream.
type hexWriter struct {
	out io.Writer
}

func (wr *hexWriter) Write(b []byte) (int, error) {
	_, err := fmt.Fprintf(wr.out, "%s\n", hex.EncodeToString(b))
	return len(b), err
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	joystick := md.AddInt("joystick", 0, "SDL index of the joystick providing the pins")
	writer := md.AddString("writer", "hex", "report writer: hex, midi, none")
	midiPort := md.AddInt("midiport", 0, "MIDI output port for the midi writer")
	tick := md.AddDuration("tick", DefaultTick, "polling period")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	lay, err := loadLayout(md)
	if err != nil {
		return err
	}

	var out gamepad.Writer
	switch *writer {
	case "hex":
		out = gamepad.NewStreamWriter(&hexWriter{out: os.Stdout})

	case "midi":
		ports := gomidi.GetOutPorts()
		if *midiPort < 0 || *midiPort >= len(ports) {
			return fmt.Errorf("no MIDI output port %d", *midiPort)
		}
		out, err = midiwriter.NewPortWriter(ports[*midiPort])
		if err != nil {
			return err
		}

	case "none":
		out = nil

	default:
		return fmt.Errorf("unknown writer: %s", *writer)
	}

	src, err := sdljoy.NewSource(*joystick)
	if err != nil {
		return err
	}
	defer src.Close()

	pad := gamepad.NewGamepad(out)
	pan, err := lay.Build(pad, src)
	if err != nil {
		return err
	}

	// ctrl-c ends the run cleanly
	done := make(chan struct{})
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		close(done)
	}()

	return pan.Run(*tick, done)
}

func simulate(md *modalflag.Modes) error {
	md.NewMode()

	tick := md.AddDuration("tick", DefaultTick, "polling period")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	lay, err := loadLayout(md)
	if err != nil {
		return err
	}

	bank := pins.NewMemoryBank()
	pad := gamepad.NewGamepad(nil)
	pan, err := lay.Build(pad, bank)
	if err != nil {
		return err
	}

	s, err := sim.NewSimulator(pan, pad, bank)
	if err != nil {
		return err
	}

	return s.Run(*tick)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, revision, _ := version.Version()
	fmt.Printf("%s (%s)\n", vers, revision)
	if statsview.Available() {
		fmt.Printf("statsview available at %s\n", statsview.Address)
	}

	return nil
}
