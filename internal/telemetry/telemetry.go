// Package telemetry runs races without a window and prints what happened.
// It drives a race.Session with a scripted input sequence at a fixed frame
// time and renders the samples and the tuning catalog as text tables.
package telemetry

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/vehicle"
)

// Segment holds one input for a number of frames.
type Segment struct {
	Frames int
	Input  race.InputSnapshot
}

// Script is a sequence of segments played in order.
type Script []Segment

// Frames returns the total length of the script.
func (s Script) Frames() int {
	n := 0
	for _, seg := range s {
		n += seg.Frames
	}
	return n
}

// ParseScript parses a comma separated list of input:frames pairs, e.g.
// "accel:60,accel+left:30,coast:45,brake:20". Inputs are accel, brake, left,
// right and coast, joined with '+'.
func ParseScript(text string) (Script, error) {
	var script Script
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("segment %q: missing frame count", part)
		}
		frames, err := strconv.Atoi(count)
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("segment %q: invalid frame count", part)
		}

		seg := Segment{Frames: frames, Input: race.InputSnapshot{Scheme: race.SchemeKeyboard}}
		for _, key := range strings.Split(keys, "+") {
			switch strings.TrimSpace(key) {
			case "accel":
				seg.Input.Accelerate = true
			case "brake":
				seg.Input.Brake = true
			case "left":
				seg.Input.SteerLeft = true
			case "right":
				seg.Input.SteerRight = true
			case "coast":
			default:
				return nil, fmt.Errorf("segment %q: unknown input %q", part, key)
			}
		}
		script = append(script, seg)
	}
	if len(script) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return script, nil
}

// Sample is the race state after one frame.
type Sample struct {
	Frame   int
	Elapsed float64
	Started bool
	Control vehicle.Control
	State   vehicle.State
}

// Run plays script on session, one Update of dt per frame, and samples every
// n-th frame plus the last one. The session must already be entered.
func Run(session *race.Session, script Script, dt float64, every int) []Sample {
	if every <= 0 {
		every = 1
	}
	total := script.Frames()

	var samples []Sample
	frame := 0
	for _, seg := range script {
		for i := 0; i < seg.Frames; i++ {
			control := session.HandleInput(seg.Input)
			session.Update(dt)
			frame++
			if frame%every == 0 || frame == total {
				samples = append(samples, Sample{
					Frame:   frame,
					Elapsed: session.Elapsed(),
					Started: session.Started(),
					Control: control,
					State:   session.State(),
				})
			}
		}
	}
	return samples
}

// WriteSamples renders samples as a table.
func WriteSamples(w io.Writer, samples []Sample) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Frame", "Time", "Throttle", "Steer", "X", "Y", "Heading", "Speed"})
	for _, s := range samples {
		clock := "-"
		if s.Started {
			clock = fmt.Sprintf("%.2f", s.Elapsed)
		}
		t.AppendRow(table.Row{
			s.Frame,
			clock,
			s.Control.Throttle,
			s.Control.Steer,
			fmt.Sprintf("%.1f", s.State.Position.X),
			fmt.Sprintf("%.1f", s.State.Position.Y),
			fmt.Sprintf("%.1f", s.State.Heading),
			fmt.Sprintf("%.1f", s.State.Speed),
		})
	}
	t.Render()
}

// WriteCatalog renders the tuning catalog as a table in menu order.
func WriteCatalog(w io.Writer, catalog vehicle.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Car", "Name", "Accel", "Brake", "Drag", "Max speed", "Handling"})
	for _, class := range vehicle.CarClasses {
		p, ok := catalog[class]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{
			class.String(),
			class.Label(),
			fmt.Sprintf("%g", p.AccelRate),
			fmt.Sprintf("%g", p.BrakeRate),
			fmt.Sprintf("%g", p.Drag),
			fmt.Sprintf("%g", p.MaxSpeed),
			fmt.Sprintf("%g", p.Handling),
		})
	}
	t.Render()
}
