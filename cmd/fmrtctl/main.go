// Command fmrtctl is a line-oriented demo harness for the FMRT engine: it
// reads newline-delimited JSON events from stdin, drives a single
// bridge.Session with each, and writes the resulting envelope as
// newline-delimited JSON to stdout.
//
// Input lines look like:
//
//	{"type":"update","dt":1.0,"stimulus":[1,-2,3.5,0]}
//
// type is one of "update", "gap", "heartbeat", "reset" (stimulus is
// ignored for the latter three). A malformed line is logged and skipped;
// it does not stop the session.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/MaryanBog/fmrt/bridge"
	"github.com/MaryanBog/fmrt/core"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

// inputLine is the newline-delimited JSON shape fmrtctl reads on stdin.
type inputLine struct {
	Type     string     `json:"type"`
	Dt       float64    `json:"dt"`
	Stimulus [4]float64 `json:"stimulus"`
}

// outputLine is the newline-delimited JSON shape fmrtctl writes to stdout.
type outputLine struct {
	Status       string  `json:"status"`
	Kappa        float64 `json:"kappa"`
	Phi          float64 `json:"phi"`
	M            float64 `json:"m"`
	CurvatureR   float64 `json:"curvature_r"`
	DetG         float64 `json:"det_g"`
	Tau          float64 `json:"tau"`
	Regime       string  `json:"regime"`
	InvariantsOK bool    `json:"invariants_ok"`
}

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		slog.Error("fmrtctl failed", "error", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	session := bridge.NewSession()
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var input inputLine
		if err := json.Unmarshal(line, &input); err != nil {
			slog.Warn("skipping malformed line", "line", lineNumber, "error", err)
			continue
		}

		eventType, err := parseEventType(input.Type)
		if err != nil {
			slog.Warn("skipping line with unknown event type", "line", lineNumber, "type", input.Type)
			continue
		}

		envelope, result := session.Step(&bridge.Event{
			Type:     uint8(eventType),
			Dt:       input.Dt,
			Stimulus: input.Stimulus,
		})
		if result != bridge.ResultOK {
			slog.Warn("bridge rejected event", "line", lineNumber, "result", result)
			continue
		}

		state := session.State()
		output := outputLine{
			Status:       core.StepStatus(envelope.Status).String(),
			Kappa:        state.Kappa,
			Phi:          state.Phi,
			M:            state.M,
			CurvatureR:   envelope.Derived[0],
			DetG:         envelope.Derived[1],
			Tau:          envelope.Derived[2],
			Regime:       state.RegimePrev.String(),
			InvariantsOK: envelope.InvariantsOK == 1,
		}
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("writing output line %d: %w", lineNumber, err)
		}
	}

	return scanner.Err()
}

func parseEventType(s string) (core.EventType, error) {
	switch s {
	case "update":
		return core.EventUpdate, nil
	case "gap":
		return core.EventGap, nil
	case "heartbeat":
		return core.EventHeartbeat, nil
	case "reset":
		return core.EventReset, nil
	default:
		return 0, fmt.Errorf("unknown event type %q", s)
	}
}
