package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_StreamsOneEnvelopePerLine(t *testing.T) {
	in := strings.NewReader(
		`{"type":"update","dt":1.0,"stimulus":[1,-2,3.5,0]}` + "\n" +
			`{"type":"heartbeat","dt":1.0}` + "\n",
	)
	var out bytes.Buffer

	err := run(in, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first outputLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "OK", first.Status)
	require.Equal(t, "ACC", first.Regime)
}

func TestRun_SkipsMalformedAndUnknownLines(t *testing.T) {
	in := strings.NewReader(
		"not json\n" +
			`{"type":"bogus","dt":1.0}` + "\n" +
			`{"type":"gap","dt":1.0}` + "\n",
	)
	var out bytes.Buffer

	err := run(in, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
}

func TestRun_BlankLinesIgnored(t *testing.T) {
	in := strings.NewReader("\n\n" + `{"type":"update","dt":1.0,"stimulus":[1,1,1,1]}` + "\n")
	var out bytes.Buffer

	err := run(in, &out)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
}
