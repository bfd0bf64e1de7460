package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tum-aet/staffplan/modules/staffplan/presentation/viewmodels"
)

const fixtureCSV = "object id;objektbezeichnung;trfgr;persnr;prozent;beginn;ende\n" +
	"OBJ-1;Wiss. Mitarbeiter;E13;P1;60;2024-01-01;2024-03-31\n" +
	"OBJ-1;Wiss. Mitarbeiter;E13;P2;50;2024-03-01;2024-06-30\n" +
	"OBJ-2;Professur;W3;P3;100;01.01.2020;\n" +
	"OBJ-3;Sekretariat;E8;;;;\n"

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STAFFPLAN_LOCALE", "en")
	t.Setenv("LOG_LEVEL", "silent")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func TestGanttCmd(t *testing.T) {
	input := writeFixture(t, "positions.csv", fixtureCSV)

	out, err := execute(t, "gantt", "--input", input, "--today", "2024-06-15", "--slices")
	require.NoError(t, err)

	var vm viewmodels.GanttView
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	assert.Equal(t, "en", vm.Locale)
	assert.Equal(t, "2023-12-01", vm.WindowStart)
	assert.Equal(t, "2024-12-31", vm.WindowEnd)
	assert.Equal(t, "Dec 2023 - Dec 2024", vm.WindowLabel)
	assert.Equal(t, 12, vm.Zoom)
	assert.Equal(t, 3, vm.Total)
	assert.Equal(t, 3, vm.Shown)
	assert.Equal(t, 2, vm.WhiteSpots)
	require.Len(t, vm.Rows, 3)
	assert.Equal(t, "OBJ-1", vm.Rows[0].Key)
	assert.NotEmpty(t, vm.Rows[0].Slices)
}

func TestGanttCmd_FiltersAndRange(t *testing.T) {
	input := writeFixture(t, "positions.csv", fixtureCSV)

	out, err := execute(t, "gantt", "--input", input, "--today", "2024-06-15",
		"--range", "2024-01-01,2024-06-30", "--unfilled-only", "--reference", "2024-02-01", "--locale", "de")
	require.NoError(t, err)

	var vm viewmodels.GanttView
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	assert.Equal(t, "de", vm.Locale)
	assert.Equal(t, 0, vm.Zoom)
	assert.Equal(t, "2024-01-01", vm.WindowStart)
	assert.Equal(t, "2024-06-30", vm.WindowEnd)
	assert.Equal(t, "2024-02-01", vm.ReferenceDate)
	assert.NotNil(t, vm.ReferenceMarker)
	require.Len(t, vm.Rows, 2)
	assert.Equal(t, "OBJ-1", vm.Rows[0].Key)
	assert.Equal(t, "60", vm.Rows[0].CurrentFill)
	assert.Equal(t, "OBJ-3", vm.Rows[1].Key)
}

func TestGanttCmd_Profile(t *testing.T) {
	input := writeFixture(t, "positions.csv", fixtureCSV)
	profile := writeFixture(t, "view.yaml", "zoom: 6\nfilters:\n  tariffGroup: W3\n")

	out, err := execute(t, "gantt", "--input", input, "--today", "2024-06-15", "--profile", profile)
	require.NoError(t, err)

	var vm viewmodels.GanttView
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	assert.Equal(t, 6, vm.Zoom)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "OBJ-2", vm.Rows[0].Key)

	out, err = execute(t, "gantt", "--input", input, "--today", "2024-06-15", "--profile", profile, "--grade", "E8")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "OBJ-3", vm.Rows[0].Key)
}

func TestWhiteSpotsCmd(t *testing.T) {
	input := writeFixture(t, "positions.csv", fixtureCSV)

	out, err := execute(t, "white-spots", "--input", input, "--today", "2024-06-15")
	require.NoError(t, err)

	var keys []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var spot viewmodels.WhiteSpot
		require.NoError(t, json.Unmarshal(sc.Bytes(), &spot))
		keys = append(keys, spot.Key)
	}
	assert.Equal(t, []string{"OBJ-1", "OBJ-3"}, keys)
}

func TestOptionsCmd(t *testing.T) {
	input := writeFixture(t, "positions.csv", fixtureCSV)

	out, err := execute(t, "options", "--input", input)
	require.NoError(t, err)

	var vm viewmodels.Options
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	assert.Equal(t, []string{"E13", "E8", "W3"}, vm.TariffGroups)
}

func TestWindowCmd(t *testing.T) {
	out, err := execute(t, "window", "--today", "2024-06-15", "--zoom", "24")
	require.NoError(t, err)

	var vm viewmodels.Window
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	assert.Equal(t, "windowed", vm.State)
	assert.Equal(t, 24, vm.Zoom)
	assert.Equal(t, "2021-01-01", vm.OuterStart)
	assert.Len(t, vm.Months, 25)

	out, err = execute(t, "window", "--today", "2024-06-15")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &vm))
	assert.Equal(t, 12, vm.Zoom)
	assert.Equal(t, "2023-12-01", vm.VisibleStart)
}

func TestMetricsOut(t *testing.T) {
	input := writeFixture(t, "positions.csv", fixtureCSV)
	metricsPath := filepath.Join(t.TempDir(), "metrics", "staffplan.prom")

	_, err := execute(t, "gantt", "--input", input, "--today", "2024-06-15", "--metrics-out", metricsPath)
	require.NoError(t, err)

	b, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "staffplan_cache_requests_total")
}

func TestExitCodes(t *testing.T) {
	csvInput := writeFixture(t, "positions.csv", fixtureCSV)
	pdfInput := writeFixture(t, "positions.pdf", "%PDF-1.7\n")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"unknown zoom", []string{"gantt", "--input", csvInput, "--zoom", "7"}, exitUsage},
		{"bad today", []string{"window", "--today", "someday"}, exitUsage},
		{"bad range", []string{"window", "--range", "2024-01-01"}, exitUsage},
		{"inverted range", []string{"window", "--today", "2024-06-15", "--range", "2024-06-01,2024-01-01"}, exitUsage},
		{"bad locale", []string{"options", "--input", csvInput, "--locale", "fr"}, exitUsage},
		{"missing input", []string{"options", "--input", filepath.Join(t.TempDir(), "nope.csv")}, exitIO},
		{"unsupported input", []string{"options", "--input", pdfInput}, exitValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.want, exitCode(err))
		})
	}
	assert.Equal(t, exitOK, exitCode(nil))
}
