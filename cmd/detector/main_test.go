package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/config"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/repository"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

const observationsJSONL = `{"protocol":"wifi","identifier":"Flock-9A3F21","mac":"02:11:22:33:44:55","rssi":-61,"encryption":"WPA2","timestamp":"2026-04-02T18:00:00Z","location":{"lat":48.8566,"lon":2.3522}}
{"protocol":"cellular","rssi":-70,"timestamp":"2026-04-02T18:01:00Z","location":{"lat":48.8566,"lon":2.3522},"cell":{"mcc":310,"mnc":260,"cell_id":77,"rat":"GSM","prev_rat":"LTE","ciphering":"A5/0","neighbors":2}}
{"protocol":"zigbee","timestamp":"2026-04-02T18:01:30Z"}
{"protocol":"wifi","identifier":"HomeNet","mac":"02:11:22:33:44:66","rssi":-70,"encryption":"WPA2","timestamp":"2026-04-02T18:02:00Z"}
`

func testProvider(stdin string) *DependencyProvider {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"
	return &DependencyProvider{
		Config: cfg,
		Stdin:  strings.NewReader(stdin),
		Now:    func() time.Time { return time.Date(2026, 4, 2, 18, 5, 0, 0, time.UTC) },
	}
}

// run executes the CLI and returns stdout
func run(t *testing.T, provider *DependencyProvider, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(provider)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func jsonLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var v map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v), sc.Text())
		lines = append(lines, v)
	}
	return lines
}

func TestClassify_JSON(t *testing.T) {
	provider := testProvider(observationsJSONL)

	out, err := run(t, provider, "classify", "-", "--format", "json", "--aggregate")
	require.NoError(t, err)

	lines := jsonLines(t, out)
	require.Len(t, lines, 3, "two detections and the aggregate")
	assert.Equal(t, "FLOCK_SAFETY_CAMERA", lines[0]["device_type"])
	assert.Equal(t, "FAKE_BASE_STATION_2G", lines[1]["device_type"])

	aggregate, ok := lines[2]["aggregate"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, aggregate["cross_protocol"])
	assert.Equal(t, float64(2), aggregate["detection_count"])
}

func TestClassify_RecordsMetrics(t *testing.T) {
	provider := testProvider(observationsJSONL)
	_, err := run(t, provider, "classify", "-", "--format", "json")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(provider.Metrics, "surveillance_detector_observations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per protocol that was processed")
}

func TestClassify_Table(t *testing.T) {
	out, err := run(t, testProvider(observationsJSONL), "classify", "-", "--aggregate")
	require.NoError(t, err)

	assert.Contains(t, out, "DEVICE TYPE")
	assert.Contains(t, out, "FLOCK_SAFETY_CAMERA")
	assert.Contains(t, out, "Flock-9A3F21 (02:11:22:33:44:55)")
	assert.Contains(t, out, "FAKE_BASE_STATION_2G")
	assert.Contains(t, out, "Aggregate:")
	assert.Contains(t, out, "Correlated across cellular, wifi")
}

func TestClassify_CompressedInput(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(observationsJSONL))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var zst bytes.Buffer
	zw, err := zstd.NewWriter(&zst)
	require.NoError(t, err)
	_, err = zw.Write([]byte(observationsJSONL))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	for name, data := range map[string][]byte{"gzip": gz.Bytes(), "zstd": zst.Bytes()} {
		t.Run(name, func(t *testing.T) {
			provider := testProvider("")
			provider.Stdin = bytes.NewReader(data)
			out, err := run(t, provider, "classify", "-", "--format", "json")
			require.NoError(t, err)
			assert.Len(t, jsonLines(t, out), 2)
		})
	}
}

func TestClassify_NoDetections(t *testing.T) {
	out, err := run(t, testProvider(`{"protocol":"wifi","identifier":"HomeNet","rssi":-70,"encryption":"WPA2","timestamp":"2026-04-02T18:02:00Z"}`),
		"classify", "-")
	require.NoError(t, err)
	assert.Equal(t, "No detections\n", out)
}

func TestClassify_Errors(t *testing.T) {
	_, err := run(t, testProvider(""), "classify", "-", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = run(t, testProvider("{not json"), "classify", "-")
	assert.ErrorContains(t, err, "failed to decode observation 1")

	_, err = run(t, testProvider(""), "classify", "/does/not/exist.jsonl")
	assert.ErrorContains(t, err, "failed to open observations")
}

func TestImportAndReplay(t *testing.T) {
	repo, err := repository.NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	importer := testProvider(observationsJSONL)
	importer.Repository = repo
	out, err := run(t, importer, "import", "-", "--batch-size", "2")
	require.NoError(t, err)
	assert.Equal(t, "Imported 3 observations (1 skipped)\n", out)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	replayer := testProvider("")
	replayer.Repository = repo
	out, err = run(t, replayer, "replay", "--format", "json")
	require.NoError(t, err)
	lines := jsonLines(t, out)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "aggregate")

	cellOnly := testProvider("")
	cellOnly.Repository = repo
	out, err = run(t, cellOnly, "replay", "--protocol", "cellular", "--format", "json", "--aggregate=false")
	require.NoError(t, err)
	lines = jsonLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, string(model.ProtocolCellular), lines[0]["protocol"])
}

func TestReplay_RateLimited(t *testing.T) {
	repo, err := repository.NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	importer := testProvider(observationsJSONL)
	importer.Repository = repo
	_, err = run(t, importer, "import", "-")
	require.NoError(t, err)

	replayer := testProvider("")
	replayer.Repository = repo
	out, err := run(t, replayer, "replay", "--rate", "1000", "--format", "json", "--aggregate=false")
	require.NoError(t, err)
	assert.Len(t, jsonLines(t, out), 2)
}

func TestReplay_Since(t *testing.T) {
	repo, err := repository.NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	defer repo.Close()
	_, err = repo.AddObservations([]model.Observation{{
		Protocol: model.ProtocolWiFi, Identifier: "Flock-0000AA", RSSI: -60,
		Timestamp: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	provider := testProvider("")
	provider.Repository = repo
	out, err := run(t, provider, "replay", "--since", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "No detections")
	assert.Contains(t, out, "No detections to assess")
}

func TestImport_RejectsBadBatchSize(t *testing.T) {
	_, err := run(t, testProvider(observationsJSONL), "import", "-", "--batch-size", "0")
	assert.ErrorContains(t, err, "batch size must be positive")
}

func TestProfiles(t *testing.T) {
	out, err := run(t, testProvider(""), "profiles", "--category", "Cellular Interception", "--format", "json")
	require.NoError(t, err)

	var list []model.DeviceTypeProfile
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.NotEmpty(t, list)
	for _, p := range list {
		assert.Equal(t, "Cellular Interception", p.Category)
	}

	out, err = run(t, testProvider(""), "profiles", "--privacy", "critical")
	require.NoError(t, err)
	assert.Contains(t, out, "FAKE_BASE_STATION_2G")
	assert.NotContains(t, out, "EXPOSURE_NOTIFICATION")

	_, err = run(t, testProvider(""), "profiles", "--privacy", "extreme")
	assert.Error(t, err)
	_, err = run(t, testProvider(""), "profiles", "--category", "Nope")
	assert.ErrorContains(t, err, "unknown category")
}

func TestVersion(t *testing.T) {
	out, err := run(t, testProvider(""), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "detector "))

	out, err = run(t, testProvider(""), "version", "--format", "json")
	require.NoError(t, err)
	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["go_version"])
}

func TestHandlerOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Handlers.Allowlist = []string{"aa:bb:cc:dd:ee:ff"}
	cfg.Handlers.SafeZones = []config.SafeZone{{Latitude: 1, Longitude: 2}}

	opts := handlerOptions(cfg)
	assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff"}, opts.Allowlist)
	assert.Equal(t, []model.Location{{Latitude: 1, Longitude: 2}}, opts.SafeZones)
	assert.Equal(t, cfg.Handlers.HistoryKeys, opts.HistoryKeys)
}
