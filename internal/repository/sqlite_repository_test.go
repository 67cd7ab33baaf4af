package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

var t0 = time.Date(2026, 2, 10, 7, 45, 0, 0, time.UTC)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func bleObservation(at time.Time) model.Observation {
	return model.Observation{
		Protocol:       model.ProtocolBLE,
		Identifier:     "AirTag",
		MAC:            "C4:11:22:33:44:55",
		RSSI:           -58,
		Payload:        []byte{0x4C, 0x00, 0x12, 0x19, 0x10},
		ManufacturerID: 0x004C,
		ServiceData:    map[string][]byte{"fd6f": {0x01, 0x02}},
		Timestamp:      at,
		Location:       &model.Location{Latitude: 40.7128, Longitude: -74.0060},
		Environment:    model.Environment{Urban: true},
	}
}

func TestSQLiteRepository_AddAndGetObservation(t *testing.T) {
	repo := newRepo(t)

	in := bleObservation(t0)
	id, err := repo.AddObservation(in)
	require.NoError(t, err)
	assert.NotEmpty(t, id, "missing IDs are generated")

	got, err := repo.GetObservation(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.Protocol, got.Protocol)
	assert.Equal(t, in.Payload, got.Payload)
	assert.Equal(t, in.ServiceData, got.ServiceData)
	assert.Equal(t, *in.Location, *got.Location)
	assert.True(t, in.Timestamp.Equal(got.Timestamp))
	assert.True(t, got.Environment.Urban)
}

func TestSQLiteRepository_MissingSignalStoredAsNull(t *testing.T) {
	repo := newRepo(t)

	in := bleObservation(t0)
	in.RSSI = 0
	id, err := repo.AddObservation(in)
	require.NoError(t, err)

	var rssi sql.NullInt64
	require.NoError(t, repo.db.QueryRow("SELECT rssi FROM observations WHERE id = ?", id).Scan(&rssi))
	assert.False(t, rssi.Valid)

	got, err := repo.GetObservation(id)
	require.NoError(t, err)
	assert.False(t, got.HasRSSI())

	id, err = repo.AddObservation(bleObservation(t0))
	require.NoError(t, err)
	require.NoError(t, repo.db.QueryRow("SELECT rssi FROM observations WHERE id = ?", id).Scan(&rssi))
	assert.Equal(t, sql.NullInt64{Int64: -58, Valid: true}, rssi)
}

func TestSQLiteRepository_GetObservationNotFound(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.GetObservation("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_RejectsInvalidAndDuplicate(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.AddObservation(model.Observation{Protocol: "zigbee", Timestamp: t0})
	assert.Error(t, err)

	obs := bleObservation(t0)
	obs.ID = "fixed"
	_, err = repo.AddObservation(obs)
	require.NoError(t, err)
	_, err = repo.AddObservation(obs)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSQLiteRepository_AddObservationsBatch(t *testing.T) {
	repo := newRepo(t)

	batch := []model.Observation{
		bleObservation(t0.Add(2 * time.Minute)),
		{Protocol: model.ProtocolWiFi, Identifier: "Flock-AB12CD", RSSI: -70, Timestamp: t0},
		{Protocol: model.ProtocolCellular, RSSI: -80, Timestamp: t0.Add(time.Minute),
			Cell: &model.CellInfo{MCC: 310, MNC: 260, CellID: 1, RAT: "GSM"}},
	}
	ids, err := repo.AddObservations(batch)
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := repo.Observations(time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, model.ProtocolWiFi, all[0].Protocol, "oldest first")
	assert.Equal(t, model.ProtocolCellular, all[1].Protocol)
	require.NotNil(t, all[1].Cell)
	assert.Equal(t, "GSM", all[1].Cell.RAT)

	since, err := repo.Observations(t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, since, 2)

	ble, err := repo.ObservationsByProtocol(model.ProtocolBLE, time.Time{})
	require.NoError(t, err)
	require.Len(t, ble, 1)
	assert.Equal(t, ids[0], ble[0].ID)
}

func TestSQLiteRepository_BatchIsAtomic(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.AddObservations([]model.Observation{
		bleObservation(t0),
		{Protocol: model.ProtocolGNSS, Timestamp: t0}, // no measurement
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "observation 1")

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSQLiteRepository_DeleteBefore(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.AddObservations([]model.Observation{
		bleObservation(t0),
		bleObservation(t0.Add(time.Hour)),
	})
	require.NoError(t, err)

	deleted, err := repo.DeleteBefore(t0.Add(30 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteRepository_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.db")

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	_, err = repo.AddObservation(bleObservation(t0))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()
	n, err := reopened.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
