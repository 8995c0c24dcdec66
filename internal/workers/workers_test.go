// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWorker struct {
	name  string
	err   error
	order *[]string
}

func (r *recordingWorker) Name() string { return r.name }

func (r *recordingWorker) Run(context.Context) error {
	*r.order = append(*r.order, r.name)
	return r.err
}

func TestWorkers_RunInOrder(t *testing.T) {
	var order []string
	ws := NewWorkers(logger.Nop(),
		&recordingWorker{name: "a", order: &order},
		&recordingWorker{name: "b", order: &order},
		&recordingWorker{name: "c", order: &order},
	)

	require.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestWorkers_FailureDoesNotStopOthers(t *testing.T) {
	var order []string
	errBoom := errors.New("boom")
	ws := NewWorkers(logger.Nop(),
		&recordingWorker{name: "a", err: errBoom, order: &order},
		&recordingWorker{name: "b", order: &order},
	)

	err := ws.Run(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "a: boom")
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestWorkers_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers(logger.Nop()).Run(context.Background()))
}

func TestWorkers_CancelledContext(t *testing.T) {
	var order []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWorkers(logger.Nop(), &recordingWorker{name: "a", order: &order}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, order)
}

type fakeRecoverer struct {
	found bool
	err   error
	calls int
}

func (f *fakeRecoverer) Recover(context.Context) (bool, error) {
	f.calls++
	return f.found, f.err
}

func TestJournalRecovery(t *testing.T) {
	tests := []struct {
		name    string
		rec     *fakeRecoverer
		wantErr bool
	}{
		{name: "nothing journaled", rec: &fakeRecoverer{}},
		{name: "journal flushed", rec: &fakeRecoverer{found: true}},
		{name: "flush failed", rec: &fakeRecoverer{found: true, err: errors.New("offline")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewJournalRecovery(tt.rec, logger.Nop()).Run(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, 1, tt.rec.calls)
		})
	}
}

type fakeVersionSource struct {
	version string
	err     error
}

func (f fakeVersionSource) ServerVersion(context.Context) (string, error) {
	return f.version, f.err
}

func TestVersionProbe(t *testing.T) {
	ctx := context.Background()
	build := models.NewAppBuildInfo("1.2.0", "", "")

	assert.NoError(t, NewVersionProbe(fakeVersionSource{version: "1.2.0"}, build, logger.Nop()).Run(ctx))
	assert.NoError(t, NewVersionProbe(fakeVersionSource{version: "1.3.0\n"}, build, logger.Nop()).Run(ctx))
	assert.NoError(t, NewVersionProbe(fakeVersionSource{version: "1.3.0"}, models.AppBuildInfo{}, logger.Nop()).Run(ctx))
	assert.NoError(t, NewVersionProbe(fakeVersionSource{version: "N/A"}, build, logger.Nop()).Run(ctx))
	assert.Error(t, NewVersionProbe(fakeVersionSource{err: errors.New("down")}, build, logger.Nop()).Run(ctx))
}

func TestVersionProbe_WarnsOnMismatch(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	err := NewVersionProbe(fakeVersionSource{version: "1.3.0"}, models.NewAppBuildInfo("1.2.0", "", ""), log).
		Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "client and server versions differ")

	buf.Reset()
	err = NewVersionProbe(fakeVersionSource{version: "1.2.0"}, models.NewAppBuildInfo("1.2.0", "", ""), log).
		Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
