package main

import (
	"context"
	"errors"
	"testing"

	"github.com/AymenS02/united-real-estate/internal/app"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ migrator = (*app.Server)(nil)

type stubMigrator struct {
	err    error
	logger *zap.Logger
	calls  int
}

func (s *stubMigrator) Migrate(context.Context) error {
	s.calls++
	return s.err
}

func (s *stubMigrator) Logger() *zap.Logger { return s.logger }

func TestMigrateOnStart_StoreDownKeepsServing(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := &stubMigrator{err: errors.New("connection refused"), logger: zap.New(core)}

	assert.False(t, migrateOnStart(context.Background(), m))
	assert.Equal(t, 1, m.calls)
	assert.Equal(t, 1, logs.FilterMessageSnippet("Startup migration skipped").Len())
}

func TestMigrateOnStart_Success(t *testing.T) {
	m := &stubMigrator{logger: zap.NewNop()}

	assert.True(t, migrateOnStart(context.Background(), m))
	assert.Equal(t, 1, m.calls)
}
