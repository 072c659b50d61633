package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func stockRun(id string) Run {
	return Run{
		ID:           id,
		Scenario:     "stock-example",
		A:            2,
		B:            -7,
		C:            20,
		RootSum:      7,
		ExpectedSum:  3.5,
		RootProduct:  10,
		DocumentPath: "polynomial.json",
	}
}

func TestListRuns_Empty(t *testing.T) {
	l := openTestLedger(t)

	runs, err := l.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestRecordRun_RoundTrip(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	in := stockRun(NewRunID())
	in.CreatedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, l.RecordRun(ctx, in))

	runs, err := l.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, "stock-example", got.Scenario)
	assert.Equal(t, 2, got.A)
	assert.Equal(t, -7, got.B)
	assert.Equal(t, 20.0, got.C)
	assert.Equal(t, 7.0, got.RootSum)
	assert.Equal(t, 3.5, got.ExpectedSum)
	assert.Equal(t, 10.0, got.RootProduct)
	assert.Equal(t, "polynomial.json", got.DocumentPath)
	assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
}

func TestRecordRun_DuplicateIDIsIgnored(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	run := stockRun(NewRunID())
	require.NoError(t, l.RecordRun(ctx, run))

	dup := run
	dup.Scenario = "changed"
	require.NoError(t, l.RecordRun(ctx, dup))

	runs, err := l.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "stock-example", runs[0].Scenario)
}

func TestRecordRun_FillsZeroCreatedAt(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.RecordRun(ctx, stockRun(NewRunID())))

	runs, err := l.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestListRuns_NewestFirstAndLimited(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := stockRun(NewRunID())
		run.Scenario = []string{"first", "second", "third"}[i]
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, l.RecordRun(ctx, run))
	}

	runs, err := l.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].Scenario)
	assert.Equal(t, "second", runs[1].Scenario)
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	l1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, l1.RecordRun(context.Background(), stockRun(NewRunID())))
	require.NoError(t, l1.Close())

	l2, err := Open(path)
	require.NoError(t, err)
	defer l2.Close()

	runs, err := l2.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
