// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/filmcalc/design"
	"github.com/katalvlaran/filmcalc/project"
	"github.com/katalvlaran/filmcalc/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "lib", "designs.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func presetDoc(t *testing.T, id string) project.Document {
	t.Helper()
	p, err := design.LookupPreset(id)
	require.NoError(t, err)

	return project.New(p.Name, p.Stack, p.Range)
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d := presetDoc(t, "vcoat-ar")

	saved, err := s.Put(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, d, saved)

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestPut_AssignsID(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d := presetDoc(t, "single-ar")
	d.ID = ""

	saved, err := s.Put(ctx, d)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	_, err = s.Get(ctx, saved.ID)
	require.NoError(t, err)
}

func TestPut_RejectsInvalid(t *testing.T) {
	s := openStore(t)
	d := presetDoc(t, "single-ar")
	d.Name = ""
	_, err := s.Put(context.Background(), d)
	require.ErrorIs(t, err, project.ErrInvalidDocument)
}

func TestPut_Replaces(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d := presetDoc(t, "single-ar")
	_, err := s.Put(ctx, d)
	require.NoError(t, err)

	d.Layers[0].Thickness = 101
	_, err = s.Put(ctx, d)
	require.NoError(t, err)

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 101.0, got.Layers[0].Thickness)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 101, list[0].TotalNm, 1e-12)
	assert.False(t, list[0].UpdatedAt.Before(list[0].CreatedAt))
}

func TestList_OrderedByName(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	for _, id := range []string{"high-reflector", "dichroic", "broadband-ar"} {
		_, err := s.Put(ctx, presetDoc(t, id))
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Broadband AR (4-Layer)", list[0].Name)
	assert.Equal(t, "Dichroic Filter (Blue-Reflect)", list[1].Name)
	assert.Equal(t, "High Reflector (6-Layer)", list[2].Name)
	assert.Equal(t, 10, list[1].Layers)
	assert.Equal(t, "BK7", list[1].Substrate)
}

func TestList_Empty(t *testing.T) {
	list, err := openStore(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind_ByIDOrName(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d, err := s.Put(ctx, presetDoc(t, "dichroic"))
	require.NoError(t, err)

	byID, err := s.Find(ctx, d.ID)
	require.NoError(t, err)
	byName, err := s.Find(ctx, d.Name)
	require.NoError(t, err)
	assert.Equal(t, byID, byName)

	_, err = s.Find(ctx, "nothing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

// TestFind_NewestByNameAcrossSubseconds saves two designs with one name in
// the same second; the later one must win even when the earlier timestamp
// has no fractional part.
func TestFind_NewestByNameAcrossSubseconds(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.SetClock(func() time.Time { return base })
	older := presetDoc(t, "single-ar")
	older.Name = "shared"
	older, err := s.Put(ctx, older)
	require.NoError(t, err)

	s.SetClock(func() time.Time { return base.Add(100 * time.Millisecond) })
	newer := presetDoc(t, "vcoat-ar")
	newer.Name = "shared"
	newer, err = s.Put(ctx, newer)
	require.NoError(t, err)

	got, err := s.Find(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	stamps := map[string]time.Time{}
	for _, e := range entries {
		stamps[e.ID] = e.UpdatedAt
	}
	assert.True(t, stamps[older.ID].Equal(base))
	assert.True(t, stamps[newer.ID].Equal(base.Add(100*time.Millisecond)))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d, err := s.Put(ctx, presetDoc(t, "single-ar"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, d.ID))
	_, err = s.Get(ctx, d.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, d.ID), store.ErrNotFound)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "designs.db")
	s, err := store.Open(ctx, path, nil)
	require.NoError(t, err)
	d, err := s.Put(ctx, presetDoc(t, "vcoat-ar"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())
	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	docs := make([]project.Document, 8)
	for i := range docs {
		docs[i] = presetDoc(t, "single-ar")
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(docs))
	for _, d := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Put(ctx, d)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8)
}
