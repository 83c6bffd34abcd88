package service

import (
	"context"
	"testing"
	"time"

	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore(newFakeFetcher(), time.Minute)

	id, controller, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Len(t, controller.State().Rows, 3)
	assert.Equal(t, 1, store.Count())

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, controller, got)

	require.NoError(t, store.Delete(id))
	_, err = store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(id), ErrSessionNotFound)
}

func TestSessionStoreKeepsPartialSessions(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.worldwideErr = &diseaseapi.RequestError{Kind: diseaseapi.ErrNetworkFailure, Endpoint: "all"}
	store := NewSessionStore(fetcher, time.Minute)

	id, controller, err := store.Create(context.Background())
	assert.ErrorIs(t, err, diseaseapi.ErrNetworkFailure)
	require.NotNil(t, controller)
	assert.Equal(t, model.Worldwide, controller.State().SelectedCountry)

	_, err = store.Get(id)
	assert.NoError(t, err)
}

func TestSessionStoreSessionsAreIndependent(t *testing.T) {
	store := NewSessionStore(newFakeFetcher(), time.Minute)

	_, first, err := store.Create(context.Background())
	require.NoError(t, err)
	_, second, err := store.Create(context.Background())
	require.NoError(t, err)

	_, err = first.SelectCasesType(model.CasesTypeDeaths)
	require.NoError(t, err)
	assert.Equal(t, model.CasesTypeCases, second.State().SelectedCasesType)
}
