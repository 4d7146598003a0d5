package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"rent-a-shelf/internal/model"
)

type fakeStatusRepo struct {
	statuses map[string]model.Status // keyed by id
	failWith error
	inUse    map[string]bool
}

func (r *fakeStatusRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, s := range r.statuses {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStatusRepo) Create(_ context.Context, s model.Status) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.statuses[s.ID] = s
	return nil
}

func (r *fakeStatusRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.inUse[id] {
		return model.ErrStatusInUse
	}
	if _, ok := r.statuses[id]; !ok {
		return model.ErrStatusNotFound
	}
	delete(r.statuses, id)
	return nil
}

func (r *fakeStatusRepo) List(_ context.Context) ([]model.Status, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Status, 0, len(r.statuses))
	for _, s := range r.statuses {
		out = append(out, s)
	}
	return out, nil
}

func newStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{statuses: map[string]model.Status{}, inUse: map[string]bool{}}
}

func TestStatusCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates and lists", func(t *testing.T) {
		svc := NewStatusService(newStatusRepo())

		created, err := svc.Create(context.Background(), model.CreateStatusRequest{Name: "active"})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "active", created.Name)

		statuses, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, statuses, 1)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		svc := NewStatusService(newStatusRepo())

		_, err := svc.Create(context.Background(), model.CreateStatusRequest{Name: "active"})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), model.CreateStatusRequest{Name: "active"})
		require.ErrorIs(t, err, model.ErrStatusAlreadyExists)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc := NewStatusService(newStatusRepo())

		_, err := svc.Create(context.Background(), model.CreateStatusRequest{Name: "  "})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("store fault surfaces as store unavailable", func(t *testing.T) {
		repo := newStatusRepo()
		repo.failWith = errors.New("connection refused")
		svc := NewStatusService(repo)

		_, err := svc.Create(context.Background(), model.CreateStatusRequest{Name: "active"})
		require.ErrorIs(t, err, model.ErrStoreUnavailable)
	})
}

func TestStatusDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing status", func(t *testing.T) {
		repo := newStatusRepo()
		repo.statuses["status-1"] = model.Status{ID: "status-1", Name: "active"}
		svc := NewStatusService(repo)

		require.NoError(t, svc.Delete(context.Background(), "status-1"))
		require.Empty(t, repo.statuses)
	})

	t.Run("unknown id is reported", func(t *testing.T) {
		svc := NewStatusService(newStatusRepo())

		err := svc.Delete(context.Background(), "missing")
		require.ErrorIs(t, err, model.ErrStatusNotFound)
	})

	t.Run("referenced status cannot be deleted", func(t *testing.T) {
		repo := newStatusRepo()
		repo.statuses["status-1"] = model.Status{ID: "status-1", Name: "active"}
		repo.inUse["status-1"] = true
		svc := NewStatusService(repo)

		err := svc.Delete(context.Background(), "status-1")
		require.ErrorIs(t, err, model.ErrStatusInUse)
	})
}
