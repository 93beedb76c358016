package persistence_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"salewatch/internal/domain/entity"
	"salewatch/internal/infrastructure/persistence"
)

func TestFileStateRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "state.json")
	repo := persistence.NewFileStateRepository(path)

	// Отсутствующий файл — дефолтное состояние, не ошибка.
	state, err := repo.Load(ctx)
	rq.NoError(err)
	rq.Equal(entity.SaleState{}, state)

	// Roundtrip.
	saved := entity.SaleState{SaleActive: true, LastSignature: "1|80.00>40.00"}
	rq.NoError(repo.Save(ctx, saved))

	state, err = repo.Load(ctx)
	rq.NoError(err)
	rq.Equal(saved, state)

	// Формат на диске — стабильный снейк-кейс.
	raw, err := os.ReadFile(path)
	rq.NoError(err)
	rq.Contains(string(raw), `"sale_active": true`)
	rq.Contains(string(raw), `"last_signature": "1|80.00>40.00"`)
}

func TestFileStateRepositoryCorruptFile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "state.json")
	rq.NoError(os.WriteFile(path, []byte(`{"sale_active": tru`), 0o644))

	repo := persistence.NewFileStateRepository(path)

	state, err := repo.Load(ctx)
	rq.NoError(err)
	rq.Equal(entity.SaleState{}, state)
}

func TestFileStateRepositoryPartialRecord(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "state.json")
	rq.NoError(os.WriteFile(path, []byte(`{"sale_active": true}`), 0o644))

	repo := persistence.NewFileStateRepository(path)

	state, err := repo.Load(ctx)
	rq.NoError(err)
	rq.True(state.SaleActive)
	rq.Empty(state.LastSignature)
}
