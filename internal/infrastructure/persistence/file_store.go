package persistence

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"salewatch/internal/domain"
	"salewatch/internal/domain/entity"
	"salewatch/pkg/errcodes"
	"salewatch/pkg/logx"
)

// FileStateRepository хранит состояние в маленьком JSON-файле рядом
// с процессом. Битый или отсутствующий файл — это «не было истории»,
// а не фатальная ошибка: цикл должен взводиться заново, а не падать.
type FileStateRepository struct {
	path string
}

func NewFileStateRepository(path string) *FileStateRepository {
	return &FileStateRepository{path: path}
}

func (r *FileStateRepository) Load(ctx context.Context) (entity.SaleState, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger(ctx).Warn("state file unreadable, resetting", logx.Error(err))
		}
		return entity.SaleState{}, nil
	}

	var schema stateSchema
	if err := json.Unmarshal(raw, &schema); err != nil {
		logger(ctx).Warn("state file corrupt, resetting", logx.Error(err))
		return entity.SaleState{}, nil
	}

	return schema.toDomain(), nil
}

func (r *FileStateRepository) Save(_ context.Context, state entity.SaleState) error {
	raw, err := json.MarshalIndent(fromDomain(state), "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.StateSaveFailed, "marshal state")
	}

	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return domain.WrapError(err, errcodes.StateSaveFailed, "write state file")
	}

	return nil
}
