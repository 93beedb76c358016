package persistence

import (
	jsoniter "github.com/json-iterator/go"

	"salewatch/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// stateSchema — внешняя форма персистированного состояния.
// Отсутствующие ключи дают нулевые значения — это и есть дефолт
// {sale_active: false, last_signature: ""}.
type stateSchema struct {
	SaleActive    bool   `json:"sale_active"`
	LastSignature string `json:"last_signature"`
}

func (s stateSchema) toDomain() entity.SaleState {
	return entity.SaleState{
		SaleActive:    s.SaleActive,
		LastSignature: s.LastSignature,
	}
}

func fromDomain(state entity.SaleState) stateSchema {
	return stateSchema{
		SaleActive:    state.SaleActive,
		LastSignature: state.LastSignature,
	}
}
