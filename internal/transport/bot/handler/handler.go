package handler

import (
	"salewatch/internal/worker"
)

type Handler struct {
	watcher *worker.SaleWatcher
}

func New(watcher *worker.SaleWatcher) *Handler {
	return &Handler{
		watcher: watcher,
	}
}
