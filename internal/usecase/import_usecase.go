package usecase

import (
	"context"

	"verdeluxe/internal/domain/service"
)

// ImportReport counts rows written and rows skipped because they already existed.
type ImportReport struct {
	Imported map[string]int
	Skipped  map[string]int
}

// ImportUsecase loads a legacy snapshot into the relational store. Running
// it twice does not duplicate rows.
type ImportUsecase interface {
	Import(ctx context.Context, snapshot *service.LegacySnapshot) (*ImportReport, error)
}
