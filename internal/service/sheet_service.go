package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/OpenOmics/HiIP/internal/domain"
)

// SheetService orchestrates parsing of the pipeline configuration. The
// groups file is always parsed first because the contrast reader
// validates group references against its output.
type SheetService struct {
	groupRepo    domain.GroupRepository
	contrastRepo domain.ContrastRepository
}

// NewSheetService creates a new SheetService. contrastRepo may be nil
// when no contrasts file is configured; the result then carries group
// membership only.
func NewSheetService(groupRepo domain.GroupRepository, contrastRepo domain.ContrastRepository) *SheetService {
	return &SheetService{
		groupRepo:    groupRepo,
		contrastRepo: contrastRepo,
	}
}

// Load parses the configured files into a SheetConfig
func (s *SheetService) Load(ctx context.Context) (domain.SheetConfig, error) {
	groups, err := s.groupRepo.Groups(ctx)
	if err != nil {
		return domain.SheetConfig{}, errors.Wrap(err, "loading groups")
	}

	config := domain.SheetConfig{Groups: groups}
	if s.contrastRepo == nil {
		return config, nil
	}

	contrasts, err := s.contrastRepo.Contrasts(ctx, groups.NameSet())
	if err != nil {
		return domain.SheetConfig{}, errors.Wrap(err, "loading contrasts")
	}
	config.Contrasts = contrasts

	return config, nil
}
