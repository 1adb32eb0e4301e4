package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
)

const alreadySeeded = "Already seeded"

type SeedResult struct {
	Inserted int
	IDs      []string
	Message  string
}

type CatalogService struct {
	repo   repository.SneakerRepository
	log    *slog.Logger
	seedMu sync.Mutex // one count-then-insert at a time
}

func NewCatalogService(repo repository.SneakerRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  log,
	}
}

// Seed inserts the starter catalog when the sneaker collection is empty and
// does nothing otherwise. Concurrent calls within one process are serialized,
// so only the first inserts.
func (s *CatalogService) Seed(ctx context.Context) (SeedResult, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	n, err := s.repo.Count(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if n > 0 {
		return SeedResult{Inserted: 0, Message: alreadySeeded}, nil
	}

	sneakers, err := SeedCatalog()
	if err != nil {
		return SeedResult{}, err
	}

	ids := make([]string, 0, len(sneakers))
	for _, sn := range sneakers {
		id, err := s.repo.Insert(ctx, sn)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed insert %q: %w", sn.Name, err)
		}
		ids = append(ids, id)
	}

	s.log.InfoContext(ctx, "catalog seeded", "inserted", len(ids))
	return SeedResult{Inserted: len(ids), IDs: ids}, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Sneaker, error) {
	return s.repo.List(ctx)
}
