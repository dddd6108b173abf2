package service

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
)

const defaultPageLimit = 20

// normalizePage clamps pagination inputs to sane values
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageLimit
	}
	return page, limit
}

// resolveWriters batch-loads the writers referenced by a page of content
// and returns them keyed by user idx. Cross-entity lookups are explicit
// fetches; entities never hold live user references.
func resolveWriters(userRepo repository.UserRepository, writerIdxs []int64) (map[int64]*domain.User, error) {
	seen := make(map[int64]struct{}, len(writerIdxs))
	unique := make([]int64, 0, len(writerIdxs))
	for _, idx := range writerIdxs {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		unique = append(unique, idx)
	}

	users, err := userRepo.FindByIdxs(unique)
	if err != nil {
		return nil, err
	}

	byIdx := make(map[int64]*domain.User, len(users))
	for _, u := range users {
		byIdx[u.Idx] = u
	}
	return byIdx, nil
}
