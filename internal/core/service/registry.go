package service

import (
	"fmt"
	"sync"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

type ComponentRegistry struct {
	mu               sync.RWMutex
	snapshotLoaders  map[string]ports.SnapshotLoader
	categoryComparer map[domain.Category]ports.CategoryComparer
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		snapshotLoaders:  make(map[string]ports.SnapshotLoader),
		categoryComparer: make(map[domain.Category]ports.CategoryComparer),
	}
}

// RegisterSnapshotLoader registers a loader under a role such as "source" or
// "target". The loader's own Type is only used in messages.
func (r *ComponentRegistry) RegisterSnapshotLoader(role string, loader ports.SnapshotLoader) error {
	if loader == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil snapshot loader")
	}
	if role == "" {
		return errors.New(errors.CodeInternal, "snapshot loader role cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.snapshotLoaders[role]; exists {
		return errors.New(errors.CodeInternal,
			fmt.Sprintf("%s snapshot loader already registered (type '%s')", role, existing.Type()))
	}
	r.snapshotLoaders[role] = loader
	return nil
}

func (r *ComponentRegistry) GetSnapshotLoader(role string) (ports.SnapshotLoader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loader, exists := r.snapshotLoaders[role]
	if !exists {
		return nil, errors.New(errors.CodeSnapshotLoaderMissing, fmt.Sprintf("no %s snapshot loader registered", role))
	}
	return loader, nil
}

func (r *ComponentRegistry) RegisterCategoryComparer(comparer ports.CategoryComparer) error {
	if comparer == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil category comparer")
	}
	category := comparer.Category()
	if category == "" {
		return errors.New(errors.CodeInternal, "category comparer category cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categoryComparer[category]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("category comparer for '%s' already registered", category))
	}
	r.categoryComparer[category] = comparer
	return nil
}

func (r *ComponentRegistry) GetCategoryComparer(category domain.Category) (ports.CategoryComparer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comparer, exists := r.categoryComparer[category]
	if !exists {
		return nil, errors.New(errors.CodeNotImplemented, fmt.Sprintf("category comparer for '%s' not implemented", category))
	}
	return comparer, nil
}
