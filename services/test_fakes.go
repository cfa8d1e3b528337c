package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/candlewick/storefront/core"
)

// FakeUserStorage is a test-only fake implementing core.UserStorage.
// It stores users in a map, enforces email uniqueness like the real store
// and exposes error fields for behavior injection.
type FakeUserStorage struct {
	users     map[string]*core.User
	mu        sync.RWMutex
	createErr error
	getErr    error
	updateErr error
}

func NewFakeUserStorage() *FakeUserStorage {
	return &FakeUserStorage{
		users: make(map[string]*core.User),
	}
}

func (f *FakeUserStorage) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return core.ErrUserExists
		}
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *FakeUserStorage) GetUserByID(_ context.Context, id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return nil, core.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *FakeUserStorage) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email && u.IsActive {
			clone := *u
			return &clone, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeUserStorage) ListUsers(_ context.Context) ([]*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*core.User
	for _, u := range f.users {
		if u.IsActive {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (f *FakeUserStorage) UpdateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.users[u.ID]
	if !ok || !stored.IsActive {
		return core.ErrUserNotFound
	}
	u.UpdatedAt = time.Now()
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *FakeUserStorage) DeactivateUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return core.ErrUserNotFound
	}
	u.IsActive = false
	u.UpdatedAt = time.Now()
	return nil
}

// FakeProductStorage is a test-only fake implementing core.ProductStorage.
// Listing mirrors the real store: newest first, case-insensitive substring
// filters on category and tags.
type FakeProductStorage struct {
	products  map[string]*core.Product
	order     []string // insertion order, oldest first
	mu        sync.RWMutex
	createErr error
	getErr    error
	listErr   error
}

func NewFakeProductStorage() *FakeProductStorage {
	return &FakeProductStorage{
		products: make(map[string]*core.Product),
	}
}

func (f *FakeProductStorage) CreateProduct(_ context.Context, p *core.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	clone := *p
	f.products[p.ID] = &clone
	f.order = append(f.order, p.ID)
	return nil
}

func (f *FakeProductStorage) GetProductByID(_ context.Context, id string) (*core.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, core.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *FakeProductStorage) ListProducts(_ context.Context, opts core.ListOptions) ([]*core.Product, int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.listErr != nil {
		return nil, 0, f.listErr
	}

	var matched []*core.Product
	// newest first
	for i := len(f.order) - 1; i >= 0; i-- {
		p, ok := f.products[f.order[i]]
		if !ok {
			continue
		}
		if opts.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(opts.Category)) {
			continue
		}
		if len(opts.Tags) > 0 && !matchesAnyTag(p.Tags, opts.Tags) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}

	total := len(matched)
	offset := (opts.Page - 1) * opts.Limit
	if offset >= total {
		return nil, total, nil
	}
	end := offset + opts.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func matchesAnyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if strings.Contains(strings.ToLower(t), strings.ToLower(w)) {
				return true
			}
		}
	}
	return false
}

func (f *FakeProductStorage) UpdateProduct(_ context.Context, p *core.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[p.ID]; !ok {
		return core.ErrProductNotFound
	}
	p.UpdatedAt = time.Now()
	clone := *p
	f.products[p.ID] = &clone
	return nil
}

func (f *FakeProductStorage) DeleteProduct(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[id]; !ok {
		return core.ErrProductNotFound
	}
	delete(f.products, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}
