package repositories

import (
	"bistro-boss/models"
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryCollection keeps documents in insertion order, standing in for a MongoDB collection
type memoryCollection[T any] struct {
	mu   sync.RWMutex
	docs []T
	id   func(*T) *primitive.ObjectID
}

func (c *memoryCollection[T]) find(match func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for i := range c.docs {
		if match == nil || match(&c.docs[i]) {
			out = append(out, c.docs[i])
		}
	}
	return out
}

func (c *memoryCollection[T]) insert(doc T) *models.InsertResult {
	result, _ := c.insertUnless(doc, nil)
	return result
}

// insertUnless inserts doc unless an existing document satisfies conflict, checked under the same lock
func (c *memoryCollection[T]) insertUnless(doc T, conflict func(*T) bool) (*models.InsertResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conflict != nil {
		for i := range c.docs {
			if conflict(&c.docs[i]) {
				return nil, false
			}
		}
	}
	id := c.id(&doc)
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	c.docs = append(c.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: *id}, true
}

func (c *memoryCollection[T]) update(id primitive.ObjectID, apply func(*T) bool) *models.UpdateResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := &models.UpdateResult{Acknowledged: true}
	for i := range c.docs {
		if *c.id(&c.docs[i]) == id {
			result.MatchedCount = 1
			if apply(&c.docs[i]) {
				result.ModifiedCount = 1
			}
			break
		}
	}
	return result
}

func (c *memoryCollection[T]) delete(id primitive.ObjectID, match func(*T) bool) *models.DeleteResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := &models.DeleteResult{Acknowledged: true}
	for i := range c.docs {
		if *c.id(&c.docs[i]) == id && (match == nil || match(&c.docs[i])) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result
}

// NewMemoryRepositories returns repositories backed by process memory, used when no database is configured
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Users:   NewMemoryUserRepository(),
		Menu:    NewMemoryMenuRepository(),
		Reviews: NewMemoryReviewRepository(),
		Carts:   NewMemoryCartRepository(),
	}
}

type MemoryUserRepository struct {
	users memoryCollection[models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: memoryCollection[models.User]{id: func(u *models.User) *primitive.ObjectID { return &u.ID }}}
}

func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.users.find(nil), nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	found := r.users.find(func(u *models.User) bool { return u.Email == email })
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return &found[0], nil
}

func (r *MemoryUserRepository) Create(ctx context.Context, user models.User) (*models.InsertResult, error) {
	result, ok := r.users.insertUnless(user, func(u *models.User) bool { return u.Email == user.Email })
	if !ok {
		return nil, ErrDuplicate
	}
	return result, nil
}

func (r *MemoryUserRepository) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	return r.users.update(id, func(u *models.User) bool {
		if u.Role == models.RoleAdmin {
			return false
		}
		u.Role = models.RoleAdmin
		return true
	}), nil
}

type MemoryMenuRepository struct {
	items memoryCollection[models.MenuItem]
}

func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{items: memoryCollection[models.MenuItem]{id: func(m *models.MenuItem) *primitive.ObjectID { return &m.ID }}}
}

func (r *MemoryMenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	return r.items.find(nil), nil
}

func (r *MemoryMenuRepository) Create(ctx context.Context, item models.MenuItem) (*models.InsertResult, error) {
	return r.items.insert(item), nil
}

type MemoryReviewRepository struct {
	reviews memoryCollection[models.Review]
}

func NewMemoryReviewRepository(seed ...models.Review) *MemoryReviewRepository {
	r := &MemoryReviewRepository{reviews: memoryCollection[models.Review]{id: func(rv *models.Review) *primitive.ObjectID { return &rv.ID }}}
	for _, review := range seed {
		r.reviews.insert(review)
	}
	return r
}

func (r *MemoryReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.reviews.find(nil), nil
}

type MemoryCartRepository struct {
	entries memoryCollection[models.CartEntry]
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{entries: memoryCollection[models.CartEntry]{id: func(e *models.CartEntry) *primitive.ObjectID { return &e.ID }}}
}

func (r *MemoryCartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	return r.entries.find(func(e *models.CartEntry) bool { return e.Email == email }), nil
}

func (r *MemoryCartRepository) Create(ctx context.Context, entry models.CartEntry) (*models.InsertResult, error) {
	return r.entries.insert(entry), nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, id primitive.ObjectID, owner string) (*models.DeleteResult, error) {
	var match func(*models.CartEntry) bool
	if owner != "" {
		match = func(e *models.CartEntry) bool { return e.Email == owner }
	}
	return r.entries.delete(id, match), nil
}
