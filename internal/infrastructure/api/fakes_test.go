package api

import (
	"context"
	"errors"
	"sync"

	"inventify-hub/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store unavailable")

func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

// insertDoc copies fields under a fresh _id, the way the store assigns one
func insertDoc(fields map[string]interface{}) (domain.Document, string) {
	id := primitive.NewObjectID().Hex()
	doc := domain.Document{}
	for k, v := range fields {
		doc[k] = v
	}
	doc[domain.FieldID] = id
	return doc, id
}

func cloneDoc(doc domain.Document) domain.Document {
	cp := make(domain.Document, len(doc))
	for k, v := range doc {
		cp[k] = v
	}
	return cp
}

type memoryUsers struct {
	mu    sync.Mutex
	users []domain.Document
	fail  bool
}

func (m *memoryUsers) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, domain.User(cloneDoc(u)))
	}
	return out, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	for _, u := range m.users {
		if u.String(domain.FieldEmail) == email {
			return domain.User(cloneDoc(u)), nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) Create(_ context.Context, user domain.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, id := insertDoc(user)
	m.users = append(m.users, doc)
	return id, nil
}

func (m *memoryUsers) SetRole(_ context.Context, id string, role string) (*domain.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := &domain.UpdateResult{Acknowledged: true}
	for _, u := range m.users {
		if u[domain.FieldID] == id {
			result.MatchedCount = 1
			if u.String(domain.FieldRole) != role {
				u[domain.FieldRole] = role
				result.ModifiedCount = 1
			}
		}
	}
	return result, nil
}

func (m *memoryUsers) count(email string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, u := range m.users {
		if u.String(domain.FieldEmail) == email {
			n++
		}
	}
	return n
}

type memoryShops struct {
	mu    sync.Mutex
	shops []domain.Document
}

func (m *memoryShops) Create(_ context.Context, shop domain.Shop) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, id := insertDoc(shop)
	m.shops = append(m.shops, doc)
	return id, nil
}

func (m *memoryShops) List(ctx context.Context) ([]domain.Shop, error) {
	return m.ListByOwner(ctx, "")
}

func (m *memoryShops) ListByOwner(_ context.Context, ownerEmail string) ([]domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Shop{}
	for _, s := range m.shops {
		if ownerEmail == "" || s.String(domain.FieldOwnerEmail) == ownerEmail {
			out = append(out, domain.Shop(cloneDoc(s)))
		}
	}
	return out, nil
}

type memoryProducts struct {
	mu       sync.Mutex
	products []domain.Document
}

func (m *memoryProducts) Create(_ context.Context, product domain.Product) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, id := insertDoc(product)
	m.products = append(m.products, doc)
	return id, nil
}

func (m *memoryProducts) ListByOwner(_ context.Context, email string) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Product{}
	for _, p := range m.products {
		if p.String(domain.FieldEmail) == email {
			out = append(out, domain.Product(cloneDoc(p)))
		}
	}
	return out, nil
}

func (m *memoryProducts) Get(_ context.Context, id string) (domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p[domain.FieldID] == id {
			return domain.Product(cloneDoc(p)), nil
		}
	}
	return nil, nil
}

func (m *memoryProducts) Update(_ context.Context, id string, update domain.ProductUpdate) (*domain.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := &domain.UpdateResult{Acknowledged: true}
	for _, p := range m.products {
		if p[domain.FieldID] == id {
			result.MatchedCount = 1
			result.ModifiedCount = 1
			for field, value := range update {
				p[field] = value
			}
		}
	}
	return result, nil
}

func (m *memoryProducts) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := &domain.DeleteResult{Acknowledged: true}
	kept := m.products[:0]
	for _, p := range m.products {
		if p[domain.FieldID] == id {
			result.DeletedCount++
			continue
		}
		kept = append(kept, p)
	}
	m.products = kept
	return result, nil
}
