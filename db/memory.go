package db

import (
	"context"
	"fmt"
	"sync"

	"buildmarket/models"
)

// Journal receives every committed aggregate. A failing journal aborts the write.
type Journal interface {
	SaveProject(ctx context.Context, p models.Project) error
	SaveMaterial(ctx context.Context, m models.Material) error
	SaveOrder(ctx context.Context, o models.Order) error
}

// Snapshot is the full store contents in insertion order.
type Snapshot struct {
	Projects  []models.Project  `json:"projects"`
	Materials []models.Material `json:"materials"`
	Orders    []models.Order    `json:"orders"`
}

// MemoryStorage is the entity store. Collections keep insertion order and every
// write goes through a single lock, so one aggregate has at most one writer.
type MemoryStorage struct {
	mu      sync.RWMutex
	journal Journal

	projects    []models.Project
	projectIdx  map[string]int
	materials   []models.Material
	materialIdx map[string]int
	orders      []models.Order
	orderIdx    map[string]int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		projectIdx:  make(map[string]int),
		materialIdx: make(map[string]int),
		orderIdx:    make(map[string]int),
	}
}

// SetJournal installs write-through persistence. Call before serving traffic.
func (s *MemoryStorage) SetJournal(j Journal) {
	s.mu.Lock()
	s.journal = j
	s.mu.Unlock()
}

// Restore replaces the store contents with a snapshot.
func (s *MemoryStorage) Restore(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]models.Project, 0, len(snap.Projects))
	projectIdx := make(map[string]int, len(snap.Projects))
	for _, p := range snap.Projects {
		if _, dup := projectIdx[p.ID]; dup {
			return fmt.Errorf("restore: duplicate project %s", p.ID)
		}
		projectIdx[p.ID] = len(projects)
		projects = append(projects, p.Clone())
	}
	materials := make([]models.Material, 0, len(snap.Materials))
	materialIdx := make(map[string]int, len(snap.Materials))
	for _, m := range snap.Materials {
		if _, dup := materialIdx[m.ID]; dup {
			return fmt.Errorf("restore: duplicate material %s", m.ID)
		}
		materialIdx[m.ID] = len(materials)
		materials = append(materials, m)
	}
	orders := make([]models.Order, 0, len(snap.Orders))
	orderIdx := make(map[string]int, len(snap.Orders))
	for _, o := range snap.Orders {
		if _, dup := orderIdx[o.ID]; dup {
			return fmt.Errorf("restore: duplicate order %s", o.ID)
		}
		orderIdx[o.ID] = len(orders)
		orders = append(orders, o)
	}

	s.projects, s.projectIdx = projects, projectIdx
	s.materials, s.materialIdx = materials, materialIdx
	s.orders, s.orderIdx = orders, orderIdx
	return nil
}

// Projects

func (s *MemoryStorage) AddProject(ctx context.Context, p models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		return fmt.Errorf("add project: empty id")
	}
	if _, exists := s.projectIdx[p.ID]; exists {
		return fmt.Errorf("add project: %s already exists", p.ID)
	}
	p = p.Clone()
	if s.journal != nil {
		if err := s.journal.SaveProject(ctx, p); err != nil {
			return fmt.Errorf("add project: %w", err)
		}
	}
	s.projectIdx[p.ID] = len(s.projects)
	s.projects = append(s.projects, p)
	return nil
}

func (s *MemoryStorage) GetProject(ctx context.Context, id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.projectIdx[id]
	if !ok {
		return models.Project{}, models.NotFoundError{Entity: "project", ID: id}
	}
	return s.projects[i].Clone(), nil
}

func (s *MemoryStorage) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects), nil
}

// UpdateProject applies mutate to a copy of the project and commits it only
// when mutate returns nil.
func (s *MemoryStorage) UpdateProject(ctx context.Context, id string, mutate func(*models.Project) error) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.projectIdx[id]
	if !ok {
		return models.Project{}, models.NotFoundError{Entity: "project", ID: id}
	}
	next := s.projects[i].Clone()
	if err := mutate(&next); err != nil {
		return models.Project{}, err
	}
	next.ID = id
	if s.journal != nil {
		if err := s.journal.SaveProject(ctx, next); err != nil {
			return models.Project{}, fmt.Errorf("update project %s: %w", id, err)
		}
	}
	s.projects[i] = next
	return next.Clone(), nil
}

// Materials

func (s *MemoryStorage) AddMaterial(ctx context.Context, m models.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		return fmt.Errorf("add material: empty id")
	}
	if _, exists := s.materialIdx[m.ID]; exists {
		return fmt.Errorf("add material: %s already exists", m.ID)
	}
	if s.journal != nil {
		if err := s.journal.SaveMaterial(ctx, m); err != nil {
			return fmt.Errorf("add material: %w", err)
		}
	}
	s.materialIdx[m.ID] = len(s.materials)
	s.materials = append(s.materials, m)
	return nil
}

func (s *MemoryStorage) GetMaterial(ctx context.Context, id string) (models.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.materialIdx[id]
	if !ok {
		return models.Material{}, models.NotFoundError{Entity: "material", ID: id}
	}
	return s.materials[i], nil
}

func (s *MemoryStorage) ListMaterials(ctx context.Context) ([]models.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Material(nil), s.materials...), nil
}

func (s *MemoryStorage) UpdateMaterial(ctx context.Context, id string, mutate func(*models.Material) error) (models.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.materialIdx[id]
	if !ok {
		return models.Material{}, models.NotFoundError{Entity: "material", ID: id}
	}
	next := s.materials[i]
	if err := mutate(&next); err != nil {
		return models.Material{}, err
	}
	next.ID = id
	if s.journal != nil {
		if err := s.journal.SaveMaterial(ctx, next); err != nil {
			return models.Material{}, fmt.Errorf("update material %s: %w", id, err)
		}
	}
	s.materials[i] = next
	return next, nil
}

// Orders

// PlaceOrder builds an order from the current material and inserts it under
// the write lock, so the material can't change between the checks in build
// and the insert. Nothing is stored when build fails.
func (s *MemoryStorage) PlaceOrder(ctx context.Context, materialID string, build func(models.Material) (models.Order, error)) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.materialIdx[materialID]
	if !ok {
		return models.Order{}, models.NotFoundError{Entity: "material", ID: materialID}
	}
	o, err := build(s.materials[i])
	if err != nil {
		return models.Order{}, err
	}
	if o.ID == "" {
		return models.Order{}, fmt.Errorf("place order: empty id")
	}
	if _, exists := s.orderIdx[o.ID]; exists {
		return models.Order{}, fmt.Errorf("place order: %s already exists", o.ID)
	}
	if s.journal != nil {
		if err := s.journal.SaveOrder(ctx, o); err != nil {
			return models.Order{}, fmt.Errorf("place order: %w", err)
		}
	}
	s.orderIdx[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
	return o, nil
}

func (s *MemoryStorage) GetOrder(ctx context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.orderIdx[id]
	if !ok {
		return models.Order{}, models.NotFoundError{Entity: "order", ID: id}
	}
	return s.orders[i], nil
}

func (s *MemoryStorage) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...), nil
}

func (s *MemoryStorage) CountOrders(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders), nil
}

func (s *MemoryStorage) UpdateOrder(ctx context.Context, id string, mutate func(*models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.orderIdx[id]
	if !ok {
		return models.Order{}, models.NotFoundError{Entity: "order", ID: id}
	}
	next := s.orders[i]
	if err := mutate(&next); err != nil {
		return models.Order{}, err
	}
	next.ID = id
	if s.journal != nil {
		if err := s.journal.SaveOrder(ctx, next); err != nil {
			return models.Order{}, fmt.Errorf("update order %s: %w", id, err)
		}
	}
	s.orders[i] = next
	return next, nil
}

func cloneProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
