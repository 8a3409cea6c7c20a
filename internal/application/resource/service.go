// Package resource provides the generic list/create/show/update/delete
// orchestration shared by every REST resource.
package resource

import (
	"context"
	"errors"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Operation names reported to the Recorder and used in persistence errors
const (
	OpList   = "list"
	OpCreate = "create"
	OpShow   = "show"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Store is the persistence collaborator of a resource
type Store[T any, F any] interface {
	shared.Repository[T, F]
}

// Rules validates and normalizes requests for one resource.
// Build turns a full create payload into a new entity, Apply merges the
// supplied subset of an update payload into an existing entity. Both return
// a *shared.ValidationError listing every failing field.
type Rules[T any, C any, U any] interface {
	Build(ctx context.Context, req C) (*T, error)
	Apply(ctx context.Context, entity *T, req U) error
}

// Attacher fills the typed relation references of loaded entities
type Attacher[T any] interface {
	Attach(ctx context.Context, entities []*T) error
}

// AttacherFunc adapts a function to the Attacher interface
type AttacherFunc[T any] func(ctx context.Context, entities []*T) error

// Attach calls f
func (f AttacherFunc[T]) Attach(ctx context.Context, entities []*T) error {
	return f(ctx, entities)
}

// Recorder receives one observation per completed operation
type Recorder interface {
	RecordOperation(ctx context.Context, resource, operation string, duration time.Duration, err error)
}

// Config wires a Service
type Config[T any, F any, C any, U any] struct {
	// Name is the singular resource name, e.g. "customer"
	Name     string
	Store    Store[T, F]
	Rules    Rules[T, C, U]
	Attacher Attacher[T] // optional
	Recorder Recorder    // optional
	Logger   *zap.Logger // optional
}

// Service implements the uniform resource operations on top of a Store
type Service[T any, F any, C any, U any] struct {
	name     string
	store    Store[T, F]
	rules    Rules[T, C, U]
	attacher Attacher[T]
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a Service from cfg
func NewService[T any, F any, C any, U any](cfg Config[T, F, C, U]) *Service[T, F, C, U] {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service[T, F, C, U]{
		name:     cfg.Name,
		store:    cfg.Store,
		rules:    cfg.Rules,
		attacher: cfg.Attacher,
		recorder: cfg.Recorder,
		logger:   logger.With(zap.String("resource", cfg.Name)),
	}
}

// Name returns the resource name
func (s *Service[T, F, C, U]) Name() string {
	return s.name
}

// List returns every entity matching filter with relations attached
func (s *Service[T, F, C, U]) List(ctx context.Context, filter F) (result []T, err error) {
	defer s.observe(ctx, OpList, time.Now(), &err)

	result, err = s.store.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err = s.attachSlice(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Create validates req, persists the resulting entity and returns it with relations attached.
// Relations that fail to load after the insert are left empty.
func (s *Service[T, F, C, U]) Create(ctx context.Context, req C) (entity *T, err error) {
	defer s.observe(ctx, OpCreate, time.Now(), &err)

	entity, err = s.rules.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	if err = s.store.Create(ctx, entity); err != nil {
		return nil, s.writeError(OpCreate, err)
	}
	s.attachAfterWrite(ctx, OpCreate, entity)
	return entity, nil
}

// Show returns the entity with relations attached, or shared.ErrNotFound
func (s *Service[T, F, C, U]) Show(ctx context.Context, id uuid.UUID) (entity *T, err error) {
	defer s.observe(ctx, OpShow, time.Now(), &err)

	entity, err = s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.attachOne(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update applies the supplied fields of req to the stored entity.
// Fields absent from req are left untouched.
func (s *Service[T, F, C, U]) Update(ctx context.Context, id uuid.UUID, req U) (entity *T, err error) {
	defer s.observe(ctx, OpUpdate, time.Now(), &err)

	entity, err = s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.rules.Apply(ctx, entity, req); err != nil {
		return nil, err
	}
	if err = s.store.Update(ctx, entity); err != nil {
		return nil, s.writeError(OpUpdate, err)
	}
	s.attachAfterWrite(ctx, OpUpdate, entity)
	return entity, nil
}

// Delete removes the entity. A missing entity yields shared.ErrNotFound.
func (s *Service[T, F, C, U]) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer s.observe(ctx, OpDelete, time.Now(), &err)

	if err = s.store.Delete(ctx, id); err != nil {
		return s.writeError(OpDelete, err)
	}
	return nil
}

// writeError keeps domain outcomes (not found, uniqueness, conflicts) as they
// are and wraps every other store failure into a PersistenceError.
func (s *Service[T, F, C, U]) writeError(op string, err error) error {
	var verr *shared.ValidationError
	var derr *shared.DomainError
	var perr *shared.PersistenceError
	if errors.As(err, &verr) || errors.As(err, &derr) || errors.As(err, &perr) {
		return err
	}

	s.logger.Error("Persistence failure",
		zap.String("operation", op),
		zap.Error(err),
	)
	return shared.NewPersistenceError(op+" "+s.name, err)
}

func (s *Service[T, F, C, U]) attachOne(ctx context.Context, entity *T) error {
	if s.attacher == nil {
		return nil
	}
	return s.attacher.Attach(ctx, []*T{entity})
}

// attachAfterWrite runs once the write is stored. A failure leaves the
// relations empty and is only logged, so the caller still sees the success.
func (s *Service[T, F, C, U]) attachAfterWrite(ctx context.Context, op string, entity *T) {
	if err := s.attachOne(ctx, entity); err != nil {
		s.logger.Warn("Relations not attached after write",
			zap.String("operation", op),
			zap.Error(err),
		)
	}
}

func (s *Service[T, F, C, U]) attachSlice(ctx context.Context, entities []T) error {
	if s.attacher == nil || len(entities) == 0 {
		return nil
	}
	ptrs := make([]*T, len(entities))
	for i := range entities {
		ptrs[i] = &entities[i]
	}
	return s.attacher.Attach(ctx, ptrs)
}

func (s *Service[T, F, C, U]) observe(ctx context.Context, op string, start time.Time, err *error) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordOperation(ctx, s.name, op, time.Since(start), *err)
}
