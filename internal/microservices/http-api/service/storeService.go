package service

import (
	"context"
	"errors"
	"strings"

	"storerating/internal/apperror"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/repository"
)

const (
	msgOwnerNotFound      = "Owner not found"
	msgOwnerRole          = "Owner must have store_owner role"
	msgInsufficientAccess = "Insufficient permissions"
)

type StoreService interface {
	// List is filtered to the caller's own stores when the caller is a store owner.
	List(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.StoreListResponse, error)
	Get(ctx context.Context, id int64) (*dto.StoreResponse, error)
	Create(ctx context.Context, p policy.Principal, req dto.CreateStoreRequest) (*dto.StoreResponse, error)
	Update(ctx context.Context, p policy.Principal, id int64, req dto.UpdateStoreRequest) (*dto.StoreResponse, error)
	Delete(ctx context.Context, p policy.Principal, id int64) error
	ListByOwner(ctx context.Context, p policy.Principal, ownerID int64, params repository.ListParams) (*dto.StoreListResponse, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

func NewStoreService(storeRepo repository.StoreRepository, userRepo repository.UserRepository) StoreService {
	return &storeService{storeRepo: storeRepo, userRepo: userRepo}
}

func (s *storeService) List(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.StoreListResponse, error) {
	return s.list(ctx, policy.StoreScope(p), params)
}

func (s *storeService) ListByOwner(ctx context.Context, p policy.Principal, ownerID int64, params repository.ListParams) (*dto.StoreListResponse, error) {
	if !policy.CanViewOwnerStores(p, ownerID) {
		return nil, apperror.Forbidden(msgInsufficientAccess)
	}
	return s.list(ctx, ownerID, params)
}

func (s *storeService) list(ctx context.Context, ownerID int64, params repository.ListParams) (*dto.StoreListResponse, error) {
	rows, total, err := s.storeRepo.List(ctx, ownerID, params)
	if err != nil {
		return nil, apperror.Internal(err, "list stores")
	}
	return &dto.StoreListResponse{
		Stores:     dto.FromStoresWithStats(rows),
		Pagination: dto.NewPagination("Stores", total, params.Page, params.Limit),
	}, nil
}

func (s *storeService) Get(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	store, err := s.storeRepo.FindWithStats(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgStoreNotFound)
		}
		return nil, apperror.Internal(err, "load store")
	}
	resp := dto.FromStoreWithStats(store)
	return &resp, nil
}

func (s *storeService) Create(ctx context.Context, p policy.Principal, req dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if !policy.CanManageStores(p) {
		return nil, apperror.Forbidden(msgInsufficientAccess)
	}
	if err := s.checkOwner(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	store := &models.Store{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		OwnerID: req.OwnerID,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, apperror.Internal(err, "create store")
	}
	resp := dto.FromStore(store)
	return &resp, nil
}

func (s *storeService) Update(ctx context.Context, p policy.Principal, id int64, req dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if !policy.CanManageStores(p) {
		return nil, apperror.Forbidden(msgInsufficientAccess)
	}

	update := repository.StoreUpdate{Name: req.Name, Address: req.Address, OwnerID: req.OwnerID}
	if update.Empty() {
		return nil, apperror.Validation(msgNoUpdates)
	}

	if _, err := s.storeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgStoreNotFound)
		}
		return nil, apperror.Internal(err, "load store")
	}
	if req.OwnerID != nil {
		if err := s.checkOwner(ctx, *req.OwnerID); err != nil {
			return nil, err
		}
	}

	if err := s.storeRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgStoreNotFound)
		}
		return nil, apperror.Internal(err, "update store")
	}
	return s.Get(ctx, id)
}

func (s *storeService) Delete(ctx context.Context, p policy.Principal, id int64) error {
	if !policy.CanManageStores(p) {
		return apperror.Forbidden(msgInsufficientAccess)
	}
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgStoreNotFound)
		}
		return apperror.Internal(err, "delete store")
	}
	return nil
}

// checkOwner validates an owner assignment. The role is checked only here, at
// assignment time; a later role change does not touch existing stores.
func (s *storeService) checkOwner(ctx context.Context, ownerID int64) error {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgOwnerNotFound)
		}
		return apperror.Internal(err, "load owner")
	}
	if !policy.CanBeStoreOwner(owner) {
		return apperror.Validation(msgOwnerRole)
	}
	return nil
}
