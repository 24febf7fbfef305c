package service

import (
	"context"
	"errors"

	"storerating/internal/apperror"
	"storerating/internal/metrics"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/repository"
)

const (
	msgStoreNotFound      = "Store not found"
	msgOwnStore           = "Store owners cannot rate their own stores"
	msgAlreadyRated       = "You have already rated this store"
	msgRatingEditDenied   = "Rating not found or you do not have permission to edit it"
	msgRatingDeleteDenied = "Rating not found or you do not have permission to delete it"
	msgRatingViewDenied   = "Rating not found or you do not have permission to view it"
	msgOwnerRatingsDenied = "Only store owners can view store ratings"
)

// RatingRecorder receives rating lifecycle events; *metrics.Metrics satisfies it.
type RatingRecorder interface {
	RecordRatingEvent(event string)
}

type RatingService interface {
	Submit(ctx context.Context, p policy.Principal, req dto.SubmitRatingRequest) (*dto.RatingResponse, error)
	Update(ctx context.Context, p policy.Principal, id int64, req dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	Delete(ctx context.Context, p policy.Principal, id int64) error
	Get(ctx context.Context, p policy.Principal, id int64) (*dto.RatingResponse, error)
	ListByStore(ctx context.Context, storeID int64, params repository.ListParams) (*dto.RatingListResponse, error)
	ListByUser(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.RatingListResponse, error)
	ListByStoreOwner(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.RatingListResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
	recorder   RatingRecorder
}

func NewRatingService(ratingRepo repository.RatingRepository, storeRepo repository.StoreRepository, recorder RatingRecorder) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
		recorder:   recorder,
	}
}

func (s *ratingService) record(event string) {
	if s.recorder != nil {
		s.recorder.RecordRatingEvent(event)
	}
}

// Submit creates the caller's single rating for a store.
func (s *ratingService) Submit(ctx context.Context, p policy.Principal, req dto.SubmitRatingRequest) (*dto.RatingResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgStoreNotFound)
		}
		return nil, apperror.Internal(err, "load store")
	}

	if !policy.CanRateStore(p, store) {
		return nil, apperror.Forbidden(msgOwnStore)
	}

	if _, err := s.ratingRepo.FindByUserAndStore(ctx, p.UserID, store.ID); err == nil {
		s.record(metrics.RatingConflict)
		return nil, apperror.Conflict(msgAlreadyRated)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Internal(err, "check existing rating")
	}

	rating := &models.Rating{
		UserID:  p.UserID,
		StoreID: store.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		// a concurrent submit won between the check and the insert
		if errors.Is(err, repository.ErrDuplicateRating) {
			s.record(metrics.RatingConflict)
			return nil, apperror.Conflict(msgAlreadyRated)
		}
		return nil, apperror.Internal(err, "create rating")
	}

	s.record(metrics.RatingSubmitted)
	resp := dto.FromRating(rating)
	return &resp, nil
}

// Update changes value and comment of the caller's own rating. Admins get no override.
func (s *ratingService) Update(ctx context.Context, p policy.Principal, id int64, req dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	if err := s.authorOnly(ctx, p, id, msgRatingEditDenied); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.UpdateByAuthor(ctx, id, p.UserID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgRatingEditDenied)
		}
		return nil, apperror.Internal(err, "update rating")
	}

	s.record(metrics.RatingUpdated)
	resp := dto.FromRating(rating)
	return &resp, nil
}

func (s *ratingService) Delete(ctx context.Context, p policy.Principal, id int64) error {
	if err := s.authorOnly(ctx, p, id, msgRatingDeleteDenied); err != nil {
		return err
	}

	if err := s.ratingRepo.DeleteByAuthor(ctx, id, p.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgRatingDeleteDenied)
		}
		return apperror.Internal(err, "delete rating")
	}

	s.record(metrics.RatingDeleted)
	return nil
}

// authorOnly hides ratings the caller did not write behind the same NOT_FOUND
// as ratings that do not exist.
func (s *ratingService) authorOnly(ctx context.Context, p policy.Principal, id int64, denied string) error {
	rating, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(denied)
		}
		return apperror.Internal(err, "load rating")
	}
	if !policy.CanModifyRating(p, rating) {
		return apperror.NotFound(denied)
	}
	return nil
}

func (s *ratingService) Get(ctx context.Context, p policy.Principal, id int64) (*dto.RatingResponse, error) {
	detail, err := s.ratingRepo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgRatingViewDenied)
		}
		return nil, apperror.Internal(err, "load rating")
	}
	if !policy.CanViewRating(p, detail.UserID, detail.StoreOwnerID) {
		return nil, apperror.NotFound(msgRatingViewDenied)
	}
	resp := dto.FromRatingDetail(detail)
	return &resp, nil
}

func (s *ratingService) ListByStore(ctx context.Context, storeID int64, params repository.ListParams) (*dto.RatingListResponse, error) {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgStoreNotFound)
		}
		return nil, apperror.Internal(err, "load store")
	}

	rows, total, err := s.ratingRepo.ListByStore(ctx, storeID, params)
	if err != nil {
		return nil, apperror.Internal(err, "list store ratings")
	}
	return ratingList(rows, total, params), nil
}

func (s *ratingService) ListByUser(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.RatingListResponse, error) {
	rows, total, err := s.ratingRepo.ListByUser(ctx, p.UserID, params)
	if err != nil {
		return nil, apperror.Internal(err, "list user ratings")
	}
	return ratingList(rows, total, params), nil
}

func (s *ratingService) ListByStoreOwner(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.RatingListResponse, error) {
	if !policy.CanViewOwnerRatings(p) {
		return nil, apperror.Forbidden(msgOwnerRatingsDenied)
	}

	rows, total, err := s.ratingRepo.ListByStoreOwner(ctx, p.UserID, params)
	if err != nil {
		return nil, apperror.Internal(err, "list owner ratings")
	}
	return ratingList(rows, total, params), nil
}

func ratingList(rows []models.RatingDetail, total int64, params repository.ListParams) *dto.RatingListResponse {
	return &dto.RatingListResponse{
		Ratings:    dto.FromRatingDetails(rows),
		Pagination: dto.NewPagination("Ratings", total, params.Page, params.Limit),
	}
}
