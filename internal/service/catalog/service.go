package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/catalog"
	studioRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/studio"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog/models"
)

// Service сервис публичного каталога: профиль студии и пакеты.
// Путь бронирования кеш не использует, проверки там всегда идут по БД
type Service struct {
	studioRepo  StudioRepository
	packageRepo PackageRepository
	cache       Cache
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога. cache может быть nil
func NewService(
	studioRepo StudioRepository,
	packageRepo PackageRepository,
	cache Cache,
	logger Logger,
) *Service {
	return &Service{
		studioRepo:  studioRepo,
		packageRepo: packageRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetStudio получает публичный профиль активной студии
func (s *Service) GetStudio(ctx context.Context, slug string) (*models.StudioResponse, error) {
	s.logger.Info("GetStudio: fetching studio slug=%s", slug)

	key := "studio:" + slug
	var cached models.StudioResponse
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	studio, err := s.studioRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, studioRepo.ErrStudioNotFound) {
			s.logger.Warn("GetStudio: studio slug=%s not found", slug)
			return nil, ErrStudioNotFound
		}
		s.logger.Error("GetStudio: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetStudio - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainStudio(studio)
	s.toCache(ctx, key, resp)

	return resp, nil
}

// ListPackages получает активные публичные пакеты студии
// Сортировка: display_order по возрастанию, затем created_at по убыванию
func (s *Service) ListPackages(ctx context.Context, slug string) ([]models.PackageResponse, error) {
	s.logger.Info("ListPackages: fetching packages of studio slug=%s", slug)

	key := "studio:" + slug + ":packages"
	var cached []models.PackageResponse
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	studio, err := s.studioRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, studioRepo.ErrStudioNotFound) {
			s.logger.Warn("ListPackages: studio slug=%s not found", slug)
			return nil, ErrStudioNotFound
		}
		s.logger.Error("ListPackages: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: ListPackages - get studio: %v", ErrInternal, err)
	}

	packages, err := s.packageRepo.ListPublicByStudio(ctx, studio.ID)
	if err != nil {
		s.logger.Error("ListPackages: repository error for studio id=%s: %v", studio.ID, err)
		return nil, fmt.Errorf("%w: ListPackages - list packages: %v", ErrInternal, err)
	}

	resp := models.FromDomainPackageList(packages)
	s.toCache(ctx, key, resp)

	s.logger.Info("ListPackages: found %d packages for studio slug=%s", len(resp), slug)
	return resp, nil
}

// GetPackage получает активный публичный пакет студии по slug
func (s *Service) GetPackage(ctx context.Context, studioSlug, packageSlug string) (*models.PackageResponse, error) {
	s.logger.Info("GetPackage: fetching package slug=%s of studio slug=%s", packageSlug, studioSlug)

	key := "studio:" + studioSlug + ":package:" + packageSlug
	var cached models.PackageResponse
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	studio, err := s.studioRepo.GetActiveBySlug(ctx, studioSlug)
	if err != nil {
		if errors.Is(err, studioRepo.ErrStudioNotFound) {
			s.logger.Warn("GetPackage: studio slug=%s not found", studioSlug)
			return nil, ErrStudioNotFound
		}
		s.logger.Error("GetPackage: repository error for slug=%s: %v", studioSlug, err)
		return nil, fmt.Errorf("%w: GetPackage - get studio: %v", ErrInternal, err)
	}

	pkg, err := s.packageRepo.GetPublicByStudioAndSlug(ctx, studio.ID, packageSlug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			s.logger.Warn("GetPackage: package slug=%s not found in studio slug=%s", packageSlug, studioSlug)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetPackage: repository error for package slug=%s: %v", packageSlug, err)
		return nil, fmt.Errorf("%w: GetPackage - get package: %v", ErrInternal, err)
	}

	resp := models.FromDomainPackage(pkg)
	s.toCache(ctx, key, resp)

	return resp, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.logger.Warn("catalog cache: get %s: %v", key, err)
		return false
	}
	return hit
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("catalog cache: set %s: %v", key, err)
	}
}
