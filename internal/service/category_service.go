package service

import (
	"context"
	"errors"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description *string
	Image       *string
	ParentID    *uuid.UUID
	SortOrder   *int
	IsActive    *bool
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Name)
	}

	if _, err := s.categoryRepo.GetBySlug(ctx, slug); err == nil {
		return nil, domain.ErrSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.Get(ctx, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category := &domain.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Image:       input.Image,
		ParentID:    input.ParentID,
		IsActive:    true,
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, publicOnly bool) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx, publicOnly)
}

// Tree assembles top-level categories with their children and per-node
// product counts. One level of nesting is honored.
func (s *CategoryService) Tree(ctx context.Context) ([]*domain.CategoryNode, error) {
	categories, err := s.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uuid.UUID]*domain.CategoryNode, len(categories))
	var roots []*domain.CategoryNode
	for _, c := range categories {
		count, err := s.productRepo.CountByCategory(ctx, []uuid.UUID{c.ID})
		if err != nil {
			return nil, err
		}
		nodes[c.ID] = &domain.CategoryNode{Category: *c, ProductCount: count, Children: []*domain.CategoryNode{}}
	}
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// CategoryAndChildIDs expands a category to itself plus its direct
// children, for product filtering by category subtree.
func (s *CategoryService) CategoryAndChildIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	children, err := s.categoryRepo.ChildIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return append([]uuid.UUID{id}, children...), nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.Slug != "" && input.Slug != category.Slug {
		if _, err := s.categoryRepo.GetBySlug(ctx, input.Slug); err == nil {
			return nil, domain.ErrSlugExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Slug = input.Slug
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if input.Image != nil {
		category.Image = input.Image
	}
	if input.ParentID != nil {
		if *input.ParentID != category.ID {
			category.ParentID = input.ParentID
		}
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
