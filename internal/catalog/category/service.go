package category

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/librarydesk/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context) ([]Category, error) {
	return service.repo.List(ctx)
}

// Save creates a category, or updates selected when it is non-nil.
//
// Changing the description while keeping the name is refused; the operator deletes
// and re-adds the category instead.
func (service *Service) Save(ctx context.Context, selected *Category, form url.Values) error {
	category, err := parseForm(form)
	if err != nil {
		return err
	}

	if selected == nil {
		if err := service.repo.Create(ctx, category); err != nil {
			return err
		}
		service.logger.InfoContext(ctx, "category_created", slog.String("name", category.Name))
		return nil
	}

	restriction := &validate.Validator{}
	restriction.Custom(FieldDescription, restricted(*selected, category), "Cannot change without the name")
	if err := restriction.ErrMessage(MsgRestricted); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, selected.ID, category); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "category_updated", slog.Int("category_id", selected.ID))
	return nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "category_deleted", slog.Int("category_id", id))
	return nil
}

func parseForm(form url.Values) (Category, error) {
	category := Category{
		Name:        strings.TrimSpace(form.Get(FieldName)),
		Description: strings.TrimSpace(form.Get(FieldDescription)),
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, category.Name).
		Required(FieldDescription, category.Description)
	if err := validator.ErrMessage(MsgRequired); err != nil {
		return Category{}, err
	}

	validator.
		MaxLen(FieldName, category.Name, 100).
		MaxLen(FieldDescription, category.Description, 1000)
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Category{}, err
	}

	return category, nil
}
