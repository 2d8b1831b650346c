package author

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

func (service *Service) List(ctx context.Context) ([]Author, error) {
	return service.repo.List(ctx)
}

// Save creates an author, or updates selected when it is non-nil.
func (service *Service) Save(ctx context.Context, selected *Author, form url.Values) error {
	author, err := parseForm(form)
	if err != nil {
		return err
	}

	if selected == nil {
		if err := service.repo.Create(ctx, author); err != nil {
			return err
		}
		service.logger.InfoContext(ctx, "author_created", slog.String("name", author.Name))
		return nil
	}

	if err := service.repo.Update(ctx, selected.ID, author); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "author_updated", slog.Int("author_id", selected.ID))
	return nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "author_deleted", slog.Int("author_id", id))
	return nil
}

func parseForm(form url.Values) (Author, error) {
	author := Author{
		Name:      strings.TrimSpace(form.Get(FieldName)),
		BirthDate: strings.TrimSpace(form.Get(FieldBirthDate)),
		Country:   strings.TrimSpace(form.Get(FieldCountry)),
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, author.Name).
		Required(FieldBirthDate, author.BirthDate).
		Required(FieldCountry, author.Country)
	if err := validator.ErrMessage(MsgRequired); err != nil {
		return Author{}, err
	}

	validator.
		MaxLen(FieldName, author.Name, 200).
		Date(FieldBirthDate, author.BirthDate).
		MaxLen(FieldCountry, author.Country, 100)
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Author{}, err
	}

	return author, nil
}
