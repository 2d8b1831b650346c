package publisher

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/librarydesk/internal/platform/validate"
	"github.com/taibuivan/librarydesk/pkg/convert"
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

func (service *Service) List(ctx context.Context) ([]Publisher, error) {
	return service.repo.List(ctx)
}

// Save creates a publisher, or updates selected when it is non-nil.
//
// An update that changes the address while keeping name and establishment year is
// refused before reaching the backend.
func (service *Service) Save(ctx context.Context, selected *Publisher, form url.Values) error {
	publisher, err := parseForm(form)
	if err != nil {
		return err
	}

	if selected == nil {
		if err := service.repo.Create(ctx, publisher); err != nil {
			return err
		}
		service.logger.InfoContext(ctx, "publisher_created", slog.String("name", publisher.Name))
		return nil
	}

	restriction := &validate.Validator{}
	restriction.Custom(FieldAddress, restricted(*selected, publisher), "Delete and recreate the publisher to change only its address")
	if err := restriction.ErrMessage(MsgRestricted); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, selected.ID, publisher); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "publisher_updated", slog.Int("publisher_id", selected.ID))
	return nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "publisher_deleted", slog.Int("publisher_id", id))
	return nil
}

// maxYear bounds the establishment year to four digits.
const maxYear = 9999

func parseForm(form url.Values) (Publisher, error) {
	name := strings.TrimSpace(form.Get(FieldName))
	year := strings.TrimSpace(form.Get(FieldEstablishmentYear))
	address := strings.TrimSpace(form.Get(FieldAddress))

	validator := &validate.Validator{}
	validator.
		Required(FieldName, name).
		Required(FieldEstablishmentYear, year).
		Required(FieldAddress, address)
	if err := validator.ErrMessage(MsgRequired); err != nil {
		return Publisher{}, err
	}

	validator.
		MaxLen(FieldName, name, 200).
		Int(FieldEstablishmentYear, year).
		MaxLen(FieldAddress, address, 500)
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Publisher{}, err
	}

	validator.Range(FieldEstablishmentYear, convert.ToInt(year), 0, maxYear)
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Publisher{}, err
	}

	return Publisher{
		Name:              name,
		EstablishmentYear: convert.ToInt(year),
		Address:           address,
	}, nil
}
