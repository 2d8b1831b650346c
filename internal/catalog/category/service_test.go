package category_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/librarydesk/internal/backend/backendtest"
	"github.com/taibuivan/librarydesk/internal/catalog/category"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/internal/notify"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newService(t *testing.T) (*category.Service, *backendtest.Server) {
	t.Helper()
	fake := backendtest.New(t)
	return category.NewService(category.NewRESTRepository(fake.Client()), discardLogger), fake
}

var fiction = category.Category{ID: 2, Name: "Fiction", Description: "Novels and stories"}

/*
TestService_UpdateRestriction covers the description-only update rule.
*/
func TestService_UpdateRestriction(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		allowed bool
	}{
		{"DescriptionOnly_Rejected", url.Values{"name": {"Fiction"}, "description": {"Prose"}}, false},
		{"NameOnly_Allowed", url.Values{"name": {"Literature"}, "description": {"Novels and stories"}}, true},
		{"Both_Allowed", url.Values{"name": {"Literature"}, "description": {"Prose"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fake := newService(t)
			selected := fiction

			err := service.Save(context.Background(), &selected, tt.form)

			if tt.allowed {
				require.NoError(t, err)
				require.Len(t, fake.Writes(), 1)
				assert.Equal(t, "/categories/2", fake.Writes()[0].Path)
				return
			}

			require.Error(t, err)
			assert.Equal(t, category.MsgRestricted, err.Error())
			assert.Empty(t, fake.Requests())
		})
	}
}

/*
TestPage_Submit covers required fields and a successful create on the category page.
*/
func TestPage_Submit(t *testing.T) {
	ctx := context.Background()
	service, fake := newService(t)
	schema := category.NewSchema()

	page := console.NewPage(schema, console.Service[category.Category](service), console.State[category.Category]{})

	for _, form := range []url.Values{
		{"name": {"Poetry"}},
		{"description": {"Verse"}},
		{"name": {"   "}, "description": {"Verse"}},
	} {
		page.Submit(ctx, form)

		assert.Empty(t, fake.Requests())
		assert.Equal(t, notify.SeverityError, page.Notification().Severity)
		assert.Equal(t, category.MsgRequired, page.Notification().Message)
		assert.Equal(t, form, page.State().Form, "inputs kept after a rejected submit")
	}

	page.Submit(ctx, url.Values{"name": {"Poetry"}, "description": {"Verse"}})

	assert.Equal(t, 1, fake.Count(http.MethodPost, "/categories"))
	assert.Equal(t, notify.Success(category.MsgCreated), page.Notification())
	assert.Empty(t, page.State().Form)
}
