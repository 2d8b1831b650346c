package publisher_test

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
	"github.com/taibuivan/librarydesk/internal/catalog/publisher"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/internal/notify"
	"github.com/taibuivan/librarydesk/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newService(t *testing.T) (*publisher.Service, *backendtest.Server) {
	t.Helper()
	fake := backendtest.New(t)
	return publisher.NewService(publisher.NewRESTRepository(fake.Client()), discardLogger), fake
}

var penguin = publisher.Publisher{ID: 4, Name: "Penguin", EstablishmentYear: 1935, Address: "London"}

/*
TestService_Create sends the establishment year as a number.
*/
func TestService_Create(t *testing.T) {
	service, fake := newService(t)

	form := url.Values{"name": {"Penguin"}, "establishmentYear": {"1935"}, "address": {"London"}}
	require.NoError(t, service.Save(context.Background(), nil, form))

	writes := fake.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "/publishers", writes[0].Path)
	assert.JSONEq(t, `{"name":"Penguin","establishmentYear":1935,"address":"London"}`, string(writes[0].Body))
}

/*
TestService_UpdateRestriction covers the address-only update rule.
*/
func TestService_UpdateRestriction(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		allowed bool
	}{
		{"AddressOnly_Rejected", url.Values{"name": {"Penguin"}, "establishmentYear": {"1935"}, "address": {"Harmondsworth"}}, false},
		{"NameAndAddress_Allowed", url.Values{"name": {"Penguin Books"}, "establishmentYear": {"1935"}, "address": {"Harmondsworth"}}, true},
		{"YearAndAddress_Allowed", url.Values{"name": {"Penguin"}, "establishmentYear": {"1936"}, "address": {"Harmondsworth"}}, true},
		{"Unchanged_Allowed", url.Values{"name": {"Penguin"}, "establishmentYear": {"1935"}, "address": {"London"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fake := newService(t)
			selected := penguin

			err := service.Save(context.Background(), &selected, tt.form)

			if tt.allowed {
				require.NoError(t, err)
				require.Len(t, fake.Writes(), 1)
				assert.Equal(t, http.MethodPut, fake.Writes()[0].Method)
				assert.Equal(t, "/publishers/4", fake.Writes()[0].Path)
				return
			}

			require.Error(t, err)
			assert.Equal(t, publisher.MsgRestricted, err.Error())
			assert.Empty(t, fake.Requests())
		})
	}
}

/*
TestPage_RestrictedUpdate shows an error and issues no request for an address-only update.
*/
func TestPage_RestrictedUpdate(t *testing.T) {
	service, fake := newService(t)
	fake.Reply(http.MethodGet, "/publishers", http.StatusOK, []publisher.Publisher{penguin})
	ctx := context.Background()

	page := console.NewPage(publisher.NewSchema(), console.Service[publisher.Publisher](service), console.State[publisher.Publisher]{})
	page.Select(ctx, 4)
	require.True(t, page.Editing())
	requestsBefore := len(fake.Requests())

	page.Submit(ctx, url.Values{"name": {"Penguin"}, "establishmentYear": {"1935"}, "address": {"Harmondsworth"}})

	assert.Len(t, fake.Requests(), requestsBefore)
	assert.Equal(t, notify.SeverityError, page.Notification().Severity)
	assert.Equal(t, publisher.MsgRestricted, page.Notification().Message)
	assert.True(t, page.Editing())
}

/*
TestService_Validation verifies required and numeric fields.
*/
func TestService_Validation(t *testing.T) {
	service, fake := newService(t)
	ctx := context.Background()

	for _, form := range []url.Values{
		{"name": {"Penguin"}, "address": {"London"}},
		{"establishmentYear": {"1935"}, "address": {"London"}},
		{"name": {"Penguin"}, "establishmentYear": {"1935"}, "address": {" "}},
	} {
		err := service.Save(ctx, nil, form)
		require.Error(t, err)
		assert.Equal(t, publisher.MsgRequired, err.Error())
	}

	err := service.Save(ctx, nil, url.Values{"name": {"Penguin"}, "establishmentYear": {"nineteen"}, "address": {"London"}})
	require.Error(t, err)
	assert.Equal(t, publisher.MsgInvalid, err.Error())

	err = service.Save(ctx, nil, url.Values{"name": {"Penguin"}, "establishmentYear": {"-1935"}, "address": {"London"}})
	require.Error(t, err)
	assert.Equal(t, publisher.MsgInvalid, err.Error())
	assert.Equal(t, "establishmentYear", apperr.As(err).Details[0].Field)

	assert.Empty(t, fake.Requests())
}
