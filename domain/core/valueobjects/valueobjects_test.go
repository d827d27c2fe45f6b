package valueobjects

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

func TestNewID(t *testing.T) {
	id := NewID()

	assert.False(t, id.IsZero())
	_, err := uuid.Parse(id.String())
	assert.NoError(t, err)
	assert.False(t, id.Equals(NewID()))
}

func TestParseID(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid UUID", input: valid},
		{name: "empty string", input: "", wantErr: true},
		{name: "not a UUID", input: "not-a-uuid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, pkgerrors.ErrInvalidID)
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestParseIDOrNew(t *testing.T) {
	id, err := ParseIDOrNew("")
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	same := MustParseID(id.String())
	assert.True(t, same.Equals(id))
}

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "minimum length", input: "abc"},
		{name: "maximum length", input: strings.Repeat("a", 50)},
		{name: "multibyte runes count once", input: "çãé"},
		{name: "too short", input: "ab", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 51), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := NewName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, pkgerrors.ErrNameLength)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, name.String())
		})
	}
}

func TestNewDescription(t *testing.T) {
	_, err := NewDescription("ok")
	assert.ErrorIs(t, err, pkgerrors.ErrDescriptionLength)

	_, err = NewDescription(strings.Repeat("d", 1001))
	assert.ErrorIs(t, err, pkgerrors.ErrDescriptionLength)

	d, err := NewDescription(strings.Repeat("d", 1000))
	require.NoError(t, err)
	assert.Len(t, d.String(), 1000)

	optional, err := NewOptionalDescription(nil)
	assert.NoError(t, err)
	assert.Nil(t, optional)

	text := "a crispy burger"
	optional, err = NewOptionalDescription(&text)
	require.NoError(t, err)
	assert.Equal(t, text, optional.String())
}

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "already canonical", input: "10.50", want: "10.50"},
		{name: "rounds up", input: "10.501", want: "10.51"},
		{name: "integer", input: "7", want: "7.00"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "tiny negative rounds to zero", input: "-0.001", want: "0.00"},
		{name: "negative", input: "-0.01", wantErr: pkgerrors.ErrPriceNegative},
		{name: "not a number", input: "ten", wantErr: pkgerrors.ErrPriceInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := ParsePrice(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, price.String())
		})
	}
}

func TestPrice_CanonicalizationIsIdempotent(t *testing.T) {
	for _, raw := range []string{"0", "0.001", "1.005", "19.99", "123456.789"} {
		first, err := ParsePrice(raw)
		require.NoError(t, err)

		second, err := NewPrice(first.Value())
		require.NoError(t, err)

		assert.True(t, first.Equals(second), raw)
	}
}

func TestPrice_EqualityByValue(t *testing.T) {
	a, _ := NewPrice(decimal.RequireFromString("1.5"))
	b, _ := NewPrice(decimal.RequireFromString("1.50"))
	c, _ := NewPrice(decimal.RequireFromString("1.51"))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.True(t, ZeroPrice().IsZero())
}

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		wantErr error
	}{
		{name: "zero to one", min: 0, max: 1},
		{name: "equal bounds", min: 2, max: 2},
		{name: "min negative", min: -1, max: 1, wantErr: pkgerrors.ErrQuantityMinNegative},
		{name: "max zero", min: 0, max: 0, wantErr: pkgerrors.ErrQuantityMaxNotPositive},
		{name: "max negative", min: 0, max: -3, wantErr: pkgerrors.ErrQuantityMaxNotPositive},
		{name: "max below min", min: 3, max: 2, wantErr: pkgerrors.ErrQuantityMaxLessThanMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuantity(tt.min, tt.max)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.min, q.MinPermitted())
			assert.Equal(t, tt.max, q.MaxPermitted())
		})
	}
}

func TestQuantity_ViolationsAreDistinct(t *testing.T) {
	_, minErr := NewQuantity(-1, 1)
	_, maxErr := NewQuantity(0, 0)
	_, orderErr := NewQuantity(2, 1)

	assert.False(t, errors.Is(minErr, pkgerrors.ErrQuantityMaxNotPositive))
	assert.False(t, errors.Is(maxErr, pkgerrors.ErrQuantityMaxLessThanMin))
	assert.False(t, errors.Is(orderErr, pkgerrors.ErrQuantityMinNegative))
}

func TestNewMedia(t *testing.T) {
	_, err := NewMedia("not-a-url", MediaTypeImage)
	assert.ErrorIs(t, err, pkgerrors.ErrMediaURLMalformed)

	_, err = NewMedia("/relative/path.png", MediaTypeImage)
	assert.ErrorIs(t, err, pkgerrors.ErrMediaURLMalformed)

	_, err = NewMedia("https://example.com/x.png", MediaType("AUDIO"))
	assert.ErrorIs(t, err, pkgerrors.ErrMediaTypeInvalid)

	media, err := NewMedia("https://example.com/x.png", MediaTypeImage)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x.png", media.URL())
	assert.Equal(t, MediaTypeImage, media.Type())

	lower, err := NewMedia("https://example.com/v.mp4", MediaType("video"))
	require.NoError(t, err)
	assert.Equal(t, MediaTypeVideo, lower.Type())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("available")
	require.NoError(t, err)
	assert.True(t, status.IsAvailable())

	status, err = ParseStatus("UNAVAILABLE")
	require.NoError(t, err)
	assert.False(t, status.IsAvailable())

	_, err = ParseStatus("SOLD_OUT")
	assert.ErrorIs(t, err, pkgerrors.ErrStatusInvalid)
}
