package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr error
	}{
		{"defaults", "", Params{Page: 1}, nil},
		{"both set", "page=2&pageSize=10", Params{Page: 2, PageSize: 10}, nil},
		{"zero page", "page=0", Params{Page: 1}, ErrInvalidPage},
		{"bad page", "page=abc", Params{Page: 1}, ErrInvalidPage},
		{"negative size", "pageSize=-1", Params{Page: 1}, ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qp, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := FromQuery(qp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := Params{Page: 3, PageSize: 5}.CalculateOffsetLimit()
	assert.Equal(t, 10, offset)
	assert.Equal(t, 5, limit)

	offset, limit = Params{Page: 3}.CalculateOffsetLimit()
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, limit)
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("everything", func(t *testing.T) {
		page, meta := Apply(items, Params{Page: 1})
		assert.Equal(t, items, page)
		assert.Equal(t, Meta{Page: 1, TotalItems: 5, TotalPages: 1}, meta)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, meta := Apply(items, Params{Page: 3, PageSize: 2})
		assert.Equal(t, []int{5}, page)
		assert.Equal(t, Meta{Page: 3, PageSize: 2, TotalItems: 5, TotalPages: 3}, meta)
	})

	t.Run("past the end", func(t *testing.T) {
		page, meta := Apply(items, Params{Page: 9, PageSize: 2})
		assert.Empty(t, page)
		assert.Equal(t, 3, meta.TotalPages)
	})
}
