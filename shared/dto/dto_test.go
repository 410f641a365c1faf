package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 6, 14, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "reception@lodge.test",
		ModifiedBy: "manager@lodge.test",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "reception@lodge.test", metadata.CreatedBy)
	assert.Equal(t, "manager@lodge.test", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		rawQuery       string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all parameters set",
			rawQuery:       "page=2&limit=20&sort_by=room_number&sort_dir=asc",
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "room_number", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied when empty",
			rawQuery:       "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "no defaults when disabled",
			rawQuery:       "",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			rawQuery:       "page=abc&limit=-5",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "unknown sort direction ignored",
			rawQuery:       "page=3&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 3, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/v1/rooms?"+tt.rawQuery, nil)

			params := &dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			assert.Equal(t, tt.expected, *params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	t.Run("eq with table prefix", func(t *testing.T) {
		filter := dto.Filter{Field: "status", Table: "bookings", Value: "confirmed", Operator: dto.FilterOperatorEq}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "bookings.status = :status", where)
		assert.Equal(t, map[string]any{"status": "confirmed"}, args)
	})

	t.Run("like wraps value in wildcards", func(t *testing.T) {
		filter := dto.Filter{Field: "guest_name", Value: "doe", Operator: dto.FilterOperatorLike}

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "LOWER(guest_name) LIKE LOWER(:guest_name)")
		assert.Equal(t, "%doe%", args["guest_name"])
	})

	t.Run("in expands slice to named args", func(t *testing.T) {
		filter := dto.Filter{Field: "audience", Value: []string{"public", "all"}, Operator: dto.FilterOperatorIn}

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "audience IN (:audience_0, :audience_1)")
		assert.Equal(t, "public", args["audience_0"])
		assert.Equal(t, "all", args["audience_1"])
	})

	t.Run("custom arg name avoids collisions", func(t *testing.T) {
		filter := dto.Filter{ArgName: "check_in_from", Field: "check_in", Value: "2026-01-01", Operator: dto.FilterOperatorGreaterEq}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "check_in >= :check_in_from", where)
		assert.Equal(t, map[string]any{"check_in_from": "2026-01-01"}, args)
	})

	t.Run("null checks carry no args", func(t *testing.T) {
		filter := dto.Filter{Field: "expires_at", Operator: dto.FilterIsNull}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "expires_at IS NULL", where)
		assert.Empty(t, args)
	})
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("nested group joins with its own operator", func(t *testing.T) {
		cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "expires_at", Operator: dto.FilterIsNull},
						dto.Filter{Field: "expires_at", Value: cutoff, Operator: dto.FilterOperatorGreaterEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(is_active = :is_active AND (expires_at IS NULL OR expires_at >= :expires_at))", where)
		assert.Equal(t, true, args["is_active"])
		assert.Equal(t, cutoff, args["expires_at"])
	})
}
