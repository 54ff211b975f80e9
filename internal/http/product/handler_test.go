package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

func TestListCategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)
	h := NewHandler(product.NewService(repo))

	repo.EXPECT().
		ListProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter product.ListFilter) ([]*product.Product, error) {
			require.NotNil(t, filter.Category)
			require.Equal(t, product.CategoryIced, *filter.Category)

			return nil, nil
		})

	rec := httptest.NewRecorder()
	h.list(rec, httptest.NewRequest(http.MethodGet, "/?category=iced", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListNoCategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)
	h := NewHandler(product.NewService(repo))

	repo.EXPECT().
		ListProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter product.ListFilter) ([]*product.Product, error) {
			require.Nil(t, filter.Category)
			return nil, nil
		})

	rec := httptest.NewRecorder()
	h.list(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
