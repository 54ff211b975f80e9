package product_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    product.CreateParams
		setupMock func(m *product.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: product.CreateParams{
				Name:        "Cappuccino",
				Description: "with chocolate",
				Category:    product.CategoryHot,
				Price:       4800,
			},
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *product.Product) error {
						p.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingName",
			params: product.CreateParams{
				Description: "with chocolate",
				Category:    product.CategoryHot,
				Price:       4800,
			},
			wantErr: true,
		},
		{
			name: "NameTooLong",
			params: product.CreateParams{
				Name:        strings.Repeat("x", 101),
				Description: "d",
				Category:    product.CategoryIced,
				Price:       100,
			},
			wantErr: true,
		},
		{
			name: "UnknownCategory",
			params: product.CreateParams{
				Name:        "Cappuccino",
				Description: "with chocolate",
				Category:    "lukewarm",
				Price:       4800,
			},
			wantErr: true,
		},
		{
			name: "NegativePrice",
			params: product.CreateParams{
				Name:        "Cappuccino",
				Description: "with chocolate",
				Category:    product.CategoryHot,
				Price:       -100,
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			params: product.CreateParams{
				Name:        "Cappuccino",
				Description: "with chocolate",
				Category:    product.CategoryHot,
				Price:       4800,
			},
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := product.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := product.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	params := []product.CreateParams{
		{Name: "Americano", Description: "black", Category: product.CategoryHot, Price: 3500},
		{Name: "Iced Latte", Description: "with milk", Category: product.CategoryIced, Price: 6500},
	}

	repo.EXPECT().CreateProducts(gomock.Any(), gomock.Len(2)).Return(nil)

	ps, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, ps, 2)
	assert.Equal(t, int64(3500), ps[0].Price)
}

func TestService_CreateBatch_InvalidRowAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	params := []product.CreateParams{
		{Name: "Americano", Description: "black", Category: product.CategoryHot, Price: 3500},
		{Name: "", Description: "no name", Category: product.CategoryHot, Price: 100},
	}

	// No repo call expected: validation fails before persistence.
	ps, err := svc.CreateBatch(context.Background(), params)
	assert.Error(t, err)
	assert.Nil(t, ps)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	ps, err := svc.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestService_BestSelling_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	repo.EXPECT().
		BestSelling(gomock.Any(), gomock.Nil(), 5).
		Return([]*product.Product{{ID: uuid.New(), ItemSold: 12}}, nil)

	ps, err := svc.BestSelling(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Len(t, ps, 1)
}

func TestService_Update_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	err := svc.Update(context.Background(), &product.Product{
		ID:       uuid.New(),
		Name:     "",
		Category: product.CategoryHot,
	})
	assert.Error(t, err)
}
