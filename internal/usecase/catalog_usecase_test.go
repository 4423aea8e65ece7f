package usecase

import (
	"context"
	"errors"
	"testing"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/logger"
	mock_interfaces "dental_lab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func catalogFixture() []entities.Service {
	return []entities.Service{
		{ID: "s1", Name: "Puente 3 piezas", Category: entities.CategoryPuente, Price: 400000, Active: true},
		{ID: "s2", Name: "corona zirconia", Category: entities.CategoryCorona, Price: 250000, Active: true},
		{ID: "s3", Name: "Corona metal", Category: entities.CategoryCorona, Price: 180000, Active: false},
		{ID: "s4", Name: "Carilla E-max", Category: entities.CategoryCarilla, Price: 220000, Active: true},
	}
}

func TestCatalogUseCase_ListActiveServices(t *testing.T) {
	t.Run("invalid owner", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, logger.Discard())
		if _, err := uc.ListActiveServices(context.Background(), " ", ServiceFilter{}); !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, logger.Discard())
		if _, err := uc.ListActiveServices(context.Background(), "o1", ServiceFilter{Category: "x"}); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	cases := []struct {
		name   string
		filter ServiceFilter
		want   []string
	}{
		{name: "active only sorted by name", filter: ServiceFilter{}, want: []string{"s4", "s2", "s1"}},
		{name: "by category", filter: ServiceFilter{Category: entities.CategoryCorona}, want: []string{"s2"}},
		{name: "search is case-insensitive on name", filter: ServiceFilter{Search: "ZIRC"}, want: []string{"s2"}},
		{name: "search matches category label", filter: ServiceFilter{Search: "puentes"}, want: []string{"s1"}},
		{name: "no match", filter: ServiceFilter{Search: "implante"}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockICatalogRepository(ctrl)
			uc := NewCatalogUseCase(repo, logger.Discard())
			repo.EXPECT().ListByOwner(gomock.Any(), "o1").Return(catalogFixture(), nil)

			got, err := uc.ListActiveServices(context.Background(), "o1", tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected %v, got %+v", tc.want, got)
				}
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())
		repo.EXPECT().ListByOwner(gomock.Any(), "o1").Return(nil, errors.New("db"))

		if _, err := uc.ListActiveServices(context.Background(), "o1", ServiceFilter{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, logger.Discard())
		ctx := context.Background()
		if _, err := uc.CreateService(ctx, "o1", " ", entities.CategoryCorona, 1); !errors.Is(err, ErrInvalidServiceName) {
			t.Fatalf("expected ErrInvalidServiceName, got %v", err)
		}
		if _, err := uc.CreateService(ctx, "o1", "Corona", "nope", 1); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
		if _, err := uc.CreateService(ctx, "o1", "Corona", entities.CategoryCorona, 0); !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.OwnerID != "o1" || s.Name != "Corona" || !s.Active || s.CreatedAt.IsZero() {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		got, err := uc.CreateService(context.Background(), "o1", " Corona ", entities.CategoryCorona, 250000)
		if err != nil || got.Price != 250000 {
			t.Fatalf("unexpected result err=%v res=%+v", err, got)
		}
	})
}

func TestCatalogUseCase_UpdateAndDeactivate(t *testing.T) {
	t.Run("update price not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())
		repo.EXPECT().UpdatePrice(gomock.Any(), "o1", "s1", int64(10)).Return(entities.Service{}, nil)

		if _, err := uc.UpdateServicePrice(context.Background(), "o1", "s1", 10); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("update price invalid", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, logger.Discard())
		if _, err := uc.UpdateServicePrice(context.Background(), "o1", "s1", -1); !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
		if _, err := uc.UpdateServicePrice(context.Background(), "o1", "", 10); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("deactivate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())
		repo.EXPECT().SetActive(gomock.Any(), "o1", "s1", false).Return(entities.Service{ID: "s1", Active: false}, nil)

		got, err := uc.DeactivateService(context.Background(), "o1", " s1 ")
		if err != nil || got.Active {
			t.Fatalf("unexpected result err=%v res=%+v", err, got)
		}
	})

	t.Run("deactivate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())
		repo.EXPECT().SetActive(gomock.Any(), "o1", "s1", false).Return(entities.Service{}, nil)

		if _, err := uc.DeactivateService(context.Background(), "o1", "s1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_ImportServices(t *testing.T) {
	t.Run("rejects invalid rows and keeps going", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil },
		).Times(2)

		res, err := uc.ImportServices(context.Background(), "o1", []CatalogImportRow{
			{Row: 2, Name: "Corona", Category: entities.CategoryCorona, Price: 250000},
			{Row: 3, Name: "Gratis", Category: entities.CategoryCorona, Price: 0},
			{Row: 4, Name: "Rara", Category: "nope", Price: 1000},
			{Row: 5, Name: "Carilla", Category: entities.CategoryCarilla, Price: 220000},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Created) != 2 || len(res.Rejected) != 2 {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.Rejected[0].Row != 3 || res.Rejected[1].Reason != ErrInvalidCategory.Error() {
			t.Fatalf("unexpected rejections %+v", res.Rejected)
		}
	})

	t.Run("storage error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, logger.Discard())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, errors.New("db"))

		_, err := uc.ImportServices(context.Background(), "o1", []CatalogImportRow{
			{Row: 2, Name: "Corona", Category: entities.CategoryCorona, Price: 250000},
			{Row: 3, Name: "Carilla", Category: entities.CategoryCarilla, Price: 220000},
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
