package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/application/usecase"
	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.ProductName == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func productRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		ProductName:     "Pan de masa madre",
		Description:     "Hogaza de 500g",
		Category:        "Panes",
		BasePrice:       decimal.NewFromFloat(350.50),
		ShelfLifeDays:   3,
		MeasurementType: entity.MeasurementPCS,
	}
}

func TestProductCreate_CreaActivoConID(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(productRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.IsActive, "un producto recién creado queda activo")
	assert.Equal(t, "Pan de masa madre", out.ProductName)
	assert.True(t, out.BasePrice.Equal(decimal.NewFromFloat(350.50)))

	saved, _ := repo.GetByID(out.ID)
	require.NotNil(t, saved)
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(productRequest())
	require.NoError(t, err)

	_, err = uc.Create(productRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductListActive_ExcluyeInactivos(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(productRequest())
	require.NoError(t, err)

	inactive := productRequest()
	inactive.ProductName = "Producto descontinuado"
	out2, err := uc.Create(inactive)
	require.NoError(t, err)
	repo.byID[out2.ID].IsActive = false

	list, err := uc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, out.ID, list[0].ID)
}

func TestProductListActive_SinProductos_DevuelveListaVacia(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	list, err := uc.ListActive()
	require.NoError(t, err)
	require.NotNil(t, list, "el catálogo vacío serializa como [] y no como null")
	assert.Empty(t, list)
}
