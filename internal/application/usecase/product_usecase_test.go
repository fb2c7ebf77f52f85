package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// fakeProductRepo catálogo en memoria para los tests del CRUD.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetManyByIDs(ids []string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, amount int64) (int64, bool, error) {
	return 0, false, nil
}

func TestProductCreate_AsignaUmbralPorDefecto(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:     "Café 500g",
		Price:    decimal.NewFromInt(20),
		Cost:     decimal.NewFromInt(12),
		Quantity: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ReorderLevel, "sin reorderLevel explícito aplica el default")
	assert.NotEmpty(t, resp.ID)
}

func TestProductCreate_RespetaUmbralExplicito(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	zero := int64(0)
	resp, err := uc.Create(dto.CreateProductRequest{
		Name:         "Café 500g",
		Price:        decimal.NewFromInt(20),
		Cost:         decimal.NewFromInt(12),
		ReorderLevel: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.ReorderLevel, "un 0 explícito no debe reemplazarse por el default")
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad negativa")
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "CAFE-500"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "B", SKU: "CAFE-500"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductUpdate_ParcheParcial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Café 500g", Price: decimal.NewFromInt(20), Cost: decimal.NewFromInt(12), Quantity: 10,
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(25)
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Café 500g", updated.Name, "los campos no enviados se conservan")
	assert.Equal(t, int64(10), updated.Quantity)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "X"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CantidadNegativa(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{Name: "A", Quantity: 5})
	require.NoError(t, err)

	neg := int64(-2)
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp, "producto inexistente devuelve nil sin error")
}
