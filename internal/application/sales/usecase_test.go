package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/sales"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore implementa los puertos de producto, venta y usuario sobre mapas.
// onDecrement permite interceptar el decremento condicional para simular una
// transacción concurrente que gana la carrera.
type fakeStore struct {
	products    map[string]*entity.Product
	users       map[string]*entity.User
	sales       []*entity.Sale
	onDecrement func(id string)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

// ProductRepository

func (s *fakeStore) Create(p *entity.Product) error { s.products[p.ID] = p; return nil }

func (s *fakeStore) GetByID(id string) (*entity.Product, error) {
	return s.products[id], nil
}

func (s *fakeStore) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetManyByIDs(ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) Update(p *entity.Product) error { s.products[p.ID] = p; return nil }

func (s *fakeStore) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (s *fakeStore) Delete(id string) error { delete(s.products, id); return nil }

func (s *fakeStore) DecrementStock(id string, amount int64) (int64, bool, error) {
	if s.onDecrement != nil {
		s.onDecrement(id)
	}
	p, ok := s.products[id]
	if !ok || p.Quantity < amount {
		return 0, false, nil
	}
	p.Quantity -= amount
	return p.Quantity, true, nil
}

// SaleRepository (Create con otro receptor para no chocar con el de Product;
// fakeSaleRepo reexpone el store como puerto de ventas).
type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.store.sales = append(r.store.sales, sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.store.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) ListWithRefs(filter repository.SaleFilter) ([]repository.SaleWithRefs, error) {
	return nil, nil
}

func (r *fakeSaleRepo) Delete(id string) error { return nil }

// UserRepository
type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error { r.store.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.store.users[id], nil }

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { return nil }
func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(id string) error { return nil }

// fakeTxRunner emula la semántica transaccional de Postgres: toma una foto de
// cantidades y ventas antes de ejecutar fn, y la restaura si fn falla.
type fakeTxRunner struct{ store *fakeStore }

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	qtySnapshot := make(map[string]int64, len(tr.store.products))
	for id, p := range tr.store.products {
		qtySnapshot[id] = p.Quantity
	}
	salesLen := len(tr.store.sales)

	if err := fn(tr.store, &fakeSaleRepo{store: tr.store}); err != nil {
		// rollback
		for id, qty := range qtySnapshot {
			if p, ok := tr.store.products[id]; ok {
				p.Quantity = qty
			}
		}
		tr.store.sales = tr.store.sales[:salesLen]
		return err
	}
	return nil
}

// fakeNotifier registra las notificaciones emitidas.
type fakeNotifier struct {
	completed []string
	lowStock  []string
}

func (n *fakeNotifier) SaleCompleted(productName string, quantity int64, soldByName string) {
	n.completed = append(n.completed, productName)
}

func (n *fakeNotifier) LowStock(productName string, remaining int64) {
	n.lowStock = append(n.lowStock, productName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*sales.CreateSaleUseCase, *fakeStore, *fakeNotifier) {
	t.Helper()
	store := newFakeStore()
	store.users["u1"] = &entity.User{ID: "u1", Username: "ana", Role: entity.RoleSales}
	store.products["p1"] = &entity.Product{
		ID: "p1", Name: "Café 500g",
		Price: decimal.NewFromInt(20), Cost: decimal.NewFromInt(12),
		Quantity: 10, ReorderLevel: 5,
	}
	store.products["p2"] = &entity.Product{
		ID: "p2", Name: "Azúcar 1kg",
		Price: decimal.NewFromInt(8), Cost: decimal.NewFromInt(5),
		Quantity: 3, ReorderLevel: 5,
	}
	notifier := &fakeNotifier{}
	uc := sales.NewCreateSaleUseCase(
		&fakeTxRunner{store: store}, store, &fakeUserRepo{store: store}, notifier,
	)
	return uc, store, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de venta simple
// ──────────────────────────────────────────────────────────────────────────────

// Venta de un solo producto con stock suficiente: decrementa y registra la venta.
func TestCreateSale_VentaSimple(t *testing.T) {
	uc, store, notifier := newEngine(t)

	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1", ProductID: "p1", Quantity: 4,
	})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)

	assert.Equal(t, "Venta completada", resp.Message)
	assert.Equal(t, int64(6), store.products["p1"].Quantity, "el stock debe quedar en 10-4")
	require.Len(t, store.sales, 1)
	assert.Equal(t, "ana", resp.Sales[0].SoldByName)
	assert.Contains(t, notifier.completed, "Café 500g")
	assert.Empty(t, notifier.lowStock, "6 >= umbral 5, no debe avisar stock bajo")
}

// La venta copia precio y costo vigentes; cambios posteriores no la afectan.
func TestCreateSale_FotografiaEconomia(t *testing.T) {
	uc, store, _ := newEngine(t)

	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1", ProductID: "p1", Quantity: 1,
	})
	require.NoError(t, err)

	// Subimos el precio después de vender: la venta conserva la foto.
	store.products["p1"].Price = decimal.NewFromInt(99)

	assert.True(t, resp.Sales[0].UnitPrice.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.Sales[0].UnitCost.Equal(decimal.NewFromInt(12)))
	assert.True(t, store.sales[0].UnitPrice.Equal(decimal.NewFromInt(20)),
		"la venta persistida guarda el precio al momento de vender")
}

// Cantidad que deja el stock bajo el umbral del producto dispara LowStock.
func TestCreateSale_AvisaStockBajo(t *testing.T) {
	uc, _, notifier := newEngine(t)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1", ProductID: "p1", Quantity: 7, // 10-7=3 < 5
	})
	require.NoError(t, err)
	assert.Contains(t, notifier.lowStock, "Café 500g")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de venta multi-línea y normalización
// ──────────────────────────────────────────────────────────────────────────────

// Varias líneas válidas: una Sale por línea, todas con la misma fecha.
func TestCreateSale_MultiLinea(t *testing.T) {
	uc, store, _ := newEngine(t)

	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 2)

	assert.Equal(t, "Venta completada (varios ítems)", resp.Message)
	assert.Equal(t, int64(8), store.products["p1"].Quantity)
	assert.Equal(t, int64(2), store.products["p2"].Quantity)
	assert.Equal(t, resp.Sales[0].Date, resp.Sales[1].Date,
		"todas las líneas comparten la fecha de la venta")
}

// Líneas duplicadas del mismo producto se fusionan sumando cantidades.
func TestCreateSale_FusionaDuplicados(t *testing.T) {
	uc, store, _ := newEngine(t)

	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p1", Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1, "duplicados deben fusionarse en una sola línea")

	assert.Equal(t, int64(5), resp.Sales[0].Quantity)
	assert.Equal(t, int64(5), store.products["p1"].Quantity)
}

// Las líneas con cantidad cero o negativa se descartan; si quedan válidas, la
// venta procede solo con ellas.
func TestCreateSale_DescartaLineasInvalidas(t *testing.T) {
	uc, store, _ := newEngine(t)

	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 0},
			{ProductID: "p2", Quantity: -3},
			{ProductID: "p1", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, int64(8), store.products["p1"].Quantity)
	assert.Equal(t, int64(3), store.products["p2"].Quantity, "p2 no debe tocarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_SinLineasValidas(t *testing.T) {
	uc, _, _ := newEngine(t)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 0},
			{ProductID: "", Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNoValidItems)
}

func TestCreateSale_ActorInexistente(t *testing.T) {
	uc, _, _ := newEngine(t)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "fantasma", ProductID: "p1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrActorNotFound)
}

func TestCreateSale_SoldByVacio(t *testing.T) {
	uc, _, _ := newEngine(t)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	uc, store, _ := newEngine(t)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "no-existe", Quantity: 1},
		},
	})

	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-existe", notFound.ProductID)
	assert.Equal(t, int64(10), store.products["p1"].Quantity,
		"una línea inválida rechaza la venta completa sin mutar stock")
	assert.Empty(t, store.sales)
}

func TestCreateSale_StockInsuficiente(t *testing.T) {
	uc, store, notifier := newEngine(t)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 50}, // solo hay 3
		},
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Azúcar 1kg", insufficient.ProductName)
	assert.Equal(t, int64(3), insufficient.Available)
	assert.Equal(t, int64(50), insufficient.Requested)

	// Todo-o-nada: ni p1 ni p2 cambian, no hay ventas ni notificaciones.
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
	assert.Equal(t, int64(3), store.products["p2"].Quantity)
	assert.Empty(t, store.sales)
	assert.Empty(t, notifier.completed)
}

// Carrera perdida: el pre-chequeo pasa pero otra transacción decrementa antes
// de aplicar. El motor devuelve ErrStockChanged y el rollback restaura lo ya
// decrementado dentro de la transacción.
func TestCreateSale_StockCambiadoDuranteVenta(t *testing.T) {
	uc, store, notifier := newEngine(t)

	raced := false
	store.onDecrement = func(id string) {
		// Un comprador concurrente vacía p2 justo antes del decremento.
		if id == "p2" && !raced {
			raced = true
			store.products["p2"].Quantity = 0
		}
	}

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrStockChanged)

	// El rollback deshace el decremento ya aplicado a p1.
	assert.Equal(t, int64(10), store.products["p1"].Quantity,
		"el rollback debe revertir el decremento de p1")
	assert.Empty(t, store.sales)
	assert.Empty(t, notifier.completed, "una venta fallida no notifica")
}

// Un error al insertar la venta revierte los decrementos de stock.
func TestCreateSale_FalloEnInsercionRevierteStock(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = &entity.User{ID: "u1", Username: "ana", Role: entity.RoleSales}
	store.products["p1"] = &entity.Product{
		ID: "p1", Name: "Café 500g",
		Price: decimal.NewFromInt(20), Cost: decimal.NewFromInt(12),
		Quantity: 10, ReorderLevel: 5,
	}
	notifier := &fakeNotifier{}
	uc := sales.NewCreateSaleUseCase(
		&failingSaleTxRunner{store: store}, store, &fakeUserRepo{store: store}, notifier,
	)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		SoldBy: "u1", ProductID: "p1", Quantity: 2,
	})
	require.Error(t, err)
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
}

// failingSaleTxRunner como fakeTxRunner pero el repo de ventas siempre falla.
type failingSaleTxRunner struct{ store *fakeStore }

func (tr *failingSaleTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	qtySnapshot := make(map[string]int64, len(tr.store.products))
	for id, p := range tr.store.products {
		qtySnapshot[id] = p.Quantity
	}
	if err := fn(tr.store, failingSaleRepo{}); err != nil {
		for id, qty := range qtySnapshot {
			if p, ok := tr.store.products[id]; ok {
				p.Quantity = qty
			}
		}
		return err
	}
	return nil
}

type failingSaleRepo struct{}

func (failingSaleRepo) Create(*entity.Sale) error { return errors.New("insert fallido") }
func (failingSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (failingSaleRepo) ListWithRefs(repository.SaleFilter) ([]repository.SaleWithRefs, error) {
	return nil, nil
}
func (failingSaleRepo) Delete(string) error { return nil }
