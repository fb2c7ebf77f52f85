package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// CreateSaleUseCase es el motor de transacciones de venta: valida actor,
// productos y stock, aplica los decrementos condicionales dentro de una
// transacción y registra una Sale por línea con la economía fotografiada.
// Todo-o-nada: una línea inválida o insuficiente rechaza la venta completa.
type CreateSaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

// NewCreateSaleUseCase construye el motor.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// saleLine línea canónica tras normalizar el request.
type saleLine struct {
	productID string
	quantity  int64
}

// normalizeLines pasa el request (forma simple o items) a la lista canónica:
// ids recortados, líneas con cantidad no positiva descartadas y duplicados del
// mismo producto fusionados sumando cantidades. Conserva el orden de aparición.
func normalizeLines(in dto.CreateSaleRequest) []saleLine {
	items := in.Items
	if len(items) == 0 {
		items = []dto.SaleItemRequest{{ProductID: in.ProductID, Quantity: in.Quantity}}
	}
	merged := make(map[string]int64, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Quantity <= 0 {
			continue
		}
		if _, seen := merged[id]; !seen {
			order = append(order, id)
		}
		merged[id] += it.Quantity
	}
	lines := make([]saleLine, 0, len(order))
	for _, id := range order {
		lines = append(lines, saleLine{productID: id, quantity: merged[id]})
	}
	return lines
}

// CreateSale ejecuta una venta completa:
//
//  1. Normaliza las líneas; si no queda ninguna válida, ErrNoValidItems.
//  2. Resuelve el actor (soldBy); si no existe, ErrActorNotFound.
//  3. Resuelve todos los productos en una sola consulta; línea sin producto,
//     ProductNotFoundError con el id ofensor.
//  4. Verifica stock por línea; cualquier faltante rechaza todo con
//     InsufficientStockError (nombre, disponible, solicitado) sin mutar nada.
//  5. En una transacción: decremento condicional por línea (quantity >= amount
//     re-verificado al aplicar). Si alguna línea no matchea, otra transacción
//     ganó la carrera: ErrStockChanged y el rollback revierte los decrementos
//     previos. El caller puede reintentar con datos frescos.
//  6. Misma transacción: inserta una Sale por línea con UnitPrice/UnitCost
//     copiados del producto resuelto en (3). Commit.
//
// Tras el commit emite notificaciones (venta por línea y stock bajo cuando la
// cantidad resultante quedó bajo el umbral del producto); son best-effort.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	soldBy := strings.TrimSpace(in.SoldBy)
	if soldBy == "" {
		return nil, domain.ErrInvalidInput
	}

	lines := normalizeLines(in)
	if len(lines) == 0 {
		return nil, domain.ErrNoValidItems
	}

	user, err := uc.userRepo.GetByID(soldBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrActorNotFound
	}

	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.productID
	}
	products, err := uc.productRepo.GetManyByIDs(ids)
	if err != nil {
		return nil, err
	}
	pmap := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		pmap[p.ID] = p
	}

	for _, l := range lines {
		p, ok := pmap[l.productID]
		if !ok {
			return nil, &domain.ProductNotFoundError{ProductID: l.productID}
		}
		if p.Quantity < l.quantity {
			return nil, &domain.InsufficientStockError{
				ProductName: p.Name,
				Available:   p.Quantity,
				Requested:   l.quantity,
			}
		}
	}

	now := time.Now()
	created := make([]*entity.Sale, 0, len(lines))
	remaining := make(map[string]int64, len(lines))

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		for _, l := range lines {
			newQty, ok, err := productRepo.DecrementStock(l.productID, l.quantity)
			if err != nil {
				return err
			}
			if !ok {
				// El pre-chequeo pasó pero el stock cambió entre medio.
				return domain.ErrStockChanged
			}
			remaining[l.productID] = newQty
		}
		for _, l := range lines {
			p := pmap[l.productID]
			sale := &entity.Sale{
				ID:        uuid.New().String(),
				ProductID: p.ID,
				Quantity:  l.quantity,
				UnitPrice: p.Price,
				UnitCost:  p.Cost,
				SoldBy:    user.ID,
				Date:      now,
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
			created = append(created, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		p := pmap[l.productID]
		uc.notifier.SaleCompleted(p.Name, l.quantity, user.Username)
		if left := remaining[l.productID]; left < p.ReorderLevel {
			uc.notifier.LowStock(p.Name, left)
		}
	}

	msg := "Venta completada"
	if len(lines) > 1 {
		msg = "Venta completada (varios ítems)"
	}
	out := &dto.CreateSaleResponse{Message: msg, Sales: make([]dto.SaleResponse, 0, len(created))}
	for _, s := range created {
		out.Sales = append(out.Sales, dto.SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: pmap[s.ProductID].Name,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			UnitCost:    s.UnitCost,
			SoldBy:      s.SoldBy,
			SoldByName:  user.Username,
			Date:        s.Date,
		})
	}
	return out, nil
}
