package repository

import (
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas (todos opcionales).
type SaleFilter struct {
	SoldBy    string
	StartDate *time.Time
	EndDate   *time.Time
}

// SaleWithRefs venta enriquecida con campos de presentación. ProductName cae a
// un placeholder si el producto fue eliminado del catálogo (la economía de la
// venta no depende de él: está en la foto UnitPrice/UnitCost).
type SaleWithRefs struct {
	entity.Sale
	ProductName string
	SoldByName  string
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListWithRefs(filter SaleFilter) ([]SaleWithRefs, error)
	Delete(id string) error
}
