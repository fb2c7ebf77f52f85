package usecase

import (
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// SaleQueryUseCase lectura y corrección de ventas ya registradas. La creación
// es exclusiva del motor (application/sales).
type SaleQueryUseCase struct {
	repo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(repo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{repo: repo}
}

// List devuelve ventas filtradas por vendedor y rango de fechas, más nueva
// primero, con nombre de producto y de vendedor para presentación.
func (uc *SaleQueryUseCase) List(filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	rows, err := uc.repo.ListWithRefs(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		items = append(items, dto.SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			UnitCost:    s.UnitCost,
			SoldBy:      s.SoldBy,
			SoldByName:  s.SoldByName,
			Date:        s.Date,
		})
	}
	return &dto.SaleListResponse{Items: items}, nil
}

// Delete borra una venta (corrección de admin). No restaura stock: una
// corrección contable no debe fabricar inventario.
func (uc *SaleQueryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
