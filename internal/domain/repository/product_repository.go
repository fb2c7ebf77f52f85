package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetManyByIDs(ids []string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// DecrementStock aplica el decremento condicional (compare-and-swap):
	// resta amount solo si quantity >= amount en el momento de aplicar.
	// Devuelve la cantidad resultante y ok=false si la condición no se cumplió
	// (otra transacción ganó la carrera); en ese caso no muta nada.
	DecrementStock(id string, amount int64) (newQuantity int64, ok bool, err error)
}
