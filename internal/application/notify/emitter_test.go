package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/notify"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

// fakeNotificationRepo guarda lo creado o falla siempre según failWith.
type fakeNotificationRepo struct {
	created  []*entity.Notification
	failWith error
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) ListRecent(limit int) ([]*entity.Notification, error) {
	return r.created, nil
}

func (r *fakeNotificationRepo) MarkSeen(id string) error { return nil }
func (r *fakeNotificationRepo) Delete(id string) error   { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func TestEmitter_SaleCompleted_FormatoYTipo(t *testing.T) {
	repo := &fakeNotificationRepo{}
	emitter := notify.NewEmitter(repo, testLogger())

	emitter.SaleCompleted("Café 500g", 3, "ana")

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "3 x Café 500g vendido por ana", n.Message)
	assert.Equal(t, entity.NotificationSuccess, n.Type)
	assert.False(t, n.Seen, "las notificaciones nacen sin ver")
	assert.NotEmpty(t, n.ID)
}

func TestEmitter_LowStock_FormatoYTipo(t *testing.T) {
	repo := &fakeNotificationRepo{}
	emitter := notify.NewEmitter(repo, testLogger())

	emitter.LowStock("Azúcar 1kg", 2)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Stock bajo: quedan 2 x Azúcar 1kg", repo.created[0].Message)
	assert.Equal(t, entity.NotificationWarning, repo.created[0].Type)
}

// Best-effort: un repo que falla no debe propagar el error ni entrar en pánico.
func TestEmitter_FalloDePersistencia_SeTraga(t *testing.T) {
	repo := &fakeNotificationRepo{failWith: errors.New("bd caída")}
	emitter := notify.NewEmitter(repo, testLogger())

	assert.NotPanics(t, func() {
		emitter.SaleCompleted("Café 500g", 1, "ana")
		emitter.LowStock("Café 500g", 0)
	})
	assert.Empty(t, repo.created)
}
