package directory

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/models"
)

// Directory answers existence questions about reference data. The
// booking coordinator never touches user/barber/service rows directly;
// it goes through here.
type Directory interface {
	UserExists(ctx context.Context, userID uint) (bool, error)
	BarberExists(ctx context.Context, barberID uint) (bool, error)
	ServiceExists(ctx context.Context, serviceID uint) (bool, error)
}

const existsTTL = 30 * time.Second

type GormDirectory struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewGormDirectory builds the directory. cache may be nil.
func NewGormDirectory(db *gorm.DB, c *cache.Cache) *GormDirectory {
	return &GormDirectory{db: db, cache: c}
}

func (d *GormDirectory) UserExists(ctx context.Context, userID uint) (bool, error) {
	return d.exists(ctx, "user", userID, &models.User{})
}

func (d *GormDirectory) BarberExists(ctx context.Context, barberID uint) (bool, error) {
	return d.exists(ctx, "barber", barberID, &models.Barber{})
}

func (d *GormDirectory) ServiceExists(ctx context.Context, serviceID uint) (bool, error) {
	return d.exists(ctx, "service", serviceID, &models.Service{})
}

// Invalidate drops cached existence answers after a delete.
func (d *GormDirectory) Invalidate(ctx context.Context, entity string, id uint) {
	d.cache.Delete(ctx, existsKey(entity, id))
}

func (d *GormDirectory) exists(ctx context.Context, entity string, id uint, model any) (bool, error) {
	key := existsKey(entity, id)

	if hit, ok := d.cache.GetBool(ctx, key); ok {
		return hit, nil
	}

	var count int64
	if err := d.db.WithContext(ctx).
		Model(model).
		Where(entity+"_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	found := count > 0
	// Only positive answers are cached: a freshly created row must be
	// visible to the next booking request immediately.
	if found {
		d.cache.SetBool(ctx, key, true, existsTTL)
	}
	return found, nil
}

func existsKey(entity string, id uint) string {
	return fmt.Sprintf("dir:%s:%d", entity, id)
}

var _ Directory = (*GormDirectory)(nil)
