package repository

import (
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	FindByEmail(email string) (user.User, error)
	FindByEmailAndRole(email string, role user.Role) (user.User, error)
	FindByID(id uint) (user.User, error)
	Create(u *user.User) error
	Save(u *user.User) error
	CountByRole(role user.Role) (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) FindByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) FindByEmailAndRole(email string, role user.Role) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ? AND role = ?", email, role).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) FindByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) CountByRole(role user.Role) (int64, error) {
	var n int64
	err := r.db.Model(&user.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
