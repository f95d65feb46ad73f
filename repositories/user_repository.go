package repositories

import (
	"newsapp-api/models"
	"newsapp-api/query"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	GetList(f models.UserFilter) ([]models.User, int64, error)
	GetAllFiltered(f models.UserFilter) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetList(f models.UserFilter) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	q := r.db.Model(&models.User{}).Scopes(query.UserScope(f))

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(query.UserSort.Resolve(f.SortBy, f.SortDir)).
		Scopes(query.Paginate(f.Page, f.PageSize)).
		Find(&users).Error

	return users, total, err
}

// GetAllFiltered materializes the whole filtered set for export. Exports
// ignore the sort fields and always come back id ascending.
func (r *userRepository) GetAllFiltered(f models.UserFilter) ([]models.User, error) {
	var users []models.User
	err := r.db.Scopes(query.UserScope(f)).Order("id asc").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.User{}, id)
	return res.RowsAffected > 0, res.Error
}
