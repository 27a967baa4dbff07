// file: internals/seeds/users_seed.go
package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kehadiranku_backend/internals/constants"
	userModel "kehadiranku_backend/internals/features/users/model"
)

// SeedUsers membuat akun demo (guru + admin). Password di-hash bcrypt.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️ users sudah ada, skip")
		return nil
	}

	demo := []struct {
		Name, Email, Password, Role string
	}{
		{"Admin Demo", "admin@demo.sch.id", "admin123", constants.RoleAdmin},
		{"Guru Demo", "guru@demo.sch.id", "guru123", constants.RoleTeacher},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := userModel.UserModel{
			UserName:     d.Name,
			UserEmail:    d.Email,
			UserPassword: string(hash),
			UserRole:     d.Role,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Printf("👤 user %s (%s) dibuat", d.Email, d.Role)
	}
	return nil
}
