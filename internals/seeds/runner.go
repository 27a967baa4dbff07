// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run menjalankan seluruh seeder demo (idempotent; skip kalau sudah ada).
// Dipanggil dari main kalau SEED_ON_BOOT=true.
func Run(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeds...")

	if err := SeedUsers(db); err != nil {
		log.Printf("❌ seed users gagal: %v", err)
		return
	}
	if err := SeedDemoSchool(db); err != nil {
		log.Printf("❌ seed demo school gagal: %v", err)
		return
	}

	log.Println("✅ Seeds selesai.")
}
