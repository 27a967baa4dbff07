package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	// Tunables engine kehadiran (lihat EditGracePeriod & WarningThreshold)
	AttendanceEditGraceHours   int
	AttendanceWarningThreshold float64
)

const (
	defaultEditGraceHours   = 48   // sesi masih bisa dikoreksi s/d H+2 akhir hari
	defaultWarningThreshold = 0.20 // absen >= 20% → peringatan
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}

	AttendanceEditGraceHours = GetEnvInt("ATTENDANCE_EDIT_GRACE_HOURS", defaultEditGraceHours)
	AttendanceWarningThreshold = GetEnvFloat("ATTENDANCE_WARNING_THRESHOLD", defaultWarningThreshold)
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("⚠️ %s tidak valid (%q), pakai default %d", key, v, fallback)
	}
	return fallback
}

func GetEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
		log.Printf("⚠️ %s tidak valid (%q), pakai default %.2f", key, v, fallback)
	}
	return fallback
}

// EditGracePeriod: jendela koreksi setelah sesi berakhir (default 48 jam).
// Dipakai Edit-Window Gate; jangan hardcode angka di call site.
func EditGracePeriod() time.Duration {
	h := AttendanceEditGraceHours
	if h <= 0 {
		h = defaultEditGraceHours
	}
	return time.Duration(h) * time.Hour
}

// WarningThreshold: ambang rasio absen untuk peringatan kehadiran.
func WarningThreshold() float64 {
	t := AttendanceWarningThreshold
	if t <= 0 || t > 1 {
		t = defaultWarningThreshold
	}
	return t
}
