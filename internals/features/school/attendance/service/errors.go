package service

import "errors"

// Taksonomi error engine. Validation vs not-found dibedakan tegas supaya
// controller bisa memetakan kode HTTP tanpa menebak dari pesan.
var (
	// not-found
	ErrSessionNotFound = errors.New("sesi tidak ditemukan")
	ErrClassNotFound   = errors.New("kelas tidak ditemukan")

	// validation (kesalahan caller; tidak pernah di-retry otomatis)
	ErrSessionLocked       = errors.New("sesi terkunci, kehadiran tidak bisa diubah")
	ErrEmptyBatch          = errors.New("daftar record kehadiran kosong")
	ErrStudentNotInSession = errors.New("student tidak punya baris kehadiran di sesi ini")
	ErrHomeworkNotAssigned = errors.New("sesi sebelumnya tidak memberi PR; homework_status harus no_homework")
	ErrHomeworkRequired    = errors.New("sesi sebelumnya memberi PR; homework_status tidak boleh no_homework")
)
